//go:build windows

package abi

import (
	"runtime"
	"unsafe"

	"golang.org/x/sys/windows"
)

const clsctxInprocServer = 0x1

var (
	modole32             = windows.NewLazySystemDLL("ole32.dll")
	procCoCreateInstance = modole32.NewProc("CoCreateInstance")
)

// CoInitialize enters a single-threaded apartment on the calling thread.
// The thread is locked so that later calls stay in the same apartment.
func CoInitialize() int32 {
	return enterApartment(func() int32 {
		if err := windows.CoInitializeEx(0, windows.COINIT_APARTMENTTHREADED); err != nil {
			if errno, ok := err.(windows.Errno); ok {
				return int32(uint32(errno))
			}
			return EFail
		}
		return SOK
	})
}

// CoUninitialize leaves the apartment entered by CoInitialize.
func CoUninitialize() {
	windows.CoUninitialize()
	runtime.UnlockOSThread()
}

// CoCreateInstance creates an in-process instance of clsid and returns the
// requested interface pointer.
func CoCreateInstance(clsid, iid GUID) (uintptr, int32) {
	size := unsafe.Sizeof(GUID{})
	refs := Alloc(2*size + ptrSize)
	defer Free(refs)
	Store(refs, clsid)
	Store(refs+size, iid)
	out := refs + 2*size

	r1, _, _ := procCoCreateInstance.Call(refs, 0, clsctxInprocServer, refs+size, out)
	return Load[uintptr](out), int32(uint32(r1))
}
