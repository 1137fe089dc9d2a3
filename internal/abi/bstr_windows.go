//go:build windows

package abi

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modoleaut32 = windows.NewLazySystemDLL("oleaut32.dll")

	procSysAllocStringLen = modoleaut32.NewProc("SysAllocStringLen")
	procSysFreeString     = modoleaut32.NewProc("SysFreeString")
)

func sysAllocStringLen(units []uint16) uintptr {
	var first *uint16
	if len(units) > 0 {
		first = &units[0]
	}
	p, _, _ := procSysAllocStringLen.Call(uintptr(unsafe.Pointer(first)), uintptr(len(units)))
	return p
}

func sysFreeString(p uintptr) bool {
	procSysFreeString.Call(p)
	return true
}
