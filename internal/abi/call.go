//go:build (darwin || linux || windows) && (amd64 || arm64)

package abi

import (
	"unsafe"

	"github.com/ebitengine/purego"
)

// Supported reports whether vtable calls and trampolines work on this build.
const Supported = true

// Entry returns the function pointer stored in the given vtable slot of obj.
// obj must be non-zero.
func Entry(obj uintptr, slot int) uintptr {
	return Load[uintptr](Load[uintptr](obj) + uintptr(slot)*ptrSize)
}

// Call invokes vtable slot of obj with obj prepended as the receiver and
// returns the 32-bit status. Pointer arguments must reference memory from
// Alloc or from the component system.
func Call(obj uintptr, slot int, args ...uintptr) int32 {
	if obj == 0 {
		return EPointer
	}
	all := make([]uintptr, 0, len(args)+1)
	all = append(all, obj)
	all = append(all, args...)
	r1, _, _ := purego.SyscallN(Entry(obj, slot), all...)
	return int32(uint32(r1))
}

// CallOut calls slot with args followed by a pointer to a zeroed T and
// returns whatever the callee stored there.
func CallOut[T any](obj uintptr, slot int, args ...uintptr) (T, int32) {
	var zero T
	out := Alloc(unsafe.Sizeof(zero))
	defer Free(out)

	hr := Call(obj, slot, append(args[:len(args):len(args)], out)...)
	return Load[T](out), hr
}

// CallGUIDOut calls slot with a pointer to iid, then args, then an out
// pointer. QueryInterface and FindConnectionPoint share this shape.
func CallGUIDOut[T any](obj uintptr, slot int, iid GUID, args ...uintptr) (T, int32) {
	ref := Alloc(unsafe.Sizeof(iid))
	defer Free(ref)
	Store(ref, iid)

	return CallOut[T](obj, slot, append([]uintptr{ref}, args...)...)
}

// Invoke calls IDispatch::Invoke (slot 6) on obj as a method call with the
// given positional arguments. args are in declaration order; they are
// reversed into DISPPARAMS order here.
func Invoke(obj uintptr, dispID int32, args []Variant) int32 {
	var params DispParams
	if len(args) > 0 {
		size := unsafe.Sizeof(Variant{})
		params.Args = Alloc(uintptr(len(args)) * size)
		defer Free(params.Args)
		for i, a := range args {
			Store(params.Args+uintptr(len(args)-1-i)*size, a)
		}
		params.NArgs = uint32(len(args))
	}
	pp := Alloc(unsafe.Sizeof(params))
	defer Free(pp)
	Store(pp, params)
	null := Alloc(unsafe.Sizeof(GUID{}))
	defer Free(null)

	return Call(obj, 6,
		uintptr(uint32(dispID)),
		null,
		0, // lcid
		DispatchMethod,
		pp,
		0, 0, 0,
	)
}

// NewCallback wraps fn in a native-callable trampoline. fn must take and
// return uintptr-sized values only. Trampolines are never freed, so callers
// create them once per process.
func NewCallback(fn any) uintptr {
	return purego.NewCallback(fn)
}

// Status converts a Go-side status into a trampoline return value.
func Status(hr int32) uintptr { return uintptr(uint32(hr)) }
