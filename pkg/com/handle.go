package com

import (
	"github.com/ircx/chatframe-go/internal/abi"
)

// Slot is a zero-based index into an interface's vtable.
type Slot int

// IUnknown entries present at the start of every vtable.
const (
	SlotQueryInterface Slot = 0
	SlotAddRef         Slot = 1
	SlotRelease        Slot = 2
)

// Handle owns a raw pointer to a vtable-prefixed object and names the
// interface that pointer was negotiated for.
//
// A Handle holds one reference on the object. Copies share that reference;
// use AddRef before handing a copy to an independent owner. The zero Handle
// is empty and every operation on it fails with ErrNullHandle.
type Handle struct {
	ptr uintptr
	iid GUID
}

// FromRaw wraps ptr as an interface of type iid. The caller guarantees ptr
// came from a successful creation or query for iid and transfers one
// reference to the Handle.
func FromRaw(ptr uintptr, iid GUID) Handle {
	return Handle{ptr: ptr, iid: iid}
}

// Raw returns the interface pointer for passing to other boundary calls.
func (h Handle) Raw() uintptr { return h.ptr }

// IID returns the interface id the handle was negotiated for.
func (h Handle) IID() GUID { return h.iid }

// IsNull reports whether the handle is empty.
func (h Handle) IsNull() bool { return h.ptr == 0 }

// VTable returns the address of the object's vtable.
func (h Handle) VTable() (uintptr, error) {
	if h.IsNull() {
		return 0, opError("vtable", ErrNullHandle)
	}
	return abi.Load[uintptr](h.ptr), nil
}

// Call invokes slot with the receiver prepended and checks the status.
// Arguments must be plain values or pointers to native memory.
func (h Handle) Call(op string, slot Slot, args ...uintptr) error {
	if h.IsNull() {
		return opError(op, ErrNullHandle)
	}
	return check(op, abi.Call(h.ptr, int(slot), args...), ErrBoundaryCallFailed)
}

// QueryInterface asks the object for iid and returns a new Handle holding
// its own reference.
func (h Handle) QueryInterface(iid GUID) (Handle, error) {
	if h.IsNull() {
		return Handle{}, opError("query", ErrNullHandle)
	}
	ptr, hr := abi.CallGUIDOut[uintptr](h.ptr, int(SlotQueryInterface), iid)
	if err := check("query "+iid.String(), hr, ErrInterfaceNotSupported); err != nil {
		return Handle{}, err
	}
	if ptr == 0 {
		return Handle{}, &Error{Op: "query " + iid.String(), Status: ENoInterface, Err: ErrInterfaceNotSupported}
	}
	return FromRaw(ptr, iid), nil
}

// AddRef acquires an additional reference and returns the new count as
// reported by the object. Counts are advisory.
func (h Handle) AddRef() (uint32, error) {
	if h.IsNull() {
		return 0, opError("addref", ErrNullHandle)
	}
	return uint32(abi.Call(h.ptr, int(SlotAddRef))), nil
}

// Release drops the reference held by the handle and returns the remaining
// count as reported by the object. The handle must not be used afterwards.
func (h Handle) Release() (uint32, error) {
	if h.IsNull() {
		return 0, opError("release", ErrNullHandle)
	}
	return uint32(abi.Call(h.ptr, int(SlotRelease))), nil
}
