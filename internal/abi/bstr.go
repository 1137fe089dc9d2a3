package abi

import (
	"sync/atomic"
	"unicode/utf16"
	"unsafe"
)

var outstanding atomic.Int64

// AllocString allocates a BSTR holding s. The caller owns the result and
// must release it with FreeString.
func AllocString(s string) uintptr {
	p := sysAllocStringLen(utf16.Encode([]rune(s)))
	if p != 0 {
		outstanding.Add(1)
	}
	return p
}

// FreeString releases a BSTR. Freeing zero is a no-op.
func FreeString(p uintptr) {
	if p == 0 {
		return
	}
	if sysFreeString(p) {
		outstanding.Add(-1)
	}
}

// ReadString decodes a BSTR without taking ownership. Zero decodes to "".
func ReadString(p uintptr) string {
	if p == 0 {
		return ""
	}
	n := Load[uint32](p-4) / 2
	if n == 0 {
		return ""
	}
	units := unsafe.Slice((*uint16)(unsafe.Pointer(p)), n)
	return string(utf16.Decode(units))
}

// TakeString decodes a BSTR received from a getter and frees it.
func TakeString(p uintptr) string {
	s := ReadString(p)
	FreeString(p)
	return s
}

// Outstanding returns the number of BSTRs allocated through this package
// and not yet freed.
func Outstanding() int64 { return outstanding.Load() }
