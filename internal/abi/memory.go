package abi

import "unsafe"

const ptrSize = unsafe.Sizeof(uintptr(0))

// Load reads a T from native memory at p. p must be non-zero.
func Load[T any](p uintptr) T {
	return *(*T)(unsafe.Pointer(p))
}

// Store writes v to native memory at p and reports whether p was non-zero.
func Store[T any](p uintptr, v T) bool {
	if p == 0 {
		return false
	}
	*(*T)(unsafe.Pointer(p)) = v
	return true
}

// Args copies the positional arguments out of a DISPPARAMS pointer. The
// result is in DISPPARAMS (reverse) order. A null pointer yields nil.
func Args(params uintptr) []Variant {
	if params == 0 {
		return nil
	}
	dp := Load[DispParams](params)
	if dp.NArgs == 0 || dp.Args == 0 {
		return nil
	}
	src := unsafe.Slice((*Variant)(unsafe.Pointer(dp.Args)), dp.NArgs)
	out := make([]Variant, len(src))
	copy(out, src)
	return out
}
