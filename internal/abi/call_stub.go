//go:build !((darwin || linux || windows) && (amd64 || arm64))

package abi

// Supported reports whether vtable calls and trampolines work on this build.
const Supported = false

func Entry(uintptr, int) uintptr { return 0 }

func Call(uintptr, int, ...uintptr) int32 { return ENotImpl }

func CallOut[T any](uintptr, int, ...uintptr) (T, int32) {
	var zero T
	return zero, ENotImpl
}

func CallGUIDOut[T any](uintptr, int, GUID, ...uintptr) (T, int32) {
	var zero T
	return zero, ENotImpl
}

func Invoke(uintptr, int32, []Variant) int32 { return ENotImpl }

func NewCallback(any) uintptr { return 0 }

func Status(hr int32) uintptr { return uintptr(uint32(hr)) }
