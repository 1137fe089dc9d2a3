//go:build !windows

package abi

// There is no system class registry off Windows; only in-process class
// tables can create components.

func CoInitialize() int32 { return SOK }

func CoUninitialize() {}

func CoCreateInstance(GUID, GUID) (uintptr, int32) {
	return 0, ClassNotRegistered
}
