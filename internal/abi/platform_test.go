package abi

import (
	"runtime"
	"unsafe"
)

var isWindows = runtime.GOOS == "windows"

const ptrSizeForTest = unsafe.Sizeof(uintptr(0))
