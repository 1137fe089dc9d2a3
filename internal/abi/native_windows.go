//go:build windows

package abi

import "golang.org/x/sys/windows"

func mapPages(n uintptr) (uintptr, error) {
	return windows.VirtualAlloc(0, n, windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
}

func unmapPages(p uintptr) {
	_ = windows.VirtualFree(p, 0, windows.MEM_RELEASE)
}
