//go:build darwin || linux

package abi

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// mappings keeps the slices unix.Munmap needs. Guarded by native.mu.
var mappings = map[uintptr][]byte{}

func mapPages(n uintptr) (uintptr, error) {
	b, err := unix.Mmap(-1, 0, int(n), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return 0, err
	}
	p := uintptr(unsafe.Pointer(&b[0]))
	mappings[p] = b
	return p, nil
}

func unmapPages(p uintptr) {
	if b, ok := mappings[p]; ok {
		delete(mappings, p)
		_ = unix.Munmap(b)
	}
}
