//go:build !(darwin || linux || windows)

package abi

import (
	"runtime"
	"unsafe"
)

// Without an mmap binding the pages come from the Go heap and stay pinned
// until released. Guarded by native.mu.
type pinnedPages struct {
	buf    []uint64
	pinner runtime.Pinner
}

var pinned = map[uintptr]*pinnedPages{}

func mapPages(n uintptr) (uintptr, error) {
	pg := &pinnedPages{buf: make([]uint64, n/8)}
	pg.pinner.Pin(&pg.buf[0])
	p := uintptr(unsafe.Pointer(&pg.buf[0]))
	pinned[p] = pg
	return p, nil
}

func unmapPages(p uintptr) {
	if pg, ok := pinned[p]; ok {
		delete(pinned, p)
		pg.pinner.Unpin()
	}
}
