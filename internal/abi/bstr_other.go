//go:build !windows

package abi

import "sync"

// Off Windows there is no oleaut32, so BSTRs are carved from native memory
// with the same layout: a uint32 byte length, the code units, then a NUL
// unit.

var (
	bstrMu sync.Mutex
	bstrs  = map[uintptr]struct{}{}
)

func sysAllocStringLen(units []uint16) uintptr {
	base := Alloc(uintptr(4 + 2*len(units) + 2))
	Store(base, uint32(len(units)*2))
	p := base + 4
	for i, u := range units {
		Store(p+uintptr(i)*2, u)
	}

	bstrMu.Lock()
	bstrs[p] = struct{}{}
	bstrMu.Unlock()
	return p
}

func sysFreeString(p uintptr) bool {
	bstrMu.Lock()
	_, ok := bstrs[p]
	delete(bstrs, p)
	bstrMu.Unlock()
	if !ok {
		return false
	}
	return Free(p - 4)
}
