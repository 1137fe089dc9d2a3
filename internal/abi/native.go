package abi

import (
	"fmt"
	"sync"
	"unsafe"
)

const (
	chunkSize = 64 << 10
	minBlock  = 16
)

// nativeHeap hands out zeroed blocks from pages the garbage collector does
// not manage. Small requests are rounded up to a power of two and recycled
// per size class. Requests above half a chunk get a mapping of their own.
type nativeHeap struct {
	mu   sync.Mutex
	free map[uintptr][]uintptr
	live map[uintptr]uintptr
	next uintptr
	end  uintptr
}

var native nativeHeap

// Alloc returns size zeroed bytes outside the Go heap, aligned to 16 bytes.
// The block stays valid until Free. Alloc panics if the operating system
// refuses the mapping.
func Alloc(size uintptr) uintptr {
	return native.alloc(size)
}

// Free returns a block obtained from Alloc and reports whether p was live.
func Free(p uintptr) bool {
	return native.release(p)
}

// Allocated returns the number of live blocks.
func Allocated() int {
	native.mu.Lock()
	defer native.mu.Unlock()
	return len(native.live)
}

func sizeClass(size uintptr) uintptr {
	c := uintptr(minBlock)
	for c < size {
		c <<= 1
	}
	return c
}

func (h *nativeHeap) alloc(size uintptr) uintptr {
	class := sizeClass(size)

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.live == nil {
		h.live = make(map[uintptr]uintptr)
		h.free = make(map[uintptr][]uintptr)
	}

	var p uintptr
	switch list := h.free[class]; {
	case class > chunkSize/2:
		p = mustMap(class)
	case len(list) > 0:
		p = list[len(list)-1]
		h.free[class] = list[:len(list)-1]
		clear(unsafe.Slice((*byte)(unsafe.Pointer(p)), class))
	default:
		if h.end-h.next < class {
			h.next = mustMap(chunkSize)
			h.end = h.next + chunkSize
		}
		p = h.next
		h.next += class
	}
	h.live[p] = class
	return p
}

func (h *nativeHeap) release(p uintptr) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	class, ok := h.live[p]
	if !ok {
		return false
	}
	delete(h.live, p)
	if class > chunkSize/2 {
		unmapPages(p)
		return true
	}
	h.free[class] = append(h.free[class], p)
	return true
}

func mustMap(n uintptr) uintptr {
	p, err := mapPages(n)
	if err != nil {
		panic(fmt.Sprintf("chatframe/internal/abi: map %d bytes: %v", n, err))
	}
	return p
}
