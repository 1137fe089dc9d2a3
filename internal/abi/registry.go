package abi

import (
	"sync"
	"unsafe"
)

// Vtable is a native array of function pointers shared by every object of
// one kind. Vtables are process-lifetime data and are never freed.
type Vtable struct {
	addr uintptr
	n    int
}

// NewVtable copies entries into native memory and returns the table.
func NewVtable(entries ...uintptr) *Vtable {
	v := &Vtable{n: len(entries)}
	if v.n == 0 {
		return v
	}
	v.addr = Alloc(uintptr(v.n) * ptrSize)
	for i, e := range entries {
		Store(v.addr+uintptr(i)*ptrSize, e)
	}
	return v
}

// Addr is the value stored in an object's first word.
func (v *Vtable) Addr() uintptr {
	if v == nil {
		return 0
	}
	return v.addr
}

// Len returns the number of slots.
func (v *Vtable) Len() int { return v.n }

// Header is the native-visible part of an object implemented in Go.
type Header struct {
	Vtbl uintptr
}

// Registry maps the address of native Headers back to Go values so that
// trampolines receiving a this pointer can find their state. Go memory is
// never stored in native memory, only the Header address.
type Registry[T any] struct {
	mu sync.RWMutex
	m  map[uintptr]T
}

// Add allocates a Header using vt and associates it with v.
func (r *Registry[T]) Add(vt *Vtable, v T) uintptr {
	p := Alloc(unsafe.Sizeof(Header{}))
	Store(p, Header{Vtbl: vt.Addr()})

	r.mu.Lock()
	if r.m == nil {
		r.m = make(map[uintptr]T)
	}
	r.m[p] = v
	r.mu.Unlock()
	return p
}

// Lookup returns the value registered for p.
func (r *Registry[T]) Lookup(p uintptr) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.m[p]
	return v, ok
}

// Remove unregisters p and frees its Header. It reports whether p was
// registered.
func (r *Registry[T]) Remove(p uintptr) bool {
	r.mu.Lock()
	_, ok := r.m[p]
	delete(r.m, p)
	r.mu.Unlock()
	if !ok {
		return false
	}
	return Free(p)
}

// Len returns the number of live registrations.
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.m)
}
