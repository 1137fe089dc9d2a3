package abi

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryLifecycle(t *testing.T) {
	var reg Registry[string]
	vt := NewVtable(1, 2, 3)

	p := reg.Add(vt, "first")
	require.NotZero(t, p)
	assert.Equal(t, vt.Addr(), Load[uintptr](p), "header starts with the vtable pointer")

	v, ok := reg.Lookup(p)
	require.True(t, ok)
	assert.Equal(t, "first", v)
	assert.Equal(t, 1, reg.Len())

	assert.True(t, reg.Remove(p))
	assert.False(t, reg.Remove(p))
	_, ok = reg.Lookup(p)
	assert.False(t, ok)
	assert.Equal(t, 0, reg.Len())
}

func TestRegistryConcurrentAccess(t *testing.T) {
	var reg Registry[int]
	vt := NewVtable(0)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p := reg.Add(vt, i)
			v, ok := reg.Lookup(p)
			if !ok || v != i {
				t.Errorf("lookup %d: got %d ok=%v", i, v, ok)
			}
			reg.Remove(p)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 0, reg.Len())
}

func TestVtableAddr(t *testing.T) {
	var nilVt *Vtable
	assert.Zero(t, nilVt.Addr())
	assert.Zero(t, NewVtable().Addr())

	vt := NewVtable(10, 20)
	assert.Equal(t, 2, vt.Len())
	assert.Equal(t, uintptr(20), Load[uintptr](vt.Addr()+ptrSizeForTest))
}
