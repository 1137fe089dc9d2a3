package abi

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocAlignedAndZeroed(t *testing.T) {
	for _, size := range []uintptr{0, 1, 16, 17, 100, 4096} {
		p := Alloc(size)
		require.NotZero(t, p)
		assert.Zero(t, p%minBlock, "size %d", size)
		assert.Zero(t, Load[uint64](p), "size %d", size)
		assert.True(t, Free(p))
	}
}

func TestAllocRecyclesZeroed(t *testing.T) {
	p := Alloc(32)
	Store(p, uint64(0xDEADBEEF))
	Store(p+24, uint64(0xFEED))
	require.True(t, Free(p))

	q := Alloc(32)
	defer Free(q)
	assert.Equal(t, p, q, "freed blocks are reused per size class")
	assert.Zero(t, Load[uint64](q))
	assert.Zero(t, Load[uint64](q+24))
}

func TestAllocLargeBlock(t *testing.T) {
	before := Allocated()
	p := Alloc(chunkSize)
	require.NotZero(t, p)
	Store(p+chunkSize-8, uint64(7))
	assert.Equal(t, uint64(7), Load[uint64](p+chunkSize-8))
	assert.Equal(t, before+1, Allocated())

	assert.True(t, Free(p))
	assert.Equal(t, before, Allocated())
}

func TestFreeUnknownBlock(t *testing.T) {
	assert.False(t, Free(0))
	p := Alloc(8)
	assert.True(t, Free(p))
	assert.False(t, Free(p))
}

func TestAllocConcurrent(t *testing.T) {
	before := Allocated()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 64; j++ {
				p := Alloc(uintptr(8 * (1 + j%5)))
				Store(p, uint64(i))
				if got := Load[uint64](p); got != uint64(i) {
					t.Errorf("block %#x: got %d want %d", p, got, i)
				}
				Free(p)
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, before, Allocated())
}

func TestSizeClass(t *testing.T) {
	assert.Equal(t, uintptr(16), sizeClass(0))
	assert.Equal(t, uintptr(16), sizeClass(16))
	assert.Equal(t, uintptr(32), sizeClass(17))
	assert.Equal(t, uintptr(128), sizeClass(100))
}
