//go:build (darwin || linux || windows) && (amd64 || arm64)

package abi

import (
	"sync"
	"sync/atomic"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tally struct {
	total   atomic.Int64
	lastID  atomic.Int32
	lastArg []Variant
	mu      sync.Mutex
}

var (
	tallyOnce sync.Once
	tallyVt   *Vtable
	tallies   Registry[*tally]
)

func tallyVtable() *Vtable {
	tallyOnce.Do(func() {
		unused := NewCallback(func(this uintptr) uintptr { return Status(ENotImpl) })
		tallyVt = NewVtable(
			unused,
			unused,
			unused,
			NewCallback(func(this, delta uintptr) uintptr {
				p, ok := tallies.Lookup(this)
				if !ok {
					return Status(EPointer)
				}
				p.total.Add(int64(int32(uint32(delta))))
				return Status(SOK)
			}),
			NewCallback(func(this, out uintptr) uintptr {
				p, ok := tallies.Lookup(this)
				if !ok {
					return Status(EPointer)
				}
				if !Store(out, uint32(p.total.Load())) {
					return Status(EPointer)
				}
				return Status(SOK)
			}),
			NewCallback(func(this, riid, out uintptr) uintptr {
				iid := Load[GUID](riid)
				Store(out, uintptr(iid.Data1))
				return Status(SFalse)
			}),
			NewCallback(func(this, dispID, riid, lcid, flags, params, result, excep, argErr uintptr) uintptr {
				p, ok := tallies.Lookup(this)
				if !ok {
					return Status(EPointer)
				}
				p.mu.Lock()
				p.lastArg = Args(params)
				p.mu.Unlock()
				p.lastID.Store(int32(uint32(dispID)))
				return Status(SOK)
			}),
		)
	})
	return tallyVt
}

func newTally(t *testing.T) (uintptr, *tally) {
	t.Helper()
	p := &tally{}
	ptr := tallies.Add(tallyVtable(), p)
	t.Cleanup(func() { tallies.Remove(ptr) })
	return ptr, p
}

func TestCallScalarSlots(t *testing.T) {
	ptr, p := newTally(t)

	require.Equal(t, SOK, Call(ptr, 3, 40))
	require.Equal(t, SOK, Call(ptr, 3, 2))
	assert.Equal(t, int64(42), p.total.Load())

	v, hr := CallOut[uint32](ptr, 4)
	require.Equal(t, SOK, hr)
	assert.Equal(t, uint32(42), v)
}

func TestCallNegativeArgument(t *testing.T) {
	ptr, p := newTally(t)
	neg := int32(-5)
	require.Equal(t, SOK, Call(ptr, 3, uintptr(neg)))
	assert.Equal(t, int64(-5), p.total.Load())
}

func TestCallNullObject(t *testing.T) {
	assert.Equal(t, EPointer, Call(0, 3))
}

func TestCallGUIDOut(t *testing.T) {
	ptr, _ := newTally(t)
	got, hr := CallGUIDOut[uintptr](ptr, 5, GUID{Data1: 0xBEEF})
	assert.Equal(t, SFalse, hr)
	assert.Equal(t, uintptr(0xBEEF), got)
}

func TestCallFailureStatusIsNegative(t *testing.T) {
	ptr, _ := newTally(t)
	assert.Equal(t, ENotImpl, Call(ptr, 0))
}

func TestInvokeReversesArguments(t *testing.T) {
	ptr, p := newTally(t)
	args := []Variant{{VT: VTI4, Val: 1}, {VT: VTI4, Val: 2}}

	require.Equal(t, SOK, Invoke(ptr, 7, args))
	assert.Equal(t, int32(7), p.lastID.Load())

	p.mu.Lock()
	defer p.mu.Unlock()
	require.Len(t, p.lastArg, 2)
	assert.Equal(t, uintptr(2), p.lastArg[0].Val)
	assert.Equal(t, uintptr(1), p.lastArg[1].Val)
}

func TestInvokeWithoutArguments(t *testing.T) {
	ptr, p := newTally(t)
	require.Equal(t, SOK, Invoke(ptr, -3, nil))
	assert.Equal(t, int32(-3), p.lastID.Load())
	p.mu.Lock()
	defer p.mu.Unlock()
	assert.Empty(t, p.lastArg)
}

func TestVariantLayout(t *testing.T) {
	assert.Equal(t, 8+2*ptrSizeForTest, unsafe.Sizeof(Variant{}))
}
