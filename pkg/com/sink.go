package com

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/ircx/chatframe-go/internal/abi"
	"github.com/ircx/chatframe-go/pkg/logging"
)

// DispID identifies a member of a late-bound dispatch interface.
type DispID int32

// EventSink is a host-implemented IDispatch object that a component calls
// back into. It answers exactly one dispatch id carrying one string argument
// and forwards the decoded string to its handler; any other id or argument
// shape is accepted and ignored.
//
// The sink is reference counted. NewEventSink returns it holding one
// reference owned by the caller; a component that retains the sink adds its
// own. The handler stays reachable until the last reference is released, so
// it may fire long after the call that registered it has returned.
type EventSink struct {
	ptr     uintptr
	iid     GUID
	dispID  DispID
	handler func(string)
	refs    atomic.Int32
	log     logging.Logger
}

var (
	sinkVtblOnce sync.Once
	sinkVtbl     *abi.Vtable
	sinks        abi.Registry[*EventSink]
)

// sinkVtable returns the vtable shared by every EventSink.
func sinkVtable() *abi.Vtable {
	sinkVtblOnce.Do(func() {
		sinkVtbl = abi.NewVtable(
			abi.NewCallback(sinkQueryInterface),
			abi.NewCallback(sinkAddRef),
			abi.NewCallback(sinkRelease),
			abi.NewCallback(sinkGetTypeInfoCount),
			abi.NewCallback(sinkGetTypeInfo),
			abi.NewCallback(sinkGetIDsOfNames),
			abi.NewCallback(sinkInvoke),
		)
	})
	return sinkVtbl
}

// NewEventSink creates a sink for event interface iid that calls handler
// whenever member id fires with a single string argument. handler may be
// called concurrently from arbitrary threads.
func NewEventSink(iid GUID, id DispID, handler func(string), cfg Config) (*EventSink, error) {
	const op = "sink"
	if !abi.Supported {
		return nil, opError(op, ErrNotBuilt)
	}
	if handler == nil {
		return nil, opError(op, ErrInvalidArgument)
	}

	s := &EventSink{
		iid:     iid,
		dispID:  id,
		handler: handler,
		log:     cfg.logger().With("component", "sink", "iid", iid.String()),
	}
	s.refs.Store(1)
	s.ptr = sinks.Add(sinkVtable(), s)
	return s, nil
}

// Raw returns the IDispatch pointer to hand to a component. It stays valid
// while the sink holds references.
func (s *EventSink) Raw() uintptr { return s.ptr }

// IID returns the event interface the sink implements.
func (s *EventSink) IID() GUID { return s.iid }

// RefCount returns the current reference count.
func (s *EventSink) RefCount() int32 { return s.refs.Load() }

// Alive reports whether the sink still holds references.
func (s *EventSink) Alive() bool { return s.refs.Load() > 0 }

// AddRef acquires a reference on behalf of the caller.
func (s *EventSink) AddRef() uint32 { return s.addRef() }

// Release drops a reference owned by the caller. The sink is destroyed when
// the count reaches zero.
func (s *EventSink) Release() uint32 { return s.release() }

// LiveSinks returns the number of sinks not yet destroyed.
func LiveSinks() int { return sinks.Len() }

func (s *EventSink) addRef() uint32 {
	for {
		n := s.refs.Load()
		if n <= 0 {
			return 0
		}
		if s.refs.CompareAndSwap(n, n+1) {
			return uint32(n + 1)
		}
	}
}

func (s *EventSink) release() uint32 {
	for {
		n := s.refs.Load()
		if n <= 0 {
			return 0
		}
		if s.refs.CompareAndSwap(n, n-1) {
			if n == 1 {
				sinks.Remove(s.ptr)
				s.log.Debug(context.Background(), "sink destroyed")
			}
			return uint32(n - 1)
		}
	}
}

func (s *EventSink) dispatch(id DispID, args []abi.Variant) {
	ctx := context.Background()
	if id != s.dispID {
		s.log.Debug(ctx, "event ignored", "dispid", int32(id))
		return
	}
	if len(args) != 1 || args[0].VT != abi.VTBSTR {
		s.log.Debug(ctx, "event dropped", "dispid", int32(id), "args", len(args))
		return
	}
	s.deliver(ctx, borrowString(args[0].Val))
}

func (s *EventSink) deliver(ctx context.Context, v string) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error(ctx, "event handler panicked", "dispid", int32(s.dispID), "panic", r)
		}
	}()
	s.handler(v)
}

func sinkQueryInterface(this, riid, ppv uintptr) uintptr {
	if ppv == 0 || riid == 0 {
		return abi.Status(abi.EPointer)
	}
	s, ok := sinks.Lookup(this)
	if !ok {
		abi.Store(ppv, uintptr(0))
		return abi.Status(abi.EPointer)
	}
	switch abi.Load[GUID](riid) {
	case IIDUnknown, IIDDispatch, s.iid:
		s.addRef()
		abi.Store(ppv, this)
		return abi.Status(abi.SOK)
	}
	abi.Store(ppv, uintptr(0))
	return abi.Status(abi.ENoInterface)
}

func sinkAddRef(this uintptr) uintptr {
	s, ok := sinks.Lookup(this)
	if !ok {
		return 0
	}
	return uintptr(s.addRef())
}

func sinkRelease(this uintptr) uintptr {
	s, ok := sinks.Lookup(this)
	if !ok {
		return 0
	}
	return uintptr(s.release())
}

func sinkGetTypeInfoCount(this, count uintptr) uintptr {
	abi.Store(count, uint32(0))
	return abi.Status(abi.SOK)
}

func sinkGetTypeInfo(this, index, lcid, info uintptr) uintptr {
	abi.Store(info, uintptr(0))
	return abi.Status(abi.SOK)
}

func sinkGetIDsOfNames(this, riid, names, count, lcid, ids uintptr) uintptr {
	if ids != 0 {
		for i := uintptr(0); i < uintptr(uint32(count)); i++ {
			abi.Store(ids+i*4, abi.DispIDUnknown)
		}
	}
	return abi.Status(abi.SOK)
}

func sinkInvoke(this, dispID, riid, lcid, flags, params, result, excepInfo, argErr uintptr) uintptr {
	s, ok := sinks.Lookup(this)
	if !ok {
		return abi.Status(abi.EPointer)
	}
	s.dispatch(DispID(int32(uint32(dispID))), abi.Args(params))
	return abi.Status(abi.SOK)
}
