package com

import (
	"context"
	"sync"

	"github.com/ircx/chatframe-go/internal/abi"
	"github.com/ircx/chatframe-go/pkg/logging"
)

// Connection-point vtable entries.
const (
	slotFindConnectionPoint Slot = 4 // IConnectionPointContainer
	slotAdvise              Slot = 5 // IConnectionPoint
	slotUnadvise            Slot = 6 // IConnectionPoint
)

// Connection is an active registration of a sink with a component's
// connection point.
type Connection struct {
	mu     sync.Mutex
	cp     Handle
	cookie uint32
	log    logging.Logger
}

// Cookie returns the registration cookie issued by the component.
func (c *Connection) Cookie() uint32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cookie
}

// Advise registers sink with the connection point h exposes for the sink's
// event interface. The component takes its own reference on the sink, so the
// caller may release theirs once Advise returns.
func Advise(ctx context.Context, h Handle, sink *EventSink, cfg Config) (*Connection, error) {
	const op = "advise"
	if sink == nil || !sink.Alive() {
		return nil, opError(op, ErrInvalidArgument)
	}
	if err := ctx.Err(); err != nil {
		return nil, opError(op, err)
	}

	cpc, err := h.QueryInterface(IIDConnectionPointContainer)
	if err != nil {
		return nil, err
	}
	defer func() { _ = release(cpc) }()

	ptr, hr := abi.CallGUIDOut[uintptr](cpc.Raw(), int(slotFindConnectionPoint), sink.IID())
	if err := check(op+" find "+sink.IID().String(), hr, ErrInterfaceNotSupported); err != nil {
		return nil, err
	}
	cp := FromRaw(ptr, IIDConnectionPoint)

	cookie, hr := abi.CallOut[uint32](cp.Raw(), int(slotAdvise), sink.Raw())
	if err := check(op, hr, ErrBoundaryCallFailed); err != nil {
		_ = release(cp)
		return nil, err
	}

	log := cfg.logger().With("component", "connection", "iid", sink.IID().String())
	log.Debug(ctx, "advised", "cookie", cookie)
	return &Connection{cp: cp, cookie: cookie, log: log}, nil
}

// Close unregisters the sink and releases the connection point. Closing
// twice is a no-op.
func (c *Connection) Close() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cp.IsNull() {
		return nil
	}

	err := c.cp.Call("unadvise", slotUnadvise, uintptr(c.cookie))
	_ = release(c.cp)
	c.log.Debug(context.Background(), "unadvised", "cookie", c.cookie)
	c.cp = Handle{}
	c.cookie = 0
	return err
}

func release(h Handle) error {
	_, err := h.Release()
	return err
}
