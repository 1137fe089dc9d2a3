package chatframe

import (
	"context"
	"fmt"

	"github.com/ircx/chatframe-go/pkg/com"
)

// DispIDOnRedirect is the only event the control raises. Its single
// argument is the target URL.
const DispIDOnRedirect com.DispID = 1

// NewRedirectSink returns an event sink for DIID_ICChatFrameEvents that
// calls handler with the URL of each redirect. The caller holds one
// reference.
func NewRedirectSink(handler func(url string), cfg Config) (*com.EventSink, error) {
	return com.NewEventSink(DIIDICChatFrameEvents, DispIDOnRedirect, handler, cfg.comConfig())
}

// OnRedirect subscribes handler to redirect events. Once it returns, the
// control owns the sink; closing the returned connection releases it.
func (f *Frame) OnRedirect(ctx context.Context, handler func(url string)) (*com.Connection, error) {
	sink, err := NewRedirectSink(handler, f.cfg)
	if err != nil {
		return nil, err
	}
	// Advise takes its own reference on success; ours goes either way.
	defer sink.Release()

	conn, err := com.Advise(ctx, f.h, sink, f.cfg.comConfig())
	if err != nil {
		return nil, fmt.Errorf("subscribe redirect: %w", err)
	}
	return conn, nil
}
