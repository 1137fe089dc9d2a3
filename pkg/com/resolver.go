package com

import (
	"context"

	"github.com/ircx/chatframe-go/internal/abi"
	"github.com/ircx/chatframe-go/pkg/logging"
)

// Resolver turns class ids into negotiated interface handles:
// Create instantiates a class, Query negotiates the interface callers use.
type Resolver struct {
	classes ClassFactory
	cfg     Config
	log     logging.Logger
}

// Instance is a created but not yet negotiated component. It holds the
// creation interface reference until Release.
type Instance struct {
	unk   Handle
	clsid GUID
}

// CLSID returns the class the instance was created from.
func (i *Instance) CLSID() GUID { return i.clsid }

// Handle returns the creation interface handle.
func (i *Instance) Handle() Handle { return i.unk }

// Release drops the creation reference. Handles negotiated from the
// instance keep the component alive on their own. Release is idempotent.
func (i *Instance) Release() error {
	if i == nil || i.unk.IsNull() {
		return nil
	}
	_, err := i.unk.Release()
	i.unk = Handle{}
	return err
}

// NewResolver returns a Resolver creating components through classes.
func NewResolver(classes ClassFactory, cfg Config) *Resolver {
	return &Resolver{classes: classes, cfg: cfg, log: cfg.logger().With("component", "resolver")}
}

// Create instantiates clsid in process. Unregistered classes and refused
// constructions fail with ErrComponentCreationFailed.
func (r *Resolver) Create(ctx context.Context, clsid GUID) (*Instance, error) {
	const op = "create"
	if !abi.Supported {
		return nil, opError(op, ErrNotBuilt)
	}
	if r.classes == nil {
		return nil, opError(op, ErrComponentCreationFailed)
	}
	if err := ctx.Err(); err != nil {
		return nil, opError(op, err)
	}

	iid := r.cfg.creationIID()
	ptr, hr := r.classes.CreateInstance(clsid, iid)
	if hr.Failed() || ptr == 0 {
		if hr.Succeeded() {
			hr = EPointer
		}
		r.log.Debug(ctx, "create failed", "clsid", clsid.String(), "status", hr.String())
		return nil, &Error{Op: op + " " + clsid.String(), Status: hr, Err: ErrComponentCreationFailed}
	}

	r.log.Debug(ctx, "created", "clsid", clsid.String(), "iid", iid.String())
	return &Instance{unk: FromRaw(ptr, iid), clsid: clsid}, nil
}

// Query negotiates iid on inst. The returned Handle holds its own reference;
// inst is left untouched.
func (r *Resolver) Query(ctx context.Context, inst *Instance, iid GUID) (Handle, error) {
	const op = "query"
	if inst == nil || inst.unk.IsNull() {
		return Handle{}, opError(op, ErrNullHandle)
	}
	if err := ctx.Err(); err != nil {
		return Handle{}, opError(op, err)
	}

	h, err := inst.unk.QueryInterface(iid)
	if err != nil {
		r.log.Debug(ctx, "query refused", "clsid", inst.clsid.String(), "iid", iid.String(), "error", err)
		return Handle{}, err
	}
	r.log.Debug(ctx, "negotiated", "clsid", inst.clsid.String(), "iid", iid.String())
	return h, nil
}

// Resolve runs Create then Query and drops the creation reference, leaving
// the caller with a single handle to release.
func (r *Resolver) Resolve(ctx context.Context, clsid, iid GUID) (Handle, error) {
	inst, err := r.Create(ctx, clsid)
	if err != nil {
		return Handle{}, err
	}
	defer func() {
		if err := inst.Release(); err != nil {
			r.log.Debug(ctx, "creation release failed", "clsid", clsid.String(), "error", err)
			return
		}
		r.log.Debug(ctx, "creation reference dropped", "clsid", clsid.String())
	}()
	return r.Query(ctx, inst, iid)
}
