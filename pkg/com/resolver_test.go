//go:build (darwin || linux || windows) && (amd64 || arm64)

package com_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ircx/chatframe-go/pkg/com"
	"github.com/ircx/chatframe-go/pkg/logging"
)

func TestResolveLifetime(t *testing.T) {
	srv := newServer()
	r := com.NewResolver(srv, com.Config{})

	h, err := r.Resolve(context.Background(), testCLSID, testIID)
	require.NoError(t, err)
	assert.Equal(t, testIID, h.IID())
	obj := srv.Last()
	assert.EqualValues(t, 1, obj.RefCount(), "creation reference dropped")

	extra, err := h.AddRef()
	require.NoError(t, err)
	assert.EqualValues(t, 2, extra)
	n, err := h.Release()
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	n, err = h.Release()
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.True(t, obj.Destroyed())
}

func TestCreateUnknownClass(t *testing.T) {
	r := com.NewResolver(newServer(), com.Config{})

	_, err := r.Create(context.Background(), otherIID)
	require.ErrorIs(t, err, com.ErrComponentCreationFailed)
	status, ok := com.StatusOf(err)
	require.True(t, ok)
	assert.Equal(t, com.ClassNotRegistered, status)
}

func TestCreateNullWithSuccess(t *testing.T) {
	classes := com.ClassFactoryFunc(func(clsid, iid com.GUID) (uintptr, com.HRESULT) {
		return 0, com.SOK
	})
	_, err := com.NewResolver(classes, com.Config{}).Create(context.Background(), testCLSID)
	require.ErrorIs(t, err, com.ErrComponentCreationFailed)
	status, _ := com.StatusOf(err)
	assert.Equal(t, com.EPointer, status)
}

func TestCreationIID(t *testing.T) {
	var requested []com.GUID
	srv := newServer()
	classes := com.ClassFactoryFunc(func(clsid, iid com.GUID) (uintptr, com.HRESULT) {
		requested = append(requested, iid)
		return srv.CreateInstance(clsid, iid)
	})
	ctx := context.Background()

	inst, err := com.NewResolver(classes, com.Config{}).Create(ctx, testCLSID)
	require.NoError(t, err)
	require.NoError(t, inst.Release())
	require.NoError(t, inst.Release(), "release is idempotent")

	inst, err = com.NewResolver(classes, com.Config{CreationIID: com.IIDOleObject}).Create(ctx, testCLSID)
	require.NoError(t, err)
	assert.Equal(t, com.IIDOleObject, inst.Handle().IID())
	assert.Equal(t, testCLSID, inst.CLSID())
	require.NoError(t, inst.Release())

	assert.Equal(t, []com.GUID{com.IIDUnknown, com.IIDOleObject}, requested)
}

func TestQueryUnsupportedInterface(t *testing.T) {
	srv := newServer()
	r := com.NewResolver(srv, com.Config{})

	_, err := r.Resolve(context.Background(), testCLSID, otherIID)
	require.ErrorIs(t, err, com.ErrInterfaceNotSupported)
	status, _ := com.StatusOf(err)
	assert.Equal(t, com.ENoInterface, status)
	assert.True(t, srv.Last().Destroyed(), "refused query leaks no reference")
}

func TestQueryKeepsInstance(t *testing.T) {
	srv := newServer()
	r := com.NewResolver(srv, com.Config{})
	ctx := context.Background()

	inst, err := r.Create(ctx, testCLSID)
	require.NoError(t, err)
	h, err := r.Query(ctx, inst, testIID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, srv.Last().RefCount())

	require.NoError(t, inst.Release())
	_, err = h.Release()
	require.NoError(t, err)
	assert.True(t, srv.Last().Destroyed())

	_, err = r.Query(ctx, inst, testIID)
	assert.ErrorIs(t, err, com.ErrNullHandle)
}

func TestResolveCancelled(t *testing.T) {
	srv := newServer()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := com.NewResolver(srv, com.Config{}).Resolve(ctx, testCLSID, testIID)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, srv.Objects())
}

func TestResolverLogs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := com.NewResolver(newServer(), com.Config{Logger: logging.NewZap(zap.New(core))})

	h, err := r.Resolve(context.Background(), testCLSID, testIID)
	require.NoError(t, err)
	defer h.Release()

	created := logs.FilterMessage("created").All()
	require.Len(t, created, 1)
	assert.Equal(t, "resolver", created[0].ContextMap()["component"])
	assert.Equal(t, testCLSID.String(), created[0].ContextMap()["clsid"])
	assert.Equal(t, 1, logs.FilterMessage("negotiated").Len())

	dropped := logs.FilterMessage("creation reference dropped").All()
	require.Len(t, dropped, 1)
	assert.Equal(t, testCLSID.String(), dropped[0].ContextMap()["clsid"])
	assert.Zero(t, logs.FilterMessage("creation release failed").Len())
}
