//go:build (darwin || linux || windows) && (amd64 || arm64)

package com_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ircx/chatframe-go/pkg/com"
	"github.com/ircx/chatframe-go/pkg/com/comtest"
)

func TestAdviseWrongEventInterface(t *testing.T) {
	f := newFixture(t)
	sink, err := com.NewEventSink(otherIID, redirect, func(string) {}, com.Config{})
	require.NoError(t, err)
	defer sink.Release()

	_, err = com.Advise(context.Background(), f.h, sink, com.Config{})
	require.ErrorIs(t, err, com.ErrInterfaceNotSupported)
	status, _ := com.StatusOf(err)
	assert.Equal(t, com.ConnectNoConn, status)
	assert.EqualValues(t, 1, sink.RefCount())
	assert.EqualValues(t, 1, f.obj.RefCount(), "no container or point reference leaked")
}

func TestAdviseWithoutConnectionPoints(t *testing.T) {
	srv := comtest.NewServer()
	srv.Register(comtest.Class{
		CLSID:      testCLSID,
		Interfaces: []comtest.Interface{{IID: testIID, Props: []comtest.Kind{comtest.Uint32}}},
	})
	h, err := com.NewResolver(srv, com.Config{}).Resolve(context.Background(), testCLSID, testIID)
	require.NoError(t, err)
	defer h.Release()

	sink, err := com.NewEventSink(testEvents, redirect, func(string) {}, com.Config{})
	require.NoError(t, err)
	defer sink.Release()

	_, err = com.Advise(context.Background(), h, sink, com.Config{})
	assert.ErrorIs(t, err, com.ErrInterfaceNotSupported)
}

func TestAdviseRejectsDeadSink(t *testing.T) {
	f := newFixture(t)
	sink, err := com.NewEventSink(testEvents, redirect, func(string) {}, com.Config{})
	require.NoError(t, err)
	sink.Release()

	_, err = com.Advise(context.Background(), f.h, sink, com.Config{})
	assert.ErrorIs(t, err, com.ErrInvalidArgument)
	_, err = com.Advise(context.Background(), f.h, nil, com.Config{})
	assert.ErrorIs(t, err, com.ErrInvalidArgument)
}

func TestConnectionCloseReleasesComponent(t *testing.T) {
	f := newFixture(t)
	sink, err := com.NewEventSink(testEvents, redirect, func(string) {}, com.Config{})
	require.NoError(t, err)
	conn, err := com.Advise(context.Background(), f.h, sink, com.Config{})
	require.NoError(t, err)
	sink.Release()

	_, err = f.h.Release()
	require.NoError(t, err)
	assert.False(t, f.obj.Destroyed(), "connection point keeps the component alive")

	require.NoError(t, conn.Close())
	require.NoError(t, conn.Close())
	assert.True(t, f.obj.Destroyed())
	assert.False(t, sink.Alive())
}

func TestConnectionCookiesAreDistinct(t *testing.T) {
	f := newFixture(t)
	a := advise(t, f, func(string) {}, com.Config{})
	b := advise(t, f, func(string) {}, com.Config{})
	assert.NotEqual(t, a.Cookie(), b.Cookie())
	assert.Equal(t, 2, f.obj.Sinks())
}
