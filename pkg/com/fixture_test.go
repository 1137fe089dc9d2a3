//go:build (darwin || linux || windows) && (amd64 || arm64)

package com_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ircx/chatframe-go/pkg/com"
	"github.com/ircx/chatframe-go/pkg/com/comtest"
)

var (
	testCLSID  = com.MustParseGUID("6d3a1c10-2f4b-4e0c-9d51-0a7b8c9d0e01")
	testIID    = com.MustParseGUID("6d3a1c10-2f4b-4e0c-9d51-0a7b8c9d0e02")
	testEvents = com.MustParseGUID("6d3a1c10-2f4b-4e0c-9d51-0a7b8c9d0e03")
	otherIID   = com.MustParseGUID("6d3a1c10-2f4b-4e0c-9d51-0a7b8c9d0eff")
)

// Property indexes of the test interface.
const (
	propColor = iota
	propMode
	propFlag
	propText
)

var (
	colorProp = com.ScalarAt[com.Color](com.IUnknownLayout, "Color", propColor)
	modeProp  = com.ScalarAt[com.Mode](com.IUnknownLayout, "Mode", propMode)
	flagProp  = com.ScalarAt[com.VariantBool](com.IUnknownLayout, "Flag", propFlag)
	textProp  = com.IUnknownLayout.TextAt("Text", propText)
)

type fixture struct {
	srv *comtest.Server
	r   *com.Resolver
	h   com.Handle
	obj *comtest.Object
}

func newServer() *comtest.Server {
	srv := comtest.NewServer()
	srv.Register(comtest.Class{
		CLSID: testCLSID,
		Interfaces: []comtest.Interface{{
			IID:   testIID,
			Props: []comtest.Kind{comtest.Uint32, comtest.Int32, comtest.Bool, comtest.Text},
		}},
		Events: testEvents,
	})
	return srv
}

// newFixture resolves the test interface on a fresh stub server and
// releases it when the test ends.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	srv := newServer()
	r := com.NewResolver(srv, com.Config{})
	h, err := r.Resolve(context.Background(), testCLSID, testIID)
	require.NoError(t, err)
	obj := srv.Last()
	require.NotNil(t, obj)
	t.Cleanup(func() {
		if !obj.Destroyed() {
			_, _ = h.Release()
		}
	})
	return &fixture{srv: srv, r: r, h: h, obj: obj}
}
