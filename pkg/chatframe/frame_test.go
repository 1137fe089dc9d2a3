//go:build (darwin || linux || windows) && (amd64 || arm64)

package chatframe_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ircx/chatframe-go/pkg/chatframe"
	"github.com/ircx/chatframe-go/pkg/com"
	"github.com/ircx/chatframe-go/pkg/com/comtest"
	"github.com/ircx/chatframe-go/pkg/logging"
)

func newFrame(t *testing.T, cfg chatframe.Config) (*chatframe.Frame, *comtest.Object) {
	t.Helper()
	srv := comtest.NewServer()
	chatframe.RegisterStubs(srv)
	r := chatframe.NewResolver(srv, cfg.Logger)

	f, err := chatframe.New(context.Background(), r, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f, srv.Last()
}

func TestFrameBackColor(t *testing.T) {
	f, obj := newFrame(t, chatframe.Config{})

	require.NoError(t, f.SetBackColor(0x00FF00))
	c, err := f.BackColor()
	require.NoError(t, err)
	assert.Equal(t, com.Color(0x00FF00), c)
	assert.Equal(t, uint32(0x00FF00), obj.Value(chatframe.IIDIChatFrame, 0))
}

func TestFrameTextProperties(t *testing.T) {
	f, obj := newFrame(t, chatframe.Config{})
	before := comtest.OutstandingStrings()

	require.NoError(t, f.SetRoomName("日本語"))
	require.NoError(t, f.SetNickName("guest"))
	require.NoError(t, f.SetUpsellURL("https://chat.example/upgrade"))

	room, err := f.RoomName()
	require.NoError(t, err)
	assert.Equal(t, "日本語", room)
	assert.Equal(t, "guest", obj.Text(chatframe.IIDIChatFrame, chatframe.FieldIndex("NickName")))
	upsell, err := f.UpsellURL()
	require.NoError(t, err)
	assert.Equal(t, "https://chat.example/upgrade", upsell)

	topic, err := f.Topic()
	require.NoError(t, err)
	assert.Empty(t, topic)
	assert.Equal(t, before, comtest.OutstandingStrings())
}

func TestFrameModeAndFeature(t *testing.T) {
	f, _ := newFrame(t, chatframe.Config{})

	require.NoError(t, f.SetChatMode(-1))
	require.NoError(t, f.SetFeature(0x5))
	mode, err := f.ChatMode()
	require.NoError(t, err)
	assert.Equal(t, com.Mode(-1), mode)
	feat, err := f.Feature()
	require.NoError(t, err)
	assert.True(t, feat.Has(0x4))
}

func TestFrameFailurePropagates(t *testing.T) {
	f, obj := newFrame(t, chatframe.Config{})
	getter := com.Slot(3 + 2*chatframe.FieldIndex("Server"))
	obj.Fail(chatframe.IIDIChatFrame, getter, com.EFail)

	_, err := f.Server()
	require.ErrorIs(t, err, com.ErrBoundaryCallFailed)
	assert.Contains(t, err.Error(), "get Server")
}

func TestFrameApplyAndSnapshot(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	f, _ := newFrame(t, chatframe.Config{Logger: logging.NewZap(zap.New(core))})
	ctx := context.Background()

	err := f.Apply(ctx, map[string]any{
		"BackColor":      "0x00FF00",
		"ChatMode":       2,
		"RoomName":       "The Lobby",
		"PassportTicket": "t=secret",
	})
	require.NoError(t, err)

	values, err := f.Snapshot()
	require.NoError(t, err)
	require.Len(t, values, len(f.Fields()))
	byName := map[string]any{}
	for _, v := range values {
		byName[v.Field.Name] = v.Value
	}
	assert.Equal(t, com.Color(0x00FF00), byName["BackColor"])
	assert.Equal(t, com.Mode(2), byName["ChatMode"])
	assert.Equal(t, "The Lobby", byName["RoomName"])
	assert.Equal(t, "t=secret", byName["PassportTicket"])

	for _, e := range logs.FilterMessage("property set").All() {
		if e.ContextMap()["name"] == "PassportTicket" {
			assert.Equal(t, logging.Placeholder(), e.ContextMap()["value"])
		}
	}
	assert.Equal(t, 4, logs.FilterMessage("property set").Len())
}

func TestFrameApplyCollectsErrors(t *testing.T) {
	f, obj := newFrame(t, chatframe.Config{})

	err := f.Apply(context.Background(), map[string]any{
		"Bogus":    1,
		"Topic":    nil,
		"Category": 7,
		"Locale":   "en-us",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, chatframe.ErrUnknownField)
	assert.ErrorIs(t, err, com.ErrInvalidArgument)
	assert.Equal(t, 1, obj.PropertyCalls(), "only Locale reaches the component")

	locale, err := f.Get("Locale")
	require.NoError(t, err)
	assert.Equal(t, "en-us", locale)
}

func TestFrameRedirect(t *testing.T) {
	f, obj := newFrame(t, chatframe.Config{})
	live := com.LiveSinks()

	var (
		mu   sync.Mutex
		urls []string
	)
	conn, err := f.OnRedirect(context.Background(), func(url string) {
		mu.Lock()
		urls = append(urls, url)
		mu.Unlock()
	})
	require.NoError(t, err)
	assert.Equal(t, 1, obj.Sinks())

	require.NoError(t, obj.Fire(chatframe.DispIDOnRedirect, comtest.String("https://chat.example/full")))
	require.NoError(t, obj.Fire(2, comtest.String("https://chat.example/ignored")))
	mu.Lock()
	assert.Equal(t, []string{"https://chat.example/full"}, urls)
	mu.Unlock()

	require.NoError(t, conn.Close())
	assert.Equal(t, live, com.LiveSinks())
}

func TestSettings(t *testing.T) {
	srv := comtest.NewServer()
	chatframe.RegisterStubs(srv)
	r := chatframe.NewResolver(srv, nil)

	s, err := chatframe.NewSettings(context.Background(), r, chatframe.Config{})
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.SetForeColor(com.RGB(255, 255, 255)))
	require.NoError(t, s.SetRedirectURL("https://chat.example/"))
	fg, err := s.ForeColor()
	require.NoError(t, err)
	assert.Equal(t, com.Color(0xFFFFFF), fg)
	u, err := s.RedirectURL()
	require.NoError(t, err)
	assert.Equal(t, "https://chat.example/", u)
	assert.Len(t, s.Fields(), 4)

	_, err = s.Get("RoomName")
	assert.ErrorIs(t, err, chatframe.ErrUnknownField)

	require.NoError(t, s.Close())
	assert.True(t, srv.Last().Destroyed())
}

func TestNewUnregistered(t *testing.T) {
	r := chatframe.NewResolver(comtest.NewServer(), nil)
	_, err := chatframe.New(context.Background(), r, chatframe.Config{})
	assert.ErrorIs(t, err, com.ErrComponentCreationFailed)
}
