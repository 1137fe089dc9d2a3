// Command chatctl configures the MSN Chat control from a YAML profile,
// prints its properties and optionally listens for redirects.
//
//	chatctl -config profile.yaml -watch 1m
//	chatctl -stub -config profile.yaml
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/ircx/chatframe-go/pkg/chatframe"
	"github.com/ircx/chatframe-go/pkg/com"
	"github.com/ircx/chatframe-go/pkg/com/comtest"
	"github.com/ircx/chatframe-go/pkg/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "chatctl: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("chatctl", flag.ContinueOnError)
	configPath := fs.String("config", "", "YAML profile to apply")
	stub := fs.Bool("stub", false, "use in-process stand-ins instead of the registered control")
	debug := fs.Bool("debug", false, "log at debug level")
	watch := fs.Duration("watch", 0, "listen for redirects for this long")
	reveal := fs.Bool("reveal", false, "print credential properties")
	if err := fs.Parse(args); err != nil {
		return err
	}

	prof := &Profile{}
	if *configPath != "" {
		var err error
		if prof, err = LoadProfile(*configPath); err != nil {
			return fmt.Errorf("load profile: %w", err)
		}
	}
	if *stub {
		prof.Stub = true
	}
	if *debug {
		prof.Log.Level = "debug"
	}
	if *watch > 0 {
		prof.Watch = *watch
	}

	zl, err := newZap(prof.Log)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = zl.Sync() }()
	log := logging.NewZap(zl)

	if err := com.Initialize(); err != nil {
		return err
	}
	defer com.Uninitialize()

	var (
		classes com.ClassFactory = com.SystemClasses
		srv     *comtest.Server
	)
	if prof.Stub {
		srv = comtest.NewServer()
		chatframe.RegisterStubs(srv)
		classes = srv
	}
	r := chatframe.NewResolver(classes, log)
	cfg := chatframe.Config{Logger: log}

	if len(prof.Settings) > 0 {
		s, err := chatframe.NewSettings(ctx, r, cfg)
		if err != nil {
			return unavailable(out, err)
		}
		defer func() { _ = s.Close() }()
		if err := s.Apply(ctx, prof.Settings); err != nil {
			return fmt.Errorf("apply settings: %w", err)
		}
	}

	f, err := chatframe.New(ctx, r, cfg)
	if err != nil {
		return unavailable(out, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			log.Warn(ctx, "close frame", "error", cerr)
		}
	}()
	if err := f.Apply(ctx, prof.Frame); err != nil {
		return fmt.Errorf("apply frame: %w", err)
	}

	values, err := f.Snapshot()
	if err != nil {
		return fmt.Errorf("read properties: %w", err)
	}
	fmt.Fprintln(out, renderProperties("IChatFrame", values, *reveal))

	if prof.Watch <= 0 {
		return nil
	}
	return listen(ctx, f, srv, prof.Watch, out, log)
}

// listen prints redirects until d elapses or ctx is cancelled. With stub
// classes it raises one redirect itself so the path can be exercised
// without the real control.
func listen(ctx context.Context, f *chatframe.Frame, srv *comtest.Server, d time.Duration, out io.Writer, log logging.Logger) error {
	done := make(chan struct{}, 1)
	conn, err := f.OnRedirect(ctx, func(url string) {
		log.Info(ctx, "redirect", "url", url)
		fmt.Fprintln(out, redirectStyle.Render("redirect → "+url))
		select {
		case done <- struct{}{}:
		default:
		}
	})
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	if srv != nil {
		target, err := f.URLBack()
		if err != nil || target == "" {
			target = "about:blank"
		}
		if err := srv.Last().Fire(chatframe.DispIDOnRedirect, comtest.String(target)); err != nil {
			return fmt.Errorf("stub redirect: %w", err)
		}
	}

	timer := time.NewTimer(d)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
			return nil
		case <-done:
			if srv != nil {
				return nil
			}
		}
	}
}

// unavailable reports a missing native layer the way a usage error would,
// and passes every other error through.
func unavailable(out io.Writer, err error) error {
	if errors.Is(err, com.ErrNotBuilt) {
		fmt.Fprintf(out, "control unavailable: %v\n", err)
		return nil
	}
	return err
}

func newZap(c LogConfig) (*zap.Logger, error) {
	zc := zap.NewDevelopmentConfig()
	if c.Format == "json" {
		zc = zap.NewProductionConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	if c.Level != "" {
		lvl, err := zap.ParseAtomicLevel(c.Level)
		if err != nil {
			return nil, err
		}
		zc.Level = lvl
	}
	return zc.Build()
}
