package logging

import (
	"context"
	"log/slog"

	"go.uber.org/zap"
)

const redactedPlaceholder = "[redacted]"

// Logger defines the subset of slog functionality used by the binding.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
	With(args ...any) Logger
}

// New returns a Logger backed by the provided slog.Logger. Passing nil binds to
// slog.Default().
func New(logger *slog.Logger) Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return &slogLogger{logger: logger}
}

type slogLogger struct {
	logger *slog.Logger
}

func (l *slogLogger) Debug(ctx context.Context, msg string, args ...any) {
	l.logger.DebugContext(ctx, msg, args...)
}

func (l *slogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.logger.InfoContext(ctx, msg, args...)
}

func (l *slogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.logger.WarnContext(ctx, msg, args...)
}

func (l *slogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.logger.ErrorContext(ctx, msg, args...)
}

func (l *slogLogger) With(args ...any) Logger {
	return &slogLogger{logger: l.logger.With(args...)}
}

// NewZap returns a Logger backed by a zap.Logger. Arguments follow the slog
// convention of alternating keys and values; slog.Attr values are accepted
// too. Passing nil yields a no-op logger.
func NewZap(logger *zap.Logger) Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &zapLogger{logger: logger.Sugar()}
}

// Nop returns a Logger that discards everything.
func Nop() Logger { return NewZap(nil) }

type zapLogger struct {
	logger *zap.SugaredLogger
}

func (l *zapLogger) Debug(_ context.Context, msg string, args ...any) {
	l.logger.Debugw(msg, zapArgs(args)...)
}

func (l *zapLogger) Info(_ context.Context, msg string, args ...any) {
	l.logger.Infow(msg, zapArgs(args)...)
}

func (l *zapLogger) Warn(_ context.Context, msg string, args ...any) {
	l.logger.Warnw(msg, zapArgs(args)...)
}

func (l *zapLogger) Error(_ context.Context, msg string, args ...any) {
	l.logger.Errorw(msg, zapArgs(args)...)
}

func (l *zapLogger) With(args ...any) Logger {
	return &zapLogger{logger: l.logger.With(zapArgs(args)...)}
}

// zapArgs flattens slog.Attr values into key/value pairs so both styles
// reach zap's sugared API.
func zapArgs(args []any) []any {
	out := make([]any, 0, len(args))
	for _, a := range args {
		if attr, ok := a.(slog.Attr); ok {
			out = append(out, attr.Key, attr.Value.Any())
			continue
		}
		out = append(out, a)
	}
	return out
}

// Redacted marks attributes that contain sensitive information. Callers must
// avoid logging raw secrets; instead, include this attribute as a reminder that
// the value was intentionally removed.
func Redacted(key string) slog.Attr {
	return slog.String(key, redactedPlaceholder)
}

// Placeholder returns the canonical string that represents a redacted value.
func Placeholder() string {
	return redactedPlaceholder
}
