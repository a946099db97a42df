// Package logging provides a small leveled logging interface for the
// ambient layer (the bundle package and
// cmd/dcbordump). The core codec (item, header, format) never imports this
// package: it is a pure, allocation-free library and logging there would
// undermine that.
package logging

import (
	"context"
	"log/slog"
)

// Fields is a minimal structured field map for a single log line.
type Fields map[string]any

// Logger is a tiny leveled logger. Callers that don't want logging can pass
// NopLogger; callers wired to slog get it via NewSlogLogger.
type Logger interface {
	Debug(msg string, f Fields)
	Info(msg string, f Fields)
	Warn(msg string, f Fields)
	Error(msg string, f Fields)
}

// NopLogger discards everything. It is the default when no Logger is
// configured.
type NopLogger struct{}

func (NopLogger) Debug(string, Fields) {}
func (NopLogger) Info(string, Fields)  {}
func (NopLogger) Warn(string, Fields)  {}
func (NopLogger) Error(string, Fields) {}

// SlogLogger adapts a *slog.Logger to the Logger interface, so callers can
// point dcbor's ambient logging at any slog.Handler (text, JSON, or a test
// handler) without this package or the core ever importing slog directly
// beyond this one adapter.
type SlogLogger struct {
	L *slog.Logger
}

var _ Logger = SlogLogger{}

// NewSlogLogger wraps l. A nil l wraps slog.Default().
func NewSlogLogger(l *slog.Logger) SlogLogger {
	if l == nil {
		l = slog.Default()
	}
	return SlogLogger{L: l}
}

func (s SlogLogger) Debug(msg string, f Fields) {
	s.L.LogAttrs(context.Background(), slog.LevelDebug, msg, attrs(f)...)
}

func (s SlogLogger) Info(msg string, f Fields) {
	s.L.LogAttrs(context.Background(), slog.LevelInfo, msg, attrs(f)...)
}

func (s SlogLogger) Warn(msg string, f Fields) {
	s.L.LogAttrs(context.Background(), slog.LevelWarn, msg, attrs(f)...)
}

func (s SlogLogger) Error(msg string, f Fields) {
	s.L.LogAttrs(context.Background(), slog.LevelError, msg, attrs(f)...)
}

func attrs(f Fields) []slog.Attr {
	if len(f) == 0 {
		return nil
	}
	out := make([]slog.Attr, 0, len(f))
	for k, v := range f {
		out = append(out, slog.Any(k, v))
	}
	return out
}
