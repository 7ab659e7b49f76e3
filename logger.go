package eezdraw

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/gg"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger configures the logger for eezdraw and its sub-packages.
// By default nothing is logged. Pass nil to restore the silent default.
//
// The logger is also handed to gg, so rasterizer diagnostics end up in the
// same place.
//
// Log levels used:
//   - [slog.LevelDebug]: draw cache misses and evictions
//   - [slog.LevelWarn]: malformed text escapes, skipped widgets
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
		gg.SetLogger(nil)
	} else {
		gg.SetLogger(l)
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. Safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
