// Package termchart renders mathematical functions as line charts on a
// character terminal.
package termchart

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
)

// ErrConfig is wrapped by every construction error caused by externally
// supplied parameters (frame size, domain, step count).
var ErrConfig = errors.New("invalid chart configuration")

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger configures the logger shared by termchart and its sub-packages.
// Nothing is logged by default; passing nil restores that.
//
// Rendering writes to stdout, so callers should point the handler at
// stderr or a file.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
