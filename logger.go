package fontsdf

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled always returns false so callers skip message formatting
// entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger, accessed atomically so SetLogger
// can race safely with Logger calls from concurrent callers.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger used by fontsdf. By default fontsdf
// produces no log output. Pass nil to restore the silent default.
//
// Log levels used by fontsdf:
//   - [slog.LevelDebug]: per-attempt bisection trials (candidate size,
//     pack outcome)
//   - [slog.LevelInfo]: final atlas dimensions once a build completes
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by fontsdf.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
