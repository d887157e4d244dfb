package spritekit

import (
	"context"
	"log/slog"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// SetLogger configures the logger for this context. By default a Context
// produces no log output. Pass nil to restore silence.
//
// Log levels used:
//   - [slog.LevelDebug]: draw calls skipped on empty textures, bad atlas indices
//   - [slog.LevelInfo]: texture loads and context teardown
//   - [slog.LevelWarn]: loads that failed
//
// Example:
//
//	ctx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func (c *Context) SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	c.logger = l
}

// Logger returns the context's logger.
func (c *Context) Logger() *slog.Logger {
	return c.logger
}
