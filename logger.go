package vecdev

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discardHandler drops every record. Enabled reports false so the device
// never formats attributes for a disabled logger.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (h discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h discardHandler) WithGroup(string) slog.Handler           { return h }

var discard = slog.New(discardHandler{})

// pkgLogger is read on every device construction and contract violation,
// possibly from several goroutines at once.
var pkgLogger atomic.Pointer[slog.Logger]

func init() { pkgLogger.Store(discard) }

// SetLogger sets the package-wide logger. Devices created afterwards
// without WithLogger use it, and contract violations are always reported
// through it. vecdev is silent by default; nil restores that.
//
// Levels:
//   - [slog.LevelDebug]: output that is less exact than requested (inverse
//     fill rules, region clips reduced to their bounds)
//   - [slog.LevelWarn]: recoverable failures such as typeface selection
//   - [slog.LevelError]: caller contract violations
//
// Example:
//
//	vecdev.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = discard
	}
	pkgLogger.Store(l)
}

// Logger returns the package-wide logger.
func Logger() *slog.Logger {
	return pkgLogger.Load()
}
