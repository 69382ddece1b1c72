package textflow

import (
	"log/slog"
	"sync/atomic"
)

var (
	silent    = slog.New(slog.DiscardHandler)
	loggerPtr atomic.Pointer[slog.Logger]
)

func init() {
	loggerPtr.Store(silent)
}

// SetLogger sets the logger shared by all engines. Engines log nothing
// until it is called; nil restores that.
//
// Levels:
//   - [slog.LevelDebug]: one record per wrap pass with its line count
//   - [slog.LevelWarn]: a newline found inside a range being measured
//
// SetLogger may be called while engines are in use.
//
//	textflow.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	loggerPtr.Store(l)
}

// Logger returns the logger set with SetLogger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
