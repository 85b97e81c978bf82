package tinyreg

import (
	"log/slog"
	"sync/atomic"
)

var defaultLog atomic.Pointer[slog.Logger]

// SetDefaultLogger replaces the logger used by registries that were not
// given their own via WithLogger. Passing nil restores slog.Default.
func SetDefaultLogger(log *slog.Logger) {
	defaultLog.Store(log)
}

func defaultLogger() *slog.Logger {
	if log := defaultLog.Load(); log != nil {
		return log
	}

	return slog.Default()
}
