package debug

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the controller's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger installs a logger for controller diagnostics. Call it before the
// first Step; the default is a no-op.
func SetLogger(l *zap.Logger) {
	if l != nil {
		logger = l
	}
}
