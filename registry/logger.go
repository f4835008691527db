package registry

import (
	"sync"

	"go.uber.org/zap"

	"github.com/arqlabs/arc"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the registry package's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger configures the registry package's logger.
// This must be called before any registry operations.
func SetLogger(l *zap.Logger) {
	logger = l
}

// LogObserver writes one debug line per lifecycle event through the
// package logger. Subscribe it to a Registry or attach it directly with
// arc.WithObserver.
type LogObserver struct{}

func (LogObserver) OnHandleEvent(e arc.Event) {
	Logger().Debug("handle event",
		zap.String("type", e.Type.String()),
		zap.Uint64("id", e.ID),
		zap.String("label", e.Label),
		zap.Int64("strong", e.Strong),
		zap.Int64("weak", e.Weak),
	)
}
