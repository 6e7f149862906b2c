// Package hostlog provides the structured logging the host program uses
// to report search progress, found hits, and verification results. The
// kernel packages under internal/ never log — logging belongs to the
// host, same as argument parsing and timeouts.
package hostlog

import "go.uber.org/zap"

// Logger wraps a zap.SugaredLogger with a per-worker child-logger helper,
// the same "named child logger" convention used throughout the retrieved
// example pack's logging layers.
type Logger struct {
	inner *zap.SugaredLogger
}

// New builds a production-profile Logger writing structured JSON to
// stderr.
func New() (*Logger, error) {
	zl, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return &Logger{inner: zl.Sugar()}, nil
}

// NewDevelopment builds a human-readable console Logger, useful for local
// runs and tests.
func NewDevelopment() (*Logger, error) {
	zl, err := zap.NewDevelopment()
	if err != nil {
		return nil, err
	}
	return &Logger{inner: zl.Sugar()}, nil
}

// Worker returns a child logger tagged with the given work-item id.
func (l *Logger) Worker(id uint32) *Logger {
	return &Logger{inner: l.inner.With("worker", id)}
}

func (l *Logger) Infow(msg string, keysAndValues ...interface{}) {
	l.inner.Infow(msg, keysAndValues...)
}

func (l *Logger) Warnw(msg string, keysAndValues ...interface{}) {
	l.inner.Warnw(msg, keysAndValues...)
}

func (l *Logger) Errorw(msg string, keysAndValues ...interface{}) {
	l.inner.Errorw(msg, keysAndValues...)
}

// Sync flushes any buffered log entries; callers should defer it from
// main.
func (l *Logger) Sync() error {
	return l.inner.Sync()
}
