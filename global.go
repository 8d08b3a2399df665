package nanolog

import (
	"sync"

	"github.com/max-chem-eng/nanolog/models"
)

// The package default logger. It owns the process-lifetime sequence
// counter the way a single static logger would; Init or SetDefault
// replace it wholesale, counter included.
var (
	defaultMu     sync.RWMutex
	defaultLogger = MustNew(DefaultConfig())
)

// Init rebuilds the package default logger from cfg.
func Init(cfg Config, opts ...Option) error {
	l, err := New(cfg, opts...)
	if err != nil {
		return err
	}
	SetDefault(l)
	return nil
}

// SetDefault replaces the package default logger. A nil argument installs
// a no-op logger.
func SetDefault(l Logger) {
	if l == nil {
		l = NewNop()
	}
	defaultMu.Lock()
	defaultLogger = l
	defaultMu.Unlock()
}

// Default returns the package default logger.
func Default() Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// Call-site sugar on the default logger.

func Emit(level models.Level, tag, format string, args ...interface{}) {
	Default().Emit(level, tag, format, args...)
}

func Error(tag, format string, args ...interface{}) {
	Default().Error(tag, format, args...)
}

func Warning(tag, format string, args ...interface{}) {
	Default().Warning(tag, format, args...)
}

func Info(tag, format string, args ...interface{}) {
	Default().Info(tag, format, args...)
}

func Debug(tag, format string, args ...interface{}) {
	Default().Debug(tag, format, args...)
}
