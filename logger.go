package nanolog

import (
	"fmt"
	"sync"
	"time"

	"github.com/max-chem-eng/nanolog/models"
	"github.com/max-chem-eng/nanolog/pool"
)

// Logger turns leveled, tagged printf calls into sequence-numbered lines
// on a single sink. Emission is synchronous and best-effort: it never
// returns an error and never panics on sink failure.
type Logger interface {
	Emit(level models.Level, tag, format string, args ...interface{})
	Error(tag, format string, args ...interface{})
	Warning(tag, format string, args ...interface{})
	Info(tag, format string, args ...interface{})
	Debug(tag, format string, args ...interface{})
}

// Option adjusts a logger under construction.
type Option func(*loggerImpl)

// WithSink injects a sink directly, bypassing the destination registry.
// This is also how callers keep a handle on a MemorySink they want to
// query later.
func WithSink(s Sink) Option {
	return func(l *loggerImpl) {
		l.sink = s
	}
}

type loggerImpl struct {
	cfg  Config
	sink Sink

	mu  sync.Mutex
	seq uint64
}

// New builds a Logger from cfg. It fails only when the configured output
// has no registered sink factory, or the factory itself fails.
func New(cfg Config, opts ...Option) (Logger, error) {
	cfg.normalize()

	l := &loggerImpl{cfg: cfg}
	for _, opt := range opts {
		opt(l)
	}

	if l.sink == nil {
		sink, err := newSink(cfg)
		if err != nil {
			return nil, err
		}
		l.sink = sink
	}
	return l, nil
}

// MustNew is New, panicking on error. For configurations known good at
// build time.
func MustNew(cfg Config, opts ...Option) Logger {
	l, err := New(cfg, opts...)
	if err != nil {
		panic(err)
	}
	return l
}

// Emit renders format+args at the given level and hands the finished line
// to the sink. Calls muted by the configuration cost no allocation and do
// not advance the sequence counter.
func (l *loggerImpl) Emit(level models.Level, tag, format string, args ...interface{}) {
	if !l.cfg.levelEnabled(level) {
		return
	}

	body := fmt.Sprintf(format, args...)
	if len(body) > l.cfg.MaxMessageSize {
		body = body[:l.cfg.MaxMessageSize]
	}
	if len(tag) > MaxTagSize {
		tag = tag[:MaxTagSize]
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.seq++

	r := pool.AcquireRecord()
	r.Seq = l.seq
	r.Level = level
	r.Tag = tag
	r.Body = body
	if l.cfg.EnableTimestamp {
		r.Timestamp = time.Now()
	}

	line := renderLine(l.cfg, r, l.seq == 1)
	pool.ReleaseRecord(r)

	// Best-effort: a failed write is not the caller's problem.
	_ = l.sink.Write(line)
}

func (l *loggerImpl) Error(tag, format string, args ...interface{}) {
	l.Emit(models.LevelError, tag, format, args...)
}

func (l *loggerImpl) Warning(tag, format string, args ...interface{}) {
	l.Emit(models.LevelWarning, tag, format, args...)
}

func (l *loggerImpl) Info(tag, format string, args ...interface{}) {
	l.Emit(models.LevelInfo, tag, format, args...)
}

func (l *loggerImpl) Debug(tag, format string, args ...interface{}) {
	l.Emit(models.LevelDebug, tag, format, args...)
}

// NewNop returns a Logger that discards every call.
func NewNop() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Emit(models.Level, string, string, ...interface{}) {}

func (nopLogger) Error(string, string, ...interface{}) {}

func (nopLogger) Warning(string, string, ...interface{}) {}

func (nopLogger) Info(string, string, ...interface{}) {}

func (nopLogger) Debug(string, string, ...interface{}) {}
