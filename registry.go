package nanolog

import (
	"errors"
	"fmt"
	"sync"
)

// SinkFactory builds the sink for a destination from the logger config.
type SinkFactory func(cfg Config) (Sink, error)

// ErrNoSink reports a destination with no registered factory. The uart and
// network destinations fail with it until a caller registers a factory.
var ErrNoSink = errors.New("no sink registered for destination")

var (
	sinksMu       sync.RWMutex
	sinkFactories = map[Destination]SinkFactory{
		DestTerminal: func(Config) (Sink, error) { return terminalSink{}, nil },
		DestFile: func(cfg Config) (Sink, error) {
			return NewFileSink(cfg.FileDir, cfg.FileName, cfg.FileFormat), nil
		},
		DestMemory: func(cfg Config) (Sink, error) {
			return NewMemorySink(cfg.MemoryCapacity), nil
		},
	}
)

// RegisterSink registers a factory for a destination, making it
// constructible through New. Registering a destination twice panics;
// call from init or before loggers are built.
func RegisterSink(dest Destination, factory SinkFactory) {
	sinksMu.Lock()
	defer sinksMu.Unlock()

	if factory == nil {
		panic(fmt.Sprintf("nanolog: nil sink factory for destination %s", dest))
	}
	if _, exists := sinkFactories[dest]; exists {
		panic(fmt.Sprintf("nanolog: destination %s already registered", dest))
	}

	sinkFactories[dest] = factory
}

func newSink(cfg Config) (Sink, error) {
	sinksMu.RLock()
	factory, exists := sinkFactories[cfg.Output]
	sinksMu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrNoSink, cfg.Output)
	}
	return factory(cfg)
}
