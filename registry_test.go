package nanolog

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFailsForUnimplementedDestinations(t *testing.T) {
	for _, dest := range []Destination{DestUART, DestNetwork, "punchcard"} {
		cfg := DefaultConfig()
		cfg.Output = dest

		l, err := New(cfg)
		require.Error(t, err, "destination %q", dest)
		assert.Nil(t, l)
		assert.ErrorIs(t, err, ErrNoSink)
		assert.Contains(t, err.Error(), string(dest))
	}
}

func TestRegisterSinkMakesDestinationConstructible(t *testing.T) {
	var buf bytes.Buffer
	RegisterSink("ringbus", func(cfg Config) (Sink, error) {
		return NewWriterSink(&buf), nil
	})

	cfg := plainConfig()
	cfg.Output = "ringbus"

	l, err := New(cfg)
	require.NoError(t, err)

	l.Info("BUS", "routed")

	assert.Contains(t, buf.String(), "[1] I : [BUS] routed\n")
}

func TestRegisterSinkPanicsOnDuplicate(t *testing.T) {
	factory := func(Config) (Sink, error) { return NewMemorySink(1), nil }

	RegisterSink("dupdest", factory)
	assert.Panics(t, func() { RegisterSink("dupdest", factory) })
}

func TestRegisterSinkProtectsBuiltins(t *testing.T) {
	assert.Panics(t, func() {
		RegisterSink(DestTerminal, func(Config) (Sink, error) { return NewMemorySink(1), nil })
	})
}

func TestRegisterSinkPanicsOnNilFactory(t *testing.T) {
	assert.Panics(t, func() { RegisterSink("nildest", nil) })
}

func TestNewPropagatesFactoryError(t *testing.T) {
	RegisterSink("brokenfactory", func(Config) (Sink, error) {
		return nil, errors.New("no transport")
	})

	cfg := plainConfig()
	cfg.Output = "brokenfactory"

	_, err := New(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no transport")
}
