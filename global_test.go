package nanolog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/max-chem-eng/nanolog/models"
)

func TestPackageLevelLogging(t *testing.T) {
	prev := Default()
	defer SetDefault(prev)

	mem := NewMemorySink(8)
	SetDefault(MustNew(plainConfig(), WithSink(mem)))

	Error("PKG", "e %d", 1)
	Warning("PKG", "w")
	Info("PKG", "i")
	Debug("PKG", "d")
	Emit(models.LevelInfo, "PKG", "direct")

	require.Equal(t, 5, mem.Len())
	lines := mem.Lines()
	assert.Contains(t, lines[0], "[1] E : [PKG] e 1\n")
	assert.Equal(t, "[2] W : [PKG] w\n", lines[1])
	assert.Equal(t, "[3] I : [PKG] i\n", lines[2])
	assert.Equal(t, "[4] D : [PKG] d\n", lines[3])
	assert.Equal(t, "[5] I : [PKG] direct\n", lines[4])
}

func TestInitReplacesDefault(t *testing.T) {
	prev := Default()
	defer SetDefault(prev)

	mem := NewMemorySink(4)
	require.NoError(t, Init(plainConfig(), WithSink(mem)))

	Info("INIT", "through new default")

	assert.Equal(t, 1, mem.Len())
}

func TestInitKeepsDefaultOnError(t *testing.T) {
	prev := Default()
	defer SetDefault(prev)

	cfg := DefaultConfig()
	cfg.Output = DestUART

	err := Init(cfg)
	require.Error(t, err)
	assert.Same(t, prev, Default())
}

func TestSetDefaultNilInstallsNop(t *testing.T) {
	prev := Default()
	defer SetDefault(prev)

	SetDefault(nil)
	Info("NIL", "goes nowhere")

	_, isNop := Default().(nopLogger)
	assert.True(t, isNop)
}
