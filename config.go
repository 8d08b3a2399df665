package nanolog

import (
	"fmt"
	"os"
	"strings"

	"github.com/segmentio/encoding/json"

	"github.com/max-chem-eng/nanolog/models"
)

// Byte bounds on the short string fields of records and Results.
const (
	MaxTagSize  = 16
	MaxDescSize = 128
)

// Known file sink extensions.
const (
	FileFormatText     = "txt"
	FileFormatMarkdown = "md"
)

const (
	defaultMaxMessageSize = 120
	defaultMemoryCapacity = 256
	defaultFileDir        = "LogOutput"
	defaultFileName       = "log"
	defaultFileFormat     = FileFormatText
)

// Destination names where rendered lines go.
type Destination string

const (
	DestTerminal Destination = "terminal"
	DestUART     Destination = "uart"
	DestFile     Destination = "file"
	DestMemory   Destination = "memory"
	DestNetwork  Destination = "network"
)

// ParseDestination maps a destination name to its Destination,
// case-insensitively.
func ParseDestination(s string) (Destination, error) {
	switch Destination(strings.ToLower(strings.TrimSpace(s))) {
	case DestTerminal:
		return DestTerminal, nil
	case DestUART:
		return DestUART, nil
	case DestFile:
		return DestFile, nil
	case DestMemory:
		return DestMemory, nil
	case DestNetwork:
		return DestNetwork, nil
	}
	return "", fmt.Errorf("unknown log destination %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (d Destination) MarshalText() ([]byte, error) {
	return []byte(d), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Destination) UnmarshalText(text []byte) error {
	dest, err := ParseDestination(string(text))
	if err != nil {
		return err
	}
	*d = dest
	return nil
}

// Config is the full logger configuration, fixed at construction time.
// Gating combines with AND: a known level passes only when Enabled is set,
// its per-level switch is set, and it does not exceed MinLevel.
type Config struct {
	// Enabled is the master switch. False mutes every level.
	Enabled bool `json:"enabled"`

	// MinLevel is the most verbose level still emitted: LevelError keeps
	// errors only, LevelDebug keeps everything, LevelNone mutes all four
	// known levels. The zero value is LevelNone; start from DefaultConfig
	// unless muting is intended.
	MinLevel models.Level `json:"min_level"`

	EnableError   bool `json:"enable_error"`
	EnableWarning bool `json:"enable_warning"`
	EnableInfo    bool `json:"enable_info"`
	EnableDebug   bool `json:"enable_debug"`

	// Output selects the sink; see RegisterSink for adding destinations.
	Output Destination `json:"output"`

	EnableTimestamp bool `json:"enable_timestamp"`
	UseColor        bool `json:"use_color"`

	// MaxMessageSize bounds the rendered body in bytes; longer bodies are
	// silently truncated.
	MaxMessageSize int `json:"max_message_size"`

	// File sink target: FileDir/FileName.FileFormat.
	FileDir    string `json:"file_dir"`
	FileName   string `json:"file_name"`
	FileFormat string `json:"file_format"`

	// MemoryCapacity is the memory sink's ring size in lines.
	MemoryCapacity int `json:"memory_capacity"`
}

// DefaultConfig returns the out-of-box configuration: everything enabled,
// timestamped, uncolored, writing to the terminal.
func DefaultConfig() Config {
	return Config{
		Enabled:         true,
		MinLevel:        models.LevelDebug,
		EnableError:     true,
		EnableWarning:   true,
		EnableInfo:      true,
		EnableDebug:     true,
		Output:          DestTerminal,
		EnableTimestamp: true,
		UseColor:        false,
		MaxMessageSize:  defaultMaxMessageSize,
		FileDir:         defaultFileDir,
		FileName:        defaultFileName,
		FileFormat:      defaultFileFormat,
		MemoryCapacity:  defaultMemoryCapacity,
	}
}

// normalize fills zero-valued sizes and names so a partially built Config
// degrades to the defaults. Boolean switches and MinLevel are taken as
// given.
func (c *Config) normalize() {
	if c.MaxMessageSize <= 0 {
		c.MaxMessageSize = defaultMaxMessageSize
	}
	if c.MemoryCapacity <= 0 {
		c.MemoryCapacity = defaultMemoryCapacity
	}
	if c.Output == "" {
		c.Output = DestTerminal
	}
	if c.FileDir == "" {
		c.FileDir = defaultFileDir
	}
	if c.FileName == "" {
		c.FileName = defaultFileName
	}
	if c.FileFormat == "" {
		c.FileFormat = defaultFileFormat
	}
}

// levelEnabled decides whether a call at the given level produces output.
// Levels outside the known four have no switch of their own and pass on
// Enabled alone.
func (c Config) levelEnabled(l models.Level) bool {
	if !c.Enabled {
		return false
	}
	switch l {
	case models.LevelError:
		if !c.EnableError {
			return false
		}
	case models.LevelWarning:
		if !c.EnableWarning {
			return false
		}
	case models.LevelInfo:
		if !c.EnableInfo {
			return false
		}
	case models.LevelDebug:
		if !c.EnableDebug {
			return false
		}
	default:
		return true
	}
	return l <= c.MinLevel
}

// ConfigFromJSON overlays a JSON document onto DefaultConfig. Absent keys
// keep their defaults; unknown level or destination names are errors.
func ConfigFromJSON(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse log config: %w", err)
	}
	return cfg, nil
}

// LoadConfig reads a JSON configuration file. Loading happens once at
// startup; the resulting Config is immutable for the logger's lifetime.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read log config: %w", err)
	}
	return ConfigFromJSON(data)
}
