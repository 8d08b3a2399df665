package models

import (
	"fmt"
	"strings"
)

// Level is the severity of a log record, ordered from least to most
// verbose. LevelError carries the highest priority, LevelDebug the lowest.
type Level int8

const (
	LevelNone Level = iota
	LevelError
	LevelWarning
	LevelInfo
	LevelDebug
)

// ANSI escape codes used for colored terminal output.
const (
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"

	// ColorReset clears any active ANSI attributes.
	ColorReset = "\033[0m"
)

// String returns the full level name.
func (l Level) String() string {
	switch l {
	case LevelNone:
		return "NONE"
	case LevelError:
		return "ERROR"
	case LevelWarning:
		return "WARNING"
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	default:
		return "UNKNOWN"
	}
}

// Char returns the single-character level tag used in rendered lines.
func (l Level) Char() string {
	switch l {
	case LevelError:
		return "E"
	case LevelWarning:
		return "W"
	case LevelInfo:
		return "I"
	case LevelDebug:
		return "D"
	default:
		return "_"
	}
}

// Color returns the ANSI prefix for the level: red for errors, yellow for
// warnings, green for info, blue for debug. Levels without a color of their
// own render with the reset code.
func (l Level) Color() string {
	switch l {
	case LevelError:
		return colorRed
	case LevelWarning:
		return colorYellow
	case LevelInfo:
		return colorGreen
	case LevelDebug:
		return colorBlue
	default:
		return ColorReset
	}
}

// ParseLevel maps a level name to its Level. Names are matched
// case-insensitively; "warn" and "warning" are synonyms, as are "off" and
// "none".
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "NONE", "OFF":
		return LevelNone, nil
	case "ERROR":
		return LevelError, nil
	case "WARNING", "WARN":
		return LevelWarning, nil
	case "INFO":
		return LevelInfo, nil
	case "DEBUG":
		return LevelDebug, nil
	}
	return LevelNone, fmt.Errorf("unknown log level %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	lvl, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = lvl
	return nil
}
