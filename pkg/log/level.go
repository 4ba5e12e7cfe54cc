package log

import (
	"fmt"
	"strings"
)

// Level selects the entry point used and the label written in front of a line.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the label written to output: DEBUG, INFO, WARN or ERROR.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Levels returns every level in ascending order.
func Levels() []Level {
	return []Level{LevelDebug, LevelInfo, LevelWarn, LevelError}
}

// ParseLevel accepts a label case-insensitively, or the single-letter
// aliases d, i, w and e.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG", "D":
		return LevelDebug, nil
	case "INFO", "I":
		return LevelInfo, nil
	case "WARN", "W":
		return LevelWarn, nil
	case "ERROR", "E":
		return LevelError, nil
	default:
		return LevelDebug, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}
