package logutil

import (
	"fmt"
	"strings"
)

// Level classifies log importance. Values are rank-ordered, so routing and
// filtering decisions reduce to integer comparison.
type Level int64

// Severity constants. Spacing leaves room for intermediate levels.
const (
	LevelTrace Level = -8
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
	LevelFatal Level = 12
	LevelOff   Level = 16
)

// LevelVerbose is the rank used by the facade's V method.
const LevelVerbose = LevelTrace

// String returns the display name of the level.
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "VERBOSE"
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	case LevelOff:
		return "OFF"
	default:
		return fmt.Sprintf("LEVEL(%d)", int64(l))
	}
}

// ParseLevel converts a level name to its numeric constant.
func ParseLevel(levelStr string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "verbose", "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "fatal":
		return LevelFatal, nil
	case "off":
		return LevelOff, nil
	default:
		return 0, fmtErrorf("invalid level string: '%s' (use verbose, debug, info, warn, error, fatal, off)", levelStr)
	}
}
