package logutil

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/davecgh/go-spew/spew"
)

const consoleTimeFormat = "15:04:05"

// decoration returns the console display prefix for a level.
func decoration(level Level) string {
	switch {
	case level <= LevelTrace:
		return "🔍 VERBOSE"
	case level <= LevelDebug:
		return "🐛 DEBUG"
	case level <= LevelInfo:
		return "💡 INFO"
	case level <= LevelWarn:
		return "⚠️ WARN"
	case level <= LevelError:
		return "⛔ ERROR"
	default:
		return "💀 FATAL"
	}
}

// Formatter renders levels and messages into single display lines.
// All methods are pure; the formatter writes nothing itself.
type Formatter struct {
	timestampFormat string
}

// NewFormatter creates a formatter using the given file timestamp format,
// falling back to the default when empty.
func NewFormatter(timestampFormat string) *Formatter {
	if timestampFormat == "" {
		timestampFormat = defaultConfig.TimestampFormat
	}
	return &Formatter{timestampFormat: timestampFormat}
}

// Console renders a line for the developer console:
// <decoration> [<file>:<line>] [<HH:mm:ss>] <message>
// The location segment is omitted when the caller could not be resolved.
func (f *Formatter) Console(level Level, msg string, ts time.Time, c caller, hasCaller bool) string {
	buf := make([]byte, 0, 64+len(msg))
	buf = append(buf, decoration(level)...)
	if hasCaller {
		buf = append(buf, ' ', '[')
		buf = append(buf, c.File...)
		buf = append(buf, ':')
		buf = strconv.AppendInt(buf, int64(c.Line), 10)
		buf = append(buf, ']')
	}
	buf = append(buf, ' ', '[')
	buf = ts.AppendFormat(buf, consoleTimeFormat)
	buf = append(buf, ']', ' ')
	buf = append(buf, msg...)
	return string(buf)
}

// File renders a line for the rotating file sink:
// [<tag>] <LEVEL> [<file>:<line>] [<yyyy-MM-dd HH:mm:ss>] <message>
func (f *Formatter) File(tag string, level Level, msg string, ts time.Time, c caller, hasCaller bool) string {
	buf := make([]byte, 0, 64+len(tag)+len(msg))
	buf = append(buf, '[')
	buf = append(buf, tag...)
	buf = append(buf, ']', ' ')
	buf = append(buf, level.String()...)
	if hasCaller {
		buf = append(buf, ' ', '[')
		buf = append(buf, c.File...)
		buf = append(buf, ':')
		buf = strconv.AppendInt(buf, int64(c.Line), 10)
		buf = append(buf, ']')
	}
	buf = append(buf, ' ', '[')
	buf = ts.AppendFormat(buf, f.timestampFormat)
	buf = append(buf, ']', ' ')
	buf = append(buf, msg...)
	return string(buf)
}

// Message renders arbitrary arguments into a space-separated string.
// Nil or empty input renders as the empty string rather than failing.
func (f *Formatter) Message(args ...any) string {
	if len(args) == 0 {
		return ""
	}
	buf := make([]byte, 0, 128)
	for i, arg := range args {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = f.appendValue(buf, arg)
	}
	return string(buf)
}

// appendValue converts any value to its display representation.
// Unknown types delegate to spew for structured, deterministic output.
func (f *Formatter) appendValue(buf []byte, v any) []byte {
	switch val := v.(type) {
	case string:
		return append(buf, val...)
	case int:
		return strconv.AppendInt(buf, int64(val), 10)
	case int64:
		return strconv.AppendInt(buf, val, 10)
	case uint:
		return strconv.AppendUint(buf, uint64(val), 10)
	case uint64:
		return strconv.AppendUint(buf, val, 10)
	case float32:
		return strconv.AppendFloat(buf, float64(val), 'f', -1, 32)
	case float64:
		return strconv.AppendFloat(buf, val, 'f', -1, 64)
	case bool:
		return strconv.AppendBool(buf, val)
	case nil:
		return buf
	case time.Time:
		return val.AppendFormat(buf, f.timestampFormat)
	case error:
		return append(buf, val.Error()...)
	case fmt.Stringer:
		return append(buf, val.String()...)
	default:
		// Structs, maps, pointers, slices: delegate to spew for compact output
		var b bytes.Buffer
		dumper := &spew.ConfigState{
			Indent:                  " ",
			MaxDepth:                10,
			DisablePointerAddresses: true,
			DisableCapacities:       true,
			SortKeys:                true,
		}
		dumper.Fdump(&b, val)
		return append(buf, bytes.TrimSpace(b.Bytes())...)
	}
}
