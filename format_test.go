package logutil

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var formatTestTime = time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

func TestFormatConsole(t *testing.T) {
	f := NewFormatter("")

	line := f.Console(LevelInfo, "hello world", formatTestTime, caller{File: "main.go", Line: 42}, true)
	assert.Equal(t, "💡 INFO [main.go:42] [10:30:00] hello world", line)
}

func TestFormatConsoleWithoutCaller(t *testing.T) {
	f := NewFormatter("")

	// Caller resolution unavailable: the location segment is omitted, the
	// rest of the line is still produced.
	line := f.Console(LevelError, "boom", formatTestTime, caller{}, false)
	assert.Equal(t, "⛔ ERROR [10:30:00] boom", line)
}

func TestFormatFile(t *testing.T) {
	f := NewFormatter("")

	line := f.File("API", LevelError, "boom", formatTestTime, caller{File: "main.go", Line: 42}, true)
	assert.Equal(t, "[API] ERROR [main.go:42] [2024-01-15 10:30:00] boom", line)

	line = f.File("API", LevelWarn, "slow query", formatTestTime, caller{}, false)
	assert.Equal(t, "[API] WARN [2024-01-15 10:30:00] slow query", line)
}

func TestFormatFileCustomTimestamp(t *testing.T) {
	f := NewFormatter("2006/01/02")

	line := f.File("APP", LevelError, "x", formatTestTime, caller{}, false)
	assert.Equal(t, "[APP] ERROR [2024/01/15] x", line)
}

func TestDecoration(t *testing.T) {
	assert.Equal(t, "🔍 VERBOSE", decoration(LevelTrace))
	assert.Equal(t, "🐛 DEBUG", decoration(LevelDebug))
	assert.Equal(t, "💡 INFO", decoration(LevelInfo))
	assert.Equal(t, "⚠️ WARN", decoration(LevelWarn))
	assert.Equal(t, "⛔ ERROR", decoration(LevelError))
	assert.Equal(t, "💀 FATAL", decoration(LevelFatal))
}

func TestFormatMessage(t *testing.T) {
	f := NewFormatter("")

	assert.Equal(t, "", f.Message())
	assert.Equal(t, "", f.Message(nil))
	assert.Equal(t, "hello", f.Message("hello"))
	assert.Equal(t, "port 8080 ready true", f.Message("port", 8080, "ready", true))
	assert.Equal(t, "ratio 0.5", f.Message("ratio", 0.5))
	assert.Equal(t, "failed: disk full", f.Message("failed:", errors.New("disk full")))
}

func TestFormatMessageStructFallback(t *testing.T) {
	f := NewFormatter("")

	type peer struct {
		Host string
		Port int
	}

	// Unknown types go through spew; fields are visible in the output
	msg := f.Message("peer", peer{Host: "10.0.0.1", Port: 9000})
	assert.Contains(t, msg, "10.0.0.1")
	assert.Contains(t, msg, "9000")
}
