package compat

import (
	"fmt"
	"strings"

	"github.com/xd-jeff/logutil"
)

// FastHTTPAdapter wraps logutil.Logger to implement fasthttp's Logger interface
type FastHTTPAdapter struct {
	logger        *logutil.Logger
	defaultLevel  logutil.Level
	levelDetector func(string) logutil.Level // Detects log level from message content
}

// NewFastHTTPAdapter creates a new fasthttp-compatible logger adapter
func NewFastHTTPAdapter(logger *logutil.Logger, opts ...FastHTTPOption) *FastHTTPAdapter {
	adapter := &FastHTTPAdapter{
		logger:        logger,
		defaultLevel:  logutil.LevelInfo,
		levelDetector: DetectLogLevel, // Default level detection
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// FastHTTPOption allows customizing adapter behavior
type FastHTTPOption func(*FastHTTPAdapter)

// WithDefaultLevel sets the default log level for Printf calls
func WithDefaultLevel(level logutil.Level) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.defaultLevel = level
	}
}

// WithLevelDetector sets a custom function to detect log level from message content
func WithLevelDetector(detector func(string) logutil.Level) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.levelDetector = detector
	}
}

// Printf implements fasthttp's Logger interface
func (a *FastHTTPAdapter) Printf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)

	level := a.defaultLevel
	if a.levelDetector != nil {
		level = a.levelDetector(msg)
	}

	switch level {
	case logutil.LevelDebug:
		a.logger.Debug(msg)
	case logutil.LevelWarn:
		a.logger.Warn(msg)
	case logutil.LevelError:
		a.logger.Error(msg)
	default:
		a.logger.Info(msg)
	}
}

// DetectLogLevel attempts to detect log level from message content
func DetectLogLevel(msg string) logutil.Level {
	msgLower := strings.ToLower(msg)

	switch {
	case strings.Contains(msgLower, "error"),
		strings.Contains(msgLower, "fail"),
		strings.Contains(msgLower, "panic"):
		return logutil.LevelError
	case strings.Contains(msgLower, "warn"),
		strings.Contains(msgLower, "timeout"),
		strings.Contains(msgLower, "retry"):
		return logutil.LevelWarn
	case strings.Contains(msgLower, "debug"),
		strings.Contains(msgLower, "trace"):
		return logutil.LevelDebug
	default:
		return logutil.LevelInfo
	}
}
