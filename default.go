package logutil

import (
	"sync/atomic"
)

// Package-level instance for applications that want a single shared logger.
var defaultLogger atomic.Pointer[Logger]

// Init builds the package default logger from cfg, replacing and closing
// any previous instance.
func Init(cfg *Config) error {
	l, err := New(cfg)
	if err != nil {
		return err
	}
	if old := defaultLogger.Swap(l); old != nil {
		old.Close()
	}
	return nil
}

// InitWithDefaults initializes the default logger from built-in defaults
// plus optional "key=value" overrides.
func InitWithDefaults(overrides ...string) error {
	cfg, err := NewConfigFromStrings(overrides...)
	if err != nil {
		return err
	}
	return Init(cfg)
}

// Shutdown disposes the default logger's sink.
func Shutdown() error {
	if l := defaultLogger.Swap(nil); l != nil {
		return l.Close()
	}
	return nil
}

// V logs a message at verbose level using the default logger.
func V(args ...any) {
	if l := defaultLogger.Load(); l != nil {
		l.log(LevelVerbose, callerSkip, args...)
	}
}

// D logs a message at debug level using the default logger.
func D(args ...any) {
	if l := defaultLogger.Load(); l != nil {
		l.log(LevelDebug, callerSkip, args...)
	}
}

// I logs a message at info level using the default logger.
func I(args ...any) {
	if l := defaultLogger.Load(); l != nil {
		l.log(LevelInfo, callerSkip, args...)
	}
}

// W logs a message at warning level using the default logger.
func W(args ...any) {
	if l := defaultLogger.Load(); l != nil {
		l.log(LevelWarn, callerSkip, args...)
	}
}

// E logs a message at error level using the default logger.
func E(args ...any) {
	if l := defaultLogger.Load(); l != nil {
		l.log(LevelError, callerSkip, args...)
	}
}

// SetEnable toggles the default logger's global gate.
func SetEnable(enable bool) {
	if l := defaultLogger.Load(); l != nil {
		l.SetEnable(enable)
	}
}

// SetLogListener registers a listener on the default logger.
func SetLogListener(fn ListenerFunc) {
	if l := defaultLogger.Load(); l != nil {
		l.SetLogListener(fn)
	}
}
