package logutil

import (
	"sync/atomic"
	"time"
)

// Frames between a leveled public method's caller and resolveCaller.
// Adjust if the internal call chain changes.
const callerSkip = 3

// ListenerFunc receives every dispatched (level, formatted line) pair.
type ListenerFunc func(level Level, line string)

// Logger is the public entry point for all leveled logging calls.
// It routes each record to exactly one sink: the console in console mode,
// the rotating file sink otherwise.
type Logger struct {
	cfg *Config

	tag          string
	consoleMode  bool
	showCaller   bool
	minFileLevel Level

	enabled  atomic.Bool
	listener atomic.Value // stores ListenerFunc

	formatter *Formatter
	console   *ConsoleSink
	file      *FileSink
}

// New creates a Logger from a validated configuration. In file mode the
// log directory is created and swept before the first write; a directory
// that cannot be created is the only construction failure.
func New(cfg *Config) (*Logger, error) {
	if cfg == nil {
		return nil, fmtErrorf("configuration cannot be nil")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.Clone()

	l := &Logger{
		cfg:          cfg,
		tag:          cfg.Tag,
		consoleMode:  cfg.ConsoleMode,
		showCaller:   cfg.ShowCaller,
		minFileLevel: cfg.MinFileLevel,
		formatter:    NewFormatter(cfg.TimestampFormat),
	}
	l.enabled.Store(cfg.EnableLog)
	l.listener.Store(ListenerFunc(nil))

	if cfg.ConsoleMode {
		l.console = NewConsoleSink(nil)
	} else {
		file, err := NewFileSink(cfg.Directory, cfg.RetentionDays)
		if err != nil {
			return nil, err
		}
		l.file = file
	}

	return l, nil
}

// GetConfig returns a copy of the configuration the logger was built with.
func (l *Logger) GetConfig() *Config {
	return l.cfg.Clone()
}

// Verbose logs a message at verbose level.
func (l *Logger) Verbose(args ...any) {
	l.log(LevelVerbose, callerSkip, args...)
}

// Debug logs a message at debug level.
func (l *Logger) Debug(args ...any) {
	l.log(LevelDebug, callerSkip, args...)
}

// Info logs a message at info level.
func (l *Logger) Info(args ...any) {
	l.log(LevelInfo, callerSkip, args...)
}

// Warn logs a message at warning level.
func (l *Logger) Warn(args ...any) {
	l.log(LevelWarn, callerSkip, args...)
}

// Error logs a message at error level.
func (l *Logger) Error(args ...any) {
	l.log(LevelError, callerSkip, args...)
}

// Fatal logs a message at fatal level. It does not terminate the process.
func (l *Logger) Fatal(args ...any) {
	l.log(LevelFatal, callerSkip, args...)
}

// Short method aliases.

// V logs at verbose level.
func (l *Logger) V(args ...any) { l.log(LevelVerbose, callerSkip, args...) }

// D logs at debug level.
func (l *Logger) D(args ...any) { l.log(LevelDebug, callerSkip, args...) }

// I logs at info level.
func (l *Logger) I(args ...any) { l.log(LevelInfo, callerSkip, args...) }

// W logs at warning level.
func (l *Logger) W(args ...any) { l.log(LevelWarn, callerSkip, args...) }

// E logs at error level.
func (l *Logger) E(args ...any) { l.log(LevelError, callerSkip, args...) }

// SetEnable toggles the global gate. While disabled, every leveled call is
// a complete no-op: no formatting, no caller resolution, no sink I/O and no
// listener invocation.
func (l *Logger) SetEnable(enable bool) {
	l.enabled.Store(enable)
}

// SetLogListener registers a callback invoked synchronously with every
// dispatched record. Pass nil to remove the listener.
func (l *Logger) SetLogListener(fn ListenerFunc) {
	l.listener.Store(fn)
}

// Close disposes the active sink, flushing and closing any open file
// handle. Safe to call multiple times.
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return l.console.Close()
}

// log handles the core routing logic.
func (l *Logger) log(level Level, skip int, args ...any) {
	if !l.enabled.Load() {
		return
	}

	msg := l.formatter.Message(args...)
	now := time.Now()

	var c caller
	var hasCaller bool
	if l.showCaller {
		c, hasCaller = resolveCaller(skip)
	}

	var line string
	if l.consoleMode {
		line = l.formatter.Console(level, msg, now, c, hasCaller)
		l.console.Write(level, line)
	} else {
		if level < l.minFileLevel {
			return
		}
		line = l.formatter.File(l.tag, level, msg, now, c, hasCaller)
		l.file.Write(level, line)
	}

	l.notify(level, line)
}

// notify invokes the registered listener, isolating panics so a faulty
// listener cannot break the fail-open contract.
func (l *Logger) notify(level Level, line string) {
	v := l.listener.Load()
	if v == nil {
		return
	}
	fn, ok := v.(ListenerFunc)
	if !ok || fn == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			internalLog("log listener panicked: %v", r)
		}
	}()
	fn(level, line)
}
