package logutil

// Builder provides a fluent API for building logger configurations.
// It wraps a Config instance and provides chainable methods for setting values.
type Builder struct {
	cfg *Config
	err error // Accumulate errors for deferred handling
}

// NewBuilder creates a new configuration builder with default values.
func NewBuilder() *Builder {
	return &Builder{
		cfg: DefaultConfig(),
	}
}

// Build creates a new Logger instance with the specified configuration.
func (b *Builder) Build() (*Logger, error) {
	if b.err != nil {
		return nil, b.err
	}
	return New(b.cfg)
}

// Tag sets the tag prepended to file-formatted lines.
func (b *Builder) Tag(tag string) *Builder {
	b.cfg.Tag = tag
	return b
}

// ConsoleMode selects console routing (true) or file routing (false).
func (b *Builder) ConsoleMode(console bool) *Builder {
	b.cfg.ConsoleMode = console
	return b
}

// Directory sets the log directory used in file mode.
func (b *Builder) Directory(dir string) *Builder {
	b.cfg.Directory = dir
	return b
}

// EnableLog sets the initial enabled state of the facade.
func (b *Builder) EnableLog(enable bool) *Builder {
	b.cfg.EnableLog = enable
	return b
}

// ShowCaller enables [file:line] enrichment of formatted lines.
func (b *Builder) ShowCaller(show bool) *Builder {
	b.cfg.ShowCaller = show
	return b
}

// MinFileLevel sets the minimum severity persisted in file mode.
func (b *Builder) MinFileLevel(level Level) *Builder {
	b.cfg.MinFileLevel = level
	return b
}

// MinFileLevelString sets the minimum file severity from a level name.
func (b *Builder) MinFileLevelString(level string) *Builder {
	if b.err != nil {
		return b
	}
	levelVal, err := ParseLevel(level)
	if err != nil {
		b.err = err
		return b
	}
	b.cfg.MinFileLevel = levelVal
	return b
}

// RetentionDays sets how many days dated log files are kept.
func (b *Builder) RetentionDays(days int64) *Builder {
	b.cfg.RetentionDays = days
	return b
}

// TimestampFormat sets the time format used in file-formatted lines.
func (b *Builder) TimestampFormat(format string) *Builder {
	b.cfg.TimestampFormat = format
	return b
}

// Example usage:
// logger, err := logutil.NewBuilder().
//
//	Tag("API").
//	ConsoleMode(false).
//	Directory("/var/log/app").
//	MinFileLevelString("error").
//	Build()
//
// if err == nil {
//
//	 defer logger.Close()
//	 logger.I("logger initialized")
//
// }
