package logutil

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/lixenwraith/config"
)

// Config holds all facade configuration values
type Config struct {
	// Identity and routing
	Tag         string `toml:"tag"`          // Tag prepended to file-formatted lines
	ConsoleMode bool   `toml:"console_mode"` // true routes to console, false to rotating file

	// Gates
	EnableLog    bool  `toml:"enable_log"`     // Initial enabled state of the facade
	ShowCaller   bool  `toml:"show_caller"`    // Enrich lines with [file:line] of the call site
	MinFileLevel Level `toml:"min_file_level"` // Minimum severity persisted in file mode

	// File sink
	Directory     string `toml:"directory"`      // Log directory for file mode
	RetentionDays int64  `toml:"retention_days"` // Days to keep dated log files (0=disabled)

	// Formatting
	TimestampFormat string `toml:"timestamp_format"` // Time format for file-formatted lines
}

// defaultConfig is the single source for all configurable default values
var defaultConfig = Config{
	Tag:         "APP",
	ConsoleMode: true,

	EnableLog:    true,
	ShowCaller:   true,
	MinFileLevel: LevelError,

	Directory:     "./logs",
	RetentionDays: 7,

	TimestampFormat: "2006-01-02 15:04:05",
}

// DefaultConfig returns a copy of the default configuration
func DefaultConfig() *Config {
	copiedConfig := defaultConfig
	return &copiedConfig
}

// NewConfigFromFile loads configuration from a TOML file and returns a validated Config
func NewConfigFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	// Use lixenwraith/config as a loader
	loader := config.New()

	// Register the struct to enable proper unmarshaling
	if err := loader.RegisterStruct("logutil.", *cfg); err != nil {
		return nil, fmt.Errorf("failed to register config struct: %w", err)
	}

	// Load from file (handles file not found gracefully)
	if err := loader.Load(path, nil); err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}

	// Extract values into our Config struct
	if err := extractConfig(loader, "logutil.", cfg); err != nil {
		return nil, fmt.Errorf("failed to extract config values: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// NewConfigFromDefaults creates a Config with default values and applies overrides
func NewConfigFromDefaults(overrides map[string]any) (*Config, error) {
	cfg := DefaultConfig()

	if err := applyOverrides(cfg, overrides); err != nil {
		return nil, fmt.Errorf("failed to apply overrides: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// NewConfigFromStrings creates a Config from defaults plus "key=value" override strings
func NewConfigFromStrings(overrides ...string) (*Config, error) {
	cfg := DefaultConfig()

	var errs []error
	for _, override := range overrides {
		key, value, err := parseKeyValue(override)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := applyConfigField(cfg, key, value); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return nil, combineConfigErrors(errs)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// extractConfig extracts values from lixenwraith/config into our Config struct
func extractConfig(loader *config.Config, prefix string, cfg *Config) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldValue := v.Field(i)

		tomlTag := field.Tag.Get("toml")
		if tomlTag == "" {
			continue
		}

		val, found := loader.Get(prefix + tomlTag)
		if !found {
			continue // Use default value
		}

		if err := setFieldValue(fieldValue, val); err != nil {
			return fmt.Errorf("failed to set field %s: %w", field.Name, err)
		}
	}

	return nil
}

// applyOverrides applies a map of overrides to the Config struct
func applyOverrides(cfg *Config, overrides map[string]any) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	fieldMap := make(map[string]reflect.Value)
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tomlTag := field.Tag.Get("toml")
		if tomlTag != "" {
			fieldMap[tomlTag] = v.Field(i)
		}
	}

	for key, value := range overrides {
		fieldValue, exists := fieldMap[key]
		if !exists {
			return fmtErrorf("unknown config key: %s", key)
		}

		if err := setFieldValue(fieldValue, value); err != nil {
			return fmt.Errorf("failed to set %s: %w", key, err)
		}
	}

	return nil
}

// applyConfigField applies a single string-typed override to the Config
func applyConfigField(cfg *Config, key, value string) error {
	key = strings.ToLower(key)
	switch key {
	case "tag":
		cfg.Tag = value
	case "directory":
		cfg.Directory = value
	case "timestamp_format":
		cfg.TimestampFormat = value
	case "console_mode", "enable_log", "show_caller":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("%s must be a boolean, got '%s'", key, value)
		}
		switch key {
		case "console_mode":
			cfg.ConsoleMode = b
		case "enable_log":
			cfg.EnableLog = b
		case "show_caller":
			cfg.ShowCaller = b
		}
	case "min_file_level":
		// Accept a numeric rank or a level name
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			cfg.MinFileLevel = Level(n)
			return nil
		}
		level, err := ParseLevel(value)
		if err != nil {
			return err
		}
		cfg.MinFileLevel = level
	case "retention_days":
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmtErrorf("retention_days must be an integer, got '%s'", value)
		}
		cfg.RetentionDays = n
	default:
		return fmtErrorf("unknown config key: %s", key)
	}
	return nil
}

// setFieldValue sets a reflect.Value with proper type conversion
func setFieldValue(field reflect.Value, value any) error {
	switch field.Kind() {
	case reflect.String:
		strVal, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
		field.SetString(strVal)

	case reflect.Int64:
		switch v := value.(type) {
		case int64:
			field.SetInt(v)
		case int:
			field.SetInt(int64(v))
		case Level:
			field.SetInt(int64(v))
		default:
			return fmt.Errorf("expected int64, got %T", value)
		}

	case reflect.Bool:
		boolVal, ok := value.(bool)
		if !ok {
			return fmt.Errorf("expected bool, got %T", value)
		}
		field.SetBool(boolVal)

	default:
		return fmt.Errorf("unsupported field type: %v", field.Kind())
	}

	return nil
}

// combineConfigErrors combines multiple configuration errors into a single error.
func combineConfigErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	if len(errs) == 1 {
		return errs[0]
	}

	var sb strings.Builder
	sb.WriteString("logutil: multiple configuration errors:")
	for i, err := range errs {
		errMsg := err.Error()
		// Remove "logutil: " prefix from individual errors to avoid duplication
		errMsg = strings.TrimPrefix(errMsg, "logutil: ")
		sb.WriteString(fmt.Sprintf(" (%d) %s;", i+1, errMsg))
	}
	return errors.New(strings.TrimSuffix(sb.String(), ";"))
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	if strings.TrimSpace(c.Tag) == "" {
		return fmtErrorf("tag cannot be empty")
	}

	if strings.TrimSpace(c.TimestampFormat) == "" {
		return fmtErrorf("timestamp_format cannot be empty")
	}

	if !c.ConsoleMode && strings.TrimSpace(c.Directory) == "" {
		return fmtErrorf("directory cannot be empty in file mode")
	}

	if c.RetentionDays < 0 {
		return fmtErrorf("retention_days cannot be negative: %d", c.RetentionDays)
	}

	if c.MinFileLevel < LevelTrace || c.MinFileLevel > LevelOff {
		return fmtErrorf("min_file_level out of range: %d", int64(c.MinFileLevel))
	}

	return nil
}

// Clone creates a copy of the configuration
func (c *Config) Clone() *Config {
	copiedConfig := *c
	return &copiedConfig
}
