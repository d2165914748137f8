package compat

import (
	"fmt"

	"github.com/xd-jeff/logutil"
)

// Builder provides a flexible way to create configured logger adapters for
// gnet and fasthttp. It can use an existing *logutil.Logger instance or
// create a new one from a *logutil.Config.
type Builder struct {
	logger *logutil.Logger
	logCfg *logutil.Config
	err    error
}

// NewBuilder creates a new adapter builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithLogger specifies an existing logger to use for the adapters.
// If this is set WithConfig is ignored.
func (b *Builder) WithLogger(l *logutil.Logger) *Builder {
	if l == nil {
		b.err = fmt.Errorf("logutil/compat: provided logger cannot be nil")
		return b
	}
	b.logger = l
	return b
}

// WithConfig provides a configuration for a new logger instance.
// Used only if an existing logger is NOT provided via WithLogger.
func (b *Builder) WithConfig(cfg *logutil.Config) *Builder {
	b.logCfg = cfg
	return b
}

// getLogger resolves the logger to be used, creating one if necessary
func (b *Builder) getLogger() (*logutil.Logger, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.logger != nil {
		return b.logger, nil
	}

	cfg := b.logCfg
	if cfg == nil {
		cfg = logutil.DefaultConfig()
	}
	return logutil.New(cfg)
}

// BuildGnet creates a gnet-compatible adapter
func (b *Builder) BuildGnet(opts ...GnetOption) (*GnetAdapter, error) {
	logger, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewGnetAdapter(logger, opts...), nil
}

// BuildFastHTTP creates a fasthttp-compatible adapter
func (b *Builder) BuildFastHTTP(opts ...FastHTTPOption) (*FastHTTPAdapter, error) {
	logger, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewFastHTTPAdapter(logger, opts...), nil
}
