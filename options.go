package ufmt

import (
	"go.uber.org/zap"
)

// Option is a functional option for configuring a Printer.
type Option func(*printerConfig)

type printerConfig struct {
	indent    int
	cacheSize int
	cache     *TemplateCache
	logger    *zap.Logger
}

func defaultPrinterConfig() *printerConfig {
	return &printerConfig{
		indent: DefaultIndent,
	}
}

// WithLogger sets the logger for the printer and its template cache.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *printerConfig) {
		c.logger = logger
	}
}

// WithIndent sets the number of spaces per nesting level in pretty mode.
// Negative values are ignored.
// Default: 4
func WithIndent(n int) Option {
	return func(c *printerConfig) {
		if n >= 0 {
			c.indent = n
		}
	}
}

// WithCacheSize bounds the number of cached templates. Use 0 for no bound.
// Ignored when WithCache is given.
// Default: 0
func WithCacheSize(n int) Option {
	return func(c *printerConfig) {
		if n >= 0 {
			c.cacheSize = n
		}
	}
}

// WithCache shares an existing template cache between printers.
func WithCache(cache *TemplateCache) Option {
	return func(c *printerConfig) {
		c.cache = cache
	}
}
