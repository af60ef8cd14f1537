package ufmt

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the file form of the printer options.
//
//	indent: 2
//	cache_size: 256
type Config struct {
	// Indent is the number of spaces per nesting level in pretty mode.
	Indent int `yaml:"indent"`
	// CacheSize bounds the template cache. Zero means unbounded.
	CacheSize int `yaml:"cache_size"`
}

// DefaultConfig returns the configuration New uses without options.
func DefaultConfig() Config {
	return Config{Indent: DefaultIndent}
}

// ParseConfig decodes YAML into a Config. Keys that are absent keep their
// defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses the YAML file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return ParseConfig(data)
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Indent < 0 {
		return newConfigError(ErrMsgInvalidIndent, "indent")
	}
	if c.CacheSize < 0 {
		return newConfigError(ErrMsgInvalidCacheSize, "cache_size")
	}
	return nil
}

// Options converts c into printer options.
func (c Config) Options() []Option {
	return []Option{WithIndent(c.Indent), WithCacheSize(c.CacheSize)}
}
