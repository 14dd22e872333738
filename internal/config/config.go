package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config is the file-backed configuration.
type Config struct {
	Resolver ResolverConfig `toml:"resolver"`
	Logging  LoggingConfig  `toml:"logging"`
}

// ResolverConfig controls how include URIs are located.
type ResolverConfig struct {
	// Paths maps a URI scheme (without "://") to its search directories.
	Paths           map[string][]string `toml:"paths"`
	MaxIncludeDepth int                 `toml:"max_include_depth"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`  // debug, info, warn, error
	Format string `toml:"format"` // text, json
}

// Load reads the TOML file at path over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Default()
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("parse config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Resolver: ResolverConfig{
			Paths:           map[string][]string{},
			MaxIncludeDepth: 32,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	if c.Resolver.MaxIncludeDepth < 1 {
		return fmt.Errorf("resolver.max_include_depth must be at least 1, got %d", c.Resolver.MaxIncludeDepth)
	}
	for scheme, dirs := range c.Resolver.Paths {
		if scheme == "" || strings.Contains(scheme, ":") {
			return fmt.Errorf("resolver.paths: invalid scheme %q", scheme)
		}
		if len(dirs) == 0 {
			return fmt.Errorf("resolver.paths.%s: no directories", scheme)
		}
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be 'debug', 'info', 'warn', or 'error', got %q", c.Logging.Level)
	}
	if c.Logging.Format != "text" && c.Logging.Format != "json" {
		return fmt.Errorf("logging.format must be 'text' or 'json', got %q", c.Logging.Format)
	}
	return nil
}

// Schemes returns the configured schemes in sorted order.
func (c *Config) Schemes() []string {
	out := make([]string, 0, len(c.Resolver.Paths))
	for s := range c.Resolver.Paths {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
