// Package config handles configuration loading and validation for finger
// braille sessions.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/npillmayer/fingerbraille"
	"github.com/npillmayer/fingerbraille/tabfile"
	"gopkg.in/yaml.v3"
)

// Environment variables overriding file settings.
const (
	EnvTableFile   = "FINGERBRAILLE_TABLE"
	EnvTraceLevel  = "FINGERBRAILLE_TRACE"
	EnvQuietWindow = "FINGERBRAILLE_QUIET_MS"
)

// Config is the configuration of a decoding session.
type Config struct {
	// QuietWindowMs is the time in milliseconds a chord has to stay unchanged
	// before it is decoded.
	QuietWindowMs int `toml:"quiet_window_ms" yaml:"quiet_window_ms"`

	// Layout maps key names to dots 1…6. Empty selects the home-row layout
	// f d s / j k l.
	Layout map[string]int `toml:"layout" yaml:"layout"`

	// Fallback is "none" or "base".
	Fallback string `toml:"fallback" yaml:"fallback"`

	// TableFile optionally names a table file replacing the built-in table.
	TableFile string `toml:"table_file" yaml:"table_file"`

	// TraceLevel is "error", "info" or "debug".
	TraceLevel string `toml:"trace_level" yaml:"trace_level"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		QuietWindowMs: int(fingerbraille.DefaultQuietWindow / time.Millisecond),
		Fallback:      fingerbraille.FallbackNone.String(),
		TraceLevel:    "error",
	}
}

// Load reads a configuration file, decoding it by extension (.toml, .yaml,
// .yml), applies environment overrides and validates the result. A missing
// file yields the defaults.
func Load(path string) (*Config, error) {
	cfg, err := loadConfigFromFile(path)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return cfg, nil
}

func loadConfigFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	switch ext := filepath.Ext(path); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("decode TOML: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("decode YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}
	return cfg, nil
}

// ApplyEnvOverrides applies environment variable overrides.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv(EnvTableFile); v != "" {
		c.TableFile = v
	}
	if v := os.Getenv(EnvTraceLevel); v != "" {
		c.TraceLevel = v
	}
	if v := os.Getenv(EnvQuietWindow); v != "" {
		if ms, err := strconv.Atoi(v); err == nil {
			c.QuietWindowMs = ms
		}
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.QuietWindowMs <= 0 {
		return fmt.Errorf("quiet_window_ms must be positive, is %d", c.QuietWindowMs)
	}
	if len(c.Layout) > 0 {
		if err := c.layout().Validate(); err != nil {
			return fmt.Errorf("layout: %w", err)
		}
	}
	if _, err := fingerbraille.ParseFallbackPolicy(c.Fallback); err != nil {
		return err
	}
	switch strings.ToLower(c.TraceLevel) {
	case "", "error", "info", "debug":
	default:
		return fmt.Errorf("unknown trace level %q", c.TraceLevel)
	}
	return nil
}

// QuietWindow returns the debounce interval.
func (c *Config) QuietWindow() time.Duration {
	return time.Duration(c.QuietWindowMs) * time.Millisecond
}

func (c *Config) layout() fingerbraille.Layout {
	if len(c.Layout) == 0 {
		return fingerbraille.DefaultLayout()
	}
	layout := make(fingerbraille.Layout, len(c.Layout))
	for k, d := range c.Layout {
		layout[fingerbraille.Key(k)] = d
	}
	return layout
}

// SessionOptions converts the configuration to session options, without
// handlers.
func (c *Config) SessionOptions() (fingerbraille.SessionOptions, error) {
	fallback, err := fingerbraille.ParseFallbackPolicy(c.Fallback)
	if err != nil {
		return fingerbraille.SessionOptions{}, err
	}
	return fingerbraille.SessionOptions{
		Layout:      c.layout(),
		QuietWindow: c.QuietWindow(),
		Fallback:    fallback,
	}, nil
}

// Table loads the configured table file, or returns the built-in table.
func (c *Config) Table() (*fingerbraille.Table, error) {
	if c.TableFile == "" {
		return fingerbraille.DefaultTable(), nil
	}
	table, err := tabfile.LoadFile(c.TableFile)
	if err != nil {
		return nil, fmt.Errorf("table file: %w", err)
	}
	return table, nil
}
