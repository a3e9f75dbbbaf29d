// Package config loads the YAML configuration shared by the geomigrate CLI
// and server. All fields are optional; zero values fall back to documented
// defaults so a missing file and an empty file behave identically.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Observation input shapes accepted by the adapters.
const (
	FormatFlat   = "flat"
	FormatNested = "nested"
)

// Defaults applied by Default and after Load.
const (
	DefaultHTTPAddr    = ":8080"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "console"
	DefaultFormat      = FormatFlat
	DefaultParallelism = 1
)

// ErrBadFormat indicates an unknown observation input format.
var ErrBadFormat = errors.New("config: format must be \"flat\" or \"nested\"")

// Config is the on-disk configuration.
type Config struct {
	// HTTPAddr is the listen address for -serve mode.
	HTTPAddr string `yaml:"http_addr"`
	// LogLevel is a zap level name: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
	// LogFormat is "console" or "json".
	LogFormat string `yaml:"log_format"`
	// MatrixPath points at the adjacency-matrix CSV.
	MatrixPath string `yaml:"matrix_path"`
	// ObservationsPath points at the observations JSON.
	ObservationsPath string `yaml:"observations_path"`
	// Format declares the observations shape: "flat" or "nested".
	Format string `yaml:"format"`
	// Parallelism is the validator worker count; 0 means sequential.
	Parallelism int `yaml:"parallelism"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		HTTPAddr:    DefaultHTTPAddr,
		LogLevel:    DefaultLogLevel,
		LogFormat:   DefaultLogFormat,
		Format:      DefaultFormat,
		Parallelism: DefaultParallelism,
	}
}

// Load reads and validates a YAML config file, filling unset fields with
// defaults. Returns ErrBadFormat for an unknown observation format; file and
// YAML errors pass through wrapped.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Config{}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.applyDefaults()

	if cfg.Format != FormatFlat && cfg.Format != FormatNested {
		return Config{}, fmt.Errorf("%w: got %q", ErrBadFormat, cfg.Format)
	}

	return cfg, nil
}

// applyDefaults fills zero-valued fields in place.
func (c *Config) applyDefaults() {
	if c.HTTPAddr == "" {
		c.HTTPAddr = DefaultHTTPAddr
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = DefaultLogFormat
	}
	if c.Format == "" {
		c.Format = DefaultFormat
	}
	if c.Parallelism <= 0 {
		c.Parallelism = DefaultParallelism
	}
}
