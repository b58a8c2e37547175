// Package config handles YAML configuration loading for the daxie service,
// with environment variable substitution and struct validation.
package config

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Config is the root of the service configuration file.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Batch  BatchConfig  `yaml:"batch"`
	Log    LogConfig    `yaml:"log"`
}

// ServerConfig captures HTTP server level configuration.
type ServerConfig struct {
	Addr              string        `yaml:"addr" validate:"required"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout" validate:"gt=0"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout" validate:"gt=0"`
}

// BatchConfig bounds the batch conversion endpoint.
type BatchConfig struct {
	MaxItems    int `yaml:"max_items" validate:"gt=0,lte=100000"`
	Concurrency int `yaml:"concurrency" validate:"gt=0,lte=1024"`
}

// LogConfig selects the logger flavour and level.
type LogConfig struct {
	Level       string `yaml:"level" validate:"oneof=debug info warn error"`
	Development bool   `yaml:"development"`
}

// Defaults used for zero-valued fields.
const (
	DefaultAddr              = ":8080"
	DefaultReadHeaderTimeout = 5 * time.Second
	DefaultShutdownTimeout   = 10 * time.Second
	DefaultBatchMaxItems     = 1000
	DefaultBatchConcurrency  = 8
	DefaultLogLevel          = "info"
)

// Default returns a configuration with every field set to its default.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}
	if c.Server.ReadHeaderTimeout == 0 {
		c.Server.ReadHeaderTimeout = DefaultReadHeaderTimeout
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if c.Batch.MaxItems == 0 {
		c.Batch.MaxItems = DefaultBatchMaxItems
	}
	if c.Batch.Concurrency == 0 {
		c.Batch.Concurrency = DefaultBatchConcurrency
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}

// Validate checks field constraints declared in struct tags.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}
