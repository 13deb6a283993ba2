// Package config provides configuration management for the nuctab CLI.
//
// This package extends the shared project configuration from
// internal/config with CLI-specific fields and the layered loader
// (defaults, nuctab.yaml, NUCTAB_* environment, flags).
package config

import (
	sharedcfg "github.com/leapstack-labs/nuctab/internal/config"
)

// ProjectConfig is an alias for the shared project configuration.
type ProjectConfig = sharedcfg.ProjectConfig

// Config holds all CLI configuration options.
type Config struct {
	ProjectConfig `koanf:",squash"`

	Verbose      bool   `koanf:"verbose"`
	OutputFormat string `koanf:"output"`

	// ProjectRoot is the directory relative paths are resolved against.
	ProjectRoot string `koanf:"-"`
}

// Default configuration values - uses shared defaults from internal/config
const (
	DefaultDialect  = sharedcfg.DefaultDialect
	DefaultStateDSN = sharedcfg.DefaultStateDSN
	DefaultOutput   = "auto" // Auto-detect: TTY=text, non-TTY=markdown
)

// EnvPrefix is the prefix of configuration environment variables.
const EnvPrefix = "NUCTAB_"
