package config

import (
	"github.com/leapstack-labs/nuctab/internal/library"
	"github.com/leapstack-labs/nuctab/internal/state"
)

// Default configuration values.
const (
	DefaultDialect     = "nubase"
	DefaultStateDriver = "sqlite"
	DefaultStateDSN    = state.DefaultDSN
)

// Defaults returns the default configuration as flat koanf keys.
func Defaults() map[string]any {
	return map[string]any{
		"dialect":      DefaultDialect,
		"state.driver": DefaultStateDriver,
		"z_range.min":  library.DefaultZRange.Min,
		"z_range.max":  library.DefaultZRange.Max,
		"n_range.min":  library.DefaultNRange.Min,
		"n_range.max":  library.DefaultNRange.Max,
	}
}

// ApplyDefaults fills unset values of c.
func (c *ProjectConfig) ApplyDefaults() {
	if c.Dialect == "" {
		c.Dialect = DefaultDialect
	}
	if c.State.Driver == "" {
		c.State.Driver = DefaultStateDriver
	}
	if c.State.DSN == "" && c.State.Driver == DefaultStateDriver {
		c.State.DSN = DefaultStateDSN
	}
	if c.ZRange == (library.Range{}) {
		c.ZRange = library.DefaultZRange
	}
	if c.NRange == (library.Range{}) {
		c.NRange = library.DefaultNRange
	}
}
