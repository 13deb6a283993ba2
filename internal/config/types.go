// Package config provides the project configuration of nuctab.
// It is decoupled from CLI concerns so that anything opening a project's
// data (sources, state store, S3) can load the same nuctab.yaml.
package config

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/nuctab/internal/blob"
	"github.com/leapstack-labs/nuctab/internal/library"
	"github.com/leapstack-labs/nuctab/internal/source"
	"github.com/leapstack-labs/nuctab/internal/state"
	"github.com/leapstack-labs/nuctab/pkg/dialect"
)

// ProjectConfig holds the settings read from nuctab.yaml.
type ProjectConfig struct {
	Dialect string        `koanf:"dialect"`
	ZRange  library.Range `koanf:"z_range"`
	NRange  library.Range `koanf:"n_range"`
	State   state.Config  `koanf:"state"`
	S3      blob.S3Config `koanf:"s3"`

	// Layouts overrides ascii columns per dialect, e.g.
	// layouts.nubase.half_life: "61-79".
	Layouts map[string]map[string]string `koanf:"layouts"`
}

// Layout returns the ascii layout of a dialect: its built-in layout with the
// configured columns applied. A dialect without a built-in layout must
// configure at least the a and zzzi columns.
func (c *ProjectConfig) Layout(name string) (source.Layout, error) {
	base, _ := source.DefaultLayout(name)
	columns := c.Layouts[strings.ToLower(name)]

	l, err := base.WithColumns(columns)
	if err != nil {
		return source.Layout{}, fmt.Errorf("layouts.%s: %w", name, err)
	}
	if err := l.Validate(); err != nil {
		return source.Layout{}, fmt.Errorf("no ascii layout for dialect %s: %w\nHint: set layouts.%s.<column> in %s", name, err, name, ConfigFileName)
	}
	return l, nil
}

// Validate checks that the configured dialect and state driver exist and
// that the ranges are ordered.
func (c *ProjectConfig) Validate() error {
	if _, err := dialect.Lookup(c.Dialect); err != nil {
		return err
	}
	if _, err := state.LookupDriver(c.State.Driver); err != nil {
		return err
	}
	if c.ZRange.Min > c.ZRange.Max {
		return fmt.Errorf("z_range: min %d is greater than max %d", c.ZRange.Min, c.ZRange.Max)
	}
	if c.NRange.Min > c.NRange.Max {
		return fmt.Errorf("n_range: min %d is greater than max %d", c.NRange.Min, c.NRange.Max)
	}
	return nil
}

// LoadOptions returns the library options selected by the configuration.
func (c *ProjectConfig) LoadOptions() library.Options {
	return library.Options{ZRange: c.ZRange, NRange: c.NRange}
}
