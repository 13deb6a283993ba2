package config

import (
	"fmt"
	"slices"
)

var outputModes = []string{"auto", "text", "markdown", "json"}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if err := c.ProjectConfig.Validate(); err != nil {
		return err
	}
	if !slices.Contains(outputModes, c.OutputFormat) {
		return fmt.Errorf("unknown output format %q\nHint: use one of %v", c.OutputFormat, outputModes)
	}
	return nil
}
