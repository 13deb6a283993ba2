// Package main provides the nuctab CLI for normalizing nuclear data tables.
package main

import (
	"os"

	"github.com/leapstack-labs/nuctab/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
