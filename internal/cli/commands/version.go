package commands

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/leapstack-labs/nuctab/pkg/dialect"
	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Print the nuctab release, the Go toolchain and platform the binary was
built for, and the table dialects compiled into it.`,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "nuctab v%s\n", version)
			_, _ = fmt.Fprintln(out, "Nuclear data table normalizer")
			_, _ = fmt.Fprintf(out, "built with %s for %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
			_, _ = fmt.Fprintf(out, "dialects: %s\n", strings.Join(dialect.List(), ", "))
		},
	}
}
