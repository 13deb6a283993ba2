package commands

import (
	"sort"
	"strconv"

	"github.com/leapstack-labs/nuctab/internal/cli/output"
	"github.com/leapstack-labs/nuctab/pkg/dialects/nubase"
	"github.com/leapstack-labs/nuctab/pkg/units"
	"github.com/spf13/cobra"
)

// NewUnitsCommand creates the units command.
func NewUnitsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "units",
		Short: "List half-life units",
		Long: `List the canonical half-life units with their length in seconds.

Descriptive units (stbl, p-unst, ...) carry a tag instead of a length.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := NewCommandContext(cmd).Renderer
			all := units.All()

			if r.EffectiveMode() == output.ModeJSON {
				out := make([]output.UnitOutput, len(all))
				for i, u := range all {
					out[i] = output.UnitOutput{Symbol: u.Symbol, Family: u.Family.String(), Seconds: u.Seconds(), Tag: u.Tag}
				}
				return r.JSON(out)
			}

			rows := make([][]string, len(all))
			for i, u := range all {
				secs := ""
				if u.Numeric() {
					secs = strconv.FormatFloat(u.Seconds(), 'g', 6, 64)
				}
				rows[i] = []string{u.Symbol, u.Family.String(), secs, u.Tag}
			}
			r.Table([]string{"Symbol", "Family", "Seconds", "Tag"}, rows)
			return nil
		},
	}
}

// NewMethodsCommand creates the methods command.
func NewMethodsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "methods",
		Short: "List isomer energy measurement codes",
		Long: `List the codes that may follow an isomer energy and the measurement
method each one stands for. A trailing "*" on a code marks an uncertainty
larger than the energy itself.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := NewCommandContext(cmd).Renderer
			methods := nubase.MethodCodes()

			codes := make([]string, 0, len(methods))
			for code := range methods {
				codes = append(codes, code)
			}
			sort.Strings(codes)

			if r.EffectiveMode() == output.ModeJSON {
				return r.JSON(methods)
			}
			rows := make([][]string, len(codes))
			for i, code := range codes {
				rows[i] = []string{code, methods[code]}
			}
			r.Table([]string{"Code", "Method"}, rows)
			r.Println()
			r.Muted("Without a code: " + nubase.DefaultMethod)
			return nil
		},
	}
}
