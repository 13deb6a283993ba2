package commands

import (
	"github.com/leapstack-labs/nuctab/internal/cli/output"
	"github.com/leapstack-labs/nuctab/pkg/dialect"
	"github.com/spf13/cobra"
)

// NewDialectsCommand creates the dialects command.
func NewDialectsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dialects",
		Short: "List evaluator dialects",
		Long: `List the registered dialects. The default is set with "dialect" in
nuctab.yaml, NUCTAB_DIALECT or --dialect.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc := NewCommandContext(cmd)
			r := cc.Renderer

			var out []output.DialectOutput
			for _, name := range dialect.List() {
				d, _ := dialect.Get(name)
				out = append(out, output.DialectOutput{
					Name:        d.Name(),
					Description: d.Description(),
					Default:     d.Name() == cc.Cfg.Dialect,
				})
			}

			if r.EffectiveMode() == output.ModeJSON {
				return r.JSON(out)
			}
			rows := make([][]string, len(out))
			for i, d := range out {
				marker := ""
				if d.Default {
					marker = "*"
				}
				rows[i] = []string{d.Name + marker, d.Description}
			}
			r.Table([]string{"Name", "Description"}, rows)
			return nil
		},
	}
}
