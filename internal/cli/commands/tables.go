package commands

import (
	"strconv"
	"time"

	"github.com/leapstack-labs/nuctab/internal/cli/output"
	"github.com/spf13/cobra"
)

// NewTablesCommand creates the tables command.
func NewTablesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "List saved tables",
		Long:  `List the tables saved in the state store with their dialect, source and size.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cc := NewCommandContext(cmd)

			store, err := cc.OpenStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			tables, err := store.ListTables(ctx)
			if err != nil {
				return err
			}

			r := cc.Renderer
			if r.EffectiveMode() == output.ModeJSON {
				out := make([]output.TableOutput, len(tables))
				for i, t := range tables {
					out[i] = output.TableOutput(t)
				}
				return r.JSON(out)
			}
			if len(tables) == 0 {
				r.Muted("(no saved tables)")
				return nil
			}
			rows := make([][]string, len(tables))
			for i, t := range tables {
				rows[i] = []string{t.Name, t.Dialect, strconv.Itoa(t.Count), t.Source, t.CreatedAt.Local().Format(time.DateTime)}
			}
			r.Table([]string{"Name", "Dialect", "Nuclides", "Source", "Created"}, rows)
			return nil
		},
	}
}
