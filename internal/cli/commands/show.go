package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/leapstack-labs/nuctab/internal/blob"
	"github.com/leapstack-labs/nuctab/internal/cli/output"
	"github.com/leapstack-labs/nuctab/pkg/nuclide"
	"github.com/spf13/cobra"
)

// ShowOptions holds options for the show command.
type ShowOptions struct {
	Table  string
	From   string
	Format string
}

// NewShowCommand creates the show command.
func NewShowCommand() *cobra.Command {
	opts := &ShowOptions{}

	cmd := &cobra.Command{
		Use:   "show <Z> <A>",
		Short: "Show one nuclide",
		Long: `Show the canonical record of one nuclide: mass defect, half-life,
spin, decay branches and isomers.

The nuclide is read from a saved table, or directly from a data file with
--from.`,
		Example: `  # From the only saved table
  nuctab show 43 99

  # From a named table, as JSON
  nuctab show 6 12 --table nubase03 -o json

  # Straight from a file
  nuctab show 43 99 --from data/nubtab03.asc`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			z, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid Z %q: %w", args[0], err)
			}
			a, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid A %q: %w", args[1], err)
			}
			return runShow(cmd, z, a, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Table, "table", "t", "", "Saved table to read from")
	cmd.Flags().StringVar(&opts.From, "from", "", "Read from a data file instead of the state store")
	cmd.Flags().StringVar(&opts.Format, "format", FormatAuto, "Input format of --from: auto, ascii, xml")

	return cmd
}

func runShow(cmd *cobra.Command, z, a int, opts *ShowOptions) error {
	ctx := cmd.Context()
	cc := NewCommandContext(cmd)

	id, err := nuclide.NewIdentity(z, a)
	if err != nil {
		return err
	}

	var (
		n     *nuclide.Nuclide
		where string
	)
	if opts.From != "" {
		n, where, err = cc.findInFile(ctx, opts.From, opts.Format, id)
	} else {
		n, where, err = cc.findInStore(ctx, opts.Table, id)
	}
	if err != nil {
		return err
	}
	if n == nil {
		return fmt.Errorf("nuclide %s not found in %s", id, where)
	}
	return renderNuclide(cc.Renderer, output.NewNuclideOutput(n))
}

func (c *CommandContext) findInFile(ctx context.Context, location, format string, id nuclide.Identity) (*nuclide.Nuclide, string, error) {
	loc, err := blob.ParseLocation(location)
	if err != nil {
		return nil, "", err
	}
	res, err := c.loadLocation(ctx, loc, format)
	if err != nil {
		return nil, "", err
	}
	n, _ := res.Table.Get(id.N(), id.Z)
	return n, loc.String(), nil
}

func (c *CommandContext) findInStore(ctx context.Context, table string, id nuclide.Identity) (*nuclide.Nuclide, string, error) {
	store, err := c.OpenStore(ctx)
	if err != nil {
		return nil, "", err
	}
	defer func() { _ = store.Close() }()

	table, err = resolveTable(ctx, store, table)
	if err != nil {
		return nil, "", err
	}
	if _, err := store.GetTable(ctx, table); err != nil {
		return nil, "", err
	}
	n, err := store.GetNuclide(ctx, table, id.N(), id.Z)
	return n, "table " + table, err
}

func renderNuclide(r *output.Renderer, n output.NuclideOutput) error {
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(n)
	}

	r.Header(1, fmt.Sprintf("%s (Z=%d, N=%d, A=%d)", n.Nuclide, n.Z, n.N, n.A))
	if n.MassDefect != nil {
		r.KeyValue("Mass defect", formatUncertain(n.MassDefect.Value, n.MassDefect.Uncertainty, "keV")+extrapolatedNote(n.MassDefect.Extrapolated))
	}
	if n.MassMeV != nil {
		r.KeyValue("Mass", strconv.FormatFloat(*n.MassMeV, 'f', 3, 64)+" MeV")
	}
	if n.HalfLife != nil {
		r.KeyValue("Half-life", formatHalfLife(*n.HalfLife)+extrapolatedNote(n.HalfLife.Extrapolated))
		if n.HalfLife.Seconds != nil {
			r.KeyValue("Half-life (s)", strconv.FormatFloat(*n.HalfLife.Seconds, 'g', 6, 64))
		}
	}
	if n.Spin != nil {
		r.KeyValue("Spin", n.Spin.Value+extrapolatedNote(n.Spin.Extrapolated))
	}
	if n.Comment != "" {
		r.KeyValue("Comment", n.Comment)
	}

	r.Println()
	r.Header(2, "Decay modes")
	renderDecays(r, n.DecayModes)

	if len(n.Isomers) > 0 {
		r.Println()
		r.Header(2, "Isomers")
		rows := make([][]string, len(n.Isomers))
		for i, iso := range n.Isomers {
			modes := make([]string, len(iso.DecayModes))
			for j, d := range iso.DecayModes {
				modes[j] = d.Mode + d.Relation + d.Value
			}
			rows[i] = []string{
				formatUncertain(iso.Energy, iso.Uncertainty, "keV") + extrapolatedNote(iso.Extrapolated),
				formatHalfLife(iso.HalfLife),
				strings.Join(modes, "; "),
				iso.Comment,
			}
		}
		r.Table([]string{"Energy", "Half-life", "Decay modes", "Comment"}, rows)
	}
	return nil
}

func extrapolatedNote(extrapolated bool) string {
	if extrapolated {
		return " (extrapolated)"
	}
	return ""
}
