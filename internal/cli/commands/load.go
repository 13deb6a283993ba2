package commands

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/leapstack-labs/nuctab/internal/blob"
	"github.com/leapstack-labs/nuctab/internal/cli/output"
	"github.com/leapstack-labs/nuctab/internal/state"
	"github.com/spf13/cobra"
)

// LoadOptions holds options for the load command.
type LoadOptions struct {
	Save   string
	Format string
}

// NewLoadCommand creates the load command.
func NewLoadCommand() *cobra.Command {
	opts := &LoadOptions{}

	cmd := &cobra.Command{
		Use:   "load <location>",
		Short: "Load a nuclear data table",
		Long: `Read a data file, build every entry with the configured dialect and
report what was loaded. Entries that fail to parse are reported and skipped;
the rest of the file still loads.

Locations are local paths or s3://bucket/key URLs. Files ending in .xml are
read as nuclear_data_table documents; anything else as a fixed-width ascii
table using the dialect's layout.`,
		Example: `  # Load and check a NUBASE table
  nuctab load data/nubtab03.asc

  # Load from S3 and save it to the state store
  nuctab load s3://nuclear-data/nubase/nubtab03.asc --save nubase03

  # Wallet cards need a configured layout
  nuctab load wallet.txt --dialect walletcard`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoad(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.Save, "save", "", "Save the loaded table under this name")
	cmd.Flags().StringVar(&opts.Format, "format", FormatAuto, "Input format: auto, ascii, xml")

	_ = cmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{FormatAuto, FormatASCII, FormatXML}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runLoad(cmd *cobra.Command, location string, opts *LoadOptions) error {
	ctx := cmd.Context()
	cc := NewCommandContext(cmd)

	loc, err := blob.ParseLocation(location)
	if err != nil {
		return err
	}
	res, err := cc.loadLocation(ctx, loc, opts.Format)
	if err != nil {
		return err
	}

	if opts.Save != "" {
		store, err := cc.OpenStore(ctx)
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		info := state.TableInfo{Name: opts.Save, Dialect: res.Dialect, Source: loc.String()}
		if err := store.SaveTable(ctx, info, res.Table.All()); err != nil {
			return err
		}
	}

	out := newLoadOutput(loc.String(), res)
	out.SavedAs = opts.Save
	return renderLoad(cc.Renderer, out)
}

func newLoadOutput(src string, res *loadResult) output.LoadOutput {
	out := output.LoadOutput{
		Source:   src,
		Dialect:  res.Dialect,
		Loaded:   res.Report.Loaded,
		Filtered: res.Report.Filtered,
		Failures: make([]string, 0, len(res.Report.Failures)),
		Skipped:  make([]string, 0, len(res.Skipped)),
	}
	for _, err := range res.Report.Failures {
		out.Failures = append(out.Failures, err.Error())
	}
	for _, err := range res.Skipped {
		out.Skipped = append(out.Skipped, err.Error())
	}
	if l := res.Report.Limits; l.Valid {
		out.Limits = &output.LimitsOutput{NMin: l.N.Min, NMax: l.N.Max, ZMin: l.Z.Min, ZMax: l.Z.Max}
	}
	return out
}

func renderLoad(r *output.Renderer, out output.LoadOutput) error {
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(out)
	}

	r.Header(1, "Loaded "+out.Source)
	r.KeyValue("Dialect", out.Dialect)
	r.KeyValue("Nuclides", strconv.Itoa(out.Loaded))
	r.KeyValue("Filtered", strconv.Itoa(out.Filtered))
	r.KeyValue("Failed", strconv.Itoa(len(out.Failures)))
	r.KeyValue("Skipped lines", strconv.Itoa(len(out.Skipped)))
	if out.Limits != nil {
		r.KeyValue("Limits", fmt.Sprintf("Z %d-%d, N %d-%d",
			out.Limits.ZMin, out.Limits.ZMax, out.Limits.NMin, out.Limits.NMax))
	}

	if len(out.Failures)+len(out.Skipped) > 0 {
		r.Println()
		r.Header(2, "Problems")
		for _, msg := range slices.Concat(out.Skipped, out.Failures) {
			if r.EffectiveMode() == output.ModeMarkdown {
				r.Println("- " + msg)
				continue
			}
			r.Warning(msg)
		}
	}

	if out.SavedAs != "" {
		r.Println()
		r.Success(fmt.Sprintf("Saved %d nuclides as table %s", out.Loaded, out.SavedAs))
	}
	return nil
}
