package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/leapstack-labs/nuctab/internal/blob"
	"github.com/leapstack-labs/nuctab/internal/cli/output"
	"github.com/leapstack-labs/nuctab/internal/source"
	"github.com/leapstack-labs/nuctab/pkg/nuclide"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Export formats.
const (
	ExportXML  = "xml"
	ExportJSON = "json"
	ExportYAML = "yaml"
)

// ExportOptions holds options for the export command.
type ExportOptions struct {
	Format string
}

// NewExportCommand creates the export command.
func NewExportCommand() *cobra.Command {
	opts := &ExportOptions{}

	cmd := &cobra.Command{
		Use:   "export <table> [destination]",
		Short: "Export a saved table",
		Long: `Write a saved table as a nuclear_data_table XML document, JSON or YAML.

The destination is a local path or an s3://bucket/key URL. Without a
destination, or with "-", the table is written to standard output. The
format defaults to the destination's extension, then to XML.`,
		Example: `  # XML to stdout
  nuctab export nubase03

  # JSON file
  nuctab export nubase03 nubase03.json

  # YAML to S3
  nuctab export nubase03 s3://nuclear-data/tables/nubase03.yaml`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dest := ""
			if len(args) == 2 {
				dest = args[1]
			}
			return runExport(cmd, args[0], dest, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Format, "format", "", "Output format: xml, json, yaml")

	_ = cmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{ExportXML, ExportJSON, ExportYAML}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runExport(cmd *cobra.Command, table, dest string, opts *ExportOptions) error {
	ctx := cmd.Context()
	cc := NewCommandContext(cmd)

	format := exportFormat(opts.Format, dest)

	store, err := cc.OpenStore(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	nuclides, err := store.LoadTable(ctx, table)
	if err != nil {
		return err
	}

	if dest == "" || dest == "-" {
		return encodeTable(cmd.OutOrStdout(), format, nuclides)
	}

	var buf bytes.Buffer
	if err := encodeTable(&buf, format, nuclides); err != nil {
		return err
	}
	loc, err := blob.ParseLocation(dest)
	if err != nil {
		return err
	}
	if err := cc.Opener().Write(ctx, loc, buf.Bytes()); err != nil {
		return err
	}
	cc.Logger.Info("exported table", "table", table, "nuclides", len(nuclides), "destination", loc.String())
	return nil
}

// exportFormat picks the explicit format, then the destination extension,
// then XML.
func exportFormat(explicit, dest string) string {
	if explicit != "" {
		return strings.ToLower(explicit)
	}
	switch strings.ToLower(path.Ext(dest)) {
	case ".json":
		return ExportJSON
	case ".yaml", ".yml":
		return ExportYAML
	}
	return ExportXML
}

func encodeTable(w io.Writer, format string, nuclides []*nuclide.Nuclide) error {
	switch format {
	case ExportXML:
		return source.WriteXML(w, nuclides)
	case ExportJSON, ExportYAML:
	default:
		return fmt.Errorf("unknown export format %q\nHint: use one of xml, json, yaml", format)
	}

	records := make([]output.NuclideOutput, len(nuclides))
	for i, n := range nuclides {
		records[i] = output.NewNuclideOutput(n)
	}
	if format == ExportJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return err
	}
	return enc.Close()
}
