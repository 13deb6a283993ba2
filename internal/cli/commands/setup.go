package commands

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/leapstack-labs/nuctab/internal/blob"
	"github.com/leapstack-labs/nuctab/internal/cli/config"
	"github.com/leapstack-labs/nuctab/internal/cli/output"
	"github.com/leapstack-labs/nuctab/internal/library"
	"github.com/leapstack-labs/nuctab/internal/source"
	"github.com/leapstack-labs/nuctab/internal/state"
	"github.com/leapstack-labs/nuctab/pkg/dialect"
	"github.com/leapstack-labs/nuctab/pkg/dialects/attrmap"
	"github.com/spf13/cobra"

	// Register the text dialects.
	_ "github.com/leapstack-labs/nuctab/pkg/dialects/nubase"
	_ "github.com/leapstack-labs/nuctab/pkg/dialects/walletcard"
)

// CommandContext holds common dependencies for command execution.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext from the loaded configuration
// and the logger stored in the command context.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// getConfig returns the current configuration, or the defaults when no
// configuration was loaded (commands run outside the root command).
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	cfg := &config.Config{OutputFormat: config.DefaultOutput}
	cfg.ApplyDefaults()
	return cfg
}

// Dialect returns the configured dialect.
func (c *CommandContext) Dialect() (dialect.Dialect, error) {
	return dialect.Lookup(c.Cfg.Dialect)
}

// OpenStore opens the configured state store. The caller closes it.
func (c *CommandContext) OpenStore(ctx context.Context) (*state.Store, error) {
	return state.Open(ctx, c.Cfg.State, c.Logger)
}

// Opener returns a blob opener for local files and S3.
func (c *CommandContext) Opener() *blob.Opener {
	return blob.NewOpener(c.Cfg.S3, blob.WithLogger(c.Logger))
}

// Input formats of a data file.
const (
	FormatAuto  = "auto"
	FormatASCII = "ascii"
	FormatXML   = "xml"
)

// loadResult is a data file read and built into a table.
type loadResult struct {
	Table   *library.Table
	Report  *library.Report
	Skipped []*source.LineError
	Dialect string
}

// loadLocation reads the data file at loc and builds its entries. XML tables
// are built with the attribute-map dialect, ascii tables with the configured
// dialect and its layout.
func (c *CommandContext) loadLocation(ctx context.Context, loc blob.Location, format string) (*loadResult, error) {
	if format == FormatAuto {
		format = FormatASCII
		if strings.EqualFold(path.Ext(loc.Key), ".xml") {
			format = FormatXML
		}
	}

	rc, err := c.Opener().Open(ctx, loc)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	res := &loadResult{}
	var (
		entries []dialect.Entry
		d       dialect.Dialect
	)
	switch format {
	case FormatXML:
		d = attrmap.Dialect{}
		if entries, err = source.ReadXML(rc, loc.Name()); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", loc, err)
		}
	case FormatASCII:
		if d, err = c.Dialect(); err != nil {
			return nil, err
		}
		layout, err := c.Cfg.Layout(d.Name())
		if err != nil {
			return nil, err
		}
		ascii, err := source.ReadASCII(rc, loc.Name(), layout)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", loc, err)
		}
		entries, res.Skipped = ascii.Entries, ascii.Skipped
		for _, s := range ascii.Skipped {
			c.Logger.Warn("skipping line", "error", s)
		}
	default:
		return nil, fmt.Errorf("unknown input format %q\nHint: use one of auto, ascii, xml", format)
	}

	opts := c.Cfg.LoadOptions()
	opts.Logger = c.Logger
	res.Dialect = d.Name()
	res.Table, res.Report, err = library.Load(ctx, entries, d, opts)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// resolveTable returns name, or the only saved table when name is empty.
func resolveTable(ctx context.Context, store *state.Store, name string) (string, error) {
	if name != "" {
		return name, nil
	}
	tables, err := store.ListTables(ctx)
	if err != nil {
		return "", err
	}
	switch len(tables) {
	case 0:
		return "", fmt.Errorf("no saved tables\nHint: run 'nuctab load <file> --save <name>' first")
	case 1:
		return tables[0].Name, nil
	}
	names := make([]string, len(tables))
	for i, t := range tables {
		names[i] = t.Name
	}
	return "", fmt.Errorf("several saved tables: %s\nHint: choose one with --table", strings.Join(names, ", "))
}
