package commands

import (
	"bytes"
	"context"
	"testing"

	"github.com/leapstack-labs/nuctab/internal/cli/config"
	"github.com/leapstack-labs/nuctab/internal/cli/output"
	"github.com/leapstack-labs/nuctab/internal/cli/testutil"
	"github.com/leapstack-labs/nuctab/internal/state"
	"github.com/leapstack-labs/nuctab/pkg/dialect"
	"github.com/leapstack-labs/nuctab/pkg/dialects/attrmap"
	"github.com/leapstack-labs/nuctab/pkg/dialects/nubase"
	"github.com/leapstack-labs/nuctab/pkg/dialects/walletcard"
	"github.com/leapstack-labs/nuctab/pkg/nuclide"
	"github.com/leapstack-labs/nuctab/pkg/parser"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandMetadata(t *testing.T) {
	tests := []struct {
		cmd   *cobra.Command
		use   string
		flags []string
	}{
		{NewParseCommand(), "parse <field> <text>", []string{"z", "a"}},
		{NewLoadCommand(), "load <location>", []string{"save", "format"}},
		{NewShowCommand(), "show <Z> <A>", []string{"table", "from", "format"}},
		{NewExportCommand(), "export <table> [destination]", []string{"format"}},
		{NewTablesCommand(), "tables", nil},
		{NewUnitsCommand(), "units", nil},
		{NewMethodsCommand(), "methods", nil},
		{NewDialectsCommand(), "dialects", nil},
		{NewREPLCommand(), "repl", nil},
	}

	for _, tt := range tests {
		t.Run(tt.use, func(t *testing.T) {
			assert.Equal(t, tt.use, tt.cmd.Use)
			assert.NotEmpty(t, tt.cmd.Short, "Short should not be empty")
			for _, flag := range tt.flags {
				assert.NotNil(t, tt.cmd.Flags().Lookup(flag), "flag %q should exist", flag)
			}
		})
	}
}

func TestParseField(t *testing.T) {
	p := nubase.Dialect{}

	tests := []struct {
		field string
		raw   string
		want  any
	}{
		{
			field: dialect.FieldMassDefect,
			raw:   "-87323.1 2.1",
			want:  output.MassDefectOutput{Value: "-87323.1", Uncertainty: "2.1"},
		},
		{
			field: dialect.FieldSpin,
			raw:   "(3/2-)#",
			want:  output.SpinOutput{Value: "(3/2-)", Extrapolated: true},
		},
		{
			field: dialect.FieldDecayModes,
			raw:   "B-=100",
			want:  []output.DecayOutput{{Mode: "B-", Relation: "=", Value: "100", Uncertainty: "0"}},
		},
		{
			field: dialect.FieldEnergy,
			raw:   "142.6836 0.0011",
			want:  output.EnergyOutput{Energy: "142.6836", Uncertainty: "0.0011", Method: nubase.DefaultMethod},
		},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			got, err := parseField(p, tt.field, tt.raw, nuclide.NoNuclide)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseField_HalfLife(t *testing.T) {
	got, err := parseField(walletcard.Dialect{}, "HALF_LIFE", "1.0 EV", nuclide.NoNuclide)
	require.NoError(t, err)

	h, ok := got.(output.HalfLifeOutput)
	require.True(t, ok)
	assert.Equal(t, "0.04562", h.Value)
	assert.Equal(t, "as", h.Unit)
	require.NotNil(t, h.Seconds)
	assert.InDelta(t, 4.562e-20, *h.Seconds, 1e-26)
}

func TestParseField_Errors(t *testing.T) {
	_, err := parseField(nubase.Dialect{}, "colour", "red", nuclide.NoNuclide)
	assert.ErrorContains(t, err, "unknown field")

	_, err = parseField(nubase.Dialect{}, dialect.FieldDecayModes, "B-", nuclide.NoNuclide)
	assert.ErrorIs(t, err, parser.ErrDecayModeSyntax)

	_, err = fieldParser(attrmap.Dialect{})
	assert.ErrorContains(t, err, "attribute maps")
}

func TestRenderParsed_Markdown(t *testing.T) {
	tr := testutil.NewTestRenderer(output.ModeAuto, false)

	h := output.HalfLifeOutput{Value: "211.1", Unit: "ky", Uncertainty: "1.2", Relation: "="}
	require.NoError(t, renderParsed(tr.Renderer, output.ParseOutput{Field: "half_life", Result: h}))

	assert.Contains(t, tr.Output(), "- **Half-life**: 211.1 ± 1.2 ky")
	testutil.AssertNoANSI(t, tr.Output())
	testutil.AssertValidMarkdown(t, tr.Output())
}

func TestFormatHalfLife(t *testing.T) {
	tests := []struct {
		in   output.HalfLifeOutput
		want string
	}{
		{output.HalfLifeOutput{Value: "211.1", Unit: "ky", Uncertainty: "1.2", Relation: "="}, "211.1 ± 1.2 ky"},
		{output.HalfLifeOutput{Value: "300", Unit: "ns", Uncertainty: "?", Relation: ">"}, "> 300 ns"},
		{output.HalfLifeOutput{Value: "stable", Relation: "="}, "stable"},
		{output.HalfLifeOutput{Value: "?", Unit: "?", Uncertainty: "?", Relation: "?"}, "?"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, formatHalfLife(tt.in))
		})
	}
}

func TestExportFormat(t *testing.T) {
	assert.Equal(t, ExportXML, exportFormat("", ""))
	assert.Equal(t, ExportXML, exportFormat("", "out.xml"))
	assert.Equal(t, ExportJSON, exportFormat("", "s3://b/t.JSON"))
	assert.Equal(t, ExportYAML, exportFormat("", "t.yml"))
	assert.Equal(t, ExportYAML, exportFormat("YAML", "t.json"))
}

func TestEncodeTable_UnknownFormat(t *testing.T) {
	err := encodeTable(&bytes.Buffer{}, "csv", nil)
	assert.ErrorContains(t, err, "unknown export format")
}

func TestResolveTable(t *testing.T) {
	ctx := context.Background()
	store, err := state.Open(ctx, state.Config{DSN: ":memory:"}, nil)
	require.NoError(t, err)
	defer store.Close()

	_, err = resolveTable(ctx, store, "")
	assert.ErrorContains(t, err, "no saved tables")

	require.NoError(t, store.SaveTable(ctx, state.TableInfo{Name: "a", Dialect: "nubase"}, nil))
	name, err := resolveTable(ctx, store, "")
	require.NoError(t, err)
	assert.Equal(t, "a", name)

	require.NoError(t, store.SaveTable(ctx, state.TableInfo{Name: "b", Dialect: "nubase"}, nil))
	_, err = resolveTable(ctx, store, "")
	assert.ErrorContains(t, err, "a, b")

	name, err = resolveTable(ctx, store, "b")
	require.NoError(t, err)
	assert.Equal(t, "b", name)
}

func newTestSession(t *testing.T) (*replSession, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	config.ResetConfig()
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	s, err := newREPLSession(NewCommandContext(cmd), out, errOut)
	require.NoError(t, err)
	return s, out, errOut
}

func TestREPL_HandleLine(t *testing.T) {
	s, out, errOut := newTestSession(t)
	assert.Equal(t, "nuctab(nubase)> ", s.prompt())

	assert.False(t, s.handleLine("half_life 211.1 ky 1.2"))
	assert.Contains(t, out.String(), "211.1 ± 1.2 ky")

	assert.False(t, s.handleLine("half_life 12 parsec"))
	assert.Contains(t, errOut.String(), "parsec")

	assert.False(t, s.handleLine(""))
	assert.True(t, s.handleLine(".quit"))
}

func TestREPL_DotCommands(t *testing.T) {
	s, out, errOut := newTestSession(t)

	s.handleLine(".help")
	assert.Contains(t, out.String(), ".dialect [name]")

	out.Reset()
	s.handleLine(".fields")
	assert.Contains(t, out.String(), "decay_modes")

	s.handleLine(".dialect walletcard")
	assert.Equal(t, "walletcard", s.dialect.Name())
	assert.Equal(t, "nuctab(walletcard)> ", s.prompt())

	s.handleLine(".dialect attrmap")
	assert.Contains(t, errOut.String(), "attribute maps")
	assert.Equal(t, "walletcard", s.dialect.Name())

	s.handleLine(".dialect ensdf")
	assert.Contains(t, errOut.String(), "ensdf")

	s.handleLine(".bogus")
	assert.Contains(t, errOut.String(), "Unknown command: .bogus")

	assert.True(t, s.handleLine(".EXIT"))
}
