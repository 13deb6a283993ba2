package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/leapstack-labs/nuctab/internal/cli/output"
	"github.com/leapstack-labs/nuctab/pkg/dialect"
	"github.com/leapstack-labs/nuctab/pkg/nuclide"
	"github.com/spf13/cobra"
)

// parseFields are the text fields a FieldParser understands.
var parseFields = []string{
	dialect.FieldMassDefect,
	dialect.FieldHalfLife,
	dialect.FieldSpin,
	dialect.FieldDecayModes,
	dialect.FieldEnergy,
}

// ParseOptions holds options for the parse command.
type ParseOptions struct {
	Z int
	A int
}

// NewParseCommand creates the parse command.
func NewParseCommand() *cobra.Command {
	opts := &ParseOptions{}

	cmd := &cobra.Command{
		Use:   "parse <field> <text>",
		Short: "Parse one evaluator field",
		Long: `Parse a single field with the configured dialect and print its
canonical form, or the precise error the parser reports.

Fields: mass_defect, half_life, spin, decay_modes, energy.`,
		Example: `  # NUBASE half-life
  nuctab parse half_life "211.1 ky 1.2"

  # Decay branches
  nuctab parse decay_modes "B-=100;B-n=0.04 1"

  # Wallet-card energy unit, scaled to attoseconds
  nuctab parse half_life "1.0 EV" --dialect walletcard

  # Name the nuclide in error messages
  nuctab parse half_life "12 parsec" --z 6 --a 12`,
		Args:      cobra.MinimumNArgs(2),
		ValidArgs: parseFields,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args[0], strings.Join(args[1:], " "), opts)
		},
	}

	cmd.Flags().IntVar(&opts.Z, "z", 0, "Proton number of the owning nuclide")
	cmd.Flags().IntVar(&opts.A, "a", 0, "Mass number of the owning nuclide")

	return cmd
}

func runParse(cmd *cobra.Command, field, raw string, opts *ParseOptions) error {
	cc := NewCommandContext(cmd)
	d, err := cc.Dialect()
	if err != nil {
		return err
	}
	p, err := fieldParser(d)
	if err != nil {
		return err
	}
	id, err := nuclide.NewIdentity(opts.Z, opts.A)
	if err != nil {
		return err
	}

	result, err := parseField(p, field, raw, id)
	if err != nil {
		return err
	}
	return renderParsed(cc.Renderer, output.ParseOutput{
		Dialect: d.Name(),
		Field:   field,
		Input:   raw,
		Result:  result,
	})
}

// fieldParser returns d as a FieldParser, or an error for dialects that
// read attribute maps.
func fieldParser(d dialect.Dialect) (dialect.FieldParser, error) {
	p, ok := d.(dialect.FieldParser)
	if !ok {
		return nil, fmt.Errorf("dialect %s reads attribute maps, not text fields", d.Name())
	}
	return p, nil
}

// parseField parses raw as the named field and returns its output form.
func parseField(p dialect.FieldParser, field, raw string, id nuclide.Identity) (any, error) {
	switch strings.ToLower(field) {
	case dialect.FieldMassDefect:
		md, err := p.ParseMassDefect(raw, id)
		if err != nil {
			return nil, err
		}
		return output.MassDefectOutput{
			Value:        md.Value.String(),
			Uncertainty:  md.Uncertainty.String(),
			Extrapolated: md.Extrapolated,
		}, nil
	case dialect.FieldHalfLife:
		h, err := p.ParseHalfLife(raw, id)
		if err != nil {
			return nil, err
		}
		return output.NewHalfLifeOutput(h), nil
	case dialect.FieldSpin:
		s, err := p.ParseSpin(raw, id)
		if err != nil {
			return nil, err
		}
		return output.SpinOutput{Value: s.Value, Extrapolated: s.Extrapolated}, nil
	case dialect.FieldDecayModes:
		modes, err := p.ParseDecayModes(raw, id)
		if err != nil {
			return nil, err
		}
		return output.NewDecayOutputs(modes), nil
	case dialect.FieldEnergy:
		e, err := p.ParseIsomerEnergy(raw, id)
		if err != nil {
			return nil, err
		}
		return output.EnergyOutput{
			Energy:       e.Energy.String(),
			Uncertainty:  e.Uncertainty.String(),
			Extrapolated: e.Extrapolated,
			Method:       e.Method,
		}, nil
	}
	return nil, fmt.Errorf("unknown field %q\nHint: use one of %s", field, strings.Join(parseFields, ", "))
}

func renderParsed(r *output.Renderer, p output.ParseOutput) error {
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(p)
	}

	switch v := p.Result.(type) {
	case output.MassDefectOutput:
		r.KeyValue("Mass defect", formatUncertain(v.Value, v.Uncertainty, "keV"))
		r.KeyValue("Extrapolated", strconv.FormatBool(v.Extrapolated))
	case output.HalfLifeOutput:
		r.KeyValue("Half-life", formatHalfLife(v))
		r.KeyValue("Relation", v.Relation)
		r.KeyValue("Extrapolated", strconv.FormatBool(v.Extrapolated))
		if v.Seconds != nil {
			r.KeyValue("Seconds", strconv.FormatFloat(*v.Seconds, 'g', -1, 64))
		}
	case output.SpinOutput:
		r.KeyValue("Spin", v.Value)
		r.KeyValue("Extrapolated", strconv.FormatBool(v.Extrapolated))
	case []output.DecayOutput:
		renderDecays(r, v)
	case output.EnergyOutput:
		r.KeyValue("Energy", formatUncertain(v.Energy, v.Uncertainty, "keV"))
		r.KeyValue("Extrapolated", strconv.FormatBool(v.Extrapolated))
		r.KeyValue("Method", v.Method)
	}
	return nil
}

func renderDecays(r *output.Renderer, modes []output.DecayOutput) {
	if len(modes) == 0 {
		r.Muted("(no decay modes)")
		return
	}
	rows := make([][]string, len(modes))
	for i, d := range modes {
		rows[i] = []string{d.Mode, d.Relation, d.Value, d.Uncertainty}
	}
	r.Table([]string{"Mode", "Relation", "Value", "Uncertainty"}, rows)
}

func formatUncertain(value, uncertainty, unit string) string {
	s := value
	if uncertainty != "" && uncertainty != string(nuclide.Unknown) {
		s += " ± " + uncertainty
	}
	if unit != "" {
		s += " " + unit
	}
	return s
}

func formatHalfLife(h output.HalfLifeOutput) string {
	s := h.Value
	if h.Relation != string(nuclide.Equal) && h.Relation != string(nuclide.RelationUnknown) {
		s = h.Relation + " " + s
	}
	if h.Value == "stable" || h.Value == "unstable" || h.Value == string(nuclide.Unknown) {
		return s
	}
	return formatUncertain(s, h.Uncertainty, h.Unit)
}
