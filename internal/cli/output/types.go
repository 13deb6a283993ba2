package output

import (
	"time"

	"github.com/leapstack-labs/nuctab/pkg/nuclide"
)

// NuclideOutput is the JSON and YAML form of a nuclide.
type NuclideOutput struct {
	Nuclide    string            `json:"nuclide" yaml:"nuclide"`
	Z          int               `json:"z" yaml:"z"`
	A          int               `json:"a" yaml:"a"`
	N          int               `json:"n" yaml:"n"`
	Element    string            `json:"element" yaml:"element"`
	MassDefect *MassDefectOutput `json:"mass_defect,omitempty" yaml:"mass_defect,omitempty"`
	MassMeV    *float64          `json:"mass_mev,omitempty" yaml:"mass_mev,omitempty"`
	HalfLife   *HalfLifeOutput   `json:"half_life,omitempty" yaml:"half_life,omitempty"`
	Spin       *SpinOutput       `json:"spin,omitempty" yaml:"spin,omitempty"`
	DecayModes []DecayOutput     `json:"decay_modes" yaml:"decay_modes"`
	Isomers    []IsomerOutput    `json:"isomers,omitempty" yaml:"isomers,omitempty"`
	Comment    string            `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// MassDefectOutput is a mass defect in keV.
type MassDefectOutput struct {
	Value        string `json:"value" yaml:"value"`
	Uncertainty  string `json:"uncertainty" yaml:"uncertainty"`
	Extrapolated bool   `json:"extrapolated" yaml:"extrapolated"`
}

// HalfLifeOutput is a half-life as written, plus its value in seconds
// when it converts.
type HalfLifeOutput struct {
	Value        string   `json:"value" yaml:"value"`
	Unit         string   `json:"unit" yaml:"unit"`
	Uncertainty  string   `json:"uncertainty" yaml:"uncertainty"`
	Relation     string   `json:"relation" yaml:"relation"`
	Extrapolated bool     `json:"extrapolated" yaml:"extrapolated"`
	Seconds      *float64 `json:"seconds,omitempty" yaml:"seconds,omitempty"`
}

// SpinOutput is a spin and parity token.
type SpinOutput struct {
	Value        string `json:"value" yaml:"value"`
	Extrapolated bool   `json:"extrapolated" yaml:"extrapolated"`
}

// DecayOutput is one decay branch.
type DecayOutput struct {
	Mode        string `json:"mode" yaml:"mode"`
	Relation    string `json:"relation" yaml:"relation"`
	Value       string `json:"value" yaml:"value"`
	Uncertainty string `json:"uncertainty" yaml:"uncertainty"`
}

// IsomerOutput is an excited state.
type IsomerOutput struct {
	Energy       string         `json:"energy" yaml:"energy"`
	Uncertainty  string         `json:"uncertainty" yaml:"uncertainty"`
	Extrapolated bool           `json:"extrapolated" yaml:"extrapolated"`
	HalfLife     HalfLifeOutput `json:"half_life" yaml:"half_life"`
	DecayModes   []DecayOutput  `json:"decay_modes" yaml:"decay_modes"`
	Comment      string         `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// NewNuclideOutput converts a nuclide to its output form.
func NewNuclideOutput(n *nuclide.Nuclide) NuclideOutput {
	out := NuclideOutput{
		Nuclide:    n.String(),
		Z:          n.Z(),
		A:          n.A(),
		N:          n.N(),
		DecayModes: NewDecayOutputs(n.DecayModes()),
		Comment:    n.Comment(),
	}
	out.Element, _ = n.Element()

	if md, ok := n.MassDefect(); ok {
		out.MassDefect = &MassDefectOutput{
			Value:        md.Value.String(),
			Uncertainty:  md.Uncertainty.String(),
			Extrapolated: md.Extrapolated,
		}
	}
	if m, ok := n.ExperimentalMass(); ok {
		out.MassMeV = &m.Value
	}
	if h, ok := n.HalfLife(); ok {
		hl := NewHalfLifeOutput(h)
		out.HalfLife = &hl
	}
	if s, ok := n.Spin(); ok {
		out.Spin = &SpinOutput{Value: s.Value, Extrapolated: s.Extrapolated}
	}
	for _, iso := range n.Isomers() {
		out.Isomers = append(out.Isomers, IsomerOutput{
			Energy:       iso.Energy.String(),
			Uncertainty:  iso.Uncertainty.String(),
			Extrapolated: iso.Extrapolated,
			HalfLife:     NewHalfLifeOutput(iso.HalfLife),
			DecayModes:   NewDecayOutputs(iso.DecayModes),
			Comment:      iso.Comment,
		})
	}
	return out
}

// NewHalfLifeOutput converts a half-life to its output form.
func NewHalfLifeOutput(h nuclide.HalfLife) HalfLifeOutput {
	out := HalfLifeOutput{
		Value:        h.Value.String(),
		Unit:         h.Unit,
		Uncertainty:  h.Uncertainty.String(),
		Relation:     h.Relation.String(),
		Extrapolated: h.Extrapolated,
	}
	if s := nuclide.ToSeconds(h); s.Kind == nuclide.SecondsMeasured {
		out.Seconds = &s.Value
	}
	return out
}

// NewDecayOutputs converts decay modes to their output form. The result is
// never nil so that JSON shows an empty list.
func NewDecayOutputs(modes []nuclide.DecayMode) []DecayOutput {
	out := make([]DecayOutput, 0, len(modes))
	for _, d := range modes {
		out = append(out, DecayOutput{
			Mode:        d.Mode,
			Relation:    d.Relation.String(),
			Value:       d.Value.String(),
			Uncertainty: d.Uncertainty.String(),
		})
	}
	return out
}

// LoadOutput summarizes a load command.
type LoadOutput struct {
	Source   string        `json:"source"`
	Dialect  string        `json:"dialect"`
	Loaded   int           `json:"loaded"`
	Filtered int           `json:"filtered"`
	Failures []string      `json:"failures"`
	Skipped  []string      `json:"skipped"`
	Limits   *LimitsOutput `json:"limits,omitempty"`
	SavedAs  string        `json:"saved_as,omitempty"`
}

// LimitsOutput holds the observed N and Z extremes of a table.
type LimitsOutput struct {
	NMin int `json:"n_min"`
	NMax int `json:"n_max"`
	ZMin int `json:"z_min"`
	ZMax int `json:"z_max"`
}

// TableOutput describes a saved table.
type TableOutput struct {
	Name      string    `json:"name"`
	Dialect   string    `json:"dialect"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
	Count     int       `json:"count"`
}

// UnitOutput is one entry of the unit table.
type UnitOutput struct {
	Symbol  string  `json:"symbol"`
	Family  string  `json:"family"`
	Seconds float64 `json:"seconds,omitempty"`
	Tag     string  `json:"tag,omitempty"`
}

// DialectOutput describes a registered dialect.
type DialectOutput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Default     bool   `json:"default"`
}

// ParseOutput is the result of parsing one field.
type ParseOutput struct {
	Dialect string `json:"dialect"`
	Field   string `json:"field"`
	Input   string `json:"input"`
	Result  any    `json:"result"`
}

// EnergyOutput is a parsed isomer energy column.
type EnergyOutput struct {
	Energy       string `json:"energy" yaml:"energy"`
	Uncertainty  string `json:"uncertainty" yaml:"uncertainty"`
	Extrapolated bool   `json:"extrapolated" yaml:"extrapolated"`
	Method       string `json:"method" yaml:"method"`
}
