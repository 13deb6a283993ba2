package nuclide

import (
	"fmt"

	"github.com/leapstack-labs/nuctab/pkg/units"
)

// MassDefect is the mass excess in keV.
type MassDefect struct {
	Value        Value
	Uncertainty  Value
	Extrapolated bool
}

// HalfLife is a half-life as written by the evaluator. Unit is a symbol of
// the unit table; no conversion is applied.
type HalfLife struct {
	Value        HalfLifeValue
	Unit         string
	Uncertainty  Value
	Relation     Relation
	Extrapolated bool
}

// Spin is the ground state spin and parity, kept as a free-form token.
type Spin struct {
	Value        string
	Extrapolated bool
}

// DecayMode is one branch of a decay, e.g. {B-, =, 100, 0}.
type DecayMode struct {
	Mode        string
	Relation    Relation
	Value       Value // branching ratio in percent, or "?"
	Uncertainty Value
}

// Isomer is an excited state. Energy is the offset from the ground state in keV.
type Isomer struct {
	Energy       Value
	Uncertainty  Value
	Extrapolated bool
	HalfLife     HalfLife
	DecayModes   []DecayMode
	Comment      string
}

// Validate checks the parts of a half-life the type does not enforce.
func (h HalfLife) Validate(field string) error {
	if h.Relation == "" {
		return &MalformedRecordError{Field: field, Key: "relation", Reason: reasonMissing}
	}
	if !h.Relation.Valid() {
		return &MalformedRecordError{Field: field, Key: "relation", Reason: fmt.Sprintf(reasonUnknownRelation, h.Relation)}
	}
	switch h.Value.Kind {
	case HalfLifeMeasured:
		if h.Value.Number == NotGiven {
			return &MalformedRecordError{Field: field, Key: "value", Reason: reasonMissing}
		}
		u, ok := units.Lookup(h.Unit)
		if !ok || !u.Numeric() {
			return &units.UnknownUnitError{Unit: h.Unit}
		}
	case HalfLifeUnknown, HalfLifeStable, HalfLifeUnstable:
		if h.Unit != "" {
			if _, ok := units.Lookup(h.Unit); !ok {
				return &units.UnknownUnitError{Unit: h.Unit}
			}
		}
	default:
		return &MalformedRecordError{Field: field, Key: "value", Reason: fmt.Sprintf("unknown half-life kind %d", h.Value.Kind)}
	}
	return nil
}

// Validate checks the parts of a decay mode the type does not enforce.
func (d DecayMode) Validate(field string) error {
	if d.Mode == "" {
		return &MalformedRecordError{Field: field, Key: "mode", Reason: reasonMissing}
	}
	if d.Relation == "" {
		return &MalformedRecordError{Field: field, Key: "relation", Reason: reasonMissing}
	}
	if !d.Relation.Valid() {
		return &MalformedRecordError{Field: field, Key: "relation", Reason: fmt.Sprintf(reasonUnknownRelation, d.Relation)}
	}
	return nil
}

// Validate checks an isomer and everything it carries.
func (i Isomer) Validate(field string) error {
	if i.Energy == NotGiven {
		return &MalformedRecordError{Field: field, Key: "energy", Reason: reasonMissing}
	}
	if err := i.HalfLife.Validate(field + ".half_life"); err != nil {
		return err
	}
	for n, d := range i.DecayModes {
		if err := d.Validate(fmt.Sprintf("%s.decay_modes[%d]", field, n)); err != nil {
			return err
		}
	}
	return nil
}

// clone copies the decay mode slice so callers cannot alias record storage.
func (i Isomer) clone() Isomer {
	i.DecayModes = cloneModes(i.DecayModes)
	return i
}

func cloneModes(modes []DecayMode) []DecayMode {
	if modes == nil {
		return nil
	}
	out := make([]DecayMode, len(modes))
	copy(out, modes)
	return out
}
