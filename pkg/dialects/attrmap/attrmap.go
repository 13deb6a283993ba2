// Package attrmap builds records from attribute maps, the shape of the XML
// nuclear data tables. Fields are already split into named attributes, so
// nothing is tokenized: the dialect only checks that every required key is
// present and hands the values to the validated setters.
package attrmap

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/nuctab/pkg/dialect"
	"github.com/leapstack-labs/nuctab/pkg/nuclide"
)

// Name is the registry key of the dialect.
const Name = "attrmap"

// Attribute blocks of an entry.
const (
	BlockMassDefect = "mass_defect"
	BlockHalfLife   = "half_life"
	BlockSpin       = "spin"
	BlockIsomer     = "isomer"
)

func init() {
	dialect.Register(Dialect{})
}

// Dialect decodes attribute maps. The zero value is ready to use.
type Dialect struct{}

// Name implements dialect.Dialect.
func (Dialect) Name() string { return Name }

// Description implements dialect.Dialect.
func (Dialect) Description() string {
	return "attribute maps as found in XML nuclear data tables"
}

type massDefectAttrs struct {
	Value        string `mapstructure:"value"`
	Uncertainty  string `mapstructure:"uncertainty"`
	Extrapolated bool   `mapstructure:"extrapolated"`
}

type halfLifeAttrs struct {
	Value        string `mapstructure:"value"`
	Unit         string `mapstructure:"unit"`
	Uncertainty  string `mapstructure:"uncertainty"`
	Relation     string `mapstructure:"relation"`
	Extrapolated bool   `mapstructure:"extrapolated"`
}

type spinAttrs struct {
	Value        string `mapstructure:"value"`
	Extrapolated bool   `mapstructure:"extrapolated"`
}

type decayAttrs struct {
	Mode        string `mapstructure:"mode"`
	Relation    string `mapstructure:"relation"`
	Value       string `mapstructure:"value"`
	Uncertainty string `mapstructure:"uncertainty"`
}

type isomerAttrs struct {
	Energy       string `mapstructure:"energy"`
	Uncertainty  string `mapstructure:"uncertainty"`
	Extrapolated bool   `mapstructure:"extrapolated"`
}

// Build implements dialect.Dialect.
func (Dialect) Build(e dialect.Entry) (*nuclide.Nuclide, error) {
	id, err := nuclide.ParseIdentity(e.Z, e.A)
	if err != nil {
		return nil, &dialect.EntryError{Pos: e.Pos, Err: err}
	}

	n := nuclide.New(id)
	var errs []error
	fail := func(field string, err error) {
		errs = append(errs, &dialect.FieldError{Field: field, Err: err})
	}

	if md, err := MassDefect(e.Attrs[BlockMassDefect]); err != nil {
		fail(BlockMassDefect, err)
	} else {
		n.SetMassDefect(md)
	}

	if hl, err := HalfLife(BlockHalfLife, e.Attrs[BlockHalfLife]); err != nil {
		fail(BlockHalfLife, err)
	} else if err := n.SetHalfLife(hl); err != nil {
		fail(BlockHalfLife, err)
	}

	if spin, err := Spin(e.Attrs[BlockSpin]); err != nil {
		fail(BlockSpin, err)
	} else {
		n.SetSpin(spin)
	}

	if modes, err := DecayModes("decay_modes", e.Decays); err != nil {
		fail("decay_modes", err)
	} else if err := n.SetDecayModes(modes); err != nil {
		fail("decay_modes", err)
	}

	n.SetComment(e.Comment)

	for i, ie := range e.Isomers {
		field := fmt.Sprintf("isomers[%d]", i)
		iso, err := Isomer(field, ie)
		if err == nil {
			err = n.AddIsomer(iso)
		}
		if err != nil {
			fail(field, err)
		}
	}

	if len(errs) > 0 {
		return nil, &dialect.EntryError{Pos: e.Pos, Nuclide: id.String(), Err: errors.Join(errs...)}
	}
	return n, nil
}

// MassDefect decodes a mass_defect block.
func MassDefect(attrs dialect.Attributes) (nuclide.MassDefect, error) {
	var a massDefectAttrs
	if err := decode(BlockMassDefect, attrs, &a); err != nil {
		return nuclide.MassDefect{}, err
	}
	return nuclide.MassDefect{
		Value:        nuclide.Value(a.Value),
		Uncertainty:  nuclide.Value(a.Uncertainty),
		Extrapolated: a.Extrapolated,
	}, nil
}

// HalfLife decodes a half_life block. The value text "stable", "unstable"
// and "?" select the matching variant; anything else is a measured value.
func HalfLife(field string, attrs dialect.Attributes) (nuclide.HalfLife, error) {
	var a halfLifeAttrs
	if err := decode(field, attrs, &a); err != nil {
		return nuclide.HalfLife{}, err
	}
	return nuclide.HalfLife{
		Value:        nuclide.ParseHalfLifeValue(a.Value),
		Unit:         a.Unit,
		Uncertainty:  nuclide.Value(a.Uncertainty),
		Relation:     relation(a.Relation),
		Extrapolated: a.Extrapolated,
	}, nil
}

// Spin decodes a spin block.
func Spin(attrs dialect.Attributes) (nuclide.Spin, error) {
	var a spinAttrs
	if err := decode(BlockSpin, attrs, &a); err != nil {
		return nuclide.Spin{}, err
	}
	return nuclide.Spin{Value: a.Value, Extrapolated: a.Extrapolated}, nil
}

// DecayModes decodes decay blocks in order.
func DecayModes(field string, decays []dialect.Attributes) ([]nuclide.DecayMode, error) {
	modes := make([]nuclide.DecayMode, 0, len(decays))
	for i, attrs := range decays {
		var a decayAttrs
		if err := decode(fmt.Sprintf("%s[%d]", field, i), attrs, &a); err != nil {
			return nil, err
		}
		modes = append(modes, nuclide.DecayMode{
			Mode:        a.Mode,
			Relation:    relation(a.Relation),
			Value:       nuclide.Value(a.Value),
			Uncertainty: nuclide.Value(a.Uncertainty),
		})
	}
	return modes, nil
}

// relation reads a relation attribute. The key is required, but an empty
// value is written for modes with no data and reads as unknown.
func relation(s string) nuclide.Relation {
	if s == "" {
		return nuclide.RelationUnknown
	}
	return nuclide.Relation(s)
}

// Isomer decodes an isomer entry: its isomer block, its own half_life block
// and its own decays.
func Isomer(field string, e dialect.Entry) (nuclide.Isomer, error) {
	var a isomerAttrs
	if err := decode(field, e.Attrs[BlockIsomer], &a); err != nil {
		return nuclide.Isomer{}, err
	}
	hl, err := HalfLife(field+".half_life", e.Attrs[BlockHalfLife])
	if err != nil {
		return nuclide.Isomer{}, err
	}
	modes, err := DecayModes(field+".decay_modes", e.Decays)
	if err != nil {
		return nuclide.Isomer{}, err
	}
	return nuclide.Isomer{
		Energy:       nuclide.Value(a.Energy),
		Uncertainty:  nuclide.Value(a.Uncertainty),
		Extrapolated: a.Extrapolated,
		HalfLife:     hl,
		DecayModes:   modes,
		Comment:      e.Comment,
	}, nil
}
