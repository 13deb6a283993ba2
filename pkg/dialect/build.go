package dialect

import (
	"errors"
	"fmt"
	"strings"

	"github.com/leapstack-labs/nuctab/pkg/nuclide"
)

// BuildFromFields assembles a record from a text entry using p for every
// field. All fields are parsed even after a failure so the error lists
// every bad field of the entry.
func BuildFromFields(p FieldParser, e Entry) (*nuclide.Nuclide, error) {
	id, err := nuclide.ParseIdentity(e.Z, e.A)
	if err != nil {
		return nil, &EntryError{Pos: e.Pos, Err: err}
	}

	n := nuclide.New(id)
	var errs []error
	fail := func(field string, err error) {
		errs = append(errs, &FieldError{Field: field, Err: err})
	}

	if md, err := p.ParseMassDefect(e.Field(FieldMassDefect), id); err != nil {
		fail(FieldMassDefect, err)
	} else {
		n.SetMassDefect(md)
	}

	if hl, err := p.ParseHalfLife(e.Field(FieldHalfLife), id); err != nil {
		fail(FieldHalfLife, err)
	} else if err := n.SetHalfLife(hl); err != nil {
		fail(FieldHalfLife, err)
	}

	if spin, err := p.ParseSpin(e.Field(FieldSpin), id); err != nil {
		fail(FieldSpin, err)
	} else {
		n.SetSpin(spin)
	}

	if modes, err := p.ParseDecayModes(e.Field(FieldDecayModes), id); err != nil {
		fail(FieldDecayModes, err)
	} else if err := n.SetDecayModes(modes); err != nil {
		fail(FieldDecayModes, err)
	}

	comment := e.Comment
	if comment == "" {
		comment = e.Field(FieldComment)
	}
	n.SetComment(comment)

	for i, ie := range e.Isomers {
		iso, isoErrs := buildIsomer(p, ie, id)
		if len(isoErrs) > 0 {
			for _, err := range isoErrs {
				fail(fmt.Sprintf("isomers[%d]", i), err)
			}
			continue
		}
		if err := n.AddIsomer(iso); err != nil {
			fail(fmt.Sprintf("isomers[%d]", i), err)
		}
	}

	if len(errs) > 0 {
		return nil, &EntryError{Pos: e.Pos, Nuclide: id.String(), Err: errors.Join(errs...)}
	}
	return n, nil
}

func buildIsomer(p FieldParser, e Entry, id nuclide.Identity) (nuclide.Isomer, []error) {
	var errs []error

	energy, err := p.ParseIsomerEnergy(e.Field(FieldEnergy), id)
	if err != nil {
		errs = append(errs, &FieldError{Field: FieldEnergy, Err: err})
	}
	hl, err := p.ParseHalfLife(e.Field(FieldHalfLife), id)
	if err != nil {
		errs = append(errs, &FieldError{Field: FieldHalfLife, Err: err})
	}
	modes, err := p.ParseDecayModes(e.Field(FieldDecayModes), id)
	if err != nil {
		errs = append(errs, &FieldError{Field: FieldDecayModes, Err: err})
	}
	if len(errs) > 0 {
		return nuclide.Isomer{}, errs
	}

	comment := e.Comment
	if comment == "" {
		comment = e.Field(FieldComment)
	}
	return nuclide.Isomer{
		Energy:       energy.Energy,
		Uncertainty:  energy.Uncertainty,
		Extrapolated: energy.Extrapolated,
		HalfLife:     hl,
		DecayModes:   modes,
		Comment:      strings.TrimSpace(energy.Method + " " + comment),
	}, nil
}
