// Package nuclide defines the canonical record for a nuclide and its isomers.
//
// A Nuclide is built once from a raw source entry. Its structured fields are
// replaced wholesale through validated setters and read back as copies, so a
// record can never be left holding a partially filled sub-record. Unit
// conversion is not done here: parsers store values as written, and the
// derived accessors resolve them on demand.
package nuclide

import (
	"fmt"
)

// Nuclide is the canonical record of one nuclide.
type Nuclide struct {
	id Identity

	massDefect *MassDefect
	halfLife   *HalfLife
	spin       *Spin
	decayModes []DecayMode
	isomers    []Isomer
	comment    string
}

// New creates an empty record for a validated identity.
func New(id Identity) *Nuclide {
	return &Nuclide{id: id}
}

// Identity returns Z and A.
func (n *Nuclide) Identity() Identity {
	return n.id
}

// Z returns the atomic number.
func (n *Nuclide) Z() int { return n.id.Z }

// A returns the mass number.
func (n *Nuclide) A() int { return n.id.A }

// N returns the neutron number A - Z.
func (n *Nuclide) N() int { return n.id.N() }

// SetZ changes the atomic number, keeping A.
func (n *Nuclide) SetZ(z int) error {
	id, err := NewIdentity(z, n.id.A)
	if err != nil {
		return err
	}
	n.id = id
	return nil
}

// SetA changes the mass number, keeping Z.
func (n *Nuclide) SetA(a int) error {
	id, err := NewIdentity(n.id.Z, a)
	if err != nil {
		return err
	}
	n.id = id
	return nil
}

// Element returns the chemical symbol.
func (n *Nuclide) Element() (string, error) {
	return n.id.Element()
}

func (n *Nuclide) String() string {
	return n.id.String()
}

// MassDefect returns the mass defect and whether one is set.
func (n *Nuclide) MassDefect() (MassDefect, bool) {
	if n.massDefect == nil {
		return MassDefect{}, false
	}
	return *n.massDefect, true
}

// SetMassDefect replaces the mass defect.
func (n *Nuclide) SetMassDefect(md MassDefect) {
	n.massDefect = &md
}

// HalfLife returns the half-life and whether one is set.
func (n *Nuclide) HalfLife() (HalfLife, bool) {
	if n.halfLife == nil {
		return HalfLife{}, false
	}
	return *n.halfLife, true
}

// SetHalfLife validates and replaces the half-life.
func (n *Nuclide) SetHalfLife(h HalfLife) error {
	if err := h.Validate("half_life"); err != nil {
		return err
	}
	n.halfLife = &h
	return nil
}

// Spin returns the ground state spin and whether one is set.
func (n *Nuclide) Spin() (Spin, bool) {
	if n.spin == nil {
		return Spin{}, false
	}
	return *n.spin, true
}

// SetSpin replaces the ground state spin.
func (n *Nuclide) SetSpin(s Spin) {
	n.spin = &s
}

// DecayModes returns a copy of the decay modes in source order.
func (n *Nuclide) DecayModes() []DecayMode {
	return cloneModes(n.decayModes)
}

// SetDecayModes validates and replaces all decay modes. Nothing is changed
// if any mode is malformed.
func (n *Nuclide) SetDecayModes(modes []DecayMode) error {
	for i, d := range modes {
		if err := d.Validate(fmt.Sprintf("decay_modes[%d]", i)); err != nil {
			return err
		}
	}
	n.decayModes = cloneModes(modes)
	return nil
}

// AddDecayMode validates and appends one decay mode.
func (n *Nuclide) AddDecayMode(d DecayMode) error {
	if err := d.Validate(fmt.Sprintf("decay_modes[%d]", len(n.decayModes))); err != nil {
		return err
	}
	n.decayModes = append(n.decayModes, d)
	return nil
}

// Isomers returns a copy of the isomers in source order.
func (n *Nuclide) Isomers() []Isomer {
	if n.isomers == nil {
		return nil
	}
	out := make([]Isomer, len(n.isomers))
	for i, iso := range n.isomers {
		out[i] = iso.clone()
	}
	return out
}

// AddIsomer validates and appends an isomer. Isomers are never removed.
func (n *Nuclide) AddIsomer(iso Isomer) error {
	if err := iso.Validate(fmt.Sprintf("isomers[%d]", len(n.isomers))); err != nil {
		return err
	}
	n.isomers = append(n.isomers, iso.clone())
	return nil
}

// AddIsomerDecayMode appends a decay mode to the isomer at index.
func (n *Nuclide) AddIsomerDecayMode(index int, d DecayMode) error {
	if index < 0 || index >= len(n.isomers) {
		return &MalformedRecordError{
			Field:  "isomers",
			Key:    "index",
			Reason: fmt.Sprintf(reasonIndexRange, index, len(n.isomers)),
		}
	}
	field := fmt.Sprintf("isomers[%d].decay_modes[%d]", index, len(n.isomers[index].DecayModes))
	if err := d.Validate(field); err != nil {
		return err
	}
	n.isomers[index].DecayModes = append(n.isomers[index].DecayModes, d)
	return nil
}

// Comment returns the free text comment.
func (n *Nuclide) Comment() string {
	return n.comment
}

// SetComment replaces the comment.
func (n *Nuclide) SetComment(c string) {
	n.comment = c
}
