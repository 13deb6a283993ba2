package dialect

import "fmt"

// Field keys of a text entry.
const (
	FieldMassDefect = "mass_defect"
	FieldHalfLife   = "half_life"
	FieldSpin       = "spin"
	FieldDecayModes = "decay_modes"
	FieldEnergy     = "energy"
	FieldComment    = "comment"
)

// Position locates an entry in its source.
type Position struct {
	Source string
	Line   int // 1-based; 0 when the source has no lines
}

// IsValid returns true if the position carries a line.
func (p Position) IsValid() bool {
	return p.Line > 0
}

func (p Position) String() string {
	switch {
	case p.Source == "" && p.Line == 0:
		return "-"
	case p.Line == 0:
		return p.Source
	default:
		return fmt.Sprintf("%s:%d", p.Source, p.Line)
	}
}

// Attributes is one attribute block, e.g. the attributes of <half_life>.
type Attributes map[string]string

// Entry is the raw data of one nuclide as read from a source.
// Text dialects read Fields; the attribute-map dialect reads Attrs and Decays.
type Entry struct {
	Pos Position

	Z string
	A string

	Fields map[string]string

	Attrs  map[string]Attributes
	Decays []Attributes

	Comment string

	// Isomers are excited states, each described like a ground state entry
	// (text dialects use the energy, half_life, decay_modes and comment fields).
	Isomers []Entry
}

// Field returns a text field, or "" if absent.
func (e Entry) Field(key string) string {
	if e.Fields == nil {
		return ""
	}
	return e.Fields[key]
}
