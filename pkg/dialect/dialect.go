// Package dialect provides the contract shared by every evaluator notation.
//
// A dialect turns a raw Entry (the text or attribute fields of one nuclide as
// read from a source file) into a canonical nuclide.Nuclide. Concrete
// dialects are registered from pkg/dialects/*/ packages.
package dialect

import (
	"github.com/leapstack-labs/nuctab/pkg/nuclide"
)

// Dialect builds canonical records from raw entries.
type Dialect interface {
	// Name is the registry key, e.g. "nubase".
	Name() string
	// Description is a one-line summary for help output.
	Description() string
	// Build parses every field of e. When any field fails the record is
	// discarded and the returned *EntryError lists every failing field.
	Build(e Entry) (*nuclide.Nuclide, error)
}

// FieldParser is implemented by dialects whose fields are strings.
// Every method is a pure function of its input.
type FieldParser interface {
	ParseMassDefect(raw string, id nuclide.Identity) (nuclide.MassDefect, error)
	ParseHalfLife(raw string, id nuclide.Identity) (nuclide.HalfLife, error)
	ParseSpin(raw string, id nuclide.Identity) (nuclide.Spin, error)
	ParseDecayModes(raw string, id nuclide.Identity) ([]nuclide.DecayMode, error)
	ParseIsomerEnergy(raw string, id nuclide.Identity) (IsomerEnergy, error)
}

// IsomerEnergy is the parsed energy column of an isomer line.
type IsomerEnergy struct {
	Energy       nuclide.Value
	Uncertainty  nuclide.Value
	Extrapolated bool
	// Method is the human-readable measurement method.
	Method string
}
