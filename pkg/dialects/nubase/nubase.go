// Package nubase implements the NUBASE evaluator notation.
//
// Every field may carry a '#' marker meaning the value was extrapolated
// from systematics rather than measured. The marker is recorded on the
// field and otherwise read as whitespace.
package nubase

import (
	"github.com/leapstack-labs/nuctab/pkg/dialect"
	"github.com/leapstack-labs/nuctab/pkg/nuclide"
)

// Name is the registry key of the dialect.
const Name = "nubase"

func init() {
	dialect.Register(Dialect{})
}

// Dialect is the NUBASE notation. The zero value is ready to use.
type Dialect struct{}

// Name implements dialect.Dialect.
func (Dialect) Name() string { return Name }

// Description implements dialect.Dialect.
func (Dialect) Description() string {
	return "NUBASE evaluation ascii tables ('#' marks extrapolated values)"
}

// Build implements dialect.Dialect.
func (d Dialect) Build(e dialect.Entry) (*nuclide.Nuclide, error) {
	return dialect.BuildFromFields(d, e)
}

// ParseMassDefect implements dialect.FieldParser.
func (Dialect) ParseMassDefect(raw string, id nuclide.Identity) (nuclide.MassDefect, error) {
	return ParseMassDefect(raw, id)
}

// ParseHalfLife implements dialect.FieldParser.
func (Dialect) ParseHalfLife(raw string, id nuclide.Identity) (nuclide.HalfLife, error) {
	return ParseHalfLife(raw, id)
}

// ParseSpin implements dialect.FieldParser.
func (Dialect) ParseSpin(raw string, _ nuclide.Identity) (nuclide.Spin, error) {
	return ParseSpin(raw), nil
}

// ParseDecayModes implements dialect.FieldParser.
func (Dialect) ParseDecayModes(raw string, id nuclide.Identity) ([]nuclide.DecayMode, error) {
	return ParseDecayModes(raw, id)
}

// ParseIsomerEnergy implements dialect.FieldParser.
func (Dialect) ParseIsomerEnergy(raw string, id nuclide.Identity) (dialect.IsomerEnergy, error) {
	return ParseIsomerEnergy(raw, id)
}

// nuclideName is the identity as shown in errors; empty for NoNuclide.
func nuclideName(id nuclide.Identity) string {
	if id == nuclide.NoNuclide {
		return ""
	}
	return id.String()
}
