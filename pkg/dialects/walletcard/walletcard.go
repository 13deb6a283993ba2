// Package walletcard implements the Nuclear Wallet Cards notation.
//
// Wallet cards write half-lives in upper case, give very short half-lives
// in energy units (EV, KEV, MEV), and put the relation in the uncertainty
// column ("AP", "LT", "GT"). Every other field follows the
// NUBASE notation.
package walletcard

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"github.com/leapstack-labs/nuctab/pkg/dialect"
	"github.com/leapstack-labs/nuctab/pkg/dialects/nubase"
	"github.com/leapstack-labs/nuctab/pkg/nuclide"
	"github.com/leapstack-labs/nuctab/pkg/parser"
	"github.com/leapstack-labs/nuctab/pkg/units"
)

// Name is the registry key of the dialect.
const Name = "walletcard"

// EnergyFactor scales a value written in eV, keV or MeV to the matching
// as, zs or ys half-life.
const EnergyFactor = 0.04562

func init() {
	dialect.Register(Dialect{})
}

// energyUnits maps an energy unit to the time unit its scaled value is
// written in.
var energyUnits = map[string]string{
	"ev":  "as",
	"kev": "zs",
	"mev": "ys",
}

// relationWords are the relations wallet cards write in the uncertainty column.
var relationWords = map[string]nuclide.Relation{
	"ap": nuclide.Approximately,
	"lt": nuclide.Less,
	"le": nuclide.Less,
	"gt": nuclide.Greater,
	"ge": nuclide.Greater,
}

var fold = cases.Fold()

// Dialect is the wallet card notation. The zero value is ready to use.
type Dialect struct {
	nubase.Dialect
}

// Name implements dialect.Dialect.
func (Dialect) Name() string { return Name }

// Description implements dialect.Dialect.
func (Dialect) Description() string {
	return "Nuclear Wallet Cards (case-insensitive half-lives, energy units)"
}

// Build implements dialect.Dialect.
func (d Dialect) Build(e dialect.Entry) (*nuclide.Nuclide, error) {
	return dialect.BuildFromFields(d, e)
}

// ParseHalfLife implements dialect.FieldParser.
func (Dialect) ParseHalfLife(raw string, id nuclide.Identity) (nuclide.HalfLife, error) {
	return ParseHalfLife(raw, id)
}

// ParseHalfLife parses a wallet card half-life: "value unit [uncertainty|relation]",
// "STABLE", "UNBOUND [uncertainty]" or an empty field.
func ParseHalfLife(raw string, id nuclide.Identity) (nuclide.HalfLife, error) {
	items := strings.Fields(fold.String(raw))
	if len(items) == 2 {
		items = append(items, string(nuclide.Unknown))
	}

	switch {
	case len(items) == 0:
		return nuclide.HalfLife{
			Value:       nuclide.UnknownHalfLife(),
			Unit:        string(nuclide.Unknown),
			Uncertainty: nuclide.Unknown,
			Relation:    nuclide.RelationUnknown,
		}, nil

	case items[0] == "stable" || items[0] == "unbound":
		h := nuclide.HalfLife{Value: nuclide.Stable(), Relation: nuclide.Equal}
		if items[0] == "unbound" {
			h.Value = nuclide.Unstable()
		}
		if len(items) > 1 {
			h.Uncertainty = nuclide.Value(items[1])
		}
		return h, nil

	case len(items) == 3:
		return parseMeasured(items, raw, id)

	default:
		return nuclide.HalfLife{}, syntaxError(raw, id, fmt.Sprintf(parser.ErrTokenCount, "value, unit and uncertainty", len(items)))
	}
}

func parseMeasured(items []string, raw string, id nuclide.Identity) (nuclide.HalfLife, error) {
	value, unit, third := items[0], items[1], items[2]

	v, ok := nuclide.Value(value).Float()
	if !ok {
		return nuclide.HalfLife{}, syntaxError(raw, id, fmt.Sprintf(parser.ErrInvalidNumber, value))
	}
	if v <= 0 {
		return nuclide.HalfLife{}, syntaxError(raw, id, fmt.Sprintf(parser.ErrNotPositive, value))
	}

	h := nuclide.HalfLife{
		Value:       nuclide.Measured(nuclide.Value(value)),
		Uncertainty: nuclide.Unknown,
		Relation:    nuclide.Equal,
	}
	if rel, ok := relationWords[third]; ok {
		h.Relation = rel
	} else {
		h.Uncertainty = nuclide.Value(third)
	}

	if timeUnit, ok := energyUnits[unit]; ok {
		h.Value = nuclide.Measured(formatValue(v * EnergyFactor))
		h.Unit = timeUnit
		if dv, ok := h.Uncertainty.Float(); ok {
			h.Uncertainty = formatValue(dv * EnergyFactor)
		}
		return h, nil
	}

	u, ok := units.LookupFold(unit)
	if !ok {
		return nuclide.HalfLife{}, &units.UnknownUnitError{Unit: unit, Input: raw, Nuclide: nuclideName(id)}
	}
	if !u.Numeric() {
		return nuclide.HalfLife{}, syntaxError(raw, id, fmt.Sprintf(parser.ErrNonNumericUnit, u.Symbol))
	}
	h.Unit = u.Symbol
	return h, nil
}

func formatValue(f float64) nuclide.Value {
	return nuclide.Value(strconv.FormatFloat(f, 'g', 5, 64))
}

func syntaxError(raw string, id nuclide.Identity, msg string) error {
	return &parser.SyntaxError{Grammar: parser.GrammarHalfLife, Input: raw, Nuclide: nuclideName(id), Message: msg}
}

func nuclideName(id nuclide.Identity) string {
	if id == nuclide.NoNuclide {
		return ""
	}
	return id.String()
}
