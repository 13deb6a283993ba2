package nubase

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/nuctab/pkg/nuclide"
	"github.com/leapstack-labs/nuctab/pkg/parser"
	"github.com/leapstack-labs/nuctab/pkg/units"
)

// Units allowed in the one-token inequality shorthand ("<300ns").
var shorthandUnits = []string{"ns", "us", "fs"}

// ParseHalfLife parses a NUBASE half-life field. Accepted shapes:
//
//	""                   unknown
//	"stbl"               stable
//	"p-unst", "n-unst"   unstable, not measured
//	"1.5 ms [0.2]"       value, unit, optional uncertainty
//	"<300 ns"            as above with a comparator on the value
//	">1.2us"             inequality shorthand, ns, us or fs only
func ParseHalfLife(raw string, id nuclide.Identity) (nuclide.HalfLife, error) {
	f := parser.Lex(raw, parser.WithExtrapolationMarker())
	h := nuclide.HalfLife{Extrapolated: f.Extrapolated}

	switch f.Len() {
	case 0:
		h.Value = nuclide.UnknownHalfLife()
		h.Unit = string(nuclide.Unknown)
		h.Uncertainty = nuclide.Unknown
		h.Relation = nuclide.RelationUnknown
		return h, nil

	case 1:
		tok := f.Literal(0)
		if u, ok := units.Lookup(tok); ok && !u.Numeric() && tok != "?" {
			if u.Tag == "stable" {
				h.Value = nuclide.Stable()
			} else {
				h.Value = nuclide.Unstable()
			}
			h.Relation = nuclide.Equal
			return h, nil
		}
		return parseShorthand(h, tok, raw, id)

	case 2, 3:
		rel, value, ok := parser.CutComparator(f.Literal(0))
		if !ok {
			rel = nuclide.Equal
		}
		if err := checkPositive(value, raw, id); err != nil {
			return nuclide.HalfLife{}, err
		}
		unit := f.Literal(1)
		u, ok := units.Lookup(unit)
		if !ok {
			return nuclide.HalfLife{}, &units.UnknownUnitError{Unit: unit, Input: raw, Nuclide: nuclideName(id)}
		}
		if !u.Numeric() {
			return nuclide.HalfLife{}, halfLifeError(raw, id, fmt.Sprintf(parser.ErrNonNumericUnit, unit))
		}
		h.Value = nuclide.Measured(nuclide.Value(value))
		h.Unit = unit
		h.Uncertainty = nuclide.Unknown
		if f.Len() == 3 {
			h.Uncertainty = nuclide.Value(f.Literal(2))
		}
		h.Relation = rel
		return h, nil

	default:
		return nuclide.HalfLife{}, halfLifeError(raw, id, fmt.Sprintf(parser.ErrTokenCount, "at most 3 tokens", f.Len()))
	}
}

func parseShorthand(h nuclide.HalfLife, tok, raw string, id nuclide.Identity) (nuclide.HalfLife, error) {
	rel, rest, ok := parser.CutComparator(tok)
	if !ok || (rel != nuclide.Less && rel != nuclide.Greater) {
		return nuclide.HalfLife{}, halfLifeError(raw, id, fmt.Sprintf(parser.ErrTokenCount, "value and unit", 1))
	}
	for _, unit := range shorthandUnits {
		value, found := strings.CutSuffix(rest, unit)
		if !found {
			continue
		}
		if err := checkPositive(value, raw, id); err != nil {
			return nuclide.HalfLife{}, err
		}
		h.Value = nuclide.Measured(nuclide.Value(value))
		h.Unit = unit
		h.Uncertainty = nuclide.Unknown
		h.Relation = rel
		return h, nil
	}
	return nuclide.HalfLife{}, halfLifeError(raw, id, fmt.Sprintf(parser.ErrShorthandUnit, tok))
}

func checkPositive(value, raw string, id nuclide.Identity) error {
	v, ok := nuclide.Value(value).Float()
	if !ok {
		return halfLifeError(raw, id, fmt.Sprintf(parser.ErrInvalidNumber, value))
	}
	if v <= 0 {
		return halfLifeError(raw, id, fmt.Sprintf(parser.ErrNotPositive, value))
	}
	return nil
}

func halfLifeError(raw string, id nuclide.Identity, msg string) error {
	return &parser.SyntaxError{Grammar: parser.GrammarHalfLife, Input: raw, Nuclide: nuclideName(id), Message: msg}
}
