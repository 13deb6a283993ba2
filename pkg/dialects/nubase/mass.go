package nubase

import (
	"fmt"

	"github.com/leapstack-labs/nuctab/pkg/nuclide"
	"github.com/leapstack-labs/nuctab/pkg/parser"
)

// ParseMassDefect parses "value uncertainty" in keV. An empty field is
// unknown; every other shape is an error.
func ParseMassDefect(raw string, id nuclide.Identity) (nuclide.MassDefect, error) {
	f := parser.Lex(raw, parser.WithExtrapolationMarker())
	md := nuclide.MassDefect{Extrapolated: f.Extrapolated}

	switch f.Len() {
	case 0:
		md.Value = nuclide.Unknown
		md.Uncertainty = nuclide.Unknown
		return md, nil
	case 2:
		for _, lit := range f.Literals() {
			if _, ok := nuclide.Value(lit).Float(); !ok {
				return nuclide.MassDefect{}, massError(raw, id, fmt.Sprintf(parser.ErrInvalidNumber, lit))
			}
		}
		md.Value = nuclide.Value(f.Literal(0))
		md.Uncertainty = nuclide.Value(f.Literal(1))
		return md, nil
	default:
		return nuclide.MassDefect{}, massError(raw, id, fmt.Sprintf(parser.ErrTokenCount, "value and uncertainty", f.Len()))
	}
}

func massError(raw string, id nuclide.Identity, msg string) error {
	return &parser.SyntaxError{Grammar: parser.GrammarMassDefect, Input: raw, Nuclide: nuclideName(id), Message: msg}
}
