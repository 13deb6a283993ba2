package nubase

import (
	"github.com/leapstack-labs/nuctab/pkg/nuclide"
	"github.com/leapstack-labs/nuctab/pkg/parser"
)

// ParseSpin keeps the spin and parity text as written, minus markers.
// Spin assignments are free-form ("(3/2-)", "1/2+*", "high") and never fail.
func ParseSpin(raw string) nuclide.Spin {
	f := parser.Lex(raw, parser.WithExtrapolationMarker())
	return nuclide.Spin{Value: f.Text(), Extrapolated: f.Extrapolated}
}
