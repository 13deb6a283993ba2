package nubase

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/nuctab/pkg/dialect"
	"github.com/leapstack-labs/nuctab/pkg/nuclide"
	"github.com/leapstack-labs/nuctab/pkg/parser"
)

// Measurement methods of isomer excitation energies.
const (
	DefaultMethod  = "Gamma spectrometry"
	LargeErrorNote = "Uncertainty of energy is larger than energy itself"
)

var methods = map[string]string{
	"MD": "Mass doublet",
	"RQ": "Reaction energy difference",
	"AD": "Alpha energy difference",
	"BD": "Beta energy difference",
	"p":  "Proton decay",
	"XL": "L X-rays",
	"Nm": "Estimated value from Nilsson model",
	"EU": "Existence under discussion",
	"RN": "Proved not to exist",
	"&":  "Ground state and isomer ordering reversed compared to ENSDF",
}

// ParseIsomerEnergy parses "energy uncertainty [code]". The optional code
// names the measurement method; a trailing numeric token is data, not a code.
func ParseIsomerEnergy(raw string, id nuclide.Identity) (dialect.IsomerEnergy, error) {
	f := parser.Lex(raw, parser.WithExtrapolationMarker())
	if f.Len() < 2 {
		return dialect.IsomerEnergy{}, &parser.SyntaxError{
			Grammar: parser.GrammarIsomer,
			Input:   raw,
			Nuclide: nuclideName(id),
			Message: fmt.Sprintf(parser.ErrTokenCount, "energy and uncertainty", f.Len()),
		}
	}

	e := dialect.IsomerEnergy{
		Energy:       nuclide.Value(f.Literal(0)),
		Uncertainty:  nuclide.Value(f.Literal(1)),
		Extrapolated: f.Extrapolated,
		Method:       DefaultMethod,
	}
	if last := f.Literal(f.Len() - 1); f.Len() >= 3 && !isDigits(last) {
		e.Method = Method(last)
	}
	return e, nil
}

// Method describes a measurement code. A '*' in the code flags an
// uncertainty larger than the energy. Unknown codes are described, not rejected.
func Method(code string) string {
	starred := strings.Contains(code, "*")
	code = strings.TrimSpace(strings.ReplaceAll(code, "*", ""))

	desc, ok := methods[code]
	if !ok {
		desc = fmt.Sprintf("Code '%s' is not documented", code)
	}
	if starred {
		desc += " " + LargeErrorNote
	}
	return desc
}

// MethodCodes returns the documented codes and their descriptions.
func MethodCodes() map[string]string {
	out := make(map[string]string, len(methods))
	for k, v := range methods {
		out[k] = v
	}
	return out
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
