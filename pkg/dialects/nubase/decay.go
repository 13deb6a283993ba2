package nubase

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/nuctab/pkg/nuclide"
	"github.com/leapstack-labs/nuctab/pkg/parser"
)

// legacy rewrites Fortran-era comparators into relation symbols.
var legacy = strings.NewReplacer(
	"le", string(nuclide.LessOrEqual),
	"ge", string(nuclide.GreaterOrEqual),
	"<=", string(nuclide.LessOrEqual),
	">=", string(nuclide.GreaterOrEqual),
)

// placeholder is an entry some tables use for "more branches"; it is skipped.
const placeholder = "..."

// ParseDecayModes parses a ';' separated list such as "B-=100" or
// "A=90 5;B+ ?;IT=100[gs]". Bracketed annotations are dropped. An empty
// field yields a single unknown entry so the record always lists a mode.
func ParseDecayModes(raw string, id nuclide.Identity) ([]nuclide.DecayMode, error) {
	text := stripAnnotations(legacy.Replace(raw))

	if strings.TrimSpace(text) == "" {
		return []nuclide.DecayMode{{
			Mode:     string(nuclide.Unknown),
			Relation: nuclide.RelationUnknown,
		}}, nil
	}

	modes := []nuclide.DecayMode{}
	for _, item := range strings.Split(text, ";") {
		item = strings.TrimSpace(item)
		if item == placeholder {
			continue
		}
		d, err := parseDecayMode(item, raw, id)
		if err != nil {
			return nil, err
		}
		modes = append(modes, d)
	}
	return modes, nil
}

// parseDecayMode splits one entry on its relation symbol.
func parseDecayMode(item, raw string, id nuclide.Identity) (nuclide.DecayMode, error) {
	if item == "" {
		return nuclide.DecayMode{}, decayError(raw, id, fmt.Sprintf(parser.ErrEmptyMode, item))
	}
	// "B- ?" is the unknown-ratio form of "B-=?".
	if !strings.Contains(item, "=") && strings.Contains(item, " ?") {
		item = strings.Replace(item, " ?", "=?", 1)
	}

	i, rel := parser.IndexRelation(item)
	if i < 0 {
		return nuclide.DecayMode{}, decayError(raw, id, fmt.Sprintf(parser.ErrMissingRelation, item))
	}
	mode := strings.TrimSpace(item[:i])
	rest := item[i+len(rel):]

	if mode == "" {
		return nuclide.DecayMode{}, decayError(raw, id, fmt.Sprintf(parser.ErrEmptyMode, item))
	}
	if j, _ := parser.IndexRelation(rest); j >= 0 {
		return nuclide.DecayMode{}, decayError(raw, id, fmt.Sprintf(parser.ErrExtraRelation, item))
	}

	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return nuclide.DecayMode{}, decayError(raw, id, fmt.Sprintf(parser.ErrEmptyValue, item))
	}
	d := nuclide.DecayMode{
		Mode:        mode,
		Relation:    rel,
		Value:       nuclide.Value(fields[0]),
		Uncertainty: "0",
	}
	if len(fields) > 1 {
		d.Uncertainty = nuclide.Value(fields[1])
	}
	return d, nil
}

// stripAnnotations removes every "[...]" group. An unclosed '[' drops the
// rest of the text.
func stripAnnotations(s string) string {
	for {
		begin := strings.IndexByte(s, '[')
		if begin < 0 {
			return s
		}
		end := strings.IndexByte(s[begin:], ']')
		if end < 0 {
			return s[:begin]
		}
		s = s[:begin] + s[begin+end+1:]
	}
}

func decayError(raw string, id nuclide.Identity, msg string) error {
	return &parser.SyntaxError{Grammar: parser.GrammarDecayModes, Input: raw, Nuclide: nuclideName(id), Message: msg}
}
