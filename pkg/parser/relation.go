package parser

import (
	"strings"

	"github.com/leapstack-labs/nuctab/pkg/nuclide"
)

// comparators is ordered longest first so "<=" wins over "<".
var comparators = []struct {
	text     string
	relation nuclide.Relation
}{
	{"<=", nuclide.LessOrEqual},
	{">=", nuclide.GreaterOrEqual},
	{"≤", nuclide.LessOrEqual},
	{"≥", nuclide.GreaterOrEqual},
	{"<", nuclide.Less},
	{">", nuclide.Greater},
	{"~", nuclide.Approximately},
	{"=", nuclide.Equal},
}

// CutComparator removes a leading comparator from s and returns the
// relation it encodes. ASCII digraphs map to their Unicode relations.
func CutComparator(s string) (nuclide.Relation, string, bool) {
	for _, c := range comparators {
		if rest, ok := strings.CutPrefix(s, c.text); ok {
			return c.relation, rest, true
		}
	}
	return "", s, false
}

// relationSymbols are the symbols a decay mode entry is split on.
const relationSymbols = "=~><≤≥"

// IndexRelation returns the byte offset and relation of the first relation
// symbol in s, or -1.
func IndexRelation(s string) (int, nuclide.Relation) {
	i := strings.IndexAny(s, relationSymbols)
	if i < 0 {
		return -1, ""
	}
	for _, r := range nuclide.Relations() {
		if strings.HasPrefix(s[i:], string(r)) {
			return i, r
		}
	}
	return -1, ""
}
