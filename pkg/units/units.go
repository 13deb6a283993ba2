// Package units holds the half-life unit table used by evaluator notations.
//
// Units are split into a short family (base unit: second, 1 d down to 1 ys)
// and a long family (base unit: year, 1 y up to 1 Yy). The table also knows
// a few descriptive tags (stbl, p-unst, n-unst, ?) which evaluators write in
// the unit position but which carry no multiplier.
package units

import (
	"fmt"
	"sort"
	"strings"
)

// SecondsPerYear is the length of a year as adopted by NUBASE2003.
const SecondsPerYear = 31556926

// Family classifies a unit.
type Family uint8

// Unit families.
const (
	Descriptive Family = iota // no multiplier (stbl, p-unst, n-unst, ?)
	Short                     // multiplier is in seconds
	Long                      // multiplier is in years
)

func (f Family) String() string {
	switch f {
	case Short:
		return "short"
	case Long:
		return "long"
	default:
		return "descriptive"
	}
}

// Unit is one entry of the unit table.
type Unit struct {
	Symbol string
	Family Family
	// Factor is the multiplier to the family's base unit. Zero for descriptive tags.
	Factor float64
	// Tag is the meaning of a descriptive unit ("stable", "unstable", "unknown").
	Tag string
}

// Numeric reports whether the unit converts to seconds.
func (u Unit) Numeric() bool {
	return u.Family != Descriptive
}

// Seconds returns the number of seconds in one unit.
func (u Unit) Seconds() float64 {
	switch u.Family {
	case Short:
		return u.Factor
	case Long:
		return u.Factor * SecondsPerYear
	default:
		return 0
	}
}

var table = []Unit{
	{Symbol: "d", Family: Short, Factor: 86400},
	{Symbol: "h", Family: Short, Factor: 3600},
	{Symbol: "m", Family: Short, Factor: 60},
	{Symbol: "s", Family: Short, Factor: 1},
	{Symbol: "ms", Family: Short, Factor: 1e-3},
	{Symbol: "us", Family: Short, Factor: 1e-6},
	{Symbol: "ns", Family: Short, Factor: 1e-9},
	{Symbol: "ps", Family: Short, Factor: 1e-12},
	{Symbol: "fs", Family: Short, Factor: 1e-15},
	{Symbol: "as", Family: Short, Factor: 1e-18},
	{Symbol: "zs", Family: Short, Factor: 1e-21},
	{Symbol: "ys", Family: Short, Factor: 1e-24},

	{Symbol: "stbl", Family: Descriptive, Tag: "stable"},
	{Symbol: "p-unst", Family: Descriptive, Tag: "unstable"},
	{Symbol: "n-unst", Family: Descriptive, Tag: "unstable"},
	{Symbol: "?", Family: Descriptive, Tag: "unknown"},

	{Symbol: "Yy", Family: Long, Factor: 1e24},
	{Symbol: "Zy", Family: Long, Factor: 1e21},
	{Symbol: "Ey", Family: Long, Factor: 1e18},
	{Symbol: "Py", Family: Long, Factor: 1e15},
	{Symbol: "Ty", Family: Long, Factor: 1e12},
	{Symbol: "Gy", Family: Long, Factor: 1e9},
	{Symbol: "My", Family: Long, Factor: 1e6},
	{Symbol: "ky", Family: Long, Factor: 1e3},
	{Symbol: "y", Family: Long, Factor: 1},
}

var (
	bySymbol = make(map[string]Unit, len(table))
	byFolded = make(map[string]Unit, len(table))
)

func init() {
	for _, u := range table {
		bySymbol[u.Symbol] = u
		folded := strings.ToLower(u.Symbol)
		if prev, dup := byFolded[folded]; dup {
			panic(fmt.Sprintf("units: %q and %q collide when case-folded", prev.Symbol, u.Symbol))
		}
		byFolded[folded] = u
	}
}

// Lookup finds a unit by its exact, case-sensitive symbol.
func Lookup(symbol string) (Unit, bool) {
	u, ok := bySymbol[symbol]
	return u, ok
}

// LookupFold finds a unit ignoring case. The folded symbols of the table are
// distinct, so the result is unambiguous.
func LookupFold(symbol string) (Unit, bool) {
	u, ok := byFolded[strings.ToLower(symbol)]
	return u, ok
}

// Seconds returns the seconds multiplier for a numeric unit symbol.
func Seconds(symbol string) (float64, bool) {
	u, ok := bySymbol[symbol]
	if !ok || !u.Numeric() {
		return 0, false
	}
	return u.Seconds(), true
}

// All returns the unit table ordered by family and descending magnitude.
func All() []Unit {
	out := make([]Unit, len(table))
	copy(out, table)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Family != out[j].Family {
			return out[i].Family > out[j].Family
		}
		return out[i].Factor > out[j].Factor
	})
	return out
}

// UnknownUnitError is returned when a unit token is in neither unit family.
type UnknownUnitError struct {
	Unit    string
	Input   string // raw field text, when known
	Nuclide string // owning nuclide, when known
}

func (e *UnknownUnitError) Error() string {
	msg := fmt.Sprintf("unknown half-life unit %q", e.Unit)
	if e.Input != "" {
		msg += fmt.Sprintf(" in %q", e.Input)
	}
	if e.Nuclide != "" {
		msg += fmt.Sprintf(" (nuclide %s)", e.Nuclide)
	}
	return msg
}
