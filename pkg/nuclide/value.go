package nuclide

import (
	"math"
	"strconv"
	"strings"
)

// Value is a number as written by the evaluator. It is kept as text so a
// record re-serializes exactly as read; Float resolves it numerically.
type Value string

// Special values.
const (
	// Unknown marks a quantity the source explicitly leaves unknown.
	Unknown Value = "?"
	// NotGiven marks a quantity the source does not carry at all.
	NotGiven Value = ""
)

// Float parses the value. It reports false for unknown, empty or
// non-numeric text.
func (v Value) Float() (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(string(v)), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// IsUnknown reports whether the value is the unknown marker.
func (v Value) IsUnknown() bool {
	return v == Unknown
}

func (v Value) String() string {
	return string(v)
}

// Relation qualifies a measured value.
type Relation string

// Relations used by evaluators.
const (
	Equal          Relation = "="
	Less           Relation = "<"
	Greater        Relation = ">"
	Approximately  Relation = "~"
	LessOrEqual    Relation = "≤"
	GreaterOrEqual Relation = "≥"
	// RelationUnknown is used where the source carries no data at all.
	RelationUnknown Relation = "?"
)

// Relations returns the six comparison relations in matching order.
func Relations() []Relation {
	return []Relation{Equal, Approximately, Greater, Less, LessOrEqual, GreaterOrEqual}
}

// Valid reports whether r is a known relation. The zero value is not valid.
func (r Relation) Valid() bool {
	switch r {
	case Equal, Less, Greater, Approximately, LessOrEqual, GreaterOrEqual, RelationUnknown:
		return true
	}
	return false
}

func (r Relation) String() string {
	return string(r)
}

// HalfLifeKind tags the variant held by a HalfLifeValue.
type HalfLifeKind uint8

// Half-life variants.
const (
	HalfLifeUnknown HalfLifeKind = iota
	HalfLifeMeasured
	HalfLifeStable
	HalfLifeUnstable
)

func (k HalfLifeKind) String() string {
	switch k {
	case HalfLifeMeasured:
		return "measured"
	case HalfLifeStable:
		return "stable"
	case HalfLifeUnstable:
		return "unstable"
	default:
		return "unknown"
	}
}

// HalfLifeValue is a measured number, or one of the stable, unstable and
// unknown markers.
type HalfLifeValue struct {
	Kind   HalfLifeKind
	Number Value // set only for HalfLifeMeasured
}

// Measured returns a measured half-life value.
func Measured(v Value) HalfLifeValue {
	return HalfLifeValue{Kind: HalfLifeMeasured, Number: v}
}

// Stable returns the stable marker.
func Stable() HalfLifeValue {
	return HalfLifeValue{Kind: HalfLifeStable}
}

// Unstable returns the unstable-but-unmeasured marker (p-unst, n-unst, unbound).
func Unstable() HalfLifeValue {
	return HalfLifeValue{Kind: HalfLifeUnstable}
}

// UnknownHalfLife returns the unknown marker.
func UnknownHalfLife() HalfLifeValue {
	return HalfLifeValue{Kind: HalfLifeUnknown}
}

// String renders the value the way it is written in tables and XML.
func (h HalfLifeValue) String() string {
	switch h.Kind {
	case HalfLifeMeasured:
		return string(h.Number)
	case HalfLifeStable:
		return "stable"
	case HalfLifeUnstable:
		return "unstable"
	default:
		return string(Unknown)
	}
}

// ParseHalfLifeValue is the inverse of HalfLifeValue.String.
func ParseHalfLifeValue(s string) HalfLifeValue {
	switch strings.TrimSpace(s) {
	case "stable":
		return Stable()
	case "unstable":
		return Unstable()
	case "?", "":
		return UnknownHalfLife()
	default:
		return Measured(Value(strings.TrimSpace(s)))
	}
}
