// Package source reads raw nuclide entries from data files.
//
// Evaluator tables are fixed-width ascii files described by a Layout; the
// XML tables are read and written as attribute maps.
package source

import (
	"fmt"
	"strconv"
	"strings"
)

// Span is a 1-based inclusive column range. End 0 means "to end of line".
type Span struct {
	Start int
	End   int
}

// ParseSpan parses "19-38", "111-" or "7".
func ParseSpan(s string) (Span, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Span{}, nil
	}
	from, to, ranged := strings.Cut(s, "-")
	start, err := strconv.Atoi(strings.TrimSpace(from))
	if err != nil || start < 1 {
		return Span{}, fmt.Errorf("invalid column span %q: start must be a column number >= 1", s)
	}
	if !ranged {
		return Span{Start: start, End: start}, nil
	}
	if strings.TrimSpace(to) == "" {
		return Span{Start: start}, nil
	}
	end, err := strconv.Atoi(strings.TrimSpace(to))
	if err != nil || end < start {
		return Span{}, fmt.Errorf("invalid column span %q: end must be a column number >= %d", s, start)
	}
	return Span{Start: start, End: end}, nil
}

// IsZero reports whether the span is unset.
func (s Span) IsZero() bool {
	return s.Start == 0
}

// Cut returns the columns of line covered by s. Columns past the end of the
// line read as empty.
func (s Span) Cut(line string) string {
	if s.IsZero() || s.Start > len(line) {
		return ""
	}
	end := len(line)
	if s.End > 0 && s.End < end {
		end = s.End
	}
	return line[s.Start-1 : end]
}

func (s Span) String() string {
	switch {
	case s.IsZero():
		return ""
	case s.End == 0:
		return fmt.Sprintf("%d-", s.Start)
	default:
		return fmt.Sprintf("%d-%d", s.Start, s.End)
	}
}

// Layout gives the columns of each field of a fixed-width table. ZZZi holds
// the atomic number times ten plus the state index: 0 for a ground state,
// greater than zero for an excited state of the preceding ground state.
type Layout struct {
	A          Span
	ZZZi       Span
	MassDefect Span
	Energy     Span
	HalfLife   Span
	Spin       Span
	DecayModes Span
	Comment    Span
}

// Column names of a layout, as used in configuration.
const (
	ColumnA          = "a"
	ColumnZZZi       = "zzzi"
	ColumnMassDefect = "mass_defect"
	ColumnEnergy     = "energy"
	ColumnHalfLife   = "half_life"
	ColumnSpin       = "spin"
	ColumnDecayModes = "decay_modes"
	ColumnComment    = "comment"
)

// NubaseLayout is the column layout of the NUBASE2003 ascii table.
var NubaseLayout = Layout{
	A:          Span{1, 3},
	ZZZi:       Span{5, 8},
	MassDefect: Span{19, 38},
	Energy:     Span{39, 60},
	HalfLife:   Span{61, 79},
	Spin:       Span{80, 93},
	DecayModes: Span{111, 0},
}

var defaultLayouts = map[string]Layout{
	"nubase": NubaseLayout,
}

// DefaultLayout returns the built-in layout of a dialect, if it has one.
func DefaultLayout(dialect string) (Layout, bool) {
	l, ok := defaultLayouts[strings.ToLower(dialect)]
	return l, ok
}

// WithColumns returns a copy of l with the named columns replaced.
// Unknown column names and malformed spans are errors.
func (l Layout) WithColumns(columns map[string]string) (Layout, error) {
	for name, text := range columns {
		span, err := ParseSpan(text)
		if err != nil {
			return Layout{}, fmt.Errorf("column %s: %w", name, err)
		}
		field, err := l.column(name)
		if err != nil {
			return Layout{}, err
		}
		*field = span
	}
	return l, nil
}

func (l *Layout) column(name string) (*Span, error) {
	switch strings.ToLower(name) {
	case ColumnA:
		return &l.A, nil
	case ColumnZZZi:
		return &l.ZZZi, nil
	case ColumnMassDefect:
		return &l.MassDefect, nil
	case ColumnEnergy:
		return &l.Energy, nil
	case ColumnHalfLife:
		return &l.HalfLife, nil
	case ColumnSpin:
		return &l.Spin, nil
	case ColumnDecayModes:
		return &l.DecayModes, nil
	case ColumnComment:
		return &l.Comment, nil
	}
	return nil, fmt.Errorf("unknown layout column %q", name)
}

// Validate checks that the identifying columns are set.
func (l Layout) Validate() error {
	if l.A.IsZero() || l.ZZZi.IsZero() {
		return fmt.Errorf("layout must define the %q and %q columns", ColumnA, ColumnZZZi)
	}
	return nil
}
