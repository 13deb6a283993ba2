package parser

import (
	"errors"
	"fmt"
)

// Grammar names one of the field grammars.
type Grammar string

// Field grammars.
const (
	GrammarMassDefect Grammar = "mass_defect"
	GrammarHalfLife   Grammar = "half_life"
	GrammarSpin       Grammar = "spin"
	GrammarDecayModes Grammar = "decay_modes"
	GrammarIsomer     Grammar = "isomer"
)

// ErrSyntax matches every SyntaxError.
var ErrSyntax = errors.New("syntax error")

// Per-grammar sentinels, matched with errors.Is.
var (
	ErrMassDefectSyntax = errors.New("mass defect syntax error")
	ErrHalfLifeSyntax   = errors.New("half-life syntax error")
	ErrDecayModeSyntax  = errors.New("decay mode syntax error")
	ErrIsomerSyntax     = errors.New("isomer syntax error")
)

// SyntaxError is returned when a field does not match its grammar.
type SyntaxError struct {
	Grammar Grammar
	Input   string // raw field text
	Nuclide string // owning nuclide, when known
	Message string
}

func (e *SyntaxError) Error() string {
	if e.Nuclide != "" {
		return fmt.Sprintf("%s syntax error in %q (nuclide %s): %s", e.Grammar, e.Input, e.Nuclide, e.Message)
	}
	return fmt.Sprintf("%s syntax error in %q: %s", e.Grammar, e.Input, e.Message)
}

// Is matches ErrSyntax and the sentinel of the error's grammar.
func (e *SyntaxError) Is(target error) bool {
	if target == ErrSyntax {
		return true
	}
	switch e.Grammar {
	case GrammarMassDefect:
		return target == ErrMassDefectSyntax
	case GrammarHalfLife:
		return target == ErrHalfLifeSyntax
	case GrammarDecayModes:
		return target == ErrDecayModeSyntax
	case GrammarIsomer:
		return target == ErrIsomerSyntax
	}
	return false
}

// Common error messages
const (
	ErrTokenCount      = "expected %s, found %d tokens"
	ErrInvalidNumber   = "invalid number %q"
	ErrNotPositive     = "half-life %q must be a positive finite number"
	ErrShorthandUnit   = "inequality shorthand %q must end in ns, us or fs"
	ErrNonNumericUnit  = "non-numeric unit %q after a measured value"
	ErrMissingRelation = "entry %q has no relation symbol"
	ErrExtraRelation   = "entry %q has more than one relation symbol"
	ErrEmptyMode       = "entry %q has no decay mode"
	ErrEmptyValue      = "entry %q has no value"
)
