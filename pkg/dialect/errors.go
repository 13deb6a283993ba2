package dialect

import (
	"fmt"
	"strings"
)

// FieldError attaches the field name to a parse or validation error.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// EntryError reports why an entry produced no record.
type EntryError struct {
	Pos     Position
	Nuclide string
	Err     error
}

func (e *EntryError) Error() string {
	var b strings.Builder
	b.WriteString(e.Pos.String())
	if e.Nuclide != "" {
		b.WriteString(": ")
		b.WriteString(e.Nuclide)
	}
	b.WriteString(": ")
	b.WriteString(strings.ReplaceAll(e.Err.Error(), "\n", "; "))
	return b.String()
}

func (e *EntryError) Unwrap() error {
	return e.Err
}

// UnknownDialectError is returned when an unknown dialect is requested.
type UnknownDialectError struct {
	Name      string
	Available []string
}

func (e *UnknownDialectError) Error() string {
	return fmt.Sprintf("unknown dialect %q\nAvailable dialects: %v\nHint: Check the dialect setting in nuctab.yaml", e.Name, e.Available)
}
