package nuclide

import "fmt"

// InvalidIdentityError is returned for a bad atomic number Z or mass number A.
type InvalidIdentityError struct {
	Field string // "Z" or "A"
	Input string // raw text, when the value came from a string
	Value int
	Reason string
}

func (e *InvalidIdentityError) Error() string {
	if e.Input != "" {
		return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Input, e.Reason)
	}
	return fmt.Sprintf("invalid %s %d: %s", e.Field, e.Value, e.Reason)
}

// MalformedRecordError is returned when a structured sub-record lacks a
// required key or carries a key the record cannot accept.
type MalformedRecordError struct {
	Field  string // e.g. "half_life", "decay_modes[2]", "isomers[0].half_life"
	Key    string // e.g. "relation"
	Reason string
}

func (e *MalformedRecordError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = "missing required key"
	}
	return fmt.Sprintf("malformed %s record: key %q: %s", e.Field, e.Key, reason)
}

// Common error reasons
const (
	reasonMissing         = "missing required key"
	reasonUnknownRelation = "unknown relation %q"
	reasonIndexRange      = "isomer index %d out of range (have %d)"
)
