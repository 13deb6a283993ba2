package nuclide

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/leapstack-labs/nuctab/pkg/element"
)

// Identity names a nuclide by atomic number Z and mass number A.
// The neutron number N is always derived as A - Z.
type Identity struct {
	Z int
	A int
}

// NoNuclide is the explicit "unspecified nuclide" sentinel (Z = 0, A = 0).
var NoNuclide = Identity{}

// NewIdentity validates Z and A.
func NewIdentity(z, a int) (Identity, error) {
	if err := checkZ(z); err != nil {
		return Identity{}, err
	}
	if err := checkA(z, a); err != nil {
		return Identity{}, err
	}
	return Identity{Z: z, A: a}, nil
}

// ParseIdentity parses decimal Z and A as found in data files.
func ParseIdentity(z, a string) (Identity, error) {
	zi, err := strconv.Atoi(strings.TrimSpace(z))
	if err != nil {
		return Identity{}, &InvalidIdentityError{Field: "Z", Input: z, Reason: "expecting an integer atomic number"}
	}
	ai, err := strconv.Atoi(strings.TrimSpace(a))
	if err != nil {
		return Identity{}, &InvalidIdentityError{Field: "A", Input: a, Reason: "expecting an integer mass number"}
	}
	return NewIdentity(zi, ai)
}

func checkZ(z int) error {
	if z < 0 {
		return &InvalidIdentityError{Field: "Z", Value: z, Reason: "atomic number cannot be negative"}
	}
	return nil
}

func checkA(z, a int) error {
	if a < 1 && !(z == 0 && a == 0) {
		return &InvalidIdentityError{Field: "A", Value: a, Reason: "mass number must be at least 1"}
	}
	return nil
}

// N returns the neutron number.
func (id Identity) N() int {
	return id.A - id.Z
}

// Element returns the chemical symbol for Z.
func (id Identity) Element() (string, error) {
	return element.Symbol(id.Z)
}

// String returns the conventional name, e.g. "12C".
func (id Identity) String() string {
	sym, err := id.Element()
	if err != nil {
		return fmt.Sprintf("Z=%d,A=%d", id.Z, id.A)
	}
	return fmt.Sprintf("%d%s", id.A, sym)
}
