// Package library holds loaded nuclides in an ordered table and loads them
// from raw entries.
package library

import (
	"fmt"
	"sync"

	"github.com/leapstack-labs/nuctab/pkg/nuclide"
)

// key identifies a nuclide by neutron and proton number.
type key struct {
	N, Z int
}

// DuplicateNuclideError is returned when a nuclide is added twice.
type DuplicateNuclideError struct {
	Nuclide string
	N, Z    int
}

func (e *DuplicateNuclideError) Error() string {
	return fmt.Sprintf("duplicate nuclide %s (N=%d, Z=%d)", e.Nuclide, e.N, e.Z)
}

// Table is an insertion-ordered set of nuclides with (N, Z) lookup.
// It is safe for concurrent readers.
type Table struct {
	mu sync.RWMutex

	ordered []*nuclide.Nuclide
	byKey   map[key]*nuclide.Nuclide
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{byKey: make(map[key]*nuclide.Nuclide)}
}

// Add appends a nuclide. A nuclide with the same (N, Z) is rejected.
func (t *Table) Add(n *nuclide.Nuclide) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	k := key{N: n.N(), Z: n.Z()}
	if _, dup := t.byKey[k]; dup {
		return &DuplicateNuclideError{Nuclide: n.String(), N: k.N, Z: k.Z}
	}
	t.byKey[k] = n
	t.ordered = append(t.ordered, n)
	return nil
}

// Get returns the nuclide with the given neutron and proton numbers.
func (t *Table) Get(n, z int) (*nuclide.Nuclide, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	nuc, ok := t.byKey[key{N: n, Z: z}]
	return nuc, ok
}

// All returns the nuclides in load order.
func (t *Table) All() []*nuclide.Nuclide {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]*nuclide.Nuclide, len(t.ordered))
	copy(out, t.ordered)
	return out
}

// Len returns the number of nuclides.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.ordered)
}

// Limits returns the smallest and largest N and Z in the table.
func (t *Table) Limits() Limits {
	t.mu.RLock()
	defer t.mu.RUnlock()
	var l Limits
	for _, n := range t.ordered {
		l.observe(n.N(), n.Z())
	}
	return l
}
