package dialect

import (
	"errors"
	"testing"

	"github.com/leapstack-labs/nuctab/pkg/nuclide"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDialect struct{ name string }

func (s stubDialect) Name() string        { return s.name }
func (s stubDialect) Description() string { return "stub" }
func (s stubDialect) Build(Entry) (*nuclide.Nuclide, error) {
	return nil, errors.New("not implemented")
}

func TestRegistry(t *testing.T) {
	Register(stubDialect{name: "Stub-Registry"})

	d, ok := Get("stub-registry")
	require.True(t, ok, "lookup is case insensitive")
	assert.Equal(t, "Stub-Registry", d.Name())

	assert.Contains(t, List(), "stub-registry")

	_, err := Lookup("no-such-dialect")
	var unknown *UnknownDialectError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "no-such-dialect", unknown.Name)
	assert.Contains(t, unknown.Available, "stub-registry")
	assert.Contains(t, err.Error(), "no-such-dialect")
}

func TestPositionString(t *testing.T) {
	tests := []struct {
		pos  Position
		want string
	}{
		{Position{}, "-"},
		{Position{Source: "nubtab03.asc"}, "nubtab03.asc"},
		{Position{Source: "nubtab03.asc", Line: 12}, "nubtab03.asc:12"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.pos.String())
			assert.Equal(t, tt.pos.Line > 0, tt.pos.IsValid())
		})
	}
}

func TestEntryError(t *testing.T) {
	inner := errors.Join(
		&FieldError{Field: FieldHalfLife, Err: errors.New("bad unit")},
		&FieldError{Field: FieldDecayModes, Err: errors.New("bad entry")},
	)
	err := &EntryError{Pos: Position{Source: "f", Line: 3}, Nuclide: "12C", Err: inner}

	assert.Equal(t, "f:3: 12C: half_life: bad unit; decay_modes: bad entry", err.Error())

	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, FieldHalfLife, fe.Field)
}

func TestEntryField(t *testing.T) {
	var e Entry
	assert.Equal(t, "", e.Field(FieldSpin))

	e.Fields = map[string]string{FieldSpin: "0+"}
	assert.Equal(t, "0+", e.Field(FieldSpin))
}
