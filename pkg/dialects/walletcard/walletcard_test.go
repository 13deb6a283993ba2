package walletcard

import (
	"errors"
	"testing"

	"github.com/leapstack-labs/nuctab/pkg/dialect"
	"github.com/leapstack-labs/nuctab/pkg/nuclide"
	"github.com/leapstack-labs/nuctab/pkg/parser"
	"github.com/leapstack-labs/nuctab/pkg/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var he5 = nuclide.Identity{Z: 2, A: 5}

func TestParseHalfLife(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want nuclide.HalfLife
	}{
		{
			name: "empty",
			raw:  "",
			want: nuclide.HalfLife{Value: nuclide.UnknownHalfLife(), Unit: "?", Uncertainty: "?", Relation: nuclide.RelationUnknown},
		},
		{
			name: "stable",
			raw:  "STABLE",
			want: nuclide.HalfLife{Value: nuclide.Stable(), Relation: nuclide.Equal},
		},
		{
			name: "unbound with uncertainty",
			raw:  "UNBOUND 3",
			want: nuclide.HalfLife{Value: nuclide.Unstable(), Relation: nuclide.Equal, Uncertainty: "3"},
		},
		{
			name: "padded",
			raw:  "12.3 MS",
			want: nuclide.HalfLife{Value: nuclide.Measured("12.3"), Unit: "ms", Uncertainty: "?", Relation: nuclide.Equal},
		},
		{
			name: "uncertainty",
			raw:  "5.27 Y 1",
			want: nuclide.HalfLife{Value: nuclide.Measured("5.27"), Unit: "y", Uncertainty: "1", Relation: nuclide.Equal},
		},
		{
			name: "approximate",
			raw:  "2 S AP",
			want: nuclide.HalfLife{Value: nuclide.Measured("2"), Unit: "s", Uncertainty: "?", Relation: nuclide.Approximately},
		},
		{
			name: "less or equal folds to less",
			raw:  "2 S LE",
			want: nuclide.HalfLife{Value: nuclide.Measured("2"), Unit: "s", Uncertainty: "?", Relation: nuclide.Less},
		},
		{
			name: "greater",
			raw:  "1.5 GY GT",
			want: nuclide.HalfLife{Value: nuclide.Measured("1.5"), Unit: "Gy", Uncertainty: "?", Relation: nuclide.Greater},
		},
		{
			name: "energy unit eV",
			raw:  "1.0 EV",
			want: nuclide.HalfLife{Value: nuclide.Measured("0.04562"), Unit: "as", Uncertainty: "?", Relation: nuclide.Equal},
		},
		{
			name: "energy unit keV with uncertainty",
			raw:  "2 KEV 0.2",
			want: nuclide.HalfLife{Value: nuclide.Measured("0.09124"), Unit: "zs", Uncertainty: "0.009124", Relation: nuclide.Equal},
		},
		{
			name: "energy unit keeps less than",
			raw:  "2.0 KEV LT",
			want: nuclide.HalfLife{Value: nuclide.Measured("0.09124"), Unit: "zs", Uncertainty: "?", Relation: nuclide.Less},
		},
		{
			name: "energy unit keeps greater than",
			raw:  "1 mev ge",
			want: nuclide.HalfLife{Value: nuclide.Measured("0.04562"), Unit: "ys", Uncertainty: "?", Relation: nuclide.Greater},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHalfLife(tt.raw, he5)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.False(t, got.Extrapolated)
		})
	}
}

func TestParseHalfLife_Errors(t *testing.T) {
	for _, raw := range []string{"5", "1 2 3 4", "abc s", "0 ev", "-1 s"} {
		t.Run(raw, func(t *testing.T) {
			_, err := ParseHalfLife(raw, he5)
			assert.ErrorIs(t, err, parser.ErrHalfLifeSyntax)
		})
	}

	_, err := ParseHalfLife("5 XYZ", he5)
	var ue *units.UnknownUnitError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, "xyz", ue.Unit)
	assert.Equal(t, "5 XYZ", ue.Input)

	_, err = ParseHalfLife("5 STBL", he5)
	require.ErrorIs(t, err, parser.ErrHalfLifeSyntax)
	assert.Contains(t, err.Error(), `non-numeric unit "stbl"`)
	assert.False(t, errors.As(err, &ue))
}

func TestBuild(t *testing.T) {
	d, err := dialect.Lookup(Name)
	require.NoError(t, err)

	n, err := d.Build(dialect.Entry{
		Z: "2",
		A: "5",
		Fields: map[string]string{
			dialect.FieldMassDefect: "11231 20",
			dialect.FieldHalfLife:   "0.60 MEV",
			dialect.FieldSpin:       "3/2-",
			dialect.FieldDecayModes: "N=100",
		},
	})
	require.NoError(t, err)

	hl, ok := n.HalfLife()
	require.True(t, ok)
	assert.Equal(t, "ys", hl.Unit)
	assert.Equal(t, nuclide.Value("0.027372"), hl.Value.Number)

	s := n.HalfLifeSeconds()
	assert.Equal(t, nuclide.SecondsMeasured, s.Kind)
	assert.InDelta(t, 2.7372e-26, s.Value, 1e-31)

	modes := n.DecayModes()
	require.Len(t, modes, 1)
	assert.Equal(t, "N", modes[0].Mode)
}
