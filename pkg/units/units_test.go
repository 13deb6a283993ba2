package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeconds(t *testing.T) {
	tests := []struct {
		symbol string
		want   float64
	}{
		{"d", 86400},
		{"h", 3600},
		{"m", 60},
		{"s", 1},
		{"ms", 1e-3},
		{"ns", 1e-9},
		{"ys", 1e-24},
		{"y", SecondsPerYear},
		{"ky", 1e3 * SecondsPerYear},
		{"Yy", 1e24 * SecondsPerYear},
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			got, ok := Seconds(tt.symbol)
			require.True(t, ok)
			assert.InDelta(t, tt.want, got, tt.want*1e-12)
		})
	}
}

func TestSeconds_Descriptive(t *testing.T) {
	for _, symbol := range []string{"stbl", "p-unst", "n-unst", "?"} {
		u, ok := Lookup(symbol)
		require.True(t, ok, symbol)
		assert.False(t, u.Numeric())

		_, ok = Seconds(symbol)
		assert.False(t, ok, "descriptive tag %q has no multiplier", symbol)
	}
}

func TestLookup_CaseSensitive(t *testing.T) {
	_, ok := Lookup("MS")
	assert.False(t, ok)

	_, ok = Lookup("xyz")
	assert.False(t, ok)
}

func TestLookupFold(t *testing.T) {
	tests := map[string]string{
		"MS": "ms",
		"Y":  "y",
		"KY": "ky",
		"my": "My",
		"GY": "Gy",
		"YS": "ys",
	}
	for in, want := range tests {
		u, ok := LookupFold(in)
		require.True(t, ok, in)
		assert.Equal(t, want, u.Symbol)
	}
}

func TestAll_Total(t *testing.T) {
	all := All()
	assert.Len(t, all, 25)
	for _, u := range all {
		got, ok := Lookup(u.Symbol)
		require.True(t, ok)
		assert.Equal(t, u, got)
	}
}

func TestUnknownUnitError(t *testing.T) {
	err := &UnknownUnitError{Unit: "xyz", Input: "5 xyz", Nuclide: "12C"}
	assert.Contains(t, err.Error(), `"xyz"`)
	assert.Contains(t, err.Error(), "5 xyz")
	assert.Contains(t, err.Error(), "12C")
}
