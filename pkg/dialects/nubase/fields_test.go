package nubase

import (
	"testing"

	"github.com/leapstack-labs/nuctab/pkg/nuclide"
	"github.com/leapstack-labs/nuctab/pkg/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMassDefect(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want nuclide.MassDefect
	}{
		{"empty", "", nuclide.MassDefect{Value: "?", Uncertainty: "?"}},
		{"measured", "  8071.3171   0.0005", nuclide.MassDefect{Value: "8071.3171", Uncertainty: "0.0005"}},
		{"extrapolated", "-2310#  500#", nuclide.MassDefect{Value: "-2310", Uncertainty: "500", Extrapolated: true}},
		{"marker only", "#", nuclide.MassDefect{Value: "?", Uncertainty: "?", Extrapolated: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMassDefect(tt.raw, c12)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMassDefect_Errors(t *testing.T) {
	for _, raw := range []string{"8071.3", "1 2 3", "abc 1", "1 x"} {
		t.Run(raw, func(t *testing.T) {
			_, err := ParseMassDefect(raw, c12)
			assert.ErrorIs(t, err, parser.ErrMassDefectSyntax)
			assert.ErrorIs(t, err, parser.ErrSyntax)
			assert.NotErrorIs(t, err, parser.ErrHalfLifeSyntax)
		})
	}
}

func TestParseSpin(t *testing.T) {
	assert.Equal(t, nuclide.Spin{Value: "0+"}, ParseSpin(" 0+ "))
	assert.Equal(t, nuclide.Spin{Value: "(3/2-)", Extrapolated: true}, ParseSpin("(3/2-)#"))
	assert.Equal(t, nuclide.Spin{}, ParseSpin(""))
}

func TestParseDecayModes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []nuclide.DecayMode
	}{
		{
			name: "single",
			raw:  "B-=100",
			want: []nuclide.DecayMode{{Mode: "B-", Relation: nuclide.Equal, Value: "100", Uncertainty: "0"}},
		},
		{
			name: "unknown ratio",
			raw:  "B- ?",
			want: []nuclide.DecayMode{{Mode: "B-", Relation: nuclide.Equal, Value: "?", Uncertainty: "0"}},
		},
		{
			name: "with uncertainty",
			raw:  "A=90 5;B+=10 5",
			want: []nuclide.DecayMode{
				{Mode: "A", Relation: nuclide.Equal, Value: "90", Uncertainty: "5"},
				{Mode: "B+", Relation: nuclide.Equal, Value: "10", Uncertainty: "5"},
			},
		},
		{
			name: "annotation",
			raw:  "IT=100[with footnote]",
			want: []nuclide.DecayMode{{Mode: "IT", Relation: nuclide.Equal, Value: "100", Uncertainty: "0"}},
		},
		{
			name: "unterminated annotation",
			raw:  "IT=100;B-=0.1[x;y",
			want: []nuclide.DecayMode{
				{Mode: "IT", Relation: nuclide.Equal, Value: "100", Uncertainty: "0"},
				{Mode: "B-", Relation: nuclide.Equal, Value: "0.1", Uncertainty: "0"},
			},
		},
		{
			name: "legacy comparators",
			raw:  "B-n le 0.3;B-2n ge1",
			want: []nuclide.DecayMode{
				{Mode: "B-n", Relation: nuclide.LessOrEqual, Value: "0.3", Uncertainty: "0"},
				{Mode: "B-2n", Relation: nuclide.GreaterOrEqual, Value: "1", Uncertainty: "0"},
			},
		},
		{
			name: "inequalities",
			raw:  "p>0;SF<1e-4;EC~50",
			want: []nuclide.DecayMode{
				{Mode: "p", Relation: nuclide.Greater, Value: "0", Uncertainty: "0"},
				{Mode: "SF", Relation: nuclide.Less, Value: "1e-4", Uncertainty: "0"},
				{Mode: "EC", Relation: nuclide.Approximately, Value: "50", Uncertainty: "0"},
			},
		},
		{
			name: "placeholder skipped",
			raw:  "B-=100;...",
			want: []nuclide.DecayMode{{Mode: "B-", Relation: nuclide.Equal, Value: "100", Uncertainty: "0"}},
		},
		{
			name: "placeholder alone",
			raw:  "...",
			want: []nuclide.DecayMode{},
		},
		{
			name: "empty",
			raw:  "  ",
			want: []nuclide.DecayMode{{Mode: "?", Relation: nuclide.RelationUnknown}},
		},
		{
			name: "only annotation",
			raw:  "[no data]",
			want: []nuclide.DecayMode{{Mode: "?", Relation: nuclide.RelationUnknown}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDecayModes(tt.raw, c12)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDecayModes_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"no relation", "B-"},
		{"empty mode", "=100"},
		{"empty value", "B-="},
		{"two relations", "B-=100=5"},
		{"empty entry", "B-=100;;IT=1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDecayModes(tt.raw, c12)
			require.ErrorIs(t, err, parser.ErrDecayModeSyntax)
			assert.Contains(t, err.Error(), "12C")
		})
	}
}

func TestParseIsomerEnergy(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string // method
		ext  bool
	}{
		{"default", "198 12", DefaultMethod, false},
		{"mass doublet", "198 12 MD", "Mass doublet", false},
		{"undocumented starred", "198 12 XX*", "Code 'XX' is not documented " + LargeErrorNote, false},
		{"starred known", "198 12 RQ*", "Reaction energy difference " + LargeErrorNote, false},
		{"trailing number is data", "198 12 5", DefaultMethod, false},
		{"reversed ordering", "0# 50# &", "Ground state and isomer ordering reversed compared to ENSDF", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseIsomerEnergy(tt.raw, c12)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Method)
			assert.Equal(t, tt.ext, got.Extrapolated)
		})
	}

	e, err := ParseIsomerEnergy("198 12 MD", c12)
	require.NoError(t, err)
	assert.Equal(t, nuclide.Value("198"), e.Energy)
	assert.Equal(t, nuclide.Value("12"), e.Uncertainty)
}

func TestParseIsomerEnergy_Errors(t *testing.T) {
	for _, raw := range []string{"", "198", "#"} {
		t.Run(raw, func(t *testing.T) {
			_, err := ParseIsomerEnergy(raw, c12)
			assert.ErrorIs(t, err, parser.ErrIsomerSyntax)
		})
	}
}

func TestMethodCodes(t *testing.T) {
	codes := MethodCodes()
	assert.Len(t, codes, 10)
	assert.Equal(t, "Mass doublet", codes["MD"])

	codes["MD"] = "changed"
	assert.Equal(t, "Mass doublet", Method("MD"))
}
