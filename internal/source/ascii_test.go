package source

import (
	"strings"
	"testing"

	"github.com/leapstack-labs/nuctab/pkg/dialect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nubaseLine places values at their NUBASE columns.
func nubaseLine(a, zzzi, mass, energy, halfLife, spin, decay string) string {
	b := []byte(strings.Repeat(" ", 110))
	put := func(s Span, v string) {
		copy(b[s.Start-1:], v)
	}
	put(NubaseLayout.A, a)
	put(NubaseLayout.ZZZi, zzzi)
	put(NubaseLayout.MassDefect, mass)
	put(NubaseLayout.Energy, energy)
	put(NubaseLayout.HalfLife, halfLife)
	put(NubaseLayout.Spin, spin)
	return string(b) + decay
}

func TestParseSpan(t *testing.T) {
	tests := []struct {
		in      string
		want    Span
		wantErr bool
	}{
		{"19-38", Span{19, 38}, false},
		{"111-", Span{111, 0}, false},
		{" 7 ", Span{7, 7}, false},
		{"", Span{}, false},
		{"0-3", Span{}, true},
		{"10-5", Span{}, true},
		{"a-b", Span{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSpan(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			if !got.IsZero() {
				round, err := ParseSpan(got.String())
				require.NoError(t, err)
				assert.Equal(t, got, round)
			}
		})
	}
}

func TestSpanCut(t *testing.T) {
	line := "abcdefgh"
	assert.Equal(t, "bcd", Span{2, 4}.Cut(line))
	assert.Equal(t, "fgh", Span{6, 0}.Cut(line))
	assert.Equal(t, "gh", Span{7, 20}.Cut(line))
	assert.Equal(t, "", Span{9, 12}.Cut(line))
	assert.Equal(t, "", Span{}.Cut(line))
}

func TestLayoutWithColumns(t *testing.T) {
	l, err := NubaseLayout.WithColumns(map[string]string{"comment": "200-", "SPIN": "80-95"})
	require.NoError(t, err)
	assert.Equal(t, Span{200, 0}, l.Comment)
	assert.Equal(t, Span{80, 95}, l.Spin)
	assert.Equal(t, Span{80, 93}, NubaseLayout.Spin, "default layout unchanged")

	_, err = NubaseLayout.WithColumns(map[string]string{"colour": "1-2"})
	assert.ErrorContains(t, err, "colour")

	_, err = NubaseLayout.WithColumns(map[string]string{"spin": "x"})
	assert.ErrorContains(t, err, "spin")
}

func TestDefaultLayout(t *testing.T) {
	l, ok := DefaultLayout("NUBASE")
	require.True(t, ok)
	assert.Equal(t, NubaseLayout, l)

	_, ok = DefaultLayout("walletcard")
	assert.False(t, ok)
}

func TestReadASCII(t *testing.T) {
	input := strings.Join([]string{
		"# NUBASE sample",
		nubaseLine("  1", "0000", "8071.3171  0.0005", "", "613.9 s 0.6", "1/2+*", "B-=100"),
		"",
		nubaseLine(" 99", "0430", "-87323.1  2.1", "", "211.1 ky 1.2", "9/2+*", "B-=100"),
		nubaseLine(" 99", "0431", "-87180.4  2.1", "142.6836  0.0011", "6.0072 h 0.0009", "1/2-*", "IT=100;B-=0.0037 0.0006"),
		nubaseLine(" 12", "0061", "", "1 2", "", "", ""),
		"bad",
	}, "\n")

	res, err := ReadASCII(strings.NewReader(input), "sample.asc", NubaseLayout)
	require.NoError(t, err)

	require.Len(t, res.Entries, 2)
	n := res.Entries[0]
	assert.Equal(t, "0", n.Z)
	assert.Equal(t, "1", n.A)
	assert.Equal(t, dialect.Position{Source: "sample.asc", Line: 2}, n.Pos)
	assert.Equal(t, "613.9 s 0.6", strings.TrimSpace(n.Field(dialect.FieldHalfLife)))
	assert.Equal(t, "B-=100", n.Field(dialect.FieldDecayModes))

	tc := res.Entries[1]
	assert.Equal(t, "43", tc.Z)
	require.Len(t, tc.Isomers, 1)
	assert.Equal(t, 5, tc.Isomers[0].Pos.Line)
	assert.Equal(t, "142.6836  0.0011", strings.TrimSpace(tc.Isomers[0].Field(dialect.FieldEnergy)))

	require.Len(t, res.Skipped, 2)
	assert.Equal(t, 6, res.Skipped[0].Pos.Line)
	assert.ErrorContains(t, res.Skipped[0], "does not follow its ground state")
	assert.Equal(t, 7, res.Skipped[1].Pos.Line)
	assert.ErrorContains(t, res.Skipped[1], "ZZZi")
}

func TestReadASCII_InvalidLayout(t *testing.T) {
	_, err := ReadASCII(strings.NewReader(""), "x", Layout{})
	assert.Error(t, err)
}
