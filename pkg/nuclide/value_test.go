package nuclide

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue_Float(t *testing.T) {
	f, ok := Value(" 1.5 ").Float()
	assert.True(t, ok)
	assert.Equal(t, 1.5, f)

	for _, v := range []Value{Unknown, NotGiven, "abc", "NaN", "Inf"} {
		_, ok := v.Float()
		assert.False(t, ok, "%q", v)
	}
}

func TestRelation(t *testing.T) {
	for _, r := range Relations() {
		assert.True(t, r.Valid(), r)
	}
	assert.True(t, RelationUnknown.Valid())
	assert.False(t, Relation("").Valid())
	assert.False(t, Relation("<=").Valid())
}

func TestHalfLifeValue_String(t *testing.T) {
	tests := []struct {
		value HalfLifeValue
		want  string
	}{
		{Measured("12.3"), "12.3"},
		{Stable(), "stable"},
		{Unstable(), "unstable"},
		{UnknownHalfLife(), "?"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.value.String())
		assert.Equal(t, tt.value, ParseHalfLifeValue(tt.want))
	}
}
