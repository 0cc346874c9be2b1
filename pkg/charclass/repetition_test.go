package charclass_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/charclass/pkg/charclass"
)

func TestRepetition_Quantifier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		min      charclass.Bound
		max      charclass.Bound
		expected string
	}{
		{name: "both bounds", min: charclass.Count(2), max: charclass.Count(5), expected: "{2,5}"},
		{name: "max only", min: charclass.Unset, max: charclass.Count(5), expected: "{,5}"},
		{name: "min only", min: charclass.Count(2), max: charclass.Unset, expected: "{2,}"},
		{name: "no bounds", min: charclass.Unset, max: charclass.Unset, expected: "{,}"},
		{name: "zero is a real bound", min: charclass.Count(0), max: charclass.Count(0), expected: "{0,0}"},
		{name: "equal bounds", min: charclass.Count(3), max: charclass.Count(3), expected: "{3,3}"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rep, err := charclass.NewRepetition(tt.min, tt.max)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, rep.Quantifier())
			assert.Equal(t, tt.min, rep.Min())
			assert.Equal(t, tt.max, rep.Max())
		})
	}
}

func TestNewRepetition_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		min  charclass.Bound
		max  charclass.Bound
	}{
		{name: "min greater than max", min: charclass.Count(5), max: charclass.Count(2)},
		{name: "negative min", min: charclass.Count(-1), max: charclass.Unset},
		{name: "negative max", min: charclass.Unset, max: charclass.Count(-3)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := charclass.NewRepetition(tt.min, tt.max)
			require.Error(t, err)
			assert.ErrorIs(t, err, charclass.ErrInvalidRepetition)
		})
	}

	assert.Panics(t, func() {
		charclass.MustRepetition(charclass.Count(3), charclass.Count(1))
	})
}

func TestBound(t *testing.T) {
	t.Parallel()

	n, ok := charclass.Unset.Value()
	assert.False(t, ok)
	assert.Zero(t, n)
	assert.Equal(t, "", charclass.Unset.String())

	n, ok = charclass.Count(4).Value()
	assert.True(t, ok)
	assert.Equal(t, 4, n)
	assert.True(t, charclass.Count(0).IsSet())
}

func TestRangeRepetition(t *testing.T) {
	t.Parallel()

	r := charclass.MustRange(charclass.NewLowercaseRange('a', 'z'))
	rep := charclass.MustRepetition(charclass.Count(2), charclass.Count(3))
	rr := r.Repeat(rep)

	assert.Equal(t, "[a-z]{2,3}", rr.String())

	re, err := rr.Compile(charclass.NewFlags(), true)
	require.NoError(t, err)
	assert.True(t, re.MatchString("ab"))
	assert.True(t, re.MatchString("abc"))
	assert.False(t, re.MatchString("a"))
	assert.False(t, re.MatchString("abcd"))
}
