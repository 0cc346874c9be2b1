package charfilter_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/charclass/pkg/charclass"
	"github.com/dmitrymomot/charclass/pkg/charfilter"
	"github.com/dmitrymomot/charclass/pkg/logger"
)

const mixed = "abcABC123!@#"

var upperNumericSpecial = charfilter.Categories{
	Lowercase: charfilter.Bool(false),
	Uppercase: charfilter.Bool(true),
	Numeric:   charfilter.Bool(true),
	Special:   charfilter.Bool(true),
}

func TestNew_RestrictRemovesSelectedCategories(t *testing.T) {
	t.Parallel()

	f := charfilter.New(mixed, upperNumericSpecial)
	assert.Equal(t, charfilter.ModeRestrict, f.Mode())
	assert.Equal(t, "abc", f.Value())
	assert.Equal(t, mixed, f.Input())
	assert.Equal(t, `[^A-Z0-9\W]`, f.Pattern().Source())
}

func TestFilter_AllowKeepsSelectedCategories(t *testing.T) {
	t.Parallel()

	f := charfilter.New(mixed, upperNumericSpecial, charfilter.WithMode(charfilter.ModeAllow))
	assert.Equal(t, charfilter.ModeAllow, f.Mode())
	assert.Equal(t, "ABC123!@#", f.Value())
	assert.Equal(t, `[A-Z0-9\W]`, f.Pattern().Source())
}

func TestFilter_IsValid(t *testing.T) {
	t.Parallel()

	allow := charfilter.New("", upperNumericSpecial).Allow()
	assert.True(t, allow.IsValid(mixed))
	assert.True(t, allow.IsValid("x1"), "any single accepted character qualifies")
	assert.False(t, allow.IsValid("abc"))
	assert.False(t, allow.IsValid(""))

	restrict := allow.Restrict()
	assert.True(t, restrict.IsValid("abc"))
	assert.False(t, restrict.IsValid("ABC123"))
}

func TestFilter_FilterSlice(t *testing.T) {
	t.Parallel()

	f := charfilter.New("", upperNumericSpecial, charfilter.WithMode(charfilter.ModeAllow))

	got := f.FilterSlice([]string{"abc", "123", "@@@", "xyz"})
	assert.Equal(t, []string{"123", "@@@"}, got)

	assert.Empty(t, f.FilterSlice(nil))
	assert.Equal(t, []string{"a1", "Z"}, f.FilterSlice([]string{"a1", "b", "Z"}))
}

func TestFilter_Apply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cats     charfilter.Categories
		mode     charfilter.Mode
		input    string
		expected string
	}{
		{
			name:     "restrict digits",
			cats:     charfilter.Categories{Numeric: charfilter.Bool(true)},
			mode:     charfilter.ModeRestrict,
			input:    "a1b2c3",
			expected: "abc",
		},
		{
			name:     "allow digits",
			cats:     charfilter.Categories{Numeric: charfilter.Bool(true)},
			mode:     charfilter.ModeAllow,
			input:    "a1b2c3",
			expected: "123",
		},
		{
			name:     "allow letters strips whitespace and punctuation",
			cats:     charfilter.Categories{Lowercase: charfilter.Bool(true), Uppercase: charfilter.Bool(true)},
			mode:     charfilter.ModeAllow,
			input:    "Hello, World!",
			expected: "HelloWorld",
		},
		{
			name:     "restrict special keeps underscore",
			cats:     charfilter.Categories{Special: charfilter.Bool(true)},
			mode:     charfilter.ModeRestrict,
			input:    "snake_case-name!",
			expected: "snake_casename",
		},
		{
			name:     "restrict nothing keeps everything",
			cats:     charfilter.Categories{},
			mode:     charfilter.ModeRestrict,
			input:    mixed,
			expected: mixed,
		},
		{
			name:     "allow nothing strips everything",
			cats:     charfilter.Categories{},
			mode:     charfilter.ModeAllow,
			input:    mixed,
			expected: "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := charfilter.New("", tt.cats, charfilter.WithMode(tt.mode))
			assert.Equal(t, tt.expected, f.Apply(tt.input))
			assert.Equal(t, tt.expected, f.SetValue(tt.input).Value())
		})
	}
}

func TestFilter_ApplyRemovesEveryMatchWithoutGlobalFlag(t *testing.T) {
	t.Parallel()

	numeric := charfilter.Categories{Numeric: charfilter.Bool(true)}

	f := charfilter.New("a1b2c3", numeric, charfilter.WithFlags(charclass.NewFlags(charclass.FlagIgnoreCase)))
	assert.Equal(t, "abc", f.Value())
	assert.Equal(t, "abc", f.Apply("a1b2c3"))
	assert.Equal(t, "i", f.Pattern().Flags().String())

	allowed := f.Allow()
	assert.Equal(t, "123", allowed.Apply("a1b2c3"))
	assert.Equal(t, "123", allowed.WithCategories(charfilter.Categories{Special: charfilter.Bool(true)}).Apply("a1!b2c3"))
}

func TestFilter_ModeChangeIsNotRetroactive(t *testing.T) {
	t.Parallel()

	f := charfilter.New(mixed, upperNumericSpecial)
	require.Equal(t, "abc", f.Value())

	allowed := f.Allow()
	assert.Equal(t, charfilter.ModeAllow, allowed.Mode())
	assert.Equal(t, "abc", allowed.Value(), "stored value must not be refiltered")
	assert.Equal(t, charfilter.ModeRestrict, f.Mode(), "receiver must not change")

	assert.Equal(t, "ABC123!@#", allowed.Refilter().Value())
	assert.Equal(t, "ABC123!@#", allowed.SetValue(mixed).Value())
}

func TestFilter_SetMode(t *testing.T) {
	t.Parallel()

	f := charfilter.New(mixed, upperNumericSpecial)

	next, err := f.SetMode(charfilter.ModeAllow)
	require.NoError(t, err)
	assert.True(t, next.Pattern().IsAllowed())

	same, err := next.SetMode("block")
	require.Error(t, err)
	assert.ErrorIs(t, err, charfilter.ErrInvalidMode)
	assert.Equal(t, charfilter.ModeAllow, same.Mode())
	assert.Equal(t, next.Pattern().Source(), same.Pattern().Source())
}

func TestFilter_WithCategories(t *testing.T) {
	t.Parallel()

	f := charfilter.New("a1!", charfilter.Categories{Numeric: charfilter.Bool(true)})
	require.Equal(t, "a!", f.Value())

	g := f.WithCategories(charfilter.Categories{Special: charfilter.Bool(true)})
	assert.Equal(t, `[^0-9\W]`, g.Pattern().Source())
	assert.Equal(t, "a!", g.Value())
	assert.Equal(t, "a", g.Refilter().Value())
}

func TestFilter_Zero(t *testing.T) {
	t.Parallel()

	var f charfilter.Filter
	assert.False(t, f.IsValid("abc"))
	assert.Equal(t, "abc", f.Apply("abc"))
	assert.Empty(t, f.FilterSlice([]string{"abc"}))

	_, err := f.SetMode("nope")
	assert.ErrorIs(t, err, charfilter.ErrInvalidMode)
}

func TestFilter_Logging(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithLevel(slog.LevelDebug),
		logger.WithJSONFormatter(),
	)

	f := charfilter.New(mixed, upperNumericSpecial, charfilter.WithLogger(log))

	_, err := f.SetMode("unknown")
	require.Error(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "unknown", entry["mode"])
	assert.Equal(t, "restrict", entry["current_mode"])

	buf.Reset()
	f.Allow()

	entry = map[string]any{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "DEBUG", entry["level"])
	assert.Equal(t, "allow", entry["mode"])
	assert.Equal(t, `[A-Z0-9\W]`, entry["pattern"])
	assert.Equal(t, "g", entry["flags"])
}

func BenchmarkFilter_Apply(b *testing.B) {
	f := charfilter.New("", upperNumericSpecial, charfilter.WithMode(charfilter.ModeAllow))
	input := strings.Repeat(mixed, 8)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f.Apply(input)
	}
}
