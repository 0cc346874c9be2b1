// Package charfilter validates and strips strings by character category.
//
// A Pattern combines up to four categories into a single bracket expression:
//
//   - lowercase – a-z
//   - uppercase – A-Z
//   - numeric   – 0-9
//   - special   – \W (anything that is not a letter, digit or underscore)
//
// The mode decides how the selection is read. In ModeAllow the expression
// matches the selected categories ("[A-Z0-9]"); in ModeRestrict, the default,
// it matches their complement ("[^A-Z0-9]").
//
// A Filter owns a Pattern and applies it to strings:
//
//   - ModeRestrict removes the selected categories.
//   - ModeAllow keeps only the selected categories.
//   - IsValid reports whether a string contains at least one character the
//     pattern accepts; FilterSlice keeps the strings for which it holds.
//
// # Usage
//
//	import "github.com/dmitrymomot/charclass/pkg/charfilter"
//
//	cats := charfilter.Categories{
//	    Uppercase: charfilter.Bool(true),
//	    Numeric:   charfilter.Bool(true),
//	    Special:   charfilter.Bool(true),
//	}
//
//	f := charfilter.New("abcABC123!@#", cats)
//	f.Value() // "abc"
//
//	f = f.Allow()
//	f.FilterSlice([]string{"abc", "123", "@@@", "xyz"}) // ["123", "@@@"]
//	f.Apply("abcABC123!@#")                            // "ABC123!@#"
//
// Patterns and filters are values. Modifiers such as Allow, Restrict,
// SetMode and WithCategories return a new value; a filter's stored value is
// never refiltered behind the caller's back, use SetValue or Refilter.
//
// # Defaults
//
// Categories left nil take their value from a Defaults passed with
// WithDefaults. There is no package-level mutable state: LoadDefaults reads
// CHARFILTER_LOWERCASE, CHARFILTER_UPPERCASE, CHARFILTER_NUMERIC and
// CHARFILTER_SPECIAL once per process and returns them as a value.
//
//	d, err := charfilter.LoadDefaults()
//	if err != nil {
//	    return err
//	}
//	p := charfilter.NewPattern(charfilter.Categories{}, charfilter.WithDefaults(d))
//
// Settings can also be read from YAML with ParseSettings and turned into a
// filter with NewFromSettings.
//
// # Empty selection
//
// With every category disabled the pattern is "[]" in ModeAllow, which
// matches nothing, and "[^]" in ModeRestrict, which matches any character.
// Consequently an allow filter with no categories strips everything and a
// restrict filter with no categories keeps everything.
//
// # Error Handling
//
// Query methods never fail. SetMode returns ErrInvalidMode for unrecognised
// modes and leaves the filter unchanged; ParseSettings returns
// ErrInvalidSettings; LoadDefaults returns ErrLoadingDefaults.
package charfilter
