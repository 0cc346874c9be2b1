// Package charclass builds character-class regular expression fragments from
// small, immutable building blocks and compiles them into executable patterns.
//
// The building blocks are:
//
//   - SpecialSet – a duplicate-free set of regex metacharacters
//     (* d D w W s S + ? ^ $ ( ) [ ] | { }) with a deterministic escaping
//     function. Anything outside that list is dropped silently.
//
//   - Range – a from-to range rendered as a bracket expression, with optional
//     extra metacharacters and a negation bit. NewLowercaseRange,
//     NewUppercaseRange and NewDigitRange restrict the bounds to a fixed
//     alphabet; every constructor rejects from > to with ErrInvalidRange.
//
//   - Repetition – a {min,max} quantifier where either bound may be unset.
//
//   - Flags – a duplicate-free set of engine flags (g, i, m, s, u, y).
//
//   - Regexp – the compiled result. It keeps the ECMAScript flavour of the
//     source text (for example [] never matches and [^] matches any
//     character) while running on Go's regexp engine.
//
// Every value type is immutable: Negate, Add, Remove and friends return a new
// value and leave the receiver untouched, so values can be shared freely
// between goroutines.
//
// # Usage
//
//	import "github.com/dmitrymomot/charclass/pkg/charclass"
//
//	r, err := charclass.NewLowercaseRange('a', 'f', '*', '+')
//	if err != nil {
//	    return err
//	}
//	r.String()          // "[a-f\*\+]"
//	r.Negate().String() // "[^a-f\*\+]"
//
//	re, err := r.Compile(charclass.NewFlags().Global(), true)
//	re.MatchString("c") // true
//
//	rep := charclass.MustRepetition(charclass.Count(2), charclass.Unset)
//	r.Repeat(rep).String() // "[a-f\*\+]{2,}"
//
// # Error Handling
//
// Construction is the only place that fails. Errors wrap the sentinels
// ErrInvalidRange, ErrInvalidRepetition, ErrInvalidFlag and ErrInvalidPattern
// and can be tested with errors.Is. Queries on a compiled Regexp never fail;
// a nil *Regexp matches nothing.
package charclass
