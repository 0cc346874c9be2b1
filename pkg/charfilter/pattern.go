package charfilter

import (
	"strings"

	"github.com/dmitrymomot/charclass/pkg/charclass"
)

// Category fragments in the order they appear inside the bracket expression.
const (
	lowercaseClass = "a-z"
	uppercaseClass = "A-Z"
	numericClass   = "0-9"
	specialClass   = `\W`
)

// Pattern combines the four character categories into one compiled bracket
// expression. Pattern is a value: every modifier returns a rebuilt copy.
//
// In ModeAllow the expression matches the selected categories ("[a-z0-9]");
// in ModeRestrict it matches their complement ("[^a-z0-9]").
type Pattern struct {
	cats  categorySet
	mode  Mode
	flags charclass.Flags
	re    *charclass.Regexp
}

// NewPattern builds a pattern from c. Nil categories take their value from
// the defaults set with WithDefaults; the mode defaults to ModeRestrict and
// the flags to "g".
func NewPattern(c Categories, opts ...Option) Pattern {
	return newPattern(c, newSettings(opts))
}

func newPattern(c Categories, s *settings) Pattern {
	p := Pattern{
		cats:  s.defaults.categories().apply(c),
		mode:  s.mode,
		flags: s.flags,
	}
	return p.build()
}

// build compiles the rendered expression. Rendered sources are always valid,
// including the empty classes "[]" and "[^]".
func (p Pattern) build() Pattern {
	p.re = charclass.MustCompile(p.render(), p.flags)
	return p
}

func (p Pattern) render() string {
	var b strings.Builder
	b.WriteByte('[')
	if p.mode == ModeRestrict {
		b.WriteByte('^')
	}
	if p.cats.lowercase {
		b.WriteString(lowercaseClass)
	}
	if p.cats.uppercase {
		b.WriteString(uppercaseClass)
	}
	if p.cats.numeric {
		b.WriteString(numericClass)
	}
	if p.cats.special {
		b.WriteString(specialClass)
	}
	b.WriteByte(']')
	return b.String()
}

// WithLowercase returns a copy with the lowercase category set to v.
func (p Pattern) WithLowercase(v bool) Pattern {
	p.cats.lowercase = v
	return p.build()
}

// WithUppercase returns a copy with the uppercase category set to v.
func (p Pattern) WithUppercase(v bool) Pattern {
	p.cats.uppercase = v
	return p.build()
}

// WithNumeric returns a copy with the numeric category set to v.
func (p Pattern) WithNumeric(v bool) Pattern {
	p.cats.numeric = v
	return p.build()
}

// WithSpecial returns a copy with the special category set to v.
func (p Pattern) WithSpecial(v bool) Pattern {
	p.cats.special = v
	return p.build()
}

// WithCategories returns a copy with every non-nil field of c applied.
func (p Pattern) WithCategories(c Categories) Pattern {
	p.cats = p.cats.apply(c)
	return p.build()
}

// WithMode returns a copy in mode m. Unrecognised modes return p unchanged.
func (p Pattern) WithMode(m Mode) Pattern {
	if !m.Valid() {
		return p
	}
	p.mode = m
	return p.build()
}

// Allow returns a copy in ModeAllow.
func (p Pattern) Allow() Pattern {
	return p.WithMode(ModeAllow)
}

// Restrict returns a copy in ModeRestrict.
func (p Pattern) Restrict() Pattern {
	return p.WithMode(ModeRestrict)
}

// Invert returns a copy in the opposite mode, i.e. the complementary expression.
func (p Pattern) Invert() Pattern {
	if p.mode == ModeAllow {
		return p.Restrict()
	}
	return p.Allow()
}

// complement compiles the inverted expression with the global flag set, so
// every rejected character is matched regardless of the configured flags.
func (p Pattern) complement() *charclass.Regexp {
	inv := p.Invert()
	inv.flags = inv.flags.Global()
	return inv.build().re
}

func (p Pattern) Mode() Mode {
	return p.mode
}

func (p Pattern) IsAllowed() bool    { return p.mode == ModeAllow }
func (p Pattern) IsRestricted() bool { return p.mode == ModeRestrict }

func (p Pattern) IsLowercase() bool { return p.cats.lowercase }
func (p Pattern) IsUppercase() bool { return p.cats.uppercase }
func (p Pattern) IsNumeric() bool   { return p.cats.numeric }
func (p Pattern) IsSpecial() bool   { return p.cats.special }

func (p Pattern) Flags() charclass.Flags {
	return p.flags
}

// Source returns the bracket expression, e.g. "[^A-Z0-9\W]".
func (p Pattern) Source() string {
	return p.re.Source()
}

// Regexp returns the compiled expression. It is nil for the zero Pattern.
func (p Pattern) Regexp() *charclass.Regexp {
	return p.re
}

// MatchString reports whether s contains at least one character matched by
// the expression. The zero Pattern matches nothing.
func (p Pattern) MatchString(s string) bool {
	return p.re.MatchString(s)
}

func (p Pattern) String() string {
	return p.re.String()
}
