package charclass

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// domain identifies the alphabet a range is drawn from.
type domain uint8

const (
	domainRune domain = iota
	domainLowercase
	domainUppercase
	domainDigit
)

func (d domain) String() string {
	switch d {
	case domainLowercase:
		return "lowercase"
	case domainUppercase:
		return "uppercase"
	case domainDigit:
		return "digit"
	default:
		return "character"
	}
}

// Range is an immutable from-to character range with optional extra
// metacharacters and a negation bit. It renders to a bracket expression.
type Range struct {
	from    rune
	to      rune
	extra   SpecialSet
	negated bool
	domain  domain
}

// NewRange builds a range over arbitrary printable characters compared by
// code point. Extra characters outside the metacharacter allow-list are dropped.
func NewRange(from, to rune, extra ...rune) (Range, error) {
	if !unicode.IsPrint(from) || !unicode.IsPrint(to) {
		return Range{}, fmt.Errorf("%w: %q-%q: bounds must be printable", ErrInvalidRange, from, to)
	}
	return newRange(from, to, domainRune, extra)
}

// NewLowercaseRange builds a range inside a-z. Bounds are lowercased first,
// so 'A'-'F' becomes a-f.
func NewLowercaseRange(from, to rune, extra ...rune) (Range, error) {
	lower := cases.Lower(language.Und)
	f, okFrom := foldRune(lower, from)
	t, okTo := foldRune(lower, to)
	if !okFrom || !okTo || !inAlphabet(f, 'a', 'z') || !inAlphabet(t, 'a', 'z') {
		return Range{}, fmt.Errorf("%w: %q-%q: bounds must be within a-z", ErrInvalidRange, from, to)
	}
	return newRange(f, t, domainLowercase, extra)
}

// NewUppercaseRange builds a range inside A-Z. Bounds are uppercased first.
func NewUppercaseRange(from, to rune, extra ...rune) (Range, error) {
	upper := cases.Upper(language.Und)
	f, okFrom := foldRune(upper, from)
	t, okTo := foldRune(upper, to)
	if !okFrom || !okTo || !inAlphabet(f, 'A', 'Z') || !inAlphabet(t, 'A', 'Z') {
		return Range{}, fmt.Errorf("%w: %q-%q: bounds must be within A-Z", ErrInvalidRange, from, to)
	}
	return newRange(f, t, domainUppercase, extra)
}

// NewDigitRange builds a range over the integers 0-9 compared numerically.
func NewDigitRange(from, to int, extra ...rune) (Range, error) {
	if from < 0 || from > 9 || to < 0 || to > 9 {
		return Range{}, fmt.Errorf("%w: %d-%d: bounds must be within 0-9", ErrInvalidRange, from, to)
	}
	return newRange('0'+rune(from), '0'+rune(to), domainDigit, extra)
}

// MustRange panics if err is non-nil. It is meant for ranges built from constants.
func MustRange(r Range, err error) Range {
	if err != nil {
		panic(err)
	}
	return r
}

func newRange(from, to rune, d domain, extra []rune) (Range, error) {
	if from > to {
		return Range{}, fmt.Errorf("%w: %s range %s-%s: from is greater than to",
			ErrInvalidRange, d, string(from), string(to))
	}
	return Range{
		from:   from,
		to:     to,
		extra:  NewSpecialSet(extra...),
		domain: d,
	}, nil
}

// From returns the lower bound as written in the bracket expression.
func (r Range) From() string {
	return string(r.from)
}

// To returns the upper bound as written in the bracket expression.
func (r Range) To() string {
	return string(r.to)
}

// Bounds returns the bounds as integers for digit ranges.
// ok is false for letter ranges.
func (r Range) Bounds() (from, to int, ok bool) {
	if r.domain != domainDigit {
		return 0, 0, false
	}
	from, _ = strconv.Atoi(string(r.from))
	to, _ = strconv.Atoi(string(r.to))
	return from, to, true
}

func (r Range) Extra() SpecialSet {
	return r.extra
}

// WithExtra returns a copy with chars added to the extra metacharacters.
func (r Range) WithExtra(chars ...rune) Range {
	r.extra = r.extra.Add(chars...)
	return r
}

func (r Range) IsNegated() bool {
	return r.negated
}

// Negate returns a copy with the negation flipped.
func (r Range) Negate() Range {
	r.negated = !r.negated
	return r
}

// String renders the bracket expression, e.g. "[a-z]", "[^0-9]" or "[a-f\*\+]".
func (r Range) String() string {
	var b strings.Builder
	b.WriteByte('[')
	if r.negated {
		b.WriteByte('^')
	}
	b.WriteString(escapeBound(r.from))
	b.WriteByte('-')
	b.WriteString(escapeBound(r.to))
	b.WriteString(r.extra.Escaped())
	b.WriteByte(']')
	return b.String()
}

// Repeat attaches a quantifier to the range.
func (r Range) Repeat(rep Repetition) RangeRepetition {
	return RangeRepetition{Range: r, Repetition: rep}
}

// Compile builds an executable pattern from the rendered range, optionally
// wrapped with ^ and $ anchors.
func (r Range) Compile(flags Flags, anchored bool) (*Regexp, error) {
	return Compile(anchor(r.String(), anchored), flags)
}

func anchor(source string, anchored bool) string {
	if !anchored {
		return source
	}
	return "^" + source + "$"
}

// escapeBound escapes characters that change meaning inside a bracket expression.
func escapeBound(r rune) string {
	switch r {
	case '\\', ']', '[', '^', '-':
		return `\` + string(r)
	}
	return string(r)
}

// foldRune case-maps an ASCII rune. ok is false for non-ASCII input and for
// mappings that do not produce exactly one ASCII rune.
func foldRune(c cases.Caser, r rune) (rune, bool) {
	if r >= utf8.RuneSelf {
		return r, false
	}
	mapped := c.String(string(r))
	folded, size := utf8.DecodeRuneInString(mapped)
	if size != len(mapped) || folded >= utf8.RuneSelf {
		return r, false
	}
	return folded, true
}

func inAlphabet(r, lo, hi rune) bool {
	return r >= lo && r <= hi
}
