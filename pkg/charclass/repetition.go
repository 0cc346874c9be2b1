package charclass

import (
	"fmt"
	"strconv"
)

// Bound is one side of a quantifier: either unset or a non-negative count.
type Bound struct {
	n   int
	set bool
}

// Unset is the absent bound. It renders as an empty string.
var Unset = Bound{}

// Count returns a bound fixed at n.
func Count(n int) Bound {
	return Bound{n: n, set: true}
}

// Value returns the count and whether the bound is set.
func (b Bound) Value() (int, bool) {
	return b.n, b.set
}

// IsSet reports whether the bound carries a count.
func (b Bound) IsSet() bool {
	return b.set
}

func (b Bound) String() string {
	if !b.set {
		return ""
	}
	return strconv.Itoa(b.n)
}

// Repetition renders a {min,max} quantifier.
type Repetition struct {
	min Bound
	max Bound
}

// NewRepetition validates the bounds and returns a quantifier.
// Negative counts and min > max are rejected.
func NewRepetition(min, max Bound) (Repetition, error) {
	if min.set && min.n < 0 {
		return Repetition{}, fmt.Errorf("%w: negative min %d", ErrInvalidRepetition, min.n)
	}
	if max.set && max.n < 0 {
		return Repetition{}, fmt.Errorf("%w: negative max %d", ErrInvalidRepetition, max.n)
	}
	if min.set && max.set && min.n > max.n {
		return Repetition{}, fmt.Errorf("%w: min %d is greater than max %d", ErrInvalidRepetition, min.n, max.n)
	}

	return Repetition{min: min, max: max}, nil
}

// MustRepetition is like NewRepetition but panics on invalid bounds.
func MustRepetition(min, max Bound) Repetition {
	r, err := NewRepetition(min, max)
	if err != nil {
		panic(err)
	}
	return r
}

// Min returns the lower bound.
func (r Repetition) Min() Bound {
	return r.min
}

// Max returns the upper bound.
func (r Repetition) Max() Bound {
	return r.max
}

// Quantifier renders the repetition, e.g. "{2,5}", "{,5}", "{2,}" or "{,}".
func (r Repetition) Quantifier() string {
	return "{" + r.min.String() + "," + r.max.String() + "}"
}

func (r Repetition) String() string {
	return r.Quantifier()
}

// RangeRepetition is a character range followed by a quantifier, e.g. "[a-z]{2,5}".
type RangeRepetition struct {
	Range      Range
	Repetition Repetition
}

func (rr RangeRepetition) String() string {
	return rr.Range.String() + rr.Repetition.Quantifier()
}

// Compile compiles the range with its quantifier using the given flags.
func (rr RangeRepetition) Compile(flags Flags, anchored bool) (*Regexp, error) {
	return Compile(anchor(rr.String(), anchored), flags)
}
