package charclass

import "errors"

// Package-specific errors
var (
	// ErrInvalidRange is returned when a range has from > to or a bound outside its alphabet.
	ErrInvalidRange = errors.New("invalid character range")

	// ErrInvalidRepetition is returned when a quantifier bound is negative or min exceeds max.
	ErrInvalidRepetition = errors.New("invalid repetition")

	// ErrInvalidFlag is returned when a flag string contains an unsupported symbol.
	ErrInvalidFlag = errors.New("invalid regular expression flag")

	// ErrInvalidPattern is returned when the regular expression engine rejects a pattern.
	ErrInvalidPattern = errors.New("invalid pattern")
)
