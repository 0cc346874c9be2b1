package charfilter

import "errors"

// Package-specific errors
var (
	// ErrInvalidMode is returned when a mode is neither "allow" nor "restrict".
	ErrInvalidMode = errors.New("invalid filter mode")

	// ErrInvalidSettings is returned when a settings document cannot be parsed.
	ErrInvalidSettings = errors.New("invalid filter settings")

	// ErrLoadingDefaults is returned when category defaults cannot be read from the environment.
	ErrLoadingDefaults = errors.New("failed to load category defaults")
)
