package charfilter

import (
	"log/slog"

	"github.com/dmitrymomot/charclass/pkg/charclass"
	"github.com/dmitrymomot/charclass/pkg/logger"
)

// Option configures a Pattern or Filter at construction.
type Option func(*settings)

type settings struct {
	defaults Defaults
	mode     Mode
	flags    charclass.Flags
	logger   *slog.Logger
}

func defaultSettings() *settings {
	return &settings{
		mode:   ModeRestrict,
		flags:  charclass.NewFlags(charclass.FlagGlobal),
		logger: logger.NewNop(),
	}
}

func newSettings(opts []Option) *settings {
	s := defaultSettings()
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithDefaults sets the values used for categories left nil.
func WithDefaults(d Defaults) Option {
	return func(s *settings) {
		s.defaults = d
	}
}

// WithMode sets the initial mode. Unrecognised modes are ignored and the
// default ModeRestrict stays in place.
func WithMode(m Mode) Option {
	return func(s *settings) {
		if m.Valid() {
			s.mode = m
		}
	}
}

// WithFlags replaces the default "g" flag set used to compile patterns.
// Filter.Apply removes every rejected character whether or not g is present.
func WithFlags(flags charclass.Flags) Option {
	return func(s *settings) {
		s.flags = flags
	}
}

// WithLogger sets the logger used for diagnostics. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}
