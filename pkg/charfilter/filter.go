package charfilter

import (
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/charclass/pkg/charclass"
	"github.com/dmitrymomot/charclass/pkg/logger"
)

// Filter strips or validates strings against a category Pattern.
//
// In ModeRestrict the selected categories are removed from input; in
// ModeAllow only the selected categories are kept. Filter is a value: mode
// and category changes return a new Filter and never refilter the stored
// value. Call SetValue or Refilter to apply the new configuration to it.
type Filter struct {
	input   string
	value   string
	pattern Pattern
	strip   *charclass.Regexp
	logger  *slog.Logger
}

// New creates a filter for value. The stored value is the filtered input.
func New(value string, c Categories, opts ...Option) Filter {
	s := newSettings(opts)
	f := Filter{logger: s.logger}.withPattern(newPattern(c, s))
	return f.SetValue(value)
}

// withPattern installs p and the complementary expression used for stripping.
func (f Filter) withPattern(p Pattern) Filter {
	f.pattern = p
	f.strip = p.complement()
	return f
}

func (f Filter) log() *slog.Logger {
	if f.logger == nil {
		return logger.NewNop()
	}
	return f.logger
}

// SetMode returns a filter in mode m. Unrecognised modes leave the filter
// unchanged and return an error wrapping ErrInvalidMode.
func (f Filter) SetMode(m Mode) (Filter, error) {
	if !m.Valid() {
		err := fmt.Errorf("%w: %q", ErrInvalidMode, m)
		f.log().Warn("filter mode rejected",
			logger.Mode(string(m)),
			slog.String("current_mode", string(f.Mode())),
			logger.Error(err),
		)
		return f, err
	}

	next := f.withPattern(f.pattern.WithMode(m))
	f.log().Debug("filter mode changed",
		logger.Mode(string(m)),
		logger.Source(next.pattern.Source()),
		logger.Flags(next.pattern.Flags().String()),
	)
	return next, nil
}

// Allow returns a filter that keeps only the selected categories.
func (f Filter) Allow() Filter {
	next, _ := f.SetMode(ModeAllow)
	return next
}

// Restrict returns a filter that removes the selected categories.
func (f Filter) Restrict() Filter {
	next, _ := f.SetMode(ModeRestrict)
	return next
}

// WithCategories returns a filter with every non-nil field of c applied.
func (f Filter) WithCategories(c Categories) Filter {
	next := f.withPattern(f.pattern.WithCategories(c))
	f.log().Debug("filter categories changed",
		logger.Categories(next.pattern.IsLowercase(), next.pattern.IsUppercase(),
			next.pattern.IsNumeric(), next.pattern.IsSpecial()),
		logger.Source(next.pattern.Source()),
	)
	return next
}

// Apply returns s with every rejected character removed.
func (f Filter) Apply(s string) string {
	return f.strip.RemoveString(s)
}

// IsValid reports whether s contains at least one character accepted by the
// pattern. It is false for the zero Filter.
func (f Filter) IsValid(s string) bool {
	return f.pattern.MatchString(s)
}

// FilterSlice returns the values for which IsValid holds, in their original order.
func (f Filter) FilterSlice(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if f.IsValid(v) {
			out = append(out, v)
		}
	}
	return out
}

// SetValue returns a filter storing the filtered form of value.
func (f Filter) SetValue(value string) Filter {
	f.input = value
	f.value = f.Apply(value)
	return f
}

// Refilter applies the current configuration to the last raw input.
func (f Filter) Refilter() Filter {
	return f.SetValue(f.input)
}

// Value returns the filtered value.
func (f Filter) Value() string {
	return f.value
}

// Input returns the raw value last passed to New or SetValue.
func (f Filter) Input() string {
	return f.input
}

func (f Filter) Mode() Mode {
	return f.pattern.Mode()
}

func (f Filter) Pattern() Pattern {
	return f.pattern
}

func (f Filter) String() string {
	return f.value
}
