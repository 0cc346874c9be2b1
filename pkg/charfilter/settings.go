package charfilter

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/charclass/pkg/charclass"
)

// Settings is the external configuration of a filter: the categories, the
// mode and the regular expression flags.
//
//	lowercase: false
//	uppercase: true
//	numeric: true
//	mode: allow
//	flags: gi
type Settings struct {
	Categories `yaml:",inline"`

	Mode  Mode   `json:"mode,omitempty" yaml:"mode,omitempty"`
	Flags string `json:"flags,omitempty" yaml:"flags,omitempty"`
}

// ParseSettings decodes a YAML settings document and validates its mode and flags.
func ParseSettings(data []byte) (Settings, error) {
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, errors.Join(ErrInvalidSettings, err)
	}
	if _, err := s.Options(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// ParseCategories decodes only the category part of a YAML document.
func ParseCategories(data []byte) (Categories, error) {
	var c Categories
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Categories{}, errors.Join(ErrInvalidSettings, err)
	}
	return c, nil
}

// Options converts the mode and flags into constructor options. An empty
// mode keeps ModeRestrict; an empty flag string keeps the default "g".
func (s Settings) Options() ([]Option, error) {
	mode, err := ParseMode(string(s.Mode))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	opts := []Option{WithMode(mode)}

	if s.Flags != "" {
		flags, err := charclass.ParseFlags(s.Flags)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidSettings, err)
		}
		opts = append(opts, WithFlags(flags))
	}

	return opts, nil
}

// NewFromSettings creates a filter for value from parsed settings.
// Extra options are applied after the ones derived from s.
func NewFromSettings(value string, s Settings, opts ...Option) (Filter, error) {
	base, err := s.Options()
	if err != nil {
		return Filter{}, err
	}
	return New(value, s.Categories, append(base, opts...)...), nil
}
