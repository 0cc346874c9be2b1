package charfilter

import (
	"errors"

	"github.com/dmitrymomot/charclass/pkg/config"
)

// Categories selects the character categories of a pattern. A nil field
// means "use the default" supplied with WithDefaults.
type Categories struct {
	Lowercase *bool `json:"lowercase,omitempty" yaml:"lowercase,omitempty"`
	Uppercase *bool `json:"uppercase,omitempty" yaml:"uppercase,omitempty"`
	Numeric   *bool `json:"numeric,omitempty" yaml:"numeric,omitempty"`
	Special   *bool `json:"special,omitempty" yaml:"special,omitempty"`
}

// Bool returns a pointer to v, for filling Categories literals.
func Bool(v bool) *bool {
	return &v
}

// Defaults holds the category values used when a Categories field is nil.
// The zero value disables every category.
type Defaults struct {
	Lowercase bool `env:"CHARFILTER_LOWERCASE" envDefault:"false" yaml:"lowercase"`
	Uppercase bool `env:"CHARFILTER_UPPERCASE" envDefault:"false" yaml:"uppercase"`
	Numeric   bool `env:"CHARFILTER_NUMERIC" envDefault:"false" yaml:"numeric"`
	Special   bool `env:"CHARFILTER_SPECIAL" envDefault:"false" yaml:"special"`
}

// LoadDefaults reads Defaults from the CHARFILTER_* environment variables.
// The value is parsed once per process; pass it to constructors with
// WithDefaults.
func LoadDefaults() (Defaults, error) {
	var d Defaults
	if err := config.Load(&d); err != nil {
		return Defaults{}, errors.Join(ErrLoadingDefaults, err)
	}
	return d, nil
}

// categorySet is a fully resolved selection.
type categorySet struct {
	lowercase bool
	uppercase bool
	numeric   bool
	special   bool
}

func (d Defaults) categories() categorySet {
	return categorySet{
		lowercase: d.Lowercase,
		uppercase: d.Uppercase,
		numeric:   d.Numeric,
		special:   d.Special,
	}
}

// apply overrides the selection with every non-nil field of c.
func (s categorySet) apply(c Categories) categorySet {
	if c.Lowercase != nil {
		s.lowercase = *c.Lowercase
	}
	if c.Uppercase != nil {
		s.uppercase = *c.Uppercase
	}
	if c.Numeric != nil {
		s.numeric = *c.Numeric
	}
	if c.Special != nil {
		s.special = *c.Special
	}
	return s
}
