package charfilter

import "fmt"

// Mode decides what the selected categories mean to a filter.
type Mode string

const (
	// ModeAllow keeps the selected categories and rejects everything else.
	ModeAllow Mode = "allow"
	// ModeRestrict rejects the selected categories and keeps everything else.
	ModeRestrict Mode = "restrict"
)

// Valid reports whether m is one of the two recognised modes.
func (m Mode) Valid() bool {
	return m == ModeAllow || m == ModeRestrict
}

func (m Mode) String() string {
	return string(m)
}

// ParseMode converts a string into a Mode. The empty string yields ModeRestrict.
func ParseMode(s string) (Mode, error) {
	if s == "" {
		return ModeRestrict, nil
	}
	m := Mode(s)
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
	return m, nil
}
