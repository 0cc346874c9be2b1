package charclass

import (
	"fmt"
	"strings"
)

// Flag is a single regular expression engine flag.
type Flag rune

const (
	FlagGlobal     Flag = 'g'
	FlagIgnoreCase Flag = 'i'
	FlagMultiline  Flag = 'm'
	FlagDotAll     Flag = 's'
	FlagUnicode    Flag = 'u'
	FlagSticky     Flag = 'y'
)

// Valid reports whether f is a supported flag symbol.
func (f Flag) Valid() bool {
	switch f {
	case FlagGlobal, FlagIgnoreCase, FlagMultiline, FlagDotAll, FlagUnicode, FlagSticky:
		return true
	}
	return false
}

func (f Flag) String() string {
	return string(f)
}

// Flags is an immutable, duplicate-free flag set. String form follows
// insertion order.
type Flags struct {
	set []Flag
}

// NewFlags collapses duplicates and drops unsupported symbols.
func NewFlags(flags ...Flag) Flags {
	out := Flags{set: make([]Flag, 0, len(flags))}
	for _, f := range flags {
		if f.Valid() && !out.Has(f) {
			out.set = append(out.set, f)
		}
	}
	return out
}

// ParseFlags parses a flag string such as "gi". Duplicates collapse;
// unsupported symbols are reported.
func ParseFlags(s string) (Flags, error) {
	flags := make([]Flag, 0, len(s))
	for _, r := range s {
		f := Flag(r)
		if !f.Valid() {
			return Flags{}, fmt.Errorf("%w: %q in %q", ErrInvalidFlag, r, s)
		}
		flags = append(flags, f)
	}
	return NewFlags(flags...), nil
}

// Has reports whether f is in the set.
func (fs Flags) Has(f Flag) bool {
	for _, v := range fs.set {
		if v == f {
			return true
		}
	}
	return false
}

// Len returns the number of flags in the set.
func (fs Flags) Len() int {
	return len(fs.set)
}

// Add returns a new set with f inserted. Adding a present flag is a no-op.
func (fs Flags) Add(f Flag) Flags {
	out := make([]Flag, len(fs.set), len(fs.set)+1)
	copy(out, fs.set)
	return NewFlags(append(out, f)...)
}

// Remove returns a new set without f. Removing an absent flag is a no-op.
func (fs Flags) Remove(f Flag) Flags {
	out := make([]Flag, 0, len(fs.set))
	for _, v := range fs.set {
		if v != f {
			out = append(out, v)
		}
	}
	return Flags{set: out}
}

func (fs Flags) Global() Flags     { return fs.Add(FlagGlobal) }
func (fs Flags) IgnoreCase() Flags { return fs.Add(FlagIgnoreCase) }
func (fs Flags) Multiline() Flags  { return fs.Add(FlagMultiline) }
func (fs Flags) DotAll() Flags     { return fs.Add(FlagDotAll) }
func (fs Flags) Unicode() Flags    { return fs.Add(FlagUnicode) }
func (fs Flags) Sticky() Flags     { return fs.Add(FlagSticky) }

func (fs Flags) RemoveGlobal() Flags     { return fs.Remove(FlagGlobal) }
func (fs Flags) RemoveIgnoreCase() Flags { return fs.Remove(FlagIgnoreCase) }
func (fs Flags) RemoveMultiline() Flags  { return fs.Remove(FlagMultiline) }
func (fs Flags) RemoveDotAll() Flags     { return fs.Remove(FlagDotAll) }
func (fs Flags) RemoveUnicode() Flags    { return fs.Remove(FlagUnicode) }
func (fs Flags) RemoveSticky() Flags     { return fs.Remove(FlagSticky) }

// String joins the flags without separator in insertion order.
func (fs Flags) String() string {
	var b strings.Builder
	for _, f := range fs.set {
		b.WriteRune(rune(f))
	}
	return b.String()
}

// inline returns the RE2 inline flag group for i, m and s, or "".
func (fs Flags) inline() string {
	var b strings.Builder
	for _, f := range []Flag{FlagIgnoreCase, FlagMultiline, FlagDotAll} {
		if fs.Has(f) {
			b.WriteRune(rune(f))
		}
	}
	if b.Len() == 0 {
		return ""
	}
	return "(?" + b.String() + ")"
}
