package charclass

import "strings"

// specialEscapes maps every supported metacharacter to its escape sequence.
var specialEscapes = map[rune]string{
	'*': `\*`,
	'd': `\d`,
	'D': `\D`,
	'w': `\w`,
	'W': `\W`,
	's': `\s`,
	'S': `\S`,
	'+': `\+`,
	'?': `\?`,
	'^': `\^`,
	'$': `\$`,
	'(': `\(`,
	')': `\)`,
	'[': `\[`,
	']': `\]`,
	'|': `\|`,
	'{': `\{`,
	'}': `\}`,
}

// IsSpecial reports whether r is one of the supported metacharacters.
func IsSpecial(r rune) bool {
	_, ok := specialEscapes[r]
	return ok
}

// Escape returns the two-character escape sequence for a supported metacharacter.
// The letters d, D, w, W, s and S escape to their class shorthands.
func Escape(r rune) (string, bool) {
	esc, ok := specialEscapes[r]
	return esc, ok
}

// SpecialSet is an immutable, duplicate-free set of regex metacharacters.
// Iteration follows insertion order.
type SpecialSet struct {
	members []rune
}

// NewSpecialSet builds a set from chars, silently dropping anything that is
// not a supported metacharacter.
func NewSpecialSet(chars ...rune) SpecialSet {
	return SpecialSet{}.Add(chars...)
}

// Add returns the union of the set and chars. Unsupported characters are dropped.
func (s SpecialSet) Add(chars ...rune) SpecialSet {
	members := make([]rune, len(s.members), len(s.members)+len(chars))
	copy(members, s.members)

	for _, r := range chars {
		if !IsSpecial(r) || containsRune(members, r) {
			continue
		}
		members = append(members, r)
	}

	return SpecialSet{members: members}
}

// Remove returns the set without chars. Absent characters are ignored.
func (s SpecialSet) Remove(chars ...rune) SpecialSet {
	members := make([]rune, 0, len(s.members))
	for _, r := range s.members {
		if !containsRune(chars, r) {
			members = append(members, r)
		}
	}

	return SpecialSet{members: members}
}

// Contains reports whether r is a member of the set.
func (s SpecialSet) Contains(r rune) bool {
	return containsRune(s.members, r)
}

// Len returns the number of members.
func (s SpecialSet) Len() int {
	return len(s.members)
}

// Members returns a copy of the members in iteration order.
func (s SpecialSet) Members() []rune {
	out := make([]rune, len(s.members))
	copy(out, s.members)
	return out
}

// Escaped concatenates the escape sequence of every member without separators.
func (s SpecialSet) Escaped() string {
	var b strings.Builder
	b.Grow(len(s.members) * 2)
	for _, r := range s.members {
		b.WriteString(specialEscapes[r])
	}
	return b.String()
}

func (s SpecialSet) String() string {
	return s.Escaped()
}

func containsRune(rs []rune, r rune) bool {
	for _, v := range rs {
		if v == r {
			return true
		}
	}
	return false
}
