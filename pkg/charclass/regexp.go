package charclass

import (
	"errors"
	"regexp"
	"strings"
)

const (
	// matchNothing and matchAny are the RE2 spellings of the ECMAScript
	// empty classes [] and [^].
	matchNothing = `[^\x00-\x{10FFFF}]`
	matchAny     = `[\x00-\x{10FFFF}]`
)

// Regexp is a compiled pattern together with its source text and flag set.
// A nil *Regexp matches nothing and removes nothing.
type Regexp struct {
	source string
	flags  Flags
	re     *regexp.Regexp
}

// Compile compiles an ECMAScript-style pattern source with the given flags.
//
// Flags map onto Go's engine as follows: i, m and s become inline flags,
// y anchors the match at the start of the input, u is accepted with no effect
// and g makes ReplaceString replace every match instead of the first.
func Compile(source string, flags Flags) (*Regexp, error) {
	expr := translate(source)
	if flags.Has(FlagSticky) {
		expr = `\A(?:` + expr + `)`
	}
	expr = flags.inline() + expr

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, errors.Join(ErrInvalidPattern, err)
	}

	return &Regexp{source: source, flags: flags, re: re}, nil
}

// MustCompile is like Compile but panics if the source cannot be compiled.
func MustCompile(source string, flags Flags) *Regexp {
	re, err := Compile(source, flags)
	if err != nil {
		panic(err)
	}
	return re
}

// Source returns the pattern text as it was given to Compile.
func (r *Regexp) Source() string {
	if r == nil {
		return ""
	}
	return r.source
}

func (r *Regexp) Flags() Flags {
	if r == nil {
		return Flags{}
	}
	return r.flags
}

// String renders the pattern as a literal, e.g. "/[a-z]/g".
func (r *Regexp) String() string {
	return "/" + r.Source() + "/" + r.Flags().String()
}

// MatchString reports whether s contains any match of the pattern.
func (r *Regexp) MatchString(s string) bool {
	if r == nil {
		return false
	}
	return r.re.MatchString(s)
}

// ReplaceString replaces matches in s with the literal repl. With the global
// flag every match is replaced, otherwise only the first one.
func (r *Regexp) ReplaceString(s, repl string) string {
	if r == nil {
		return s
	}
	if r.flags.Has(FlagGlobal) {
		return r.re.ReplaceAllLiteralString(s, repl)
	}

	loc := r.re.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + repl + s[loc[1]:]
}

// RemoveString deletes matches from s, honouring the global flag.
func (r *Regexp) RemoveString(s string) string {
	return r.ReplaceString(s, "")
}

// translate rewrites the ECMAScript empty classes [] and [^] into RE2 syntax.
// Everything else is passed through unchanged.
func translate(source string) string {
	if !strings.Contains(source, "[]") && !strings.Contains(source, "[^]") {
		return source
	}

	var b strings.Builder
	inClass := false
	for i := 0; i < len(source); i++ {
		c := source[i]

		if c == '\\' && i+1 < len(source) {
			b.WriteString(source[i : i+2])
			i++
			continue
		}

		if inClass {
			if c == ']' {
				inClass = false
			}
			b.WriteByte(c)
			continue
		}

		if c != '[' {
			b.WriteByte(c)
			continue
		}

		rest := source[i+1:]
		switch {
		case strings.HasPrefix(rest, "]"):
			b.WriteString(matchNothing)
			i++
		case strings.HasPrefix(rest, "^]"):
			b.WriteString(matchAny)
			i += 2
		default:
			inClass = true
			b.WriteByte(c)
			if strings.HasPrefix(rest, "^") {
				b.WriteByte('^')
				i++
			}
		}
	}

	return b.String()
}
