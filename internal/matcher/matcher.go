// Package matcher compiles the user's search pattern into a line matcher.
package matcher

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrInvalidPattern is returned when the pattern is not a valid regular expression.
var ErrInvalidPattern = errors.New("the provided search pattern is invalid")

// Options control how the pattern is compiled.
type Options struct {
	// CaseInsensitive compiles the pattern with the (?i) flag
	CaseInsensitive bool
	// WholeWord anchors the pattern at word boundaries on both sides
	WholeWord bool
}

// Regexp matches lines against a compiled pattern.
type Regexp struct {
	re      *regexp.Regexp
	pattern string
}

// New compiles pattern with the given options.
// The match is unanchored: a line matches when the pattern occurs anywhere in it.
func New(pattern string, opts Options) (*Regexp, error) {
	expr := pattern
	if opts.WholeWord {
		// Group the pattern so alternations stay inside the boundaries.
		expr = `\b(?:` + expr + `)\b`
	}
	if opts.CaseInsensitive {
		expr = "(?i)" + expr
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, pattern, err)
	}

	return &Regexp{re: re, pattern: pattern}, nil
}

// Match reports whether line contains a match.
func (r *Regexp) Match(line string) bool {
	return r.re.MatchString(line)
}

// Locate returns the byte offsets of the leftmost match in line.
func (r *Regexp) Locate(line string) (start, end int, ok bool) {
	loc := r.re.FindStringIndex(line)
	if loc == nil {
		return 0, 0, false
	}
	return loc[0], loc[1], true
}

// String returns the pattern as the user supplied it.
func (r *Regexp) String() string {
	return r.pattern
}

// Expr returns the expression that was actually compiled.
func (r *Regexp) Expr() string {
	return r.re.String()
}
