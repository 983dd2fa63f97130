// Package match implements a minimal backtracking pattern matcher over raw
// bytes.
//
// # Pattern Language
//
//	c    matches the literal byte c
//	.    matches any single byte
//	c*   matches zero or more c (c may be '.'), longest run first
//	^    at the start of the pattern, anchors it to the start of the text
//	$    at the end of the pattern, matches only the end of the text
//
// Without '^' the pattern is tried at every start position, including the
// empty suffix, and the first success wins. A match need not consume the
// whole text unless the pattern ends in '$'.
//
// # Complexity
//
// Matching is O(n·m) for patterns with at most one star and exponential in
// the worst case when stars are stacked (".*.*.*x" against a long text with
// no x). Nothing is memoized. Use a Matcher with MaxSteps to bound the work
// spent on untrusted patterns.
package match

import "fmt"

// Match reports whether pattern matches somewhere in text. It has no work
// bound.
func Match(pattern, text []byte) bool {
	ok, _ := (&Matcher{}).Match(pattern, text)
	return ok
}

// MatchString is Match for strings.
func MatchString(pattern, text string) bool {
	return Match([]byte(pattern), []byte(text))
}

// Matcher runs matches with an optional work bound. The zero value is
// unbounded. A Matcher is not safe for concurrent use.
type Matcher struct {
	// MaxSteps caps the number of pattern positions tried against the text
	// per Match call. Zero means no cap.
	MaxSteps int

	steps int
}

// Match reports whether pattern matches somewhere in text. It fails with
// ErrStepLimit once MaxSteps is spent.
func (m *Matcher) Match(pattern, text []byte) (bool, error) {
	m.steps = 0
	if len(pattern) > 0 && pattern[0] == '^' {
		return m.here(pattern[1:], text)
	}
	for i := 0; i <= len(text); i++ {
		ok, err := m.here(pattern, text[i:])
		if ok || err != nil {
			return ok, err
		}
	}
	return false, nil
}

// Steps returns the work spent by the last Match call.
func (m *Matcher) Steps() int { return m.steps }

// here matches pattern against a prefix of text.
func (m *Matcher) here(pattern, text []byte) (bool, error) {
	m.steps++
	if m.MaxSteps > 0 && m.steps > m.MaxSteps {
		return false, fmt.Errorf("%w: %d steps", ErrStepLimit, m.MaxSteps)
	}
	switch {
	case len(pattern) == 0:
		return true, nil
	case len(pattern) > 1 && pattern[1] == '*':
		return m.star(pattern[0], pattern[2:], text)
	case pattern[0] == '$' && len(pattern) == 1:
		return len(text) == 0, nil
	case len(text) > 0 && (pattern[0] == '.' || pattern[0] == text[0]):
		return m.here(pattern[1:], text[1:])
	}
	return false, nil
}

// star matches c* followed by rest, taking the longest run of c first and
// giving back one byte at a time.
func (m *Matcher) star(c byte, rest, text []byte) (bool, error) {
	n := 0
	for n < len(text) && (c == '.' || text[n] == c) {
		n++
	}
	for ; n >= 0; n-- {
		ok, err := m.here(rest, text[n:])
		if ok || err != nil {
			return ok, err
		}
	}
	return false, nil
}
