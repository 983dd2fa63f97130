package match

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatch(t *testing.T) {
	const text = "harry1501potter"
	tests := []struct {
		pattern string
		text    string
		want    bool
	}{
		{".*", "anything", true},
		{".*", text, true},
		{"^h.*r$", text, true},
		{"^har*y.*pot.*er$", text, true},
		{"^har*y..pot.*er$", text, false},

		{"", "", true},
		{"", "abc", true},
		{"^", "", true},
		{"$", "abc", true},
		{"^$", "", true},
		{"^$", "a", false},
		{"abc", "xxabcxx", true},
		{"^abc", "xxabc", false},
		{"abc$", "abcxx", false},
		{"abc$", "xxabc", true},
		{"a.c", "abc", true},
		{"a.c", "ac", false},
		{"^a*$", "", true},
		{"^a*$", "aaaa", true},
		{"^a*$", "aaba", false},
		{"^a*ab$", "aaab", true},
		{"^.*x", "abc", false},
		{"1501", text, true},
		{"^x*h", text, true},
		{"^a*b*$", "aabbb", true},
		{"^a*b*$", "aabba", false},
		{"^a\x00b$", "a\x00b", true},
	}
	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.text, func(t *testing.T) {
			require.Equal(t, tt.want, MatchString(tt.pattern, tt.text))
		})
	}
}

func TestMatcherStepLimit(t *testing.T) {
	pattern := []byte("^" + strings.Repeat("a*", 12) + "b")
	text := []byte(strings.Repeat("a", 24))

	m := &Matcher{MaxSteps: 10_000}
	ok, err := m.Match(pattern, text)
	require.ErrorIs(t, err, ErrStepLimit)
	require.False(t, ok)
	require.Equal(t, 10_001, m.Steps())

	// the same matcher is reusable and the budget resets per call
	ok, err = m.Match([]byte("^a*$"), text)
	require.NoError(t, err)
	require.True(t, ok)
	require.Less(t, m.Steps(), 100)
}

func TestMatcherUnbounded(t *testing.T) {
	var m Matcher
	ok, err := m.Match([]byte("^h.*r$"), []byte("harry1501potter"))
	require.NoError(t, err)
	require.True(t, ok)
	require.Positive(t, m.Steps())
}

func BenchmarkMatch(b *testing.B) {
	pattern := []byte("^har*y.*pot.*er$")
	text := []byte("harry1501potter")
	for b.Loop() {
		Match(pattern, text)
	}
}
