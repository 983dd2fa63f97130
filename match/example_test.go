package match_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joshuapare/bufkit/match"
)

func ExampleMatchString() {
	fmt.Println(match.MatchString("^h.*r$", "harry1501potter"))
	fmt.Println(match.MatchString("^har*y..pot.*er$", "harry1501potter"))
	// Output:
	// true
	// false
}

func ExampleMatcher() {
	m := match.Matcher{MaxSteps: 1000}
	_, err := m.Match([]byte("^a*a*a*a*a*a*b"), []byte(strings.Repeat("a", 30)))
	fmt.Println(errors.Is(err, match.ErrStepLimit))
	// Output:
	// true
}
