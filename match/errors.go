package match

import "errors"

// ErrStepLimit indicates a Matcher gave up after MaxSteps comparisons.
var ErrStepLimit = errors.New("match: step limit exceeded")
