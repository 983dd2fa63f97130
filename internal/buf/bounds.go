package buf

import (
	"fmt"
	"math"
)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflowSafe multiplies a and b, returning ok = false when the result would overflow int.
// Growth computes required * factor with it before asking the allocator for a block.
func MulOverflowSafe(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > 0 && b > 0 {
		if a > math.MaxInt/b {
			return 0, false
		}
	}
	if a < 0 && b < 0 {
		if a < math.MaxInt/b {
			return 0, false
		}
	}
	if a > 0 && b < 0 {
		if b < math.MinInt/a {
			return 0, false
		}
	}
	if a < 0 && b > 0 {
		if a < math.MinInt/b {
			return 0, false
		}
	}
	return a * b, true
}

// CheckIndex validates 0 <= i < size.
func CheckIndex(i, size int) error {
	if i < 0 || i >= size {
		return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, i, size)
	}
	return nil
}

// CheckPosition validates 0 <= pos <= size, the valid insertion points.
func CheckPosition(pos, size int) error {
	if pos < 0 || pos > size {
		return fmt.Errorf("%w: position %d, size %d", ErrIndexOutOfRange, pos, size)
	}
	return nil
}
