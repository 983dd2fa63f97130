//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package alloc

import (
	"fmt"
	"os"
)

// Pages falls back to page-rounded Go heap blocks where anonymous mappings
// are not available.
type Pages struct {
	Lifecycle[byte]
}

// MaxSize returns the largest n that still rounds up to an int page count.
func (Pages) MaxSize() int {
	return maxElements[byte]() - os.Getpagesize() + 1
}

// Allocate returns the first n bytes of a zeroed page-rounded heap block.
func (p Pages) Allocate(n int) ([]byte, error) {
	if n < 0 || n > p.MaxSize() {
		return nil, fmt.Errorf("%w: %d bytes", ErrAllocationLimitExceeded, n)
	}
	b, err := Heap[byte]{}.Allocate(PageRound(n))
	if err != nil || b == nil {
		return nil, err
	}
	return b[:n], nil
}

// Deallocate validates the block/count pair.
func (Pages) Deallocate(block []byte, n int) error {
	return checkRelease(block, n)
}

// PageRound rounds n up to a multiple of the system page size.
func PageRound(n int) int {
	ps := os.Getpagesize()
	return (n + ps - 1) &^ (ps - 1)
}

var _ Allocator[byte] = Pages{}
