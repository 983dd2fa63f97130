//go:build linux || darwin || freebsd || netbsd || openbsd

package alloc

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Pages maps every block as its own anonymous private mapping rounded up to
// whole pages, and unmaps it on release. Suited to large byte buffers that
// should not live on the Go heap. Stateless.
type Pages struct {
	Lifecycle[byte]
}

// MaxSize returns the largest n that still rounds up to an int page count.
func (Pages) MaxSize() int {
	return maxElements[byte]() - unix.Getpagesize() + 1
}

// Allocate maps ceil(n/pagesize) zeroed pages and returns the first n bytes.
func (p Pages) Allocate(n int) ([]byte, error) {
	if n == 0 {
		return nil, nil
	}
	if n < 0 || n > p.MaxSize() {
		return nil, fmt.Errorf("%w: %d bytes", ErrAllocationLimitExceeded, n)
	}
	size := PageRound(n)
	b, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("%w: mmap %d bytes: %v", ErrOutOfMemory, size, err)
	}
	return b[:n], nil
}

// Deallocate unmaps the whole mapping behind block.
func (Pages) Deallocate(block []byte, n int) error {
	if err := checkRelease(block, n); err != nil {
		return err
	}
	if block == nil {
		return nil
	}
	// Munmap looks the mapping up by its full extent.
	if err := unix.Munmap(block[:cap(block)]); err != nil {
		return fmt.Errorf("%w: munmap: %v", ErrInvalidDeallocation, err)
	}
	return nil
}

// PageRound rounds n up to a multiple of the system page size.
func PageRound(n int) int {
	ps := unix.Getpagesize()
	return (n + ps - 1) &^ (ps - 1)
}

var _ Allocator[byte] = Pages{}
