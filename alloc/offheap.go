package alloc

import (
	"fmt"
	"sync"

	"modernc.org/memory"
)

// arena is the process-wide off-heap store behind OffHeap. memory.Allocator
// is not safe for concurrent use, hence the mutex.
var arena struct {
	sync.Mutex
	a memory.Allocator
}

// OffHeap allocates byte blocks outside the Go heap from an mmap-backed
// arena. The handle is stateless: all OffHeap values share one arena, so any
// of them may release a block obtained through another.
//
// Blocks are invisible to the garbage collector. A container using OffHeap
// must be released explicitly or its block leaks.
type OffHeap struct {
	Lifecycle[byte]
}

// MaxSize returns math.MaxInt.
func (OffHeap) MaxSize() int {
	return maxElements[byte]()
}

// Allocate returns a zeroed block of n bytes.
func (o OffHeap) Allocate(n int) ([]byte, error) {
	if n == 0 {
		return nil, nil
	}
	if n < 0 || n > o.MaxSize() {
		return nil, fmt.Errorf("%w: %d bytes", ErrAllocationLimitExceeded, n)
	}
	arena.Lock()
	defer arena.Unlock()
	b, err := arena.a.Calloc(n)
	if err != nil {
		return nil, fmt.Errorf("%w: %d bytes: %v", ErrOutOfMemory, n, err)
	}
	return b, nil
}

// Deallocate returns the block to the arena.
func (OffHeap) Deallocate(block []byte, n int) error {
	if err := checkRelease(block, n); err != nil {
		return err
	}
	if block == nil {
		return nil
	}
	arena.Lock()
	defer arena.Unlock()
	return arena.a.Free(block)
}

var _ Allocator[byte] = OffHeap{}
