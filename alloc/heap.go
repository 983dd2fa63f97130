package alloc

import (
	"fmt"
	"runtime"
)

// Heap allocates blocks from the Go heap. It is stateless; every Heap[T] is
// interchangeable with every other. Deallocate only validates the call and
// leaves reclamation to the garbage collector.
type Heap[T any] struct {
	Lifecycle[T]
}

// MaxSize returns math.MaxInt / sizeof(T).
func (Heap[T]) MaxSize() int {
	return maxElements[T]()
}

// Allocate returns a zeroed block of n elements. Sizes the runtime refuses
// to make are reported as ErrOutOfMemory. A genuine heap exhaustion is fatal
// to the process in Go and cannot be reported.
func (h Heap[T]) Allocate(n int) (block []T, err error) {
	if n == 0 {
		return nil, nil
	}
	if n < 0 || n > h.MaxSize() {
		return nil, fmt.Errorf("%w: %d elements of %d bytes", ErrAllocationLimitExceeded, n, SizeOf[T]())
	}
	defer func() {
		if r := recover(); r != nil {
			re, ok := r.(runtime.Error)
			if !ok {
				panic(r)
			}
			block, err = nil, fmt.Errorf("%w: %d elements: %v", ErrOutOfMemory, n, re)
		}
	}()
	return make([]T, n), nil
}

// Deallocate validates the block/count pair.
func (Heap[T]) Deallocate(block []T, n int) error {
	return checkRelease(block, n)
}

var _ Allocator[int] = Heap[int]{}
