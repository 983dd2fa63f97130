package alloc

import "fmt"

// Limited wraps an allocator with artificial limits, for exercising the
// failure paths of code that allocates.
type Limited[T any] struct {
	Allocator[T]

	// MaxElements overrides MaxSize when positive and smaller than the
	// inner allocator's limit.
	MaxElements int

	// Budget caps the elements held in live blocks. Exceeding it fails with
	// ErrOutOfMemory. Zero means no budget.
	Budget int

	live int
}

// NewLimited wraps inner. A nil inner means Heap[T].
func NewLimited[T any](inner Allocator[T], maxElements, budget int) *Limited[T] {
	if inner == nil {
		inner = Heap[T]{}
	}
	return &Limited[T]{Allocator: inner, MaxElements: maxElements, Budget: budget}
}

func (l *Limited[T]) MaxSize() int {
	limit := l.Allocator.MaxSize()
	if l.MaxElements > 0 && l.MaxElements < limit {
		return l.MaxElements
	}
	return limit
}

func (l *Limited[T]) Allocate(n int) ([]T, error) {
	if n < 0 || n > l.MaxSize() {
		return nil, fmt.Errorf("%w: %d elements, limit %d", ErrAllocationLimitExceeded, n, l.MaxSize())
	}
	if l.Budget > 0 && l.live+n > l.Budget {
		return nil, fmt.Errorf("%w: %d elements, %d of %d in use", ErrOutOfMemory, n, l.live, l.Budget)
	}
	block, err := l.Allocator.Allocate(n)
	if err != nil {
		return nil, err
	}
	l.live += n
	return block, nil
}

func (l *Limited[T]) Deallocate(block []T, n int) error {
	if err := l.Allocator.Deallocate(block, n); err != nil {
		return err
	}
	l.live -= n
	return nil
}

// Live is the number of elements held in live blocks.
func (l *Limited[T]) Live() int { return l.live }
