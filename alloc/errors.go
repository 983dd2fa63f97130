package alloc

import "errors"

var (
	// ErrAllocationLimitExceeded indicates a request for more elements than the
	// allocator can ever address (see Allocator.MaxSize).
	ErrAllocationLimitExceeded = errors.New("alloc: allocation limit exceeded")

	// ErrOutOfMemory indicates the backing store could not supply the block.
	ErrOutOfMemory = errors.New("alloc: out of memory")

	// ErrInvalidDeallocation indicates a block/count mismatch on release: a nil
	// block with a non-zero count, a live block with a zero count, or a block
	// whose length differs from the count.
	ErrInvalidDeallocation = errors.New("alloc: invalid deallocation")
)
