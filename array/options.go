package array

import (
	"github.com/joshuapare/bufkit/alloc"
	"github.com/joshuapare/bufkit/internal/buf"
)

// Options configures an Array.
type Options[T any] struct {
	// Allocator supplies and releases element storage.
	// Default: alloc.Heap[T]
	Allocator alloc.Allocator[T]

	// GrowthFactor multiplies the required capacity when the array must
	// reallocate. Values below 2 select the default.
	// Default: 2
	GrowthFactor int
}

// DefaultOptions returns the options used when a constructor gets nil.
func DefaultOptions[T any]() *Options[T] {
	return &Options[T]{
		Allocator:    alloc.Heap[T]{},
		GrowthFactor: buf.DefaultGrowthFactor,
	}
}

func (o *Options[T]) buffer() buf.Buffer[T] {
	if o == nil {
		o = DefaultOptions[T]()
	}
	return buf.New(o.Allocator, o.GrowthFactor)
}
