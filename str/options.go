package str

import (
	"github.com/joshuapare/bufkit/alloc"
	"github.com/joshuapare/bufkit/internal/buf"
)

// Options configures a String.
type Options struct {
	// Allocator supplies and releases the byte storage. alloc.OffHeap and
	// alloc.Pages keep the bytes outside the Go heap; strings built on them
	// must be released.
	// Default: alloc.Heap[byte]
	Allocator alloc.Allocator[byte]

	// GrowthFactor multiplies the required capacity when an append must
	// reallocate. Values below 2 select the default.
	// Default: 2
	GrowthFactor int

	// MatchSteps bounds the work of Match. Zero means unbounded.
	// Default: 0
	MatchSteps int
}

// DefaultOptions returns the options used when a constructor gets nil.
func DefaultOptions() *Options {
	return &Options{
		Allocator:    alloc.Heap[byte]{},
		GrowthFactor: buf.DefaultGrowthFactor,
	}
}

func (o *Options) build() *String {
	if o == nil {
		o = DefaultOptions()
	}
	return &String{b: buf.New(o.Allocator, o.GrowthFactor), matchSteps: o.MatchSteps}
}
