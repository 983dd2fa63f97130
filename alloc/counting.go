package alloc

// Counting wraps an allocator and keeps totals of the blocks it hands out.
// It is used to prove containers release everything they acquire.
type Counting[T any] struct {
	Allocator[T]

	allocs   int
	frees    int
	live     int
	liveElem int
	peakElem int
}

// NewCounting wraps inner. A nil inner means Heap[T].
func NewCounting[T any](inner Allocator[T]) *Counting[T] {
	if inner == nil {
		inner = Heap[T]{}
	}
	return &Counting[T]{Allocator: inner}
}

func (c *Counting[T]) Allocate(n int) ([]T, error) {
	block, err := c.Allocator.Allocate(n)
	if err != nil || block == nil {
		return block, err
	}
	c.allocs++
	c.live++
	c.liveElem += n
	c.peakElem = max(c.peakElem, c.liveElem)
	return block, nil
}

func (c *Counting[T]) Deallocate(block []T, n int) error {
	if err := c.Allocator.Deallocate(block, n); err != nil {
		return err
	}
	if block != nil {
		c.frees++
		c.live--
		c.liveElem -= n
	}
	return nil
}

// Allocations is the number of non-empty blocks handed out.
func (c *Counting[T]) Allocations() int { return c.allocs }

// Deallocations is the number of non-empty blocks released.
func (c *Counting[T]) Deallocations() int { return c.frees }

// LiveBlocks is Allocations minus Deallocations.
func (c *Counting[T]) LiveBlocks() int { return c.live }

// LiveElements is the element capacity of all live blocks.
func (c *Counting[T]) LiveElements() int { return c.liveElem }

// PeakElements is the high-water mark of LiveElements.
func (c *Counting[T]) PeakElements() int { return c.peakElem }
