// Package buf implements the growable buffer shared by the array and string
// containers: an exclusively owned block, a live-element count, and the
// growth, resize and insertion algorithms that move elements between blocks.
package buf

import (
	"fmt"

	"github.com/joshuapare/bufkit/alloc"
)

// DefaultGrowthFactor is the multiplier applied to the required capacity
// when a buffer reallocates.
const DefaultGrowthFactor = 2

// Buffer owns one block from its allocator. Elements [0, Len) are live;
// [Len, Cap) hold T's zero value. The zero Buffer is not usable; build one
// with New.
type Buffer[T any] struct {
	alloc  alloc.Allocator[T]
	data   []T
	size   int
	factor int
}

// New returns an empty buffer with no block. A nil a means alloc.Heap[T];
// a factor below 2 means DefaultGrowthFactor.
func New[T any](a alloc.Allocator[T], factor int) Buffer[T] {
	if a == nil {
		a = alloc.Heap[T]{}
	}
	if factor < 2 {
		factor = DefaultGrowthFactor
	}
	return Buffer[T]{alloc: a, factor: factor}
}

// Len returns the number of live elements.
func (b *Buffer[T]) Len() int { return b.size }

// Cap returns the element capacity of the block.
func (b *Buffer[T]) Cap() int { return len(b.data) }

// Live returns the live elements. The slice aliases the block.
func (b *Buffer[T]) Live() []T {
	if b.data == nil {
		return nil
	}
	return b.data[:b.size]
}

// Block returns the whole block, nil when the buffer holds none.
func (b *Buffer[T]) Block() []T { return b.data }

// Allocator returns the allocator that owns the block.
func (b *Buffer[T]) Allocator() alloc.Allocator[T] { return b.alloc }

// Factor returns the growth factor.
func (b *Buffer[T]) Factor() int { return b.factor }

// At returns the address of element i.
func (b *Buffer[T]) At(i int) (*T, error) {
	if err := CheckIndex(i, b.size); err != nil {
		return nil, err
	}
	return &b.data[i], nil
}

// GrowCapacity returns the capacity a buffer reallocates to when it must
// hold required elements: factor × required.
func (b *Buffer[T]) GrowCapacity(required int) (int, error) {
	limit := b.alloc.MaxSize()
	next, ok := MulOverflowSafe(required, b.factor)
	if !ok || required > limit || next > limit {
		return 0, fmt.Errorf("%w: need %d elements, limit %d", ErrCapacityOverflow, required, limit)
	}
	return next, nil
}

// Reserve makes room for required elements, growing by the growth rule when
// the block is too small. On error the buffer is unchanged.
func (b *Buffer[T]) Reserve(required int) error {
	if required <= len(b.data) {
		return nil
	}
	next, err := b.GrowCapacity(required)
	if err != nil {
		return err
	}
	return b.reallocate(next)
}

// reallocate moves the first min(size, n) elements into a new block of n,
// destroys the rest and frees the old block. The new block is acquired
// before anything is touched, so an allocation failure changes nothing.
func (b *Buffer[T]) reallocate(n int) error {
	block, err := b.alloc.Allocate(n)
	if err != nil {
		return err
	}
	keep := min(b.size, n)
	for i := 0; i < keep; i++ {
		b.alloc.Relocate(&block[i], &b.data[i])
	}
	for i := b.size - 1; i >= keep; i-- {
		b.alloc.Destroy(&b.data[i])
	}
	clear(block[keep:])

	old := b.data
	b.data = block
	b.size = keep
	return b.alloc.Deallocate(old, len(old))
}

// Push copy-constructs v at the end.
func (b *Buffer[T]) Push(v T) error {
	if err := b.Reserve(b.size + 1); err != nil {
		return err
	}
	b.alloc.Construct(&b.data[b.size], v)
	b.size++
	return nil
}

// PushMove relocates *src to the end, leaving *src zeroed. src must not
// point into this buffer's block.
func (b *Buffer[T]) PushMove(src *T) error {
	if err := b.Reserve(b.size + 1); err != nil {
		return err
	}
	b.alloc.Relocate(&b.data[b.size], src)
	b.size++
	return nil
}

// Pop destroys the last element. Capacity is kept.
func (b *Buffer[T]) Pop() error {
	if b.size == 0 {
		return ErrUnderflow
	}
	b.size--
	b.alloc.Destroy(&b.data[b.size])
	return nil
}

// PopMove relocates the last element into dst.
func (b *Buffer[T]) PopMove(dst *T) error {
	if b.size == 0 {
		return ErrUnderflow
	}
	b.size--
	b.alloc.Relocate(dst, &b.data[b.size])
	return nil
}

// Resize reallocates to a block of exactly n elements, keeping the first
// min(Len, n) and destroying the rest. Len and Cap both become n; slots past
// the old Len hold T's zero value and are not constructed.
func (b *Buffer[T]) Resize(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: negative size %d", ErrIndexOutOfRange, n)
	}
	if n > b.alloc.MaxSize() {
		return fmt.Errorf("%w: need %d elements, limit %d", ErrCapacityOverflow, n, b.alloc.MaxSize())
	}
	if n == b.size && n == len(b.data) {
		return nil
	}
	if err := b.reallocate(n); err != nil {
		return err
	}
	b.size = n
	return nil
}

// SetLen adjusts the live count within the current block without running
// any lifecycle hooks. Only trivially destructible element types (bytes)
// should use it.
func (b *Buffer[T]) SetLen(n int) {
	if n < 0 || n > len(b.data) {
		panic(fmt.Sprintf("buf: SetLen(%d) outside capacity %d", n, len(b.data)))
	}
	b.size = n
}

// Insert opens count slots at pos, shifting [pos, Len) up by count, and
// fills slot i (0-based within the gap) with fill(i, slot). When the block
// is too small the shift happens while relocating into the new block.
func (b *Buffer[T]) Insert(pos, count int, fill func(i int, slot *T)) error {
	if err := CheckPosition(pos, b.size); err != nil {
		return err
	}
	if count < 0 {
		return fmt.Errorf("%w: negative count %d", ErrIndexOutOfRange, count)
	}
	if count == 0 {
		return nil
	}
	required, ok := AddOverflowSafe(b.size, count)
	if !ok {
		return fmt.Errorf("%w: %d + %d elements", ErrCapacityOverflow, b.size, count)
	}

	if required > len(b.data) {
		next, err := b.GrowCapacity(required)
		if err != nil {
			return err
		}
		block, err := b.alloc.Allocate(next)
		if err != nil {
			return err
		}
		for i := 0; i < pos; i++ {
			b.alloc.Relocate(&block[i], &b.data[i])
		}
		for i := pos; i < b.size; i++ {
			b.alloc.Relocate(&block[i+count], &b.data[i])
		}
		clear(block[required:])
		old := b.data
		b.data = block
		b.fill(pos, count, fill)
		b.size = required
		return b.alloc.Deallocate(old, len(old))
	}

	for i := b.size - 1; i >= pos; i-- {
		b.alloc.Relocate(&b.data[i+count], &b.data[i])
	}
	b.fill(pos, count, fill)
	b.size = required
	return nil
}

func (b *Buffer[T]) fill(pos, count int, fill func(i int, slot *T)) {
	for i := 0; i < count; i++ {
		fill(i, &b.data[pos+i])
	}
}

// Release destroys every live element, frees the block and leaves the
// buffer empty with no block.
func (b *Buffer[T]) Release() error {
	for i := b.size - 1; i >= 0; i-- {
		b.alloc.Destroy(&b.data[i])
	}
	old := b.data
	b.data, b.size = nil, 0
	return b.alloc.Deallocate(old, len(old))
}

// Take transfers the block to a new buffer and leaves b with no block,
// zero size and zero capacity.
func (b *Buffer[T]) Take() Buffer[T] {
	out := *b
	b.data, b.size = nil, 0
	return out
}

// MoveFrom releases b and takes ownership of src's block. Self-moves are a
// no-op. When the allocators are not interchangeable b adopts src's, since
// only it can free the block.
func (b *Buffer[T]) MoveFrom(src *Buffer[T]) error {
	if b == src {
		return nil
	}
	if err := b.Release(); err != nil {
		return err
	}
	if !alloc.Equal(b.alloc, src.alloc) {
		b.alloc = src.alloc
	}
	b.data, b.size = src.data, src.size
	src.data, src.size = nil, 0
	return nil
}

// CopyFrom replaces b's contents with copies of src's live elements in a
// block of exactly capacity elements (at least src.Len()). The new block is
// built before the old one is released, so a failure leaves b unchanged.
func (b *Buffer[T]) CopyFrom(src *Buffer[T], capacity int) error {
	if b == src {
		return nil
	}
	capacity = max(capacity, src.size)
	block, err := b.alloc.Allocate(capacity)
	if err != nil {
		return err
	}
	for i := 0; i < src.size; i++ {
		b.alloc.Construct(&block[i], src.data[i])
	}
	clear(block[src.size:])
	if err := b.Release(); err != nil {
		for i := src.size - 1; i >= 0; i-- {
			b.alloc.Destroy(&block[i])
		}
		_ = b.alloc.Deallocate(block, capacity)
		return err
	}
	b.data, b.size = block, src.size
	return nil
}
