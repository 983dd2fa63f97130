// Package cursor implements position handles over contiguous blocks.
//
// A Cursor is a block plus a position, stepping in the order given by its
// direction strategy. Forward cursors read the element at their position;
// Backward cursors read the element just before it, so a reversed view of
// [begin, end) is simply [end, begin) with the same positions and the same
// Equal.
//
// A cursor is valid only while its block has not been reallocated, freed or
// shrunk below its position. Nothing checks this: a stale cursor keeps
// reading the old block.
package cursor

import "unsafe"

// Direction is the step strategy of a Cursor. Only Forward and Backward
// implement it.
type Direction interface {
	step() int
	deref() int
}

// Forward steps toward higher positions and reads at its position.
type Forward struct{}

func (Forward) step() int  { return 1 }
func (Forward) deref() int { return 0 }

// Backward steps toward lower positions and reads one before its position.
type Backward struct{}

func (Backward) step() int  { return -1 }
func (Backward) deref() int { return -1 }

// Cursor is a position within a contiguous block of T.
type Cursor[T any, D Direction] struct {
	block []T
	pos   int
}

// The four cursor kinds. Every block here is contiguous, so the plain and
// random-access kinds share one type; the distinction survives in the
// Bidirectional and RandomAccess capability views.
type (
	Iterator[T any]              = Cursor[T, Forward]
	ReverseIterator[T any]       = Cursor[T, Backward]
	RandomIterator[T any]        = Cursor[T, Forward]
	RandomReverseIterator[T any] = Cursor[T, Backward]
)

// Bidirectional is the step-only capability set.
type Bidirectional[T any, C any] interface {
	Get() T
	Ptr() *T
	Next() C
	Prev() C
	Equal(C) bool
	Less(C) bool
}

// RandomAccess adds offset arithmetic to Bidirectional.
type RandomAccess[T any, C any] interface {
	Bidirectional[T, C]
	Add(n int) C
	Sub(n int) C
	At(n int) T
	Diff(C) int
}

var (
	_ RandomAccess[int, Iterator[int]]        = Iterator[int]{}
	_ RandomAccess[int, ReverseIterator[int]] = ReverseIterator[int]{}
)

// New returns a cursor over block at pos.
func New[T any, D Direction](block []T, pos int) Cursor[T, D] {
	return Cursor[T, D]{block: block, pos: pos}
}

// Base returns the underlying position.
func (c Cursor[T, D]) Base() int { return c.pos }

// Block returns the block the cursor was created over.
func (c Cursor[T, D]) Block() []T { return c.block }

// Ptr returns the address of the element the cursor reads. It panics when
// that element lies outside the block.
func (c Cursor[T, D]) Ptr() *T {
	var d D
	return &c.block[c.pos+d.deref()]
}

// Get returns the element the cursor reads.
func (c Cursor[T, D]) Get() T { return *c.Ptr() }

// Set overwrites the element the cursor reads.
func (c Cursor[T, D]) Set(v T) { *c.Ptr() = v }

// Next moves one step in traversal order.
func (c Cursor[T, D]) Next() Cursor[T, D] { return c.Add(1) }

// Prev moves one step against traversal order.
func (c Cursor[T, D]) Prev() Cursor[T, D] { return c.Add(-1) }

// Add moves n steps in traversal order.
func (c Cursor[T, D]) Add(n int) Cursor[T, D] {
	var d D
	c.pos += n * d.step()
	return c
}

// Sub moves n steps against traversal order.
func (c Cursor[T, D]) Sub(n int) Cursor[T, D] { return c.Add(-n) }

// At reads the element n steps ahead without moving.
func (c Cursor[T, D]) At(n int) T { return c.Add(n).Get() }

// Diff returns the signed number of steps from o to c. It is positive when c
// comes later in traversal order, for both directions.
func (c Cursor[T, D]) Diff(o Cursor[T, D]) int {
	var d D
	return (c.pos - o.pos) * d.step()
}

// Equal reports whether both cursors share a block and a position.
func (c Cursor[T, D]) Equal(o Cursor[T, D]) bool {
	return c.pos == o.pos && unsafe.SliceData(c.block) == unsafe.SliceData(o.block)
}

// Less reports whether c comes before o in traversal order.
func (c Cursor[T, D]) Less(o Cursor[T, D]) bool { return c.Diff(o) < 0 }

// AsForward returns the forward cursor at the same position.
func (c Cursor[T, D]) AsForward() Cursor[T, Forward] {
	return Cursor[T, Forward]{block: c.block, pos: c.pos}
}

// AsBackward returns the backward cursor at the same position.
func (c Cursor[T, D]) AsBackward() Cursor[T, Backward] {
	return Cursor[T, Backward]{block: c.block, pos: c.pos}
}
