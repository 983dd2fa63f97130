// Package array provides Array, a growable contiguous container whose
// storage comes from a pluggable allocator.
//
// Growth follows one rule: when an operation needs more room than the
// current block holds, the array allocates GrowthFactor × required
// elements, relocates every live element into the new block and frees the
// old one. Relocation never copies, so element types with a Clone hook are
// cloned only when the caller asks for a copy.
//
// Cursors returned by Begin, End, RBegin and REnd are invalidated by any
// operation that reallocates (Push past Cap, Resize, Shrink, Clear, Insert
// past Cap, Assign, MoveFrom, Release).
//
// Arrays are not safe for concurrent use.
package array

import (
	"slices"

	"github.com/joshuapare/bufkit/cursor"
	"github.com/joshuapare/bufkit/internal/buf"
)

// Array is a growable sequence of T. The zero value is not usable; build
// one with New or one of the other constructors.
type Array[T any] struct {
	b buf.Buffer[T]
}

// New returns an empty array with no storage.
func New[T any](opts *Options[T]) *Array[T] {
	return &Array[T]{b: opts.buffer()}
}

// Filled returns an array of count copies of v with capacity count.
func Filled[T any](count int, v T, opts *Options[T]) (*Array[T], error) {
	a := New(opts)
	if err := a.b.Resize(count); err != nil {
		return nil, err
	}
	block, al := a.b.Block(), a.b.Allocator()
	for i := 0; i < count; i++ {
		al.Construct(&block[i], v)
	}
	return a, nil
}

// Of returns an array holding copies of values with capacity len(values).
func Of[T any](opts *Options[T], values ...T) (*Array[T], error) {
	a := New(opts)
	if err := a.b.Resize(len(values)); err != nil {
		return nil, err
	}
	block, al := a.b.Block(), a.b.Allocator()
	for i := range values {
		al.Construct(&block[i], values[i])
	}
	return a, nil
}

// FromRange returns an array built by pushing copies of [first, last) in
// traversal order, so reverse cursors produce a reversed array.
func FromRange[T any, D cursor.Direction](first, last cursor.Cursor[T, D], opts *Options[T]) (*Array[T], error) {
	a := New(opts)
	for it := first; !it.Equal(last); it = it.Next() {
		if err := a.Push(it.Get()); err != nil {
			_ = a.Release()
			return nil, err
		}
	}
	return a, nil
}

// Clone returns a deep copy with capacity equal to a's length.
func (a *Array[T]) Clone() (*Array[T], error) {
	out := &Array[T]{b: buf.New(a.b.Allocator(), a.b.Factor())}
	if err := out.b.CopyFrom(&a.b, a.b.Len()); err != nil {
		return nil, err
	}
	return out, nil
}

// Move transfers a's storage to a new array. Afterwards a has no storage,
// length 0 and capacity 0, and remains usable.
func (a *Array[T]) Move() *Array[T] {
	return &Array[T]{b: a.b.Take()}
}

// Assign replaces a's contents with copies of src's elements. The new
// capacity equals src's length. Assigning an array to itself does nothing.
func (a *Array[T]) Assign(src *Array[T]) error {
	return a.b.CopyFrom(&src.b, src.b.Len())
}

// MoveFrom releases a's contents and takes over src's storage, leaving src
// empty. Moving an array into itself does nothing.
func (a *Array[T]) MoveFrom(src *Array[T]) error {
	return a.b.MoveFrom(&src.b)
}

// Release destroys every element and returns the storage to the allocator.
// The array stays usable and starts over empty.
func (a *Array[T]) Release() error {
	return a.b.Release()
}

// Len returns the number of elements.
func (a *Array[T]) Len() int { return a.b.Len() }

// Cap returns the number of elements the current block can hold.
func (a *Array[T]) Cap() int { return a.b.Cap() }

// Empty reports whether Len is zero.
func (a *Array[T]) Empty() bool { return a.b.Len() == 0 }

// Data returns the elements as a slice aliasing the storage, nil when the
// array holds no block. It is invalidated like a cursor.
func (a *Array[T]) Data() []T { return a.b.Live() }

// At returns element i.
func (a *Array[T]) At(i int) (T, error) {
	p, err := a.b.At(i)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Ref returns the address of element i.
func (a *Array[T]) Ref(i int) (*T, error) {
	return a.b.At(i)
}

// Set constructs a copy of v, destroys element i and stores the copy in its
// place. v may be the element currently at i.
func (a *Array[T]) Set(i int, v T) error {
	p, err := a.b.At(i)
	if err != nil {
		return err
	}
	al := a.b.Allocator()
	var tmp T
	al.Construct(&tmp, v)
	al.Destroy(p)
	al.Relocate(p, &tmp)
	return nil
}

// Front returns the first element.
func (a *Array[T]) Front() (T, error) { return a.At(0) }

// Back returns the last element.
func (a *Array[T]) Back() (T, error) { return a.At(a.b.Len() - 1) }

// Push appends a copy of v, growing to GrowthFactor × (Len+1) when full.
func (a *Array[T]) Push(v T) error { return a.b.Push(v) }

// PushMove appends *src by relocation and zeroes *src. src must not point
// into a's own storage.
func (a *Array[T]) PushMove(src *T) error { return a.b.PushMove(src) }

// Pop destroys the last element. Capacity never shrinks.
func (a *Array[T]) Pop() error { return a.b.Pop() }

// PopMove relocates the last element into dst instead of destroying it.
func (a *Array[T]) PopMove(dst *T) error { return a.b.PopMove(dst) }

// Reserve makes room for at least n elements using the growth rule.
func (a *Array[T]) Reserve(n int) error { return a.b.Reserve(n) }

// Resize reallocates to exactly n elements. The first min(Len, n) elements
// are kept, the rest destroyed, and Len and Cap both become n.
//
// Growing does not construct the new tail: positions [old Len, n) hold T's
// zero value and no Clone hook runs for them. Callers that need a fill value
// must Set those positions.
func (a *Array[T]) Resize(n int) error { return a.b.Resize(n) }

// Shrink drops unused capacity. It is Resize(Len()).
func (a *Array[T]) Shrink() error { return a.b.Resize(a.b.Len()) }

// Clear destroys every element and frees the storage. It is Resize(0).
func (a *Array[T]) Clear() error { return a.b.Resize(0) }

// Insert inserts count copies of v before pos.
func (a *Array[T]) Insert(pos cursor.Iterator[T], count int, v T) error {
	al := a.b.Allocator()
	return a.b.Insert(pos.Base(), count, func(_ int, slot *T) {
		al.Construct(slot, v)
	})
}

// InsertRange inserts copies of [first, last) before pos. The range is read
// before a is modified, so it may come from a itself.
func (a *Array[T]) InsertRange(pos, first, last cursor.Iterator[T]) error {
	return a.insert(pos, cursor.Collect(first, last))
}

// InsertValues inserts copies of values before pos. values may alias a's
// storage, e.g. a.Data().
func (a *Array[T]) InsertValues(pos cursor.Iterator[T], values ...T) error {
	return a.insert(pos, slices.Clone(values))
}

// insert constructs copies of values, which must not alias the block, into
// the gap opened at pos.
func (a *Array[T]) insert(pos cursor.Iterator[T], values []T) error {
	al := a.b.Allocator()
	return a.b.Insert(pos.Base(), len(values), func(i int, slot *T) {
		al.Construct(slot, values[i])
	})
}

// Begin returns a cursor at the first element.
func (a *Array[T]) Begin() cursor.Iterator[T] {
	return cursor.New[T, cursor.Forward](a.b.Block(), 0)
}

// End returns a cursor one past the last element.
func (a *Array[T]) End() cursor.Iterator[T] {
	return cursor.New[T, cursor.Forward](a.b.Block(), a.b.Len())
}

// RBegin returns a reverse cursor at the last element.
func (a *Array[T]) RBegin() cursor.ReverseIterator[T] {
	return a.End().AsBackward()
}

// REnd returns a reverse cursor one before the first element.
func (a *Array[T]) REnd() cursor.ReverseIterator[T] {
	return a.Begin().AsBackward()
}

// Equal reports whether a and b hold equal elements in the same order.
// Capacity is ignored.
func Equal[T comparable](a, b *Array[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a caller-supplied element comparison.
func EqualFunc[T any](a, b *Array[T], eq func(x, y T) bool) bool {
	x, y := a.Data(), b.Data()
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if !eq(x[i], y[i]) {
			return false
		}
	}
	return true
}
