package alloc

import (
	"math"
	"reflect"
	"unsafe"
)

// Allocator acquires and releases untyped storage for n elements of T and
// performs in-place construction and destruction on that storage.
//
// A block is a []T whose length is exactly the requested element count. The
// nil slice is the null block and is what Allocate(0) returns.
type Allocator[T any] interface {
	// Allocate returns uninitialized storage for exactly n elements.
	Allocate(n int) ([]T, error)

	// Deallocate releases a block previously returned by Allocate(n).
	// It never runs destructors; callers Destroy live slots first.
	Deallocate(block []T, n int) error

	// MaxSize reports the theoretical maximum element count of one block.
	MaxSize() int

	// Construct copy-constructs value into an uninitialized slot.
	Construct(slot *T, value T)

	// Relocate move-constructs *src into the uninitialized dst and leaves
	// src at T's zero value.
	Relocate(dst, src *T)

	// Destroy ends the lifetime of the element in slot. The storage stays
	// allocated and holds T's zero value afterwards.
	Destroy(slot *T)
}

// Cloner is implemented by element types whose copy must not share state with
// the original. Construct stores Clone() instead of the value itself.
type Cloner[T any] interface {
	Clone() T
}

// Destroyer is implemented by element types that hold resources beyond their
// memory. Destroy is called once per constructed element, never on a slot
// that was relocated away or that holds a nil value.
type Destroyer interface {
	Destroy()
}

// Lifecycle implements Construct, Relocate and Destroy. Every allocator in
// this package embeds it, so construction rules are identical regardless of
// where the storage comes from.
type Lifecycle[T any] struct{}

// Construct stores value, or value.Clone() when T implements Cloner.
func (Lifecycle[T]) Construct(slot *T, value T) {
	if c, ok := any(value).(Cloner[T]); ok && !isNil(value) {
		*slot = c.Clone()
		return
	}
	*slot = value
}

// Relocate moves *src into dst without running any hooks.
func (Lifecycle[T]) Relocate(dst, src *T) {
	var zero T
	*dst = *src
	*src = zero
}

// Destroy runs the Destroyer hook, if any, and zeroes the slot.
func (Lifecycle[T]) Destroy(slot *T) {
	if d, ok := any(*slot).(Destroyer); ok && !isNil(*slot) {
		d.Destroy()
	}
	var zero T
	*slot = zero
}

// Equal reports whether blocks from a may be released through b.
//
// Stateless allocators of the same concrete type are always equal. Stateful
// decorators (Counting, Limited, Traced) are equal only to themselves.
func Equal[T any](a, b Allocator[T]) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta == nil || ta != tb {
		return false
	}
	if ta.Size() == 0 {
		return true
	}
	if !ta.Comparable() {
		return false
	}
	return a == b
}

// SizeOf returns the size in bytes of one T.
func SizeOf[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// maxElements is math.MaxInt / sizeof(T), the largest n whose byte size
// still fits in an int.
func maxElements[T any]() int {
	size := SizeOf[T]()
	if size == 0 {
		return math.MaxInt
	}
	return math.MaxInt / size
}

// checkRelease validates a Deallocate call.
func checkRelease[T any](block []T, n int) error {
	if (block == nil) != (n == 0) || len(block) != n {
		return ErrInvalidDeallocation
	}
	return nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
