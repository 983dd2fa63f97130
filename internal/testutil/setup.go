// Package testutil holds helpers shared by the container tests.
package testutil

import (
	"testing"

	"github.com/joshuapare/bufkit/alloc"
)

// SetupCountingAllocator returns a Heap-backed Counting allocator and
// registers a cleanup that fails the test if any block is still live when
// the test ends. Containers built on it must be released by the test.
//
// Example:
//
//	ca := testutil.SetupCountingAllocator[int](t)
//	a := array.New(&array.Options[int]{Allocator: ca})
//	defer a.Release()
func SetupCountingAllocator[T any](t *testing.T) *alloc.Counting[T] {
	t.Helper()
	ca := alloc.NewCounting[T](nil)
	t.Cleanup(func() {
		if ca.LiveBlocks() != 0 {
			t.Errorf("leaked %d blocks (%d elements) after %d allocations",
				ca.LiveBlocks(), ca.LiveElements(), ca.Allocations())
		}
	})
	return ca
}

// SetupLimitedAllocator returns a Heap-backed Limited allocator whose live
// element budget is budget.
func SetupLimitedAllocator[T any](t *testing.T, budget int) *alloc.Limited[T] {
	t.Helper()
	return alloc.NewLimited[T](nil, 0, budget)
}
