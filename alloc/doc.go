// Package alloc provides the storage layer shared by the bufkit containers.
//
// # Overview
//
// An Allocator acquires and releases blocks sized for n elements of T and
// performs in-place construction and destruction on them. Containers never
// call make or copy on element storage directly; every element enters a
// block through Construct or Relocate and leaves it through Destroy or
// Relocate.
//
// # Allocator Interface
//
//   - Allocate(n): storage for exactly n elements, nil for n == 0
//   - Deallocate(block, n): release; never runs destructors
//   - MaxSize(): the largest n a single block may hold
//   - Construct/Relocate/Destroy: element lifecycle on allocated slots
//
// # Implementations
//
// Heap: the default, backed by the Go heap.
//
// OffHeap: byte blocks from a process-wide mmap arena (modernc.org/memory).
// Blocks must be released explicitly.
//
// Pages: byte blocks mapped page by page (golang.org/x/sys/unix), unmapped
// on release.
//
// Traced, Counting and Limited wrap another allocator. Traced logs each
// call through log/slog; the other two exist for tests that check leaks and
// allocation failures.
//
// # Element Lifecycle
//
// Go has no copy constructors or destructors, so the lifecycle is opt-in:
//
//	type conn struct{ fd *os.File }
//
//	func (c *conn) Clone() *conn { ... } // alloc.Cloner[*conn]
//	func (c *conn) Destroy()     { ... } // alloc.Destroyer
//
// Construct stores Clone() for Cloner values. Destroy calls the Destroyer
// hook and zeroes the slot. Relocate moves the value and zeroes the source
// without running either hook; relocation is how blocks grow.
//
// # Usage Example
//
//	var a alloc.Heap[int]
//	block, err := a.Allocate(8)
//	if err != nil {
//	    return err
//	}
//	a.Construct(&block[0], 42)
//	a.Destroy(&block[0])
//	err = a.Deallocate(block, 8)
//
// # Thread Safety
//
// Heap, OffHeap and Pages may be used from any goroutine. The decorators keep
// unsynchronized counters and, like the containers, require external
// synchronization.
package alloc
