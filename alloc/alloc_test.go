package alloc_test

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/bufkit/alloc"
	"github.com/joshuapare/bufkit/internal/testutil"
)

func TestHeap(t *testing.T) {
	var h alloc.Heap[int64]

	block, err := h.Allocate(0)
	require.NoError(t, err)
	require.Nil(t, block)
	require.NoError(t, h.Deallocate(nil, 0))

	block, err = h.Allocate(16)
	require.NoError(t, err)
	require.Len(t, block, 16)
	for _, v := range block {
		require.Zero(t, v)
	}
	require.NoError(t, h.Deallocate(block, 16))

	require.Equal(t, math.MaxInt/8, h.MaxSize())
	_, err = h.Allocate(h.MaxSize() + 1)
	require.ErrorIs(t, err, alloc.ErrAllocationLimitExceeded)
	_, err = h.Allocate(-1)
	require.ErrorIs(t, err, alloc.ErrAllocationLimitExceeded)

	// within MaxSize but beyond what the runtime will ever hand out
	_, err = h.Allocate(h.MaxSize())
	require.ErrorIs(t, err, alloc.ErrOutOfMemory)
}

func TestHeapZeroSizedElements(t *testing.T) {
	var h alloc.Heap[struct{}]
	require.Equal(t, math.MaxInt, h.MaxSize())
	block, err := h.Allocate(1 << 30)
	require.NoError(t, err)
	require.Len(t, block, 1<<30)
}

func TestInvalidDeallocation(t *testing.T) {
	allocators := map[string]alloc.Allocator[byte]{
		"heap":    alloc.Heap[byte]{},
		"offheap": alloc.OffHeap{},
		"pages":   alloc.Pages{},
	}
	for name, a := range allocators {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, a.Deallocate(nil, 3), alloc.ErrInvalidDeallocation)

			block, err := a.Allocate(8)
			require.NoError(t, err)
			require.ErrorIs(t, a.Deallocate(block, 0), alloc.ErrInvalidDeallocation)
			require.ErrorIs(t, a.Deallocate(block, 7), alloc.ErrInvalidDeallocation)
			require.NoError(t, a.Deallocate(block, 8))
			require.NoError(t, a.Deallocate(nil, 0))
		})
	}
}

func TestByteAllocators(t *testing.T) {
	allocators := map[string]alloc.Allocator[byte]{
		"offheap": alloc.OffHeap{},
		"pages":   alloc.Pages{},
	}
	for name, a := range allocators {
		t.Run(name, func(t *testing.T) {
			block, err := a.Allocate(0)
			require.NoError(t, err)
			require.Nil(t, block)

			for _, n := range []int{1, 100, 4096, 10_000} {
				block, err := a.Allocate(n)
				require.NoError(t, err)
				require.Len(t, block, n)
				require.Equal(t, make([]byte, n), block, "fresh blocks are zeroed")
				for i := range block {
					block[i] = byte(i)
				}
				require.NoError(t, a.Deallocate(block, n))
			}

			_, err = a.Allocate(-1)
			require.ErrorIs(t, err, alloc.ErrAllocationLimitExceeded)
			_, err = a.Allocate(a.MaxSize() + 1)
			require.ErrorIs(t, err, alloc.ErrAllocationLimitExceeded)
		})
	}
}

func TestPagesRoundsToPages(t *testing.T) {
	var p alloc.Pages
	block, err := p.Allocate(10)
	require.NoError(t, err)
	require.Len(t, block, 10)
	require.Equal(t, alloc.PageRound(10), cap(block))
	require.Zero(t, alloc.PageRound(10)%alloc.PageRound(1))
	require.NoError(t, p.Deallocate(block, 10))
}

func TestEqual(t *testing.T) {
	c1 := alloc.NewCounting[int](nil)
	c2 := alloc.NewCounting[int](nil)
	tests := []struct {
		name string
		a, b alloc.Allocator[int]
		want bool
	}{
		{"stateless", alloc.Heap[int]{}, alloc.Heap[int]{}, true},
		{"same decorator", c1, c1, true},
		{"distinct decorators", c1, c2, false},
		{"different kinds", alloc.Heap[int]{}, c1, false},
		{"nil", nil, alloc.Heap[int]{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, alloc.Equal(tt.a, tt.b))
		})
	}
	require.True(t, alloc.Equal[byte](alloc.OffHeap{}, alloc.OffHeap{}))
	require.True(t, alloc.Equal[byte](alloc.Pages{}, alloc.Pages{}))
	require.False(t, alloc.Equal[byte](alloc.OffHeap{}, alloc.Pages{}))
}

func TestLifecycle(t *testing.T) {
	var cnt testutil.Counter
	var lc alloc.Lifecycle[*testutil.Tracked]

	orig := cnt.NewTracked("a")
	var slot *testutil.Tracked
	lc.Construct(&slot, orig)
	require.NotSame(t, orig, slot)
	require.Equal(t, "a", string(slot.Name))
	require.Equal(t, 2, cnt.Live)
	require.Equal(t, 1, cnt.Clones)

	var dst *testutil.Tracked
	lc.Relocate(&dst, &slot)
	require.Nil(t, slot)
	require.NotNil(t, dst)
	require.Equal(t, 2, cnt.Live, "relocation runs no hooks")

	lc.Destroy(&dst)
	require.Nil(t, dst)
	require.Equal(t, 1, cnt.Live)

	// nil values skip the hooks
	lc.Construct(&slot, nil)
	require.Nil(t, slot)
	lc.Destroy(&slot)
	require.Equal(t, 1, cnt.Live)
}

func TestLifecyclePlainValues(t *testing.T) {
	var lc alloc.Lifecycle[[]int]
	src := []int{1, 2}
	var slot []int
	lc.Construct(&slot, src)
	require.Equal(t, src, slot)

	var dst []int
	lc.Relocate(&dst, &slot)
	require.Nil(t, slot)
	require.Equal(t, []int{1, 2}, dst)

	lc.Destroy(&dst)
	require.Nil(t, dst)
}

func TestCounting(t *testing.T) {
	c := alloc.NewCounting[int](nil)
	a, err := c.Allocate(4)
	require.NoError(t, err)
	b, err := c.Allocate(10)
	require.NoError(t, err)
	_, err = c.Allocate(0)
	require.NoError(t, err)

	assert.Equal(t, 2, c.Allocations())
	assert.Equal(t, 2, c.LiveBlocks())
	assert.Equal(t, 14, c.LiveElements())

	require.NoError(t, c.Deallocate(a, 4))
	require.NoError(t, c.Deallocate(nil, 0))
	assert.Equal(t, 1, c.Deallocations())
	assert.Equal(t, 10, c.LiveElements())

	require.ErrorIs(t, c.Deallocate(b, 3), alloc.ErrInvalidDeallocation)
	assert.Equal(t, 1, c.LiveBlocks(), "failed releases are not counted")
	require.NoError(t, c.Deallocate(b, 10))

	assert.Equal(t, 0, c.LiveBlocks())
	assert.Equal(t, 14, c.PeakElements())
}

func TestLimited(t *testing.T) {
	l := alloc.NewLimited[int](nil, 10, 12)
	require.Equal(t, 10, l.MaxSize())

	_, err := l.Allocate(11)
	require.ErrorIs(t, err, alloc.ErrAllocationLimitExceeded)

	a, err := l.Allocate(8)
	require.NoError(t, err)
	require.Equal(t, 8, l.Live())

	_, err = l.Allocate(5)
	require.ErrorIs(t, err, alloc.ErrOutOfMemory)
	require.Equal(t, 8, l.Live())

	require.NoError(t, l.Deallocate(a, 8))
	require.Zero(t, l.Live())
	b, err := l.Allocate(10)
	require.NoError(t, err)
	require.NoError(t, l.Deallocate(b, 10))

	unlimited := alloc.NewLimited[int](nil, 0, 0)
	require.Equal(t, alloc.Heap[int]{}.MaxSize(), unlimited.MaxSize())
}

func TestTraced(t *testing.T) {
	var out bytes.Buffer
	l := slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelDebug}))
	tr := alloc.NewTraced[int64](nil, l)

	block, err := tr.Allocate(4)
	require.NoError(t, err)
	require.NoError(t, tr.Deallocate(block, 4))
	_, err = tr.Allocate(-1)
	require.Error(t, err)

	logs := out.String()
	require.Contains(t, logs, "msg=allocate type=int64 elements=4 bytes=32")
	require.Contains(t, logs, "msg=deallocate type=int64 elements=4 bytes=32")
	require.Contains(t, logs, "elements=-1")
	require.Contains(t, logs, `err="alloc: allocation limit exceeded`)
}

func TestTracedOversizedRequest(t *testing.T) {
	var out bytes.Buffer
	l := slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelDebug}))
	tr := alloc.NewTraced[int64](nil, l)

	_, err := tr.Allocate(math.MaxInt)
	require.ErrorIs(t, err, alloc.ErrAllocationLimitExceeded)
	logs := out.String()
	require.Contains(t, logs, "elements=9223372036854775807")
	require.NotContains(t, logs, "bytes=", "byte size does not fit in an int")

	out.Reset()
	_, err = tr.Allocate(tr.MaxSize() + 1)
	require.Error(t, err)
	require.NotContains(t, out.String(), "bytes=")
}

func TestTracedPackageLogger(t *testing.T) {
	var out bytes.Buffer
	alloc.SetLogger(slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { alloc.SetLogger(nil) })

	tr := alloc.NewTraced[byte](alloc.OffHeap{}, nil)
	block, err := tr.Allocate(64)
	require.NoError(t, err)
	require.NoError(t, tr.Deallocate(block, 64))
	require.Contains(t, out.String(), "msg=allocate type=uint8 elements=64 bytes=64")

	alloc.SetLogger(nil)
	out.Reset()
	block, err = tr.Allocate(1)
	require.NoError(t, err)
	require.NoError(t, tr.Deallocate(block, 1))
	require.Empty(t, out.String())
}

func BenchmarkAllocate(b *testing.B) {
	allocators := map[string]alloc.Allocator[byte]{
		"heap":    alloc.Heap[byte]{},
		"offheap": alloc.OffHeap{},
		"pages":   alloc.Pages{},
	}
	for name, a := range allocators {
		b.Run(name, func(b *testing.B) {
			for b.Loop() {
				block, _ := a.Allocate(4096)
				_ = a.Deallocate(block, 4096)
			}
		})
	}
}
