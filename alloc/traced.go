package alloc

import (
	"io"
	"log/slog"
	"reflect"
)

// logger is the package-wide fallback for Traced allocators without their
// own Logger. It discards everything until SetLogger is called.
var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// SetLogger replaces the fallback logger used by Traced. A nil l restores
// the discarding logger.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	logger = l
}

// Traced wraps an allocator and logs every Allocate and Deallocate at debug
// level. Errors are logged and returned unchanged.
type Traced[T any] struct {
	Allocator[T]

	// Logger receives the records. Nil means the package logger.
	Logger *slog.Logger
}

// NewTraced wraps inner. A nil inner means Heap[T].
func NewTraced[T any](inner Allocator[T], l *slog.Logger) *Traced[T] {
	if inner == nil {
		inner = Heap[T]{}
	}
	return &Traced[T]{Allocator: inner, Logger: l}
}

func (t *Traced[T]) Allocate(n int) ([]T, error) {
	block, err := t.Allocator.Allocate(n)
	t.log("allocate", n, err)
	return block, err
}

func (t *Traced[T]) Deallocate(block []T, n int) error {
	err := t.Allocator.Deallocate(block, n)
	t.log("deallocate", n, err)
	return err
}

func (t *Traced[T]) log(op string, n int, err error) {
	l := t.Logger
	if l == nil {
		l = logger
	}
	attrs := []any{
		slog.String("type", reflect.TypeFor[T]().String()),
		slog.Int("elements", n),
	}
	// n*size fits in an int only within maxElements.
	if n >= 0 && n <= maxElements[T]() {
		attrs = append(attrs, slog.Int("bytes", n*SizeOf[T]()))
	}
	if err != nil {
		attrs = append(attrs, slog.Any("err", err))
	}
	l.Debug(op, attrs...)
}
