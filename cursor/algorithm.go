package cursor

// Distance returns the number of steps from first to last.
func Distance[T any, D Direction](first, last Cursor[T, D]) int {
	return last.Diff(first)
}

// Advance moves c by n single steps; negative n steps backward.
func Advance[T any, D Direction](c Cursor[T, D], n int) Cursor[T, D] {
	for ; n > 0; n-- {
		c = c.Next()
	}
	for ; n < 0; n++ {
		c = c.Prev()
	}
	return c
}

// Reverse reverses the elements of [first, last) in place.
func Reverse[T any, D Direction](first, last Cursor[T, D]) {
	for first.Less(last) {
		last = last.Prev()
		swap(first.Ptr(), last.Ptr())
		first = first.Next()
	}
}

// Collect copies [first, last) into a new slice in traversal order.
func Collect[T any, D Direction](first, last Cursor[T, D]) []T {
	n := Distance(first, last)
	if n <= 0 {
		return nil
	}
	out := make([]T, 0, n)
	for it := first; !it.Equal(last); it = it.Next() {
		out = append(out, it.Get())
	}
	return out
}

func swap[T any](a, b *T) {
	*a, *b = *b, *a
}
