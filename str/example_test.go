package str_test

import (
	"fmt"

	"github.com/joshuapare/bufkit/alloc"
	"github.com/joshuapare/bufkit/str"
)

func Example() {
	s, _ := str.New("harry", &str.Options{Allocator: alloc.OffHeap{}})
	defer s.Release()

	_ = s.AppendString("1501potter")
	fmt.Println(s, s.Len(), s.Cap())

	ok, _ := s.Match("^har*y.*pot.*er$")
	fmt.Println(ok)
	// Output:
	// harry1501potter 15 32
	// true
}
