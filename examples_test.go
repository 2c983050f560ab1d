package compactstr_test

import (
	"fmt"

	"github.com/axiomhq/compactstr"
)

func Example() {
	s := compactstr.MustFromString("hello")
	clone := s.Clone()

	s.PushString(", world")

	fmt.Println(s.String())
	fmt.Println(clone.String())
	fmt.Println(clone.IsHeapAllocated())
	// Output:
	// hello, world
	// hello
	// false
}
