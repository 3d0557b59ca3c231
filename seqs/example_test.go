package seqs_test

import (
	"fmt"

	"github.com/davidvella/seq/seqs"
)

// ExampleFromSlice walks a slice through its cursors.
func ExampleFromSlice() {
	s := seqs.FromSlice([]string{"red", "green", "blue"})

	for c := s.Begin(); !c.Eq(s.End()); c = c.Next() {
		fmt.Println(*c.Ref())
	}

	// Output:
	// red
	// green
	// blue
}

// ExampleNewList walks a list backward.
func ExampleNewList() {
	l := seqs.NewList(1, 2, 3)

	for c := l.End().Prev(); ; c = c.Prev() {
		fmt.Println(*c.Ref())
		if c.Eq(l.Begin()) {
			break
		}
	}

	// Output:
	// 3
	// 2
	// 1
}

// ExampleRange sums an integer range.
func ExampleRange() {
	total := 0
	for v := range seqs.Range(1, 5).All() {
		total += v
	}
	fmt.Println(total)

	// Output: 10
}
