package seqs

import (
	"iter"

	"github.com/davidvella/seq/cursor"
)

// intCore supplies the four random-access primitives for an integer
// position; cursor.RandomOf derives everything else.
type intCore struct {
	v int
}

func (c intCore) Eq(o intCore) bool {
	return c.v == o.v
}

func (c intCore) Ref() *int {
	return &c.v
}

func (c intCore) Advance(n int) intCore {
	return intCore{v: c.v + n}
}

func (c intCore) Distance(o intCore) int {
	return o.v - c.v
}

// IntCursor is a random-access cursor over consecutive integers, built on
// the cursor.RandomOf facade. Ref returns a snapshot, valid until the cursor
// is advanced.
type IntCursor = cursor.RandomOf[int, intCore]

// Ints is the half-open integer sequence [Lo, Hi).
type Ints struct {
	Lo, Hi int
}

// Range returns the sequence of integers from lo up to but not including hi.
func Range(lo, hi int) Ints {
	if hi < lo {
		hi = lo
	}
	return Ints{Lo: lo, Hi: hi}
}

func (s Ints) Begin() IntCursor {
	return IntCursor{Core: intCore{v: s.Lo}}
}

func (s Ints) End() IntCursor {
	return IntCursor{Core: intCore{v: s.Hi}}
}

func (s Ints) Len() int {
	return s.Hi - s.Lo
}

// All returns the integers in order as an iter.Seq.
func (s Ints) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for v := s.Lo; v < s.Hi; v++ {
			if !yield(v) {
				return
			}
		}
	}
}
