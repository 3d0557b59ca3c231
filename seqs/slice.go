package seqs

import "iter"

// Slice adapts a Go slice into a sequence with random-access cursors.
// The slice is referenced, not copied; mutations through cursors are visible
// to the caller and vice versa.
type Slice[E any] struct {
	items []E
}

// FromSlice wraps items in a Slice sequence.
func FromSlice[E any](items []E) Slice[E] {
	return Slice[E]{items: items}
}

func (s Slice[E]) Begin() SliceCursor[E] {
	return SliceCursor[E]{items: s.items}
}

func (s Slice[E]) End() SliceCursor[E] {
	return SliceCursor[E]{items: s.items, i: len(s.items)}
}

func (s Slice[E]) Len() int {
	return len(s.items)
}

// All returns the elements in order as an iter.Seq.
func (s Slice[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, v := range s.items {
			if !yield(v) {
				return
			}
		}
	}
}

// SliceCursor is a random-access cursor over a slice. Equality compares
// offsets only; comparing cursors derived from different slices is
// unspecified.
type SliceCursor[E any] struct {
	items []E
	i     int
}

func (c SliceCursor[E]) Eq(o SliceCursor[E]) bool {
	return c.i == o.i
}

func (c SliceCursor[E]) Ref() *E {
	return &c.items[c.i]
}

func (c SliceCursor[E]) Next() SliceCursor[E] {
	return SliceCursor[E]{items: c.items, i: c.i + 1}
}

func (c SliceCursor[E]) Prev() SliceCursor[E] {
	return SliceCursor[E]{items: c.items, i: c.i - 1}
}

func (c SliceCursor[E]) Advance(n int) SliceCursor[E] {
	return SliceCursor[E]{items: c.items, i: c.i + n}
}

func (c SliceCursor[E]) Distance(o SliceCursor[E]) int {
	return o.i - c.i
}
