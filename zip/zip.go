package zip

import (
	"iter"

	"github.com/davidvella/seq/cursor"
)

// Pair2 is the element of a two-sequence zip: references to the current
// element of each component. Writing through the pointers mutates the
// underlying sequences.
type Pair2[E1, E2 any] struct {
	First  *E1
	Second *E2
}

// Cursor2 is the composite cursor of a two-sequence zip: one cursor per
// component, moved in lockstep.
type Cursor2[E1, E2 any, C1 cursor.Reader[C1, E1], C2 cursor.Reader[C2, E2]] struct {
	c1 C1
	c2 C2
}

// Eq reports composite equality: true as soon as either pair of component
// cursors is equal. This OR rule is what terminates iteration at the first
// exhausted component when the zipped sequences have different lengths.
func (z Cursor2[E1, E2, C1, C2]) Eq(o Cursor2[E1, E2, C1, C2]) bool {
	return z.c1.Eq(o.c1) || z.c2.Eq(o.c2)
}

// Ref returns the pair of references to the current elements.
func (z Cursor2[E1, E2, C1, C2]) Ref() *Pair2[E1, E2] {
	return &Pair2[E1, E2]{First: z.c1.Ref(), Second: z.c2.Ref()}
}

// Next advances every component by one step. The composite must not equal
// the composite end; this precondition is the caller's responsibility and is
// not checked here.
func (z Cursor2[E1, E2, C1, C2]) Next() Cursor2[E1, E2, C1, C2] {
	return Cursor2[E1, E2, C1, C2]{c1: z.c1.Next(), c2: z.c2.Next()}
}

// Prev2 steps every component backward by one. Available only when both
// components are bidirectional; the composite must not equal the composite
// begin.
func Prev2[E1, E2 any, C1 cursor.BidiReader[C1, E1], C2 cursor.BidiReader[C2, E2]](z Cursor2[E1, E2, C1, C2]) Cursor2[E1, E2, C1, C2] {
	return Cursor2[E1, E2, C1, C2]{c1: z.c1.Prev(), c2: z.c2.Prev()}
}

// Advance2 moves every component by the same signed offset, independently.
// Available only when both components are random-access. Components are not
// clipped against their own ends; staying within the composite's begin/end
// bracket is the caller's responsibility.
func Advance2[E1, E2 any, C1 cursor.RandomReader[C1, E1], C2 cursor.RandomReader[C2, E2]](z Cursor2[E1, E2, C1, C2], n int) Cursor2[E1, E2, C1, C2] {
	return Cursor2[E1, E2, C1, C2]{c1: z.c1.Advance(n), c2: z.c2.Advance(n)}
}

// Distance2 returns the signed distance between two composite positions.
// Per-component distances are folded with min when the first component's
// distance is positive and with max otherwise, so the result counts steps
// only until the shortest remaining component would end, consistent with the
// OR equality rule.
func Distance2[E1, E2 any, C1 cursor.RandomReader[C1, E1], C2 cursor.RandomReader[C2, E2]](from, to Cursor2[E1, E2, C1, C2]) int {
	d1 := from.c1.Distance(to.c1)
	d2 := from.c2.Distance(to.c2)
	if d1 > 0 {
		return min(d1, d2)
	}
	return max(d1, d2)
}

// View2 is the zipped view over two sequences. It satisfies the sequence
// contract, so it can itself be zipped or passed to any adaptor expecting a
// sequence.
type View2[E1, E2 any, C1 cursor.Reader[C1, E1], C2 cursor.Reader[C2, E2]] struct {
	begin1, end1 C1
	begin2, end2 C2
}

// Two zips two cursor ranges. The element types are given explicitly; the
// cursor types are inferred from the arguments:
//
//	zip.Two[int, string](a.Begin(), a.End(), b.Begin(), b.End())
func Two[E1, E2 any, C1 cursor.Reader[C1, E1], C2 cursor.Reader[C2, E2]](begin1, end1 C1, begin2, end2 C2) View2[E1, E2, C1, C2] {
	return View2[E1, E2, C1, C2]{begin1: begin1, end1: end1, begin2: begin2, end2: end2}
}

func (v View2[E1, E2, C1, C2]) Begin() Cursor2[E1, E2, C1, C2] {
	return Cursor2[E1, E2, C1, C2]{c1: v.begin1, c2: v.begin2}
}

func (v View2[E1, E2, C1, C2]) End() Cursor2[E1, E2, C1, C2] {
	return Cursor2[E1, E2, C1, C2]{c1: v.end1, c2: v.end2}
}

// Tier reports the composite capability tier: the minimum over the
// components.
func (v View2[E1, E2, C1, C2]) Tier() cursor.Tier {
	return cursor.MinTier(cursor.TierOf(v.begin1), cursor.TierOf(v.begin2))
}

// All walks the view from begin to end, yielding element values pairwise.
func (v View2[E1, E2, C1, C2]) All() iter.Seq2[E1, E2] {
	return func(yield func(E1, E2) bool) {
		end := v.End()
		for c := v.Begin(); !c.Eq(end); c = c.Next() {
			p := c.Ref()
			if !yield(*p.First, *p.Second) {
				return
			}
		}
	}
}
