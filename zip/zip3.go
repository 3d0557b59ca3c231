package zip

import (
	"iter"

	"github.com/davidvella/seq/cursor"
)

// Triple3 is the element of a three-sequence zip.
type Triple3[E1, E2, E3 any] struct {
	First  *E1
	Second *E2
	Third  *E3
}

// Cursor3 is the composite cursor of a three-sequence zip.
type Cursor3[E1, E2, E3 any, C1 cursor.Reader[C1, E1], C2 cursor.Reader[C2, E2], C3 cursor.Reader[C3, E3]] struct {
	c1 C1
	c2 C2
	c3 C3
}

// Eq reports composite equality: true as soon as any pair of component
// cursors is equal.
func (z Cursor3[E1, E2, E3, C1, C2, C3]) Eq(o Cursor3[E1, E2, E3, C1, C2, C3]) bool {
	return z.c1.Eq(o.c1) || z.c2.Eq(o.c2) || z.c3.Eq(o.c3)
}

func (z Cursor3[E1, E2, E3, C1, C2, C3]) Ref() *Triple3[E1, E2, E3] {
	return &Triple3[E1, E2, E3]{First: z.c1.Ref(), Second: z.c2.Ref(), Third: z.c3.Ref()}
}

// Next advances every component by one step. The composite must not equal
// the composite end; the precondition is not checked.
func (z Cursor3[E1, E2, E3, C1, C2, C3]) Next() Cursor3[E1, E2, E3, C1, C2, C3] {
	return Cursor3[E1, E2, E3, C1, C2, C3]{c1: z.c1.Next(), c2: z.c2.Next(), c3: z.c3.Next()}
}

// Prev3 steps every component backward by one; all components must be
// bidirectional.
func Prev3[E1, E2, E3 any, C1 cursor.BidiReader[C1, E1], C2 cursor.BidiReader[C2, E2], C3 cursor.BidiReader[C3, E3]](z Cursor3[E1, E2, E3, C1, C2, C3]) Cursor3[E1, E2, E3, C1, C2, C3] {
	return Cursor3[E1, E2, E3, C1, C2, C3]{c1: z.c1.Prev(), c2: z.c2.Prev(), c3: z.c3.Prev()}
}

// Advance3 moves every component by the same signed offset; all components
// must be random-access.
func Advance3[E1, E2, E3 any, C1 cursor.RandomReader[C1, E1], C2 cursor.RandomReader[C2, E2], C3 cursor.RandomReader[C3, E3]](z Cursor3[E1, E2, E3, C1, C2, C3], n int) Cursor3[E1, E2, E3, C1, C2, C3] {
	return Cursor3[E1, E2, E3, C1, C2, C3]{c1: z.c1.Advance(n), c2: z.c2.Advance(n), c3: z.c3.Advance(n)}
}

// Distance3 folds the per-component distances with min when the first
// component's distance is positive and with max otherwise.
func Distance3[E1, E2, E3 any, C1 cursor.RandomReader[C1, E1], C2 cursor.RandomReader[C2, E2], C3 cursor.RandomReader[C3, E3]](from, to Cursor3[E1, E2, E3, C1, C2, C3]) int {
	d1 := from.c1.Distance(to.c1)
	d2 := from.c2.Distance(to.c2)
	d3 := from.c3.Distance(to.c3)
	if d1 > 0 {
		return min(d1, min(d2, d3))
	}
	return max(d1, max(d2, d3))
}

// View3 is the zipped view over three sequences.
type View3[E1, E2, E3 any, C1 cursor.Reader[C1, E1], C2 cursor.Reader[C2, E2], C3 cursor.Reader[C3, E3]] struct {
	begin1, end1 C1
	begin2, end2 C2
	begin3, end3 C3
}

// Three zips three cursor ranges; element types are given explicitly, cursor
// types inferred.
func Three[E1, E2, E3 any, C1 cursor.Reader[C1, E1], C2 cursor.Reader[C2, E2], C3 cursor.Reader[C3, E3]](begin1, end1 C1, begin2, end2 C2, begin3, end3 C3) View3[E1, E2, E3, C1, C2, C3] {
	return View3[E1, E2, E3, C1, C2, C3]{
		begin1: begin1, end1: end1,
		begin2: begin2, end2: end2,
		begin3: begin3, end3: end3,
	}
}

func (v View3[E1, E2, E3, C1, C2, C3]) Begin() Cursor3[E1, E2, E3, C1, C2, C3] {
	return Cursor3[E1, E2, E3, C1, C2, C3]{c1: v.begin1, c2: v.begin2, c3: v.begin3}
}

func (v View3[E1, E2, E3, C1, C2, C3]) End() Cursor3[E1, E2, E3, C1, C2, C3] {
	return Cursor3[E1, E2, E3, C1, C2, C3]{c1: v.end1, c2: v.end2, c3: v.end3}
}

// Tier reports the minimum capability tier over the components.
func (v View3[E1, E2, E3, C1, C2, C3]) Tier() cursor.Tier {
	t := cursor.MinTier(cursor.TierOf(v.begin1), cursor.TierOf(v.begin2))
	return cursor.MinTier(t, cursor.TierOf(v.begin3))
}

// Values3 is an element triple by value, yielded by View3.All.
type Values3[E1, E2, E3 any] struct {
	First  E1
	Second E2
	Third  E3
}

// All walks the view from begin to end, yielding element triples by value.
func (v View3[E1, E2, E3, C1, C2, C3]) All() iter.Seq[Values3[E1, E2, E3]] {
	return func(yield func(Values3[E1, E2, E3]) bool) {
		end := v.End()
		for c := v.Begin(); !c.Eq(end); c = c.Next() {
			p := c.Ref()
			if !yield(Values3[E1, E2, E3]{First: *p.First, Second: *p.Second, Third: *p.Third}) {
				return
			}
		}
	}
}
