package seqs

import (
	"iter"

	"github.com/davidvella/seq/cursor"
)

// All walks a cursor range and yields each element by value. The element
// type cannot be inferred and must be supplied explicitly:
//
//	for v := range seqs.All[int](s.Begin(), s.End()) { ... }
func All[E any, C cursor.Reader[C, E]](begin, end C) iter.Seq[E] {
	return func(yield func(E) bool) {
		for c := begin; !c.Eq(end); c = c.Next() {
			if !yield(*c.Ref()) {
				return
			}
		}
	}
}

// Collect drains a cursor range into a slice.
func Collect[E any, C cursor.Reader[C, E]](begin, end C) []E {
	var out []E
	for c := begin; !c.Eq(end); c = c.Next() {
		out = append(out, *c.Ref())
	}
	return out
}
