package seqs

import "iter"

type pullState[E any] struct {
	next func() (E, bool)
	stop func()
}

// Pull adapts an iter.Seq into a sequence with single-pass cursors. The
// source is consumed as cursors advance: Begin may be called once, and
// advancing any cursor copy invalidates the others.
type Pull[E any] struct {
	s     *pullState[E]
	begun bool
}

// FromSeq starts pulling from seq. Callers that abandon the sequence before
// reaching its end should call Close to release the pull; draining to the
// end releases it automatically.
func FromSeq[E any](seq iter.Seq[E]) *Pull[E] {
	next, stop := iter.Pull(seq)
	return &Pull[E]{s: &pullState[E]{next: next, stop: stop}}
}

// Begin pulls the first element and returns the cursor positioned on it.
// It must be called at most once per Pull.
func (p *Pull[E]) Begin() PullCursor[E] {
	if p.begun {
		panic("seqs: Begin called twice on a single-pass sequence")
	}
	p.begun = true
	v, ok := p.s.next()
	if !ok {
		p.s.stop()
		return Done[E]()
	}
	return PullCursor[E]{s: p.s, v: v}
}

// End returns the exhausted sentinel every pull cursor reaches when its
// source runs out.
func (p *Pull[E]) End() PullCursor[E] {
	return Done[E]()
}

// Close releases the underlying pull. It is safe to call after the sequence
// has been drained.
func (p *Pull[E]) Close() {
	p.s.stop()
}

// Done returns the exhausted cursor sentinel. All exhausted pull cursors
// compare equal regardless of source.
func Done[E any]() PullCursor[E] {
	return PullCursor[E]{done: true}
}

// PullCursor is a single-pass cursor over a pulled sequence. Ref returns a
// snapshot of the current element, valid until the cursor is advanced.
type PullCursor[E any] struct {
	s    *pullState[E]
	v    E
	ord  int
	done bool
}

func (c PullCursor[E]) Eq(o PullCursor[E]) bool {
	if c.done || o.done {
		return c.done == o.done
	}
	return c.s == o.s && c.ord == o.ord
}

func (c PullCursor[E]) Ref() *E {
	if c.done {
		panic("seqs: dereference of an exhausted cursor")
	}
	return &c.v
}

func (c PullCursor[E]) Next() PullCursor[E] {
	if c.done {
		panic("seqs: advance past the end of a sequence")
	}
	v, ok := c.s.next()
	if !ok {
		c.s.stop()
		return Done[E]()
	}
	return PullCursor[E]{s: c.s, v: v, ord: c.ord + 1}
}
