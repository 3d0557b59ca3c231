package seqs

import "iter"

type listNode[E any] struct {
	prev, next *listNode[E]
	v          E
}

// List is a doubly-linked list with bidirectional cursors. The zero value is
// not usable; construct with NewList.
type List[E any] struct {
	root listNode[E] // sentinel: root.next is the first node, root.prev the last
	len  int
}

// NewList builds a list holding the given items in order.
func NewList[E any](items ...E) *List[E] {
	l := &List[E]{}
	l.root.next = &l.root
	l.root.prev = &l.root
	for _, v := range items {
		l.PushBack(v)
	}
	return l
}

// PushBack appends v to the end of the list.
func (l *List[E]) PushBack(v E) {
	n := &listNode[E]{v: v, prev: l.root.prev, next: &l.root}
	l.root.prev.next = n
	l.root.prev = n
	l.len++
}

func (l *List[E]) Len() int {
	return l.len
}

func (l *List[E]) Begin() ListCursor[E] {
	return ListCursor[E]{n: l.root.next}
}

func (l *List[E]) End() ListCursor[E] {
	return ListCursor[E]{n: &l.root}
}

// All returns the elements in order as an iter.Seq.
func (l *List[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for n := l.root.next; n != &l.root; n = n.next {
			if !yield(n.v) {
				return
			}
		}
	}
}

// ListCursor is a bidirectional cursor over a List. Cursors stay valid as
// long as the node they point at remains in the list.
type ListCursor[E any] struct {
	n *listNode[E]
}

func (c ListCursor[E]) Eq(o ListCursor[E]) bool {
	return c.n == o.n
}

func (c ListCursor[E]) Ref() *E {
	return &c.n.v
}

func (c ListCursor[E]) Next() ListCursor[E] {
	return ListCursor[E]{n: c.n.next}
}

func (c ListCursor[E]) Prev() ListCursor[E] {
	return ListCursor[E]{n: c.n.prev}
}
