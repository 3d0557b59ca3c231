package ordered

import (
	"iter"

	"github.com/google/btree"

	"github.com/davidvella/seq/seqs"
)

const btreeDegree = 2

// Seq is a sorted sequence of elements ordered by a user-supplied less
// function. Duplicate elements (per less) replace each other.
type Seq[E any] struct {
	tr *btree.BTreeG[E]
}

// New returns an empty sorted sequence ordered by less.
func New[E any](less func(a, b E) bool) *Seq[E] {
	return &Seq[E]{
		tr: btree.NewG[E](btreeDegree, less),
	}
}

// Insert adds v, replacing an existing equivalent element.
func (s *Seq[E]) Insert(v E) {
	s.tr.ReplaceOrInsert(v)
}

// Delete removes the element equivalent to v, reporting whether one was
// present.
func (s *Seq[E]) Delete(v E) bool {
	_, ok := s.tr.Delete(v)
	return ok
}

func (s *Seq[E]) Len() int {
	return s.tr.Len()
}

// All yields the elements in ascending order.
func (s *Seq[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		s.tr.Ascend(func(item E) bool {
			return yield(item)
		})
	}
}

// Backward yields the elements in descending order.
func (s *Seq[E]) Backward() iter.Seq[E] {
	return func(yield func(E) bool) {
		s.tr.Descend(func(item E) bool {
			return yield(item)
		})
	}
}

// Begin starts a fresh ascending pass and returns its first position.
// Inserting or deleting while a pass is live is the caller's responsibility
// to avoid.
func (s *Seq[E]) Begin() seqs.PullCursor[E] {
	return seqs.FromSeq(s.All()).Begin()
}

// End returns the exhausted sentinel shared by every pass.
func (s *Seq[E]) End() seqs.PullCursor[E] {
	return seqs.Done[E]()
}
