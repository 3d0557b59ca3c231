package merge

import (
	"iter"

	"github.com/davidvella/seq/cursor"
)

// Range is one sorted input to the merge: the half-open cursor range
// [Begin, End).
type Range[C any] struct {
	Begin, End C
}

// New builds a loser tree over the given sorted ranges. maxVal must compare
// not-less than every element; less defines the merge order.
func New[E any, C cursor.Reader[C, E]](ranges []Range[C], maxVal E, less func(E, E) bool) *Tree[E, C] {
	return &Tree[E, C]{
		maxVal: maxVal,
		nodes:  make([]node[E], len(ranges)*2),
		ranges: ranges,
		less:   less,
	}
}

// A loser tree is a binary tree laid out such that nodes N and N+1 have parent N/2.
// We store M leaf nodes in positions M...2M-1, and M-1 internal nodes in positions 1..M-1.
// Node 0 is a special node, containing the winner of the contest.
type Tree[E any, C cursor.Reader[C, E]] struct {
	maxVal  E
	nodes   []node[E]
	ranges  []Range[C]
	less    func(E, E) bool
	started bool
}

type node[E any] struct {
	index int              // This is the loser for all nodes except the 0th, where it is the winner.
	value E                // Value copied from the loser node, or winner for node 0.
	next  func() (E, bool) // Only populated for leaf nodes.
}

func (t *Tree[E, C]) moveNext(index int) bool {
	n := &t.nodes[index]
	if v, ok := n.next(); ok {
		n.value = v
		return true
	}
	n.value = t.maxVal
	n.index = -1
	return false
}

// All merges the ranges and yields elements in order. The input cursors are
// consumed as the merge proceeds; All may be iterated once.
func (t *Tree[E, C]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		if len(t.nodes) == 0 {
			return
		}
		t.start()
		for t.nodes[t.nodes[0].index].index != -1 &&
			yield(t.nodes[0].value) {
			t.moveNext(t.nodes[0].index)
			t.replayGames(t.nodes[0].index)
		}
	}
}

// walk returns a pull function over a cursor range.
func walk[E any, C cursor.Reader[C, E]](c, end C) func() (E, bool) {
	return func() (E, bool) {
		if c.Eq(end) {
			var zero E
			return zero, false
		}
		v := *c.Ref()
		c = c.Next()
		return v, true
	}
}

// IsEmpty reports whether the merge has no further elements.
func (t *Tree[E, C]) IsEmpty() bool {
	if len(t.nodes) == 0 {
		return true
	}
	t.start()
	nodes := t.nodes
	return nodes[nodes[0].index].index == -1
}

// start loads the first value of each range and plays the initial
// tournament. Cursors are consumed from here on.
func (t *Tree[E, C]) start() {
	if t.started {
		return
	}
	t.started = true
	for i, r := range t.ranges {
		t.nodes[i+len(t.ranges)].next = walk[E](r.Begin, r.End)
		t.moveNext(i + len(t.ranges))
	}
	t.initialize()
}

func (t *Tree[E, C]) initialize() {
	winner := t.playGame(1)
	t.nodes[0].index = winner
	t.nodes[0].value = t.nodes[winner].value
}

// Find the winner at position pos; if it is a non-leaf node, store the loser.
// pos must be >= 1 and < len(t.nodes).
func (t *Tree[E, C]) playGame(pos int) int {
	nodes := t.nodes
	if pos >= len(nodes)/2 {
		return pos
	}
	left := t.playGame(pos * 2)
	right := t.playGame(pos*2 + 1)
	var loser, winner int
	if t.less(nodes[left].value, nodes[right].value) {
		loser, winner = right, left
	} else {
		loser, winner = left, right
	}
	nodes[pos].index = loser
	nodes[pos].value = nodes[loser].value
	return winner
}

// Starting at pos, which is a winner, re-consider all values up to the root.
func (t *Tree[E, C]) replayGames(pos int) {
	nodes := t.nodes
	winningValue := nodes[pos].value
	for n := parent(pos); n != 0; n = parent(n) {
		node := &nodes[n]
		if t.less(node.value, winningValue) {
			// Record pos as the loser here, and the old loser is the new winner.
			node.index, pos = pos, node.index
			node.value, winningValue = winningValue, node.value
		}
	}
	// pos is now the winner; store it in node 0.
	nodes[0].index = pos
	nodes[0].value = winningValue
}

func parent(i int) int { return i >> 1 }
