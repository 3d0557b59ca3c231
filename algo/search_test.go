package algo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/davidvella/seq/algo"
	"github.com/davidvella/seq/cursor"
	"github.com/davidvella/seq/seqs"
)

func intLess(a, b int) bool { return a < b }

func TestLowerBound(t *testing.T) {
	s := seqs.FromSlice([]int{1, 2, 2, 2, 5, 7})

	tests := []struct {
		name    string
		v       int
		wantPos int
	}{
		{name: "before all", v: 0, wantPos: 0},
		{name: "first of run", v: 2, wantPos: 1},
		{name: "in gap", v: 3, wantPos: 4},
		{name: "last", v: 7, wantPos: 5},
		{name: "after all", v: 9, wantPos: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := algo.LowerBound(s.Begin(), s.End(), tt.v, intLess)
			assert.Equal(t, tt.wantPos, s.Begin().Distance(c))
		})
	}
}

func TestUpperBound(t *testing.T) {
	s := seqs.FromSlice([]int{1, 2, 2, 2, 5, 7})

	c := algo.UpperBound(s.Begin(), s.End(), 2, intLess)
	assert.Equal(t, 4, s.Begin().Distance(c))

	c = algo.UpperBound(s.Begin(), s.End(), 0, intLess)
	assert.Equal(t, 0, s.Begin().Distance(c))

	c = algo.UpperBound(s.Begin(), s.End(), 7, intLess)
	assert.True(t, c.Eq(s.End()))
}

func TestEqualRange(t *testing.T) {
	s := seqs.FromSlice([]int{1, 2, 2, 2, 5, 7})

	lo, hi := algo.EqualRange(s.Begin(), s.End(), 2, intLess)
	assert.Equal(t, []int{2, 2, 2}, seqs.Collect[int](lo, hi))

	lo, hi = algo.EqualRange(s.Begin(), s.End(), 4, intLess)
	assert.True(t, lo.Eq(hi))
	assert.Equal(t, 4, s.Begin().Distance(lo))
}

func TestEqualRange_Empty(t *testing.T) {
	s := seqs.FromSlice[int](nil)

	lo, hi := algo.EqualRange(s.Begin(), s.End(), 1, intLess)
	assert.True(t, lo.Eq(s.End()))
	assert.True(t, hi.Eq(s.End()))
}

func TestContains(t *testing.T) {
	s := seqs.FromSlice([]int{1, 3, 5})

	assert.True(t, algo.Contains(s.Begin(), s.End(), 3, intLess))
	assert.False(t, algo.Contains(s.Begin(), s.End(), 4, intLess))
	assert.False(t, algo.Contains(s.Begin(), s.End(), 9, intLess))
}

func TestLowerBound_OnRange(t *testing.T) {
	// Works on any random-access sequence, not just slices.
	s := seqs.Range(0, 1000)

	c := algo.LowerBound(s.Begin(), s.End(), 421, intLess)
	assert.Equal(t, 421, *c.Ref())
	assert.Equal(t, 421, cursor.Distance(s.Begin(), c))
}
