package zip_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidvella/seq/cursor"
	"github.com/davidvella/seq/seqs"
	"github.com/davidvella/seq/zip"
)

func TestTwo_ShortestWins(t *testing.T) {
	short := seqs.FromSlice([]string{"a", "b", "c"})
	long := seqs.FromSlice([]string{"x", "y", "z", "w", "v"})

	v := zip.Two[string, string](short.Begin(), short.End(), long.Begin(), long.End())

	var got [][2]string
	end := v.End()
	c := v.Begin()
	for !c.Eq(end) {
		p := c.Ref()
		got = append(got, [2]string{*p.First, *p.Second})
		c = c.Next()
	}

	require.Equal(t, [][2]string{{"a", "x"}, {"b", "y"}, {"c", "z"}}, got)
	// Equal to end after the third increment, not the fifth.
	assert.True(t, c.Eq(end))
}

func TestTwo_ElementWiseOrder(t *testing.T) {
	nums := seqs.FromSlice([]int{1, 2, 3})
	names := seqs.FromSlice([]string{"a", "b", "c"})

	v := zip.Two[int, string](nums.Begin(), nums.End(), names.Begin(), names.End())

	var gotN []int
	var gotS []string
	for n, s := range v.All() {
		gotN = append(gotN, n)
		gotS = append(gotS, s)
	}
	assert.Equal(t, []int{1, 2, 3}, gotN)
	assert.Equal(t, []string{"a", "b", "c"}, gotS)
}

func TestTwo_EmptyComponent(t *testing.T) {
	empty := seqs.FromSlice[int](nil)
	full := seqs.FromSlice([]string{"a", "b"})

	v := zip.Two[int, string](empty.Begin(), empty.End(), full.Begin(), full.End())
	assert.True(t, v.Begin().Eq(v.End()))
}

func TestTwo_HeterogeneousTiers(t *testing.T) {
	slice := seqs.FromSlice([]int{1, 2, 3, 4})
	pull := seqs.FromSeq(seqs.FromSlice([]string{"a", "b"}).All())

	v := zip.Two[int, string](slice.Begin(), slice.End(), pull.Begin(), pull.End())
	assert.Equal(t, cursor.SinglePass, v.Tier())

	var got []string
	for n, s := range v.All() {
		got = append(got, s)
		_ = n
	}
	// The single-pass component is the shorter one and terminates the zip.
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestTwo_TierPropagation(t *testing.T) {
	slice := seqs.FromSlice([]int{1})
	list := seqs.NewList("a")

	both := zip.Two[int, int](slice.Begin(), slice.End(), slice.Begin(), slice.End())
	assert.Equal(t, cursor.RandomAccess, both.Tier())

	mixed := zip.Two[int, string](slice.Begin(), slice.End(), list.Begin(), list.End())
	assert.Equal(t, cursor.Bidirectional, mixed.Tier())
}

func TestTwo_RefMutatesThroughPair(t *testing.T) {
	nums := []int{1, 2, 3}
	tags := []string{"a", "b", "c"}
	v := zip.Two[int, string](
		seqs.FromSlice(nums).Begin(), seqs.FromSlice(nums).End(),
		seqs.FromSlice(tags).Begin(), seqs.FromSlice(tags).End(),
	)

	p := v.Begin().Next().Ref()
	*p.First = 42
	*p.Second = "q"

	assert.Equal(t, []int{1, 42, 3}, nums)
	assert.Equal(t, []string{"a", "q", "c"}, tags)
}

func TestPrev2_Decrement(t *testing.T) {
	a := seqs.NewList(1, 2, 3)
	b := seqs.NewList("x", "y", "z")

	v := zip.Two[int, string](a.Begin(), a.End(), b.Begin(), b.End())

	c := zip.Prev2(v.End())
	p := c.Ref()
	assert.Equal(t, 3, *p.First)
	assert.Equal(t, "z", *p.Second)

	// Increment then decrement returns to the same composite position.
	mid := v.Begin().Next()
	assert.True(t, zip.Prev2(mid.Next()).Eq(mid))
}

func TestAdvance2_Jump(t *testing.T) {
	a := seqs.FromSlice([]int{1, 2, 3, 4})
	b := seqs.FromSlice([]string{"w", "x", "y", "z"})

	v := zip.Two[int, string](a.Begin(), a.End(), b.Begin(), b.End())

	c := zip.Advance2(v.Begin(), 2)
	p := c.Ref()
	assert.Equal(t, 3, *p.First)
	assert.Equal(t, "y", *p.Second)

	c = zip.Advance2(c, -1)
	p = c.Ref()
	assert.Equal(t, 2, *p.First)
}

func TestDistance2_Symmetry(t *testing.T) {
	a := seqs.FromSlice([]int{1, 2, 3, 4})
	b := seqs.FromSlice([]string{"w", "x", "y", "z"})

	v := zip.Two[int, string](a.Begin(), a.End(), b.Begin(), b.End())

	assert.Equal(t, 4, zip.Distance2(v.Begin(), v.End()))
	assert.Equal(t, -4, zip.Distance2(v.End(), v.Begin()))
}

// With unequal lengths the distance counts only until the shortest component
// would end: min of the per-component distances forward, max backward.
func TestDistance2_UnequalLengths(t *testing.T) {
	short := seqs.FromSlice([]int{1, 2, 3})
	long := seqs.FromSlice([]int{1, 2, 3, 4, 5})

	v := zip.Two[int, int](short.Begin(), short.End(), long.Begin(), long.End())

	assert.Equal(t, 3, zip.Distance2(v.Begin(), v.End()))
	assert.Equal(t, -3, zip.Distance2(v.End(), v.Begin()))
}

func TestTwo_Nesting(t *testing.T) {
	a := seqs.FromSlice([]int{1, 2})
	b := seqs.FromSlice([]string{"x", "y"})
	c := seqs.FromSlice([]float64{0.5, 1.5})

	inner := zip.Two[int, string](a.Begin(), a.End(), b.Begin(), b.End())
	outer := zip.Two[zip.Pair2[int, string], float64](inner.Begin(), inner.End(), c.Begin(), c.End())

	var got []string
	for p, f := range outer.All() {
		got = append(got, *p.Second)
		_ = f
	}
	assert.Equal(t, []string{"x", "y"}, got)
}
