package cursor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/davidvella/seq/cursor"
	"github.com/davidvella/seq/seqs"
)

// evenCore supplies only the four random-access primitives for a cursor over
// the even integers; RandomOf derives the rest.
type evenCore struct {
	v int
}

func (c evenCore) Eq(o evenCore) bool { return c.v == o.v }

func (c evenCore) Ref() *int { return &c.v }

func (c evenCore) Advance(n int) evenCore { return evenCore{v: c.v + 2*n} }

func (c evenCore) Distance(o evenCore) int { return (o.v - c.v) / 2 }

type evenCursor = cursor.RandomOf[int, evenCore]

func evens(lo int) evenCursor {
	return evenCursor{Core: evenCore{v: lo}}
}

func TestRandomOf_ReflexiveEquality(t *testing.T) {
	c := evens(0)
	assert.True(t, c.Eq(c))
}

func TestRandomOf_DerivedStepping(t *testing.T) {
	c := evens(10)

	assert.Equal(t, 12, *c.Next().Ref())
	assert.Equal(t, 8, *c.Prev().Ref())

	// Incrementing then decrementing returns to the original position.
	assert.True(t, c.Next().Prev().Eq(c))
	assert.True(t, c.Prev().Next().Eq(c))
}

func TestRandomOf_ForwardedArithmetic(t *testing.T) {
	c := evens(0)

	jumped := c.Advance(5)
	assert.Equal(t, 10, *jumped.Ref())
	assert.Equal(t, 5, c.Distance(jumped))
	assert.Equal(t, -5, jumped.Distance(c))
}

func TestRandomOf_WorksWithAlgorithms(t *testing.T) {
	begin, end := evens(0), evens(20)

	assert.Equal(t, cursor.RandomAccess, cursor.TierOf(begin))

	c, left := cursor.AdvanceBounded(begin, 15, end)
	assert.Equal(t, 5, left)
	assert.True(t, c.Eq(end))
}

func TestConst_ReadOnlyView(t *testing.T) {
	s := seqs.FromSlice([]int{1, 2, 3})

	c := cursor.AsConst[int](s.Begin())
	end := cursor.AsConst[int](s.End())

	var got []int
	for ; !c.Eq(end); c = c.Next() {
		got = append(got, c.Get())
	}
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestConst_MovementAlgorithmsApply(t *testing.T) {
	s := seqs.FromSlice([]int{1, 2, 3, 4})

	begin := cursor.AsConst[int](s.Begin())
	end := cursor.AsConst[int](s.End())

	assert.Equal(t, 4, cursor.Distance(begin, end))

	c, left := cursor.AdvanceBounded(begin, 10, end)
	assert.Equal(t, 6, left)
	assert.True(t, c.Eq(end))
}
