package algo

import "github.com/davidvella/seq/cursor"

// LowerBound returns the first position in the sorted range [begin, end)
// whose element is not less than v, or end if there is none. O(log n)
// comparisons and O(1) movement per probe.
func LowerBound[E any, C cursor.RandomReader[C, E]](begin, end C, v E, less func(E, E) bool) C {
	n := begin.Distance(end)
	for n > 0 {
		half := n / 2
		mid := begin.Advance(half)
		if less(*mid.Ref(), v) {
			begin = mid.Next()
			n -= half + 1
		} else {
			n = half
		}
	}
	return begin
}

// UpperBound returns the first position in the sorted range [begin, end)
// whose element is greater than v, or end if there is none.
func UpperBound[E any, C cursor.RandomReader[C, E]](begin, end C, v E, less func(E, E) bool) C {
	n := begin.Distance(end)
	for n > 0 {
		half := n / 2
		mid := begin.Advance(half)
		if less(v, *mid.Ref()) {
			n = half
		} else {
			begin = mid.Next()
			n -= half + 1
		}
	}
	return begin
}

// EqualRange returns the subrange of [begin, end) whose elements are
// equivalent to v: [LowerBound, UpperBound). The subrange is empty when v
// does not occur.
func EqualRange[E any, C cursor.RandomReader[C, E]](begin, end C, v E, less func(E, E) bool) (C, C) {
	lo := LowerBound(begin, end, v, less)
	hi := UpperBound(lo, end, v, less)
	return lo, hi
}

// Contains reports whether v occurs in the sorted range [begin, end).
func Contains[E any, C cursor.RandomReader[C, E]](begin, end C, v E, less func(E, E) bool) bool {
	lo := LowerBound(begin, end, v, less)
	return !lo.Eq(end) && !less(v, *lo.Ref())
}
