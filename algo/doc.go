// Package algo provides search algorithms over sorted random-access cursor
// ranges. Unlike sort.Search, which works on integer indexes, these operate
// directly on cursors, so they apply to any random-access sequence
// regardless of its backing representation.
//
// All functions take a half-open range [begin, end) that must be sorted
// with respect to the supplied less function.
//
// Basic usage:
//
//	s := seqs.FromSlice([]int{1, 2, 2, 2, 5})
//	lo, hi := algo.EqualRange(s.Begin(), s.End(), 2, func(a, b int) bool { return a < b })
//	// cursor.Distance(lo, hi) == 3
package algo
