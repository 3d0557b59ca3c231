// Package merge implements a tournament tree (loser tree) that merges
// multiple sorted cursor ranges into a single ordered sequence. The tree
// layout follows the design popularized by Bryan Boreham's go-loser
// (https://github.com/bboreham/go-loser).
//
// A loser tree stores the "loser" of each comparison in the internal nodes
// and the overall winner at the root, which brings the comparisons per
// merged element down to O(log n) for n input ranges.
//
// Key features:
//   - Merges any number of sorted cursor ranges of a common element type
//   - O(log n) comparisons per element
//   - Results exposed as an iter.Seq
//
// Basic usage:
//
//	a := seqs.FromSlice([]int{1, 4, 7})
//	b := seqs.FromSlice([]int{2, 5, 8})
//
//	tree := merge.New(
//	    []merge.Range[seqs.SliceCursor[int]]{
//	        {Begin: a.Begin(), End: a.End()},
//	        {Begin: b.Begin(), End: b.End()},
//	    },
//	    math.MaxInt,
//	    func(x, y int) bool { return x < y },
//	)
//
//	for v := range tree.All() {
//	    fmt.Println(v) // 1 2 4 5 7 8
//	}
//
// Each input range must already be sorted by the supplied less function, and
// maxVal must compare not-less than every element.
package merge
