// Package zip synchronizes iteration over several independently-typed
// sequences. Zipping N sequences produces one view whose elements are
// N-tuples of references into the components and whose cursor is a tuple of
// the N component cursors, advanced in lockstep.
//
// The component sequences need not share a length, an element type or a
// capability tier. Two composite cursors compare equal as soon as any pair
// of corresponding components compares equal, so iteration from the
// composite begin to the composite end stops at the first sequence to reach
// its end (shortest-sequence-wins). The composite's capability tier is the
// minimum over its components: stepping backward or jumping by offset is
// only available when every component supports it, enforced at compile time
// by the constraints on Prev2/Prev3, Advance2/Advance3 and
// Distance2/Distance3.
//
// Key features:
//   - Heterogeneous element and cursor types per component
//   - Shortest-sequence-wins termination with no length bookkeeping
//   - Element access by reference: mutating through a pair mutates the
//     underlying sequence
//   - Views satisfy the sequence contract, so zips nest
//   - Fixed arities two and three; nesting covers wider shapes
//
// Basic usage:
//
//	nums := seqs.FromSlice([]int{1, 2, 3})
//	names := seqs.FromSlice([]string{"one", "two", "three", "four"})
//
//	v := zip.Two[int, string](nums.Begin(), nums.End(), names.Begin(), names.End())
//	for n, s := range v.All() {
//	    fmt.Println(n, s) // stops after three pairs
//	}
//
// The element types in the constructor cannot be inferred from the cursor
// arguments and are given explicitly; every other operation infers its type
// arguments from the composite cursor itself.
package zip
