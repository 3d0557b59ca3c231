// Package cursor defines a capability-tiered cursor abstraction for iterating
// over sequences, together with the movement algorithms that dispatch on it.
// A cursor is a small copyable value denoting a location within a sequence;
// moving a cursor returns a new value and leaves the original where it was.
//
// Cursors are classified into three tiers, each a superset of the one below:
//
//   - single-pass (Cursor): equality and forward movement
//   - bidirectional (Bidi): adds backward movement
//   - random-access (Random): adds O(1) movement by offset and O(1) distance
//
// The tier of a cursor type is a static property: it is simply the most
// capable of these interfaces the type satisfies. Operations that require a
// tier are either methods the type must provide, or generic functions whose
// constraints reject lower tiers at compile time. The tier-polymorphic
// algorithms (Advance, Distance, AdvanceBounded) pick the fastest strategy
// for the concrete type by interface upgrade, the same convention io.Copy
// uses for io.ReaderFrom.
//
// Key features:
//   - Generic, allocation-free cursor interfaces with value semantics
//   - Bounded movement (AdvanceBounded) returning the unconsumed remainder
//   - O(1) fast paths for random-access cursors, stepping otherwise
//   - A facade (RandomOf) that derives the full random-access surface from
//     four primitives
//   - A one-way read-only view (Const) over any dereferenceable cursor
//
// Basic usage:
//
//	s := seqs.FromSlice([]int{1, 2, 3, 4, 5})
//	c := s.Begin()
//
//	// Move forward by up to 10 steps, stopping at the end.
//	c, left := cursor.AdvanceBounded(c, 10, s.End())
//	// left == 5: only 5 steps were available.
//
// Contract violations (moving a single-pass cursor backward, dereferencing an
// exhausted cursor) fail fast with a panic rather than returning an error;
// bounded movement itself never fails and always reports a well-defined
// remainder.
package cursor
