// Package seqs provides concrete sequences for the cursor abstraction, one
// per capability tier, plus bridges between cursor ranges and the standard
// library's iter.Seq.
//
// Key features:
//   - Slice: random-access cursors over a plain []E
//   - List: a doubly-linked list with bidirectional cursors
//   - Pull: single-pass cursors over any iter.Seq[E]
//   - Range: random-access integer sequences built on the cursor.RandomOf
//     facade
//   - All and Collect to drain a cursor range into an iter.Seq or a slice
//
// Basic usage:
//
//	s := seqs.FromSlice([]string{"a", "b", "c"})
//	for c := s.Begin(); !c.Eq(s.End()); c = c.Next() {
//	    fmt.Println(*c.Ref())
//	}
//
// Slice and List cursors stay valid across copies and passes. Pull cursors
// consume their source: advancing any copy invalidates the others, and the
// value returned by Ref is a snapshot that is only valid until the cursor is
// advanced.
package seqs
