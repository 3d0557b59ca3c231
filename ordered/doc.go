// Package ordered provides a sorted sequence backed by an in-memory B-tree.
// Elements inserted in any order come back out sorted, both as an iter.Seq
// and as a single-pass cursor range, so ordered data can be zipped, merged
// and bounded-advanced like any other sequence.
//
// Basic usage:
//
//	s := ordered.New(func(a, b int) bool { return a < b })
//	s.Insert(3)
//	s.Insert(1)
//	s.Insert(2)
//
//	for v := range s.All() {
//	    fmt.Println(v) // 1 2 3
//	}
//
// Each call to Begin starts a fresh ascending pass; the cursors it returns
// are single-pass within that pass.
package ordered
