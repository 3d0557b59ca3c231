package cursor

// Advance returns the position n steps away from c; n may be negative.
// Random-access cursors jump in O(1); other tiers step one at a time.
// A negative n on a cursor without backward movement panics.
func Advance[C Cursor[C]](c C, n int) C {
	if rc, ok := any(c).(Random[C]); ok {
		return rc.Advance(n)
	}
	for ; n > 0; n-- {
		c = c.Next()
	}
	for ; n < 0; n++ {
		bc, ok := any(c).(Bidi[C])
		if !ok {
			panic("cursor: negative advance requires a bidirectional cursor")
		}
		c = bc.Prev()
	}
	return c
}

// Distance returns the number of steps from one position to a position
// reachable by moving forward, in O(1) for random-access cursors and by
// counting steps otherwise. For random-access cursors the result may be
// negative; for lower tiers to must be ahead of from.
func Distance[C Cursor[C]](from, to C) int {
	if rc, ok := any(from).(Random[C]); ok {
		return rc.Distance(to)
	}
	var n int
	for !from.Eq(to) {
		from = from.Next()
		n++
	}
	return n
}
