package cursor

// AdvanceBounded moves c by up to n steps, never past bound, and returns the
// final position together with the part of n that could not be taken. The
// remainder has the same sign as n; it is zero when the full count was taken
// and equal to n when c already sat on bound.
//
// For n > 0 the bound must be reachable by moving forward; for n < 0 by
// moving backward. Random-access cursors resolve the whole move with one
// distance computation and one jump; lower tiers step one at a time,
// comparing against bound before every step. Backward movement on a cursor
// without Prev is a programming error and panics.
func AdvanceBounded[C Cursor[C]](c C, n int, bound C) (C, int) {
	switch {
	case n > 0:
		if rc, ok := any(c).(Random[C]); ok {
			room := rc.Distance(bound)
			if room < n {
				return bound, n - room
			}
			return rc.Advance(n), 0
		}
		for n > 0 && !c.Eq(bound) {
			c = c.Next()
			n--
		}
		return c, n
	case n < 0:
		if rc, ok := any(c).(Random[C]); ok {
			room := rc.Distance(bound) // zero or negative
			if n < room {
				return bound, n - room
			}
			return rc.Advance(n), 0
		}
		bc, ok := any(c).(Bidi[C])
		if !ok {
			panic("cursor: backward bounded advance requires a bidirectional cursor")
		}
		for n < 0 && !c.Eq(bound) {
			c = bc.Prev()
			bc, _ = any(c).(Bidi[C])
			n++
		}
		return c, n
	default:
		return c, 0
	}
}
