package cursor

// Cursor is the single-pass tier: a copyable value position supporting
// equality and forward movement. The type parameter C is the concrete cursor
// type itself, so that movement preserves the concrete type.
//
// Next returns the position one step forward; the receiver is unchanged. For
// multi-pass cursors (slices, lists) old copies stay valid; a single-pass
// cursor consumes its source and invalidates prior copies when advanced.
type Cursor[C any] interface {
	// Eq reports whether two cursors denote the same position. Both must
	// have been derived from the same sequence.
	Eq(C) bool

	// Next returns the position one step forward. Advancing past the end
	// of the sequence is a contract violation.
	Next() C
}

// Bidi is the bidirectional tier: a Cursor that can also move backward.
type Bidi[C any] interface {
	Cursor[C]

	// Prev returns the position one step backward. Retreating past the
	// beginning of the sequence is a contract violation.
	Prev() C
}

// Random is the random-access tier: a Bidi cursor with O(1) movement by
// signed offset and O(1) signed distance.
type Random[C any] interface {
	Bidi[C]

	// Advance returns the position n steps away; n may be negative.
	Advance(n int) C

	// Distance returns the signed number of steps from the receiver to
	// the argument: positive if the argument is ahead, negative if behind.
	Distance(C) int
}

// Reader is a single-pass cursor that can dereference the element at its
// position. Ref returns a reference, not a copy; for cursors over generated
// or consumed data the referenced value is only valid until the cursor is
// advanced.
type Reader[C, E any] interface {
	Cursor[C]

	// Ref returns a reference to the current element. Dereferencing an
	// end position is a contract violation.
	Ref() *E
}

// BidiReader is a dereferenceable bidirectional cursor.
type BidiReader[C, E any] interface {
	Bidi[C]
	Ref() *E
}

// RandomReader is a dereferenceable random-access cursor.
type RandomReader[C, E any] interface {
	Random[C]
	Ref() *E
}

// Sequence is anything that can hand out a begin and an end position. The
// end position is a boundary: it is compared against, never dereferenced.
// Sequences do not own the elements' lifetime relative to cursors; the
// sequence must outlive every cursor derived from it.
type Sequence[C, E any] interface {
	Begin() C
	End() C
}
