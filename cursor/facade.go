package cursor

// RandomCore is the minimal set of primitives a random-access position must
// supply: equality, dereference, jump by offset and signed distance. The
// facade RandomOf derives the rest of the random-access surface from these.
type RandomCore[C, E any] interface {
	Eq(C) bool
	Ref() *E
	Advance(n int) C
	Distance(C) int
}

// RandomOf wraps a RandomCore and completes it into a full RandomReader:
// stepwise movement is derived from Advance, everything else forwards to the
// core. A type that claims random access but is missing a primitive fails to
// instantiate the facade, so the capability claim is checked at compile time.
type RandomOf[E any, C RandomCore[C, E]] struct {
	Core C
}

func (f RandomOf[E, C]) Eq(o RandomOf[E, C]) bool {
	return f.Core.Eq(o.Core)
}

func (f RandomOf[E, C]) Ref() *E {
	return f.Core.Ref()
}

func (f RandomOf[E, C]) Next() RandomOf[E, C] {
	return RandomOf[E, C]{Core: f.Core.Advance(1)}
}

func (f RandomOf[E, C]) Prev() RandomOf[E, C] {
	return RandomOf[E, C]{Core: f.Core.Advance(-1)}
}

func (f RandomOf[E, C]) Advance(n int) RandomOf[E, C] {
	return RandomOf[E, C]{Core: f.Core.Advance(n)}
}

func (f RandomOf[E, C]) Distance(o RandomOf[E, C]) int {
	return f.Core.Distance(o.Core)
}

// Const is a read-only view of a cursor. It keeps the movement behavior of
// the wrapped cursor but replaces by-reference element access with by-value
// Get, so elements cannot be mutated through it. The conversion is one-way:
// AsConst builds a Const from any dereferenceable cursor and there is no way
// back to the mutable cursor.
type Const[E any, C Reader[C, E]] struct {
	c C
}

// AsConst wraps a cursor in a read-only view.
func AsConst[E any, C Reader[C, E]](c C) Const[E, C] {
	return Const[E, C]{c: c}
}

func (k Const[E, C]) Eq(o Const[E, C]) bool {
	return k.c.Eq(o.c)
}

func (k Const[E, C]) Next() Const[E, C] {
	return Const[E, C]{c: k.c.Next()}
}

// Get returns a copy of the current element.
func (k Const[E, C]) Get() E {
	return *k.c.Ref()
}
