package cursor

// Tier is the runtime mirror of the static capability tiers, used when a
// component needs to report or compare capabilities (for example a zip view
// reporting the minimum tier of its components). Tiers are ordered:
// SinglePass < Bidirectional < RandomAccess.
type Tier int

const (
	SinglePass Tier = iota
	Bidirectional
	RandomAccess
)

func (t Tier) String() string {
	switch t {
	case SinglePass:
		return "single-pass"
	case Bidirectional:
		return "bidirectional"
	case RandomAccess:
		return "random-access"
	default:
		return "unknown"
	}
}

// MinTier returns the lower of two tiers.
func MinTier(a, b Tier) Tier {
	return min(a, b)
}

// TierOf reports the capability tier of a cursor value, determined by the
// most capable movement interface its concrete type satisfies.
func TierOf[C Cursor[C]](c C) Tier {
	switch any(c).(type) {
	case Random[C]:
		return RandomAccess
	case Bidi[C]:
		return Bidirectional
	default:
		return SinglePass
	}
}
