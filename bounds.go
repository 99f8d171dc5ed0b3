package eqint

// Bound is a pair of optional integer limits on a single allocation slot.
// A nil side means that side is absent (no constraint). When both sides
// are present, Lower must not exceed Upper.
type Bound struct {
	Lower *int
	Upper *int
}

// LowerInt builds a Bound with only a lower limit.
func LowerInt(lower int) Bound {
	return Bound{Lower: &lower}
}

// UpperInt builds a Bound with only an upper limit.
func UpperInt(upper int) Bound {
	return Bound{Upper: &upper}
}

// Between builds a Bound with both limits.
func Between(lower, upper int) Bound {
	return Bound{Lower: &lower, Upper: &upper}
}

// Unbounded builds a Bound with neither limit present.
func Unbounded() Bound {
	return Bound{}
}

// Bounds is the ordered sequence of bounds for every allocation slot. Input
// order is the canonical output order of the solver.
type Bounds []Bound

// Equal reports whether two bound sequences are elementwise equal in order.
func (b Bounds) Equal(other Bounds) bool {
	if len(b) != len(other) {
		return false
	}
	for i := range b {
		if !boundEqual(b[i], other[i]) {
			return false
		}
	}
	return true
}

func boundEqual(a, b Bound) bool {
	return intPtrEqual(a.Lower, b.Lower) && intPtrEqual(a.Upper, b.Upper)
}

func intPtrEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// validate scans the bound sequence once and rejects any bound whose
// present sides are out of order. No normalization is performed; the
// original order is preserved for the rest of the pipeline.
func validate(bounds Bounds) error {
	if len(bounds) == 0 {
		return ConstraintError{Index: -1, Reason: "bound sequence must not be empty"}
	}
	for i, b := range bounds {
		if b.Lower != nil && b.Upper != nil && *b.Lower > *b.Upper {
			return ConstraintError{
				Index:  i,
				Reason: "lower bound exceeds upper bound",
			}
		}
	}
	return nil
}
