package algebra

// Element is the set of operations a ring element must support to be used as
// a coefficient of a polynomial or as the source of a quotient ring.
//
// Implementations are values: every operation returns a new element and
// leaves the receiver untouched.
type Element[E any] interface {
	IsZero() bool
	Equals(E) bool
	Add(E) E
	Neg() E
	Mul(E) E

	// DivRem returns q, r such that e = q*d + r, where r is the canonical
	// remainder of the ring. Returns ErrDivisionByZero if d is zero.
	DivRem(d E) (q E, r E, err error)
}

// Ring is a handle to the structure elements of type E belong to.
type Ring[E Element[E]] interface {
	Zero() E
	One() E

	// Element interprets v as an element of the ring. Errors wrap ErrCoercion.
	Element(v any) (E, error)

	// String names the ring. Two rings with the same name are the same ring.
	String() string
}

// SameRing reports whether a and b denote the same ring.
func SameRing[E Element[E]](a, b Ring[E]) bool {
	return a.String() == b.String()
}

// Sub returns a - b.
func Sub[E Element[E]](a, b E) E {
	return a.Add(b.Neg())
}

// IsOne reports whether a equals the multiplicative identity of r.
func IsOne[E Element[E]](r Ring[E], a E) bool {
	return a.Equals(r.One())
}

// https://en.wikipedia.org/wiki/Exponentiation_by_squaring
func Pow[E Element[E]](r Ring[E], base E, exp uint64) E {
	x := r.One()
	for exp > 0 {
		if exp%2 == 1 {
			x = x.Mul(base)
		}

		base = base.Mul(base)
		exp /= 2
	}

	return x
}

// Unit reports whether g is a unit of r, and returns its inverse if so.
// The test divides one by g and checks the quotient multiplies back to one.
func Unit[E Element[E]](r Ring[E], g E) (E, bool) {
	one := r.One()
	if g.IsZero() {
		return r.Zero(), false
	}

	q, rem, err := one.DivRem(g)
	if err != nil || !rem.IsZero() {
		return r.Zero(), false
	}

	if !q.Mul(g).Equals(one) {
		return r.Zero(), false
	}

	return q, true
}
