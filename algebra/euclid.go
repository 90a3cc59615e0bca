package algebra

import "fmt"

// ExtendedEuclidean returns x, y, g such that a*x + b*y = g, where g is a
// greatest common divisor of a and b (up to a unit of r).
//
// Termination relies on DivRem strictly decreasing the ring's remainder
// measure (absolute value for integers, degree for polynomials over a field).
// A division that leaves its dividend untouched only swaps the pair; two of
// them in a row mean DivRem can not reduce a by b nor b by a (e.g. 2x and
// x^2 + 1 over Z), and the error wraps ErrNotInvertible.
func ExtendedEuclidean[E Element[E]](r Ring[E], a, b E) (x, y, g E, err error) {
	A, B := a, b

	// Invariants:
	//   A = x0*a + y0*b
	//   B = x1*a + y1*b
	x0, x1 := r.One(), r.Zero()
	y0, y1 := r.Zero(), r.One()

	swapped := false
	for !B.IsZero() {
		q, rem, err := A.DivRem(B)
		if err != nil {
			return x, y, g, err
		}

		if q.IsZero() {
			if swapped {
				return x, y, g, fmt.Errorf("%w: division of %v by %v makes no progress", ErrNotInvertible, A, B)
			}

			swapped = true
		} else {
			swapped = false
		}

		A, B = B, rem // gcd(A, B) = gcd(B, rem)

		// (x0, x1) = (x1, x0 - q*x1)
		x0, x1 = x1, Sub(x0, q.Mul(x1))
		// (y0, y1) = (y1, y0 - q*y1)
		y0, y1 = y1, Sub(y0, q.Mul(y1))
	}

	return x0, y0, A, nil
}
