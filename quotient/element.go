package quotient

import (
	"fmt"

	"github.com/jonathanmweiss/go-rings/algebra"
)

// Element is a residue class. It stores the canonical remainder of its
// representatives, as defined by the source ring's DivRem.
type Element[E algebra.Element[E]] struct {
	ring      *Ring[E]
	remainder E
}

// Remainder returns the canonical representative, an element of the source
// ring.
func (a *Element[E]) Remainder() E {
	return a.remainder
}

func (a *Element[E]) Ring() *Ring[E] {
	return a.ring
}

func (a *Element[E]) Modulus() E {
	return a.ring.modulus
}

func (a *Element[E]) String() string {
	return fmt.Sprint(a.remainder)
}

func (a *Element[E]) mustShareRing(b *Element[E]) {
	if !a.ring.Equals(b.ring) {
		panic(fmt.Errorf("%w: %v and %v", algebra.ErrUnsupportedOperand, a.ring, b.ring))
	}
}

func (a *Element[E]) IsZero() bool {
	return a.remainder.IsZero()
}

// Equals compares remainders, which are canonical. Classes of different rings
// are never equal.
func (a *Element[E]) Equals(b *Element[E]) bool {
	if !a.ring.Equals(b.ring) {
		return false
	}

	return a.remainder.Equals(b.remainder)
}

// Add returns [x + y]. The sum is reduced again since the source ring's sum of
// two remainders need not be a remainder.
func (a *Element[E]) Add(b *Element[E]) *Element[E] {
	a.mustShareRing(b)

	return a.ring.mustReduce(a.remainder.Add(b.remainder))
}

func (a *Element[E]) Neg() *Element[E] {
	return a.ring.mustReduce(a.remainder.Neg())
}

func (a *Element[E]) Sub(b *Element[E]) *Element[E] {
	return a.Add(b.Neg())
}

// Mul returns [x * y].
func (a *Element[E]) Mul(b *Element[E]) *Element[E] {
	a.mustShareRing(b)

	return a.ring.mustReduce(a.remainder.Mul(b.remainder))
}

/*
Inverse returns the class n with n * a == one.

The inverse is the Bézout coefficient of the remainder in
remainder*x + modulus*y = gcd. It exists iff the gcd is a unit of the source
ring; a gcd other than one (e.g. a non-monic constant polynomial) is scaled to
one first. The error wraps algebra.ErrNotInvertible if a is not a unit.
*/
func (a *Element[E]) Inverse() (*Element[E], error) {
	if a.remainder.IsZero() {
		return nil, fmt.Errorf("%w: zero has no inverse", algebra.ErrNotInvertible)
	}

	r := a.ring
	inverse, _, gcd, err := algebra.ExtendedEuclidean(r.source, a.remainder, r.modulus)
	if err != nil {
		return nil, err
	}

	if algebra.IsOne(r.source, gcd) {
		return r.reduce(inverse)
	}

	if u, ok := algebra.Unit(r.source, gcd); ok {
		return r.reduce(inverse.Mul(u))
	}

	return nil, fmt.Errorf("%w: representative %v and modulus %v are not relatively prime",
		algebra.ErrNotInvertible, a.remainder, r.modulus)
}

// Div returns a * b^-1, so that a.Div(b).Mul(b) equals a.
func (a *Element[E]) Div(b *Element[E]) (*Element[E], error) {
	a.mustShareRing(b)

	inv, err := b.Inverse()
	if err != nil {
		return nil, err
	}

	return a.Mul(inv), nil
}

// DivRem divides by units only; the remainder is always zero. Dividing by a
// zero divisor fails with algebra.ErrNotInvertible, by zero with
// algebra.ErrDivisionByZero.
func (a *Element[E]) DivRem(d *Element[E]) (*Element[E], *Element[E], error) {
	a.mustShareRing(d)
	if d.IsZero() {
		return nil, nil, algebra.ErrDivisionByZero
	}

	q, err := a.Div(d)
	if err != nil {
		return nil, nil, err
	}

	return q, a.ring.Zero(), nil
}
