// Package polynomial implements dense univariate polynomial rings over any
// coefficient ring implementing algebra.Ring.
package polynomial

import (
	"errors"
	"fmt"

	"github.com/jonathanmweiss/go-rings/algebra"
)

// Ring is the ring of polynomials in one indeterminate x with coefficients
// from a fixed coefficient ring.
type Ring[C algebra.Element[C]] struct {
	coefficients algebra.Ring[C]
}

// NewRing returns the polynomial ring over coefficients.
func NewRing[C algebra.Element[C]](coefficients algebra.Ring[C]) *Ring[C] {
	return &Ring[C]{coefficients: coefficients}
}

// Coefficients returns the coefficient ring.
func (r *Ring[C]) Coefficients() algebra.Ring[C] {
	return r.coefficients
}

func (r *Ring[C]) String() string {
	return r.coefficients.String() + "[x]"
}

/*
New creates a polynomial from coefficients ordered from lowest to highest
degree, e.g. New(5, 2, 1) is x^2 + 2x + 5. Every coefficient is fed to the
coefficient ring's Element. The constant term must be given, even if zero.
*/
func (r *Ring[C]) New(coefficients ...any) (*Polynomial[C], error) {
	if len(coefficients) == 0 {
		return nil, algebra.ErrInvalidArity
	}

	inner := make([]C, len(coefficients))
	for i, c := range coefficients {
		v, err := r.coefficients.Element(c)
		if err != nil {
			return nil, fmt.Errorf("coefficient %d: %w", i, err)
		}

		inner[i] = v
	}

	return r.own(inner), nil
}

// MustNew is New, panicking on error.
func (r *Ring[C]) MustNew(coefficients ...any) *Polynomial[C] {
	p, err := r.New(coefficients...)
	if err != nil {
		panic(err)
	}

	return p
}

// FromCoefficients creates a polynomial from already typed coefficients in
// ascending order. The slice is copied.
func (r *Ring[C]) FromCoefficients(coefficients []C) (*Polynomial[C], error) {
	if len(coefficients) == 0 {
		return nil, algebra.ErrInvalidArity
	}

	inner := make([]C, len(coefficients))
	copy(inner, coefficients)

	return r.own(inner), nil
}

// own wraps inner without copying; callers must not keep a reference to it.
func (r *Ring[C]) own(inner []C) *Polynomial[C] {
	return &Polynomial[C]{
		ring:  r,
		inner: normalize(inner),
	}
}

func (r *Ring[C]) constant(c C) *Polynomial[C] {
	return &Polynomial[C]{ring: r, inner: []C{c}}
}

func (r *Ring[C]) Zero() *Polynomial[C] {
	return r.constant(r.coefficients.Zero())
}

func (r *Ring[C]) One() *Polynomial[C] {
	return r.constant(r.coefficients.One())
}

// X returns the indeterminate.
func (r *Ring[C]) X() *Polynomial[C] {
	return &Polynomial[C]{ring: r, inner: []C{r.coefficients.Zero(), r.coefficients.One()}}
}

// Equals reports whether r and s are the same ring.
func (r *Ring[C]) Equals(s *Ring[C]) bool {
	return r == s || algebra.SameRing[C](r.coefficients, s.coefficients)
}

/*
Element interprets v as a polynomial of r. Accepted are polynomials over the
same coefficient ring, coefficient slices in ascending order, and any value the
coefficient ring accepts, which becomes a constant polynomial.
*/
func (r *Ring[C]) Element(v any) (*Polynomial[C], error) {
	switch x := v.(type) {
	case *Polynomial[C]:
		if x == nil {
			break
		}

		if r.Equals(x.ring) {
			return &Polynomial[C]{ring: r, inner: x.inner}, nil
		}

		return nil, fmt.Errorf("%w: polynomial in %v is not in %v", algebra.ErrCoercion, x.ring, r)
	case []C:
		if len(x) == 0 {
			return nil, fmt.Errorf("%w: %w", algebra.ErrCoercion, algebra.ErrInvalidArity)
		}

		inner := make([]C, len(x))
		for i, c := range x {
			v, err := r.coefficients.Element(c)
			if err != nil {
				return nil, fmt.Errorf("coefficient %d: %w", i, err)
			}

			inner[i] = v
		}

		return r.own(inner), nil
	}

	c, err := r.coefficients.Element(v)
	if err != nil {
		return nil, err
	}

	return r.constant(c), nil
}

// FromRoots computes \prod (x - r_i). No roots give the constant one.
func (r *Ring[C]) FromRoots(roots ...C) *Polynomial[C] {
	n := len(roots)
	zero := r.coefficients.Zero()

	coeffs := make([]C, n+1)
	coeffs[0] = r.coefficients.One()
	for i := 1; i <= n; i++ {
		coeffs[i] = zero
	}

	deg := 0
	for _, root := range roots {
		neg := root.Neg()
		coeffs[deg+1] = zero
		for j := deg; j >= 0; j-- {
			// new[j+1] += old[j] * 1
			coeffs[j+1] = coeffs[j+1].Add(coeffs[j])
			// new[j]   += old[j] * (-r)
			coeffs[j] = coeffs[j].Mul(neg)
		}
		deg++
	}

	return r.own(coeffs)
}

var (
	errPointsSizeMismatch = errors.New("points size mismatch")
	errNonUniqueXs        = errors.New("non-unique x values")
)

// Interpolate returns the unique polynomial of degree < len(xs) through the
// points (xs[i], ys[i]).
//
// Interpolation code follows the Lagrange interpolation method
// https://en.wikipedia.org/wiki/Lagrange_polynomial
// 1. Create m(x) = \prod_{0\le i \le n} (x - x_i)
// 2. For each i, create q_i(x) = m(x) / (x - x_i) by synthetic division.
// 3. then from each q_i create l_i by multiplying q_i by the inverse of q_i(x_i).
// 4. Finally, sum all l_i* y_i to get the polynomial.
//
// Every q_i(x_i) must be a unit of the coefficient ring; otherwise the error
// wraps algebra.ErrNotInvertible.
func (r *Ring[C]) Interpolate(xs, ys []C) (*Polynomial[C], error) {
	if err := validateInterpolationPoints(xs, ys); err != nil {
		return nil, err
	}

	m := r.FromRoots(xs...)

	sum := r.Zero()
	for i, xi := range xs {
		qi := m.divLinear(xi)

		s := qi.Evaluate(xi)
		sinv, ok := algebra.Unit(r.coefficients, s)
		if !ok {
			return nil, fmt.Errorf("%w: denominator %v at x=%v", algebra.ErrNotInvertible, s, xi)
		}

		sum = sum.Add(qi.MulScalar(sinv.Mul(ys[i])))
	}

	return sum, nil
}

func validateInterpolationPoints[C algebra.Element[C]](xs, ys []C) error {
	if len(xs) != len(ys) || len(xs) == 0 {
		return errPointsSizeMismatch
	}

	for i := range xs {
		for j := i + 1; j < len(xs); j++ {
			if xs[i].Equals(xs[j]) {
				return errNonUniqueXs
			}
		}
	}

	return nil
}
