package polynomial

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathanmweiss/go-rings/algebra"
)

// Polynomial is an immutable polynomial of a Ring. The coefficients are kept
// in ascending order (e.g. [5, 2, 1] is x^2 + 2x + 5) without trailing zeros,
// except for the zero polynomial, which is stored as [0].
type Polynomial[C algebra.Element[C]] struct {
	ring  *Ring[C]
	inner []C
}

// normalize drops zero coefficients of the highest degrees, keeping at least
// one coefficient.
func normalize[C algebra.Element[C]](inner []C) []C {
	n := len(inner)
	for n > 1 && inner[n-1].IsZero() {
		n--
	}

	return inner[:n:n]
}

func (p *Polynomial[C]) Ring() *Ring[C] {
	return p.ring
}

// Degree returns len(coefficients) - 1.
//
// The zero polynomial reports degree 0, not minus infinity. Callers that need
// to tell the zero polynomial from the constants must check IsZero.
func (p *Polynomial[C]) Degree() int {
	return len(p.inner) - 1
}

// Coefficient returns the coefficient of x^i, which is zero for i outside
// [0, Degree()].
func (p *Polynomial[C]) Coefficient(i int) C {
	if i < 0 || i >= len(p.inner) {
		return p.ring.coefficients.Zero()
	}

	return p.inner[i]
}

// Coefficients returns a copy of the coefficients in ascending order.
func (p *Polynomial[C]) Coefficients() []C {
	list := make([]C, len(p.inner))
	copy(list, p.inner)

	return list
}

func (p *Polynomial[C]) LeadingCoefficient() C {
	return p.inner[len(p.inner)-1]
}

func (p *Polynomial[C]) IsZero() bool {
	return len(p.inner) == 1 && p.inner[0].IsZero()
}

// mustShareRing panics if p and q live in different rings.
func (p *Polynomial[C]) mustShareRing(q *Polynomial[C]) {
	if !p.ring.Equals(q.ring) {
		panic(fmt.Errorf("%w: %v and %v", algebra.ErrUnsupportedOperand, p.ring, q.ring))
	}
}

// Equals compares degrees, then coefficients. Polynomials of different rings
// are never equal.
func (p *Polynomial[C]) Equals(q *Polynomial[C]) bool {
	if !p.ring.Equals(q.ring) {
		return false
	}

	if p.Degree() != q.Degree() {
		return false
	}

	for i := range p.inner {
		if !p.inner[i].Equals(q.inner[i]) {
			return false
		}
	}

	return true
}

// Add pads the shorter operand with zeros and adds coefficient-wise.
func (p *Polynomial[C]) Add(q *Polynomial[C]) *Polynomial[C] {
	p.mustShareRing(q)

	n := max(len(p.inner), len(q.inner))
	out := make([]C, n)
	for i := 0; i < n; i++ {
		out[i] = p.Coefficient(i).Add(q.Coefficient(i))
	}

	return p.ring.own(out)
}

func (p *Polynomial[C]) Neg() *Polynomial[C] {
	out := make([]C, len(p.inner))
	for i, c := range p.inner {
		out[i] = c.Neg()
	}

	return p.ring.own(out)
}

func (p *Polynomial[C]) Sub(q *Polynomial[C]) *Polynomial[C] {
	return p.Add(q.Neg())
}

// Mul is the schoolbook convolution: O(n*m).
func (p *Polynomial[C]) Mul(q *Polynomial[C]) *Polynomial[C] {
	p.mustShareRing(q)

	zero := p.ring.coefficients.Zero()
	out := make([]C, p.Degree()+q.Degree()+2)
	for i := range out {
		out[i] = zero
	}

	// out[i+j] += a[i] * b[j]
	for i, a := range p.inner {
		if a.IsZero() {
			continue
		}

		for j, b := range q.inner {
			out[i+j] = out[i+j].Add(a.Mul(b))
		}
	}

	return p.ring.own(out)
}

// MulScalar returns c * p.
func (p *Polynomial[C]) MulScalar(c C) *Polynomial[C] {
	out := make([]C, len(p.inner))
	for i, a := range p.inner {
		out[i] = a.Mul(c)
	}

	return p.ring.own(out)
}

// Inverse always fails: a polynomial ring is not assumed to be a field.
func (p *Polynomial[C]) Inverse() (*Polynomial[C], error) {
	return nil, fmt.Errorf("%w: %v in %v", algebra.ErrNotInvertible, p, p.ring)
}

// Following Algorithm 2.5 (Polynomial division with remainder) in
// `Modern Computer Algebra` by Joachim von zur Gathen and Jürgen Gerhard
//
// returns q, r such that p = q*d + r.
//
// Leading coefficients are divided with the coefficient ring's DivRem. Over a
// field every step is exact and deg r < deg d. Otherwise the division stops at
// the first leading coefficient d does not divide, and r keeps that degree.
func (p *Polynomial[C]) DivRem(d *Polynomial[C]) (*Polynomial[C], *Polynomial[C], error) {
	p.mustShareRing(d)
	if d.IsZero() {
		return nil, nil, algebra.ErrDivisionByZero
	}

	zero := p.ring.coefficients.Zero()
	n, m := p.Degree(), d.Degree()
	lead := d.LeadingCoefficient()

	rem := p.Coefficients()
	qInner := make([]C, max(n-m+1, 1))
	for i := range qInner {
		qInner[i] = zero
	}

	for i := n - m; i >= 0; i-- {
		c := rem[m+i]
		if c.IsZero() {
			continue
		}

		qc, rc, err := c.DivRem(lead)
		if errors.Is(err, algebra.ErrNotInvertible) || (err == nil && !rc.IsZero()) {
			break
		}

		if err != nil {
			return nil, nil, err
		}

		qInner[i] = qc
		// rem -= qc * x^i * d
		for j, b := range d.inner {
			rem[i+j] = algebra.Sub(rem[i+j], qc.Mul(b))
		}
	}

	return p.ring.own(qInner), p.ring.own(rem), nil
}

// divLinear divides by (x - a), assuming the division is exact. This is
// quicker than the long division method since the divisor is monic of degree 1.
func (p *Polynomial[C]) divLinear(a C) *Polynomial[C] {
	if len(p.inner) == 1 {
		return p.ring.Zero()
	}

	m := p.Coefficients()
	qinner := make([]C, len(m)-1)

	for i := len(m) - 1; i > 0; i-- {
		qinner[i-1] = m[i]
		m[i-1] = m[i-1].Add(m[i].Mul(a))
	}

	return p.ring.own(qinner)
}

// Evaluate returns p(x) using Horner's rule.
func (p *Polynomial[C]) Evaluate(x C) C {
	result := p.ring.coefficients.Zero()
	for i := len(p.inner) - 1; i >= 0; i-- {
		result = p.inner[i].Add(x.Mul(result))
	}

	return result
}

// String renders p as (c0 + c1*x + c2*x^2 + ...).
func (p *Polynomial[C]) String() string {
	bldr := strings.Builder{}
	bldr.WriteString("(")

	for i, c := range p.inner {
		if i > 0 {
			bldr.WriteString(" + ")
		}

		bldr.WriteString(fmt.Sprint(c))

		switch i {
		case 0:
		case 1:
			bldr.WriteString("*x")
		default:
			bldr.WriteString("*x^")
			bldr.WriteString(strconv.Itoa(i))
		}
	}

	bldr.WriteString(")")

	return bldr.String()
}
