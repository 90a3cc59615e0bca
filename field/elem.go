package field

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/jonathanmweiss/go-rings/algebra"
)

// Elem is an element of a PrimeField. The zero value Elem{} is zero in any
// field and adopts the field of the other operand.
type Elem struct {
	f     *PrimeField
	value uint64
}

var _ algebra.Element[Elem] = Elem{}

var errFieldMismatch = errors.New("elements belong to different fields")

func (e Elem) Value() uint64 {
	return e.value
}

// Field returns the field of e, or nil for the zero value.
func (e Elem) Field() *PrimeField {
	return e.f
}

func (e Elem) String() string {
	return strconv.FormatUint(e.value, 10)
}

// common returns the field shared by e and b. It panics if they differ.
func (e Elem) common(b Elem) *PrimeField {
	switch {
	case e.f == nil:
		return b.f
	case b.f == nil || e.f == b.f || e.f.prime == b.f.prime:
		return e.f
	}

	panic(fmt.Errorf("%w: %w: %v and %v", algebra.ErrUnsupportedOperand, errFieldMismatch, e.f, b.f))
}

func (e Elem) IsZero() bool {
	return e.value == 0
}

func (e Elem) Equals(b Elem) bool {
	e.common(b)

	return e.value == b.value
}

func (e Elem) Add(b Elem) Elem {
	f := e.common(b)
	if e.value == 0 {
		// used for Elem{}, or Elem{0,nilField}.
		return Elem{f: f, value: b.value}
	}

	tmp := e.value + b.value // can't overflow since adding two integers smaller than 2^63.
	if tmp >= f.prime {
		tmp -= f.prime
	}

	return Elem{f: f, value: tmp}
}

func (e Elem) Sub(b Elem) Elem {
	return e.Add(b.Neg())
}

func (e Elem) Neg() Elem {
	if e.value == 0 {
		return e
	}

	return Elem{f: e.f, value: e.f.prime - e.value}
}

// Mul returns e * b (mod field prime).
func (e Elem) Mul(b Elem) Elem {
	f := e.common(b)
	if e.value == 0 || b.value == 0 {
		return Elem{f: f}
	}

	return Elem{f: f, value: fieldMul(e.value, b.value, f.prime)}
}

// https://en.wikipedia.org/wiki/Exponentiation_by_squaring
func (e Elem) Pow(exp uint64) Elem {
	if e.f == nil {
		if exp == 0 {
			panic("zero value element has no field to raise to the power 0 in")
		}

		return e
	}

	mod := e.f.prime
	base := e.value

	x := uint64(1)
	for exp > 0 {
		if exp%2 == 1 { // If exponent is odd, multiply base with x
			x = fieldMul(x, base, mod)
		}

		base = fieldMul(base, base, mod) // Square the base
		exp /= 2                         // Halve the exponent
	}

	return Elem{f: e.f, value: x % mod}
}

// Inverse returns e^-1. Zero has no inverse.
func (e Elem) Inverse() (Elem, error) {
	// Fermat's little theorem: a^(p) = a (mod p)
	// thus:
	// a^(p-2)*a^p = a^(2p-2) = a^(p-1)^2 = 1*1=1 (mod p)
	// a^(p-2) is the inverse of a
	if e.value == 0 {
		return Elem{}, fmt.Errorf("%w: zero has no inverse", algebra.ErrNotInvertible)
	}

	return e.Pow(e.f.prime - 2), nil
}

// DivRem divides exactly: the remainder is always zero.
func (e Elem) DivRem(d Elem) (Elem, Elem, error) {
	f := e.common(d)
	if d.value == 0 {
		return Elem{}, Elem{}, algebra.ErrDivisionByZero
	}

	inv, err := d.Inverse()
	if err != nil {
		return Elem{}, Elem{}, err
	}

	return e.Mul(inv), Elem{f: f}, nil
}
