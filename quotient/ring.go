/*
Package quotient implements rings of residue classes R/(m) of a source ring R
modulo a fixed element m.

	zn, _ := quotient.New[integers.Int](integers.Ring{}, integers.FromInt(4))
	x := zn.MustElement(1)
	y := zn.MustElement(3)
	x.Add(y).IsZero() // true: 4 == 0 modulo 4

The source ring can be any algebra.Ring, including polynomial rings: the ring
GF(2)[x]/(x^3 + x + 1) is the field with 8 elements.
*/
package quotient

import (
	"fmt"

	"github.com/jonathanmweiss/go-rings/algebra"
)

// Ring is the quotient ring source/(modulus). Two Ring values with the same
// source ring and equal moduli are the same ring, whether or not they are the
// same pointer.
type Ring[E algebra.Element[E]] struct {
	source  algebra.Ring[E]
	modulus E
}

// New returns source/(modulus). The modulus must not be zero.
func New[E algebra.Element[E]](source algebra.Ring[E], modulus E) (*Ring[E], error) {
	if modulus.IsZero() {
		return nil, fmt.Errorf("%w: quotient of %v by zero", algebra.ErrDivisionByZero, source)
	}

	return &Ring[E]{
		source:  source,
		modulus: modulus,
	}, nil
}

// Modulus returns the modulus, an element of the source ring.
func (r *Ring[E]) Modulus() E {
	return r.modulus
}

// Source returns the ring the residue classes are taken in.
func (r *Ring[E]) Source() algebra.Ring[E] {
	return r.source
}

func (r *Ring[E]) String() string {
	return fmt.Sprintf("%v/(%v)", r.source, r.modulus)
}

// Equals reports whether r and s have the same source ring and modulus.
func (r *Ring[E]) Equals(s *Ring[E]) bool {
	if r == s {
		return true
	}

	return algebra.SameRing(r.source, s.source) && r.modulus.Equals(s.modulus)
}

func (r *Ring[E]) reduce(x E) (*Element[E], error) {
	_, rem, err := x.DivRem(r.modulus)
	if err != nil {
		return nil, fmt.Errorf("reducing %v modulo %v: %w", x, r.modulus, err)
	}

	return &Element[E]{ring: r, remainder: rem}, nil
}

// mustReduce is reduce for values produced by source ring arithmetic, which
// the modulus always divides with remainder.
func (r *Ring[E]) mustReduce(x E) *Element[E] {
	e, err := r.reduce(x)
	if err != nil {
		panic(err)
	}

	return e
}

/*
Element returns the residue class of v.

  - an element of the same quotient ring is copied.
  - anything else, source ring elements included, is handed to the source
    ring's Element first, then reduced. Values of the same Go type from
    another ring (e.g. GF(3)[x] for a quotient of GF(2)[x]) fail there with
    algebra.ErrCoercion.
*/
func (r *Ring[E]) Element(v any) (*Element[E], error) {
	switch x := v.(type) {
	case *Element[E]:
		if x == nil {
			break
		}

		if !r.Equals(x.ring) {
			return nil, fmt.Errorf("%w: residue class of %v is not in %v", algebra.ErrCoercion, x.ring, r)
		}

		return &Element[E]{ring: r, remainder: x.remainder}, nil
	}

	x, err := r.source.Element(v)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", r, err)
	}

	return r.reduce(x)
}

// MustElement is Element, panicking on error.
func (r *Ring[E]) MustElement(v any) *Element[E] {
	e, err := r.Element(v)
	if err != nil {
		panic(err)
	}

	return e
}

// Zero returns the residue class of the source ring's zero.
func (r *Ring[E]) Zero() *Element[E] {
	return r.mustReduce(r.source.Zero())
}

// One returns the residue class of the source ring's one.
func (r *Ring[E]) One() *Element[E] {
	return r.mustReduce(r.source.One())
}
