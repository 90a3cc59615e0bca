package quotient

import (
	"github.com/jonathanmweiss/go-rings/algebra"
)

func (a *Element[E]) coerce(other any) (*Element[E], error) {
	return a.ring.Element(other)
}

// binary runs op through algebra.Apply. Residue classes of another ring share
// the Go type but are not handled here.
func (a *Element[E]) binary(op algebra.Op, other any, fn func(b *Element[E]) (any, error)) (any, error) {
	return algebra.Apply(op, a, other, a.coerce, func(b *Element[E]) (any, error) {
		if !a.ring.Equals(b.ring) {
			return nil, algebra.ErrNotImplemented
		}

		return fn(b)
	})
}

// AddAny returns a + other. other may be a residue class of the same ring,
// anything the ring's Element accepts (e.g. an unreduced source ring element
// or a machine integer), or a Reflector that can take a as its left operand.
func (a *Element[E]) AddAny(other any) (any, error) {
	return a.binary(algebra.OpAdd, other, func(b *Element[E]) (any, error) {
		return a.Add(b), nil
	})
}

func (a *Element[E]) MulAny(other any) (any, error) {
	return a.binary(algebra.OpMul, other, func(b *Element[E]) (any, error) {
		return a.Mul(b), nil
	})
}

func (a *Element[E]) EqualsAny(other any) (bool, error) {
	res, err := a.binary(algebra.OpEquals, other, func(b *Element[E]) (any, error) {
		return a.Equals(b), nil
	})
	if err != nil {
		return false, err
	}

	return res.(bool), nil
}

func (a *Element[E]) DivAny(other any) (any, error) {
	return a.binary(algebra.OpDiv, other, func(b *Element[E]) (any, error) {
		return a.Div(b)
	})
}

// Reflected implements algebra.Reflector: it computes `left op a`.
func (a *Element[E]) Reflected(op algebra.Op, left any) (any, error) {
	return algebra.Dispatch(left, a.coerce, func(l *Element[E]) (any, error) {
		if !a.ring.Equals(l.ring) {
			return nil, algebra.ErrNotImplemented
		}

		switch op {
		case algebra.OpAdd:
			return l.Add(a), nil
		case algebra.OpMul:
			return l.Mul(a), nil
		case algebra.OpEquals:
			return l.Equals(a), nil
		case algebra.OpDiv:
			return l.Div(a)
		}

		return nil, algebra.ErrNotImplemented
	})
}
