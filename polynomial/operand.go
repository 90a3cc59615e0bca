package polynomial

import (
	"github.com/jonathanmweiss/go-rings/algebra"
)

// coerce brings other into p's ring. Polynomials of other rings are rejected
// even though they share the Go type.
func (p *Polynomial[C]) coerce(other any) (*Polynomial[C], error) {
	return p.ring.Element(other)
}

func (p *Polynomial[C]) binary(op algebra.Op, other any, fn func(q *Polynomial[C]) (any, error)) (any, error) {
	return algebra.Apply(op, p, other, p.coerce, func(q *Polynomial[C]) (any, error) {
		if !p.ring.Equals(q.ring) {
			return nil, algebra.ErrNotImplemented
		}

		return fn(q)
	})
}

// AddAny returns p + other for any operand p's ring or other's ring can
// interpret.
func (p *Polynomial[C]) AddAny(other any) (any, error) {
	return p.binary(algebra.OpAdd, other, func(q *Polynomial[C]) (any, error) {
		return p.Add(q), nil
	})
}

func (p *Polynomial[C]) MulAny(other any) (any, error) {
	return p.binary(algebra.OpMul, other, func(q *Polynomial[C]) (any, error) {
		return p.Mul(q), nil
	})
}

func (p *Polynomial[C]) EqualsAny(other any) (bool, error) {
	res, err := p.binary(algebra.OpEquals, other, func(q *Polynomial[C]) (any, error) {
		return p.Equals(q), nil
	})
	if err != nil {
		return false, err
	}

	return res.(bool), nil
}

// DivAny returns p * other^-1, which fails for every divisor once it has been
// interpreted as a polynomial.
func (p *Polynomial[C]) DivAny(other any) (any, error) {
	return p.binary(algebra.OpDiv, other, func(q *Polynomial[C]) (any, error) {
		inv, err := q.Inverse()
		if err != nil {
			return nil, err
		}

		return p.Mul(inv), nil
	})
}

// Reflected implements algebra.Reflector.
func (p *Polynomial[C]) Reflected(op algebra.Op, left any) (any, error) {
	return algebra.Dispatch(left, p.coerce, func(l *Polynomial[C]) (any, error) {
		if !p.ring.Equals(l.ring) {
			return nil, algebra.ErrNotImplemented
		}

		switch op {
		case algebra.OpAdd:
			return l.Add(p), nil
		case algebra.OpMul:
			return l.Mul(p), nil
		case algebra.OpEquals:
			return l.Equals(p), nil
		case algebra.OpDiv:
			inv, err := p.Inverse()
			if err != nil {
				return nil, err
			}

			return l.Mul(inv), nil
		}

		return nil, algebra.ErrNotImplemented
	})
}
