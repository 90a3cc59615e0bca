package algebra

import (
	"errors"
	"fmt"
)

// Op identifies a binary operation for mixed-operand dispatch.
type Op int

const (
	OpAdd Op = iota
	OpMul
	OpEquals
	OpDiv
)

func (o Op) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpMul:
		return "mul"
	case OpEquals:
		return "equals"
	case OpDiv:
		return "div"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// Reflector is implemented by elements that can act as the right operand of
// an operation whose left operand could not handle them.
type Reflector interface {
	// Reflected computes `left op receiver`. It returns ErrNotImplemented if
	// left can not be interpreted by the receiver either.
	Reflected(op Op, left any) (any, error)
}

// Dispatch applies op to other after bringing it into E:
//  1. other is already an E: apply directly.
//  2. coerce(other) succeeds: apply to the coerced value.
//  3. otherwise return ErrNotImplemented, so the caller may try the
//     reflected operation on other.
func Dispatch[E, R any](other any, coerce func(any) (E, error), op func(E) (R, error)) (R, error) {
	if e, ok := other.(E); ok {
		return op(e)
	}

	e, err := coerce(other)
	if err != nil {
		var zero R
		return zero, ErrNotImplemented
	}

	return op(e)
}

// Apply runs the full protocol for `self op other`: Dispatch on the left
// side, then the reflected operation on other if it is a Reflector.
// If neither side can handle the pair the error wraps ErrUnsupportedOperand.
func Apply[E any](op Op, self, other any, coerce func(any) (E, error), fn func(E) (any, error)) (any, error) {
	res, err := Dispatch(other, coerce, fn)
	if !errors.Is(err, ErrNotImplemented) {
		return res, err
	}

	if r, ok := other.(Reflector); ok {
		res, err = r.Reflected(op, self)
		if !errors.Is(err, ErrNotImplemented) {
			return res, err
		}
	}

	return nil, fmt.Errorf("%w: %v between %T and %T", ErrUnsupportedOperand, op, self, other)
}
