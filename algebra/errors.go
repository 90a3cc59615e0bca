package algebra

import "errors"

var (
	// ErrCoercion signifies that a value could not be interpreted as an
	// element of the expected ring.
	ErrCoercion = errors.New("value cannot be coerced into ring")

	// ErrInvalidArity signifies that a polynomial was requested without any
	// coefficients. The constant term must always be given, even if zero.
	ErrInvalidArity = errors.New("at least one coefficient is required")

	// ErrNotInvertible signifies that an element has no multiplicative
	// inverse.
	ErrNotInvertible = errors.New("element is not invertible")

	// ErrUnsupportedOperand signifies that neither operand of a binary
	// operation could handle the other.
	ErrUnsupportedOperand = errors.New("unsupported operand combination")

	// ErrDivisionByZero signifies a division with remainder by zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrNotImplemented is returned by Dispatch when an operand can not be
	// handled by the receiving side. Apply turns it into either a reflected
	// call or ErrUnsupportedOperand.
	ErrNotImplemented = errors.New("operation not implemented for operand")
)
