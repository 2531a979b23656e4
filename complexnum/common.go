package complexnum

import (
	"errors"
)

var (
	// ErrTypeMismatch is returned when an operand is neither a Complex nor a Scalar.
	ErrTypeMismatch = errors.New("operand must be a complex, an integer or a float")

	// ErrDivisionByZero is returned when dividing by a complex number with zero magnitude.
	ErrDivisionByZero = errors.New("division by zero is undefined")

	// ErrOverflow is returned when a quotient of finite operands exceeds the float64 range.
	ErrOverflow = errors.New("result exceeds the float64 range")
)

const (
	opAdd      = "add"
	opSubtract = "subtract"
	opMultiply = "multiply"
	opDivide   = "divide"
)
