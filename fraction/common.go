package fraction

import (
	"errors"
)

var (
	// ErrTypeMismatch is returned when an operand is neither a Fraction nor a Whole.
	ErrTypeMismatch = errors.New("operand must be a fraction or an integer")

	// ErrDivisionByZero is returned for a zero denominator or a zero divisor.
	ErrDivisionByZero = errors.New("division by zero is undefined")

	// ErrOverflow is returned when a value or an intermediate result does not fit into int64.
	ErrOverflow = errors.New("integer overflow")
)

const (
	opAdd         = "add"
	opSubtract    = "subtract"
	opMultiply    = "multiply"
	opDivide      = "divide"
	opFloorDivide = "floor divide"
	opModulo      = "modulo"
	opCompare     = "compare"
)
