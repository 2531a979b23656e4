package complexnum

import (
	"errors"
	"fmt"
)

// Operand is the closed set of right-hand operands accepted by Complex arithmetic.
//
// It is implemented by Complex and Scalar only.
type Operand interface {
	operand()
}

// Scalar is a plain real number operand. It is coerced to Complex(x, 0) before combining.
type Scalar float64

func (Scalar) operand() {}

func (Complex) operand() {}

// coerce turns an operand into a Complex or fails with ErrTypeMismatch naming the operand.
func coerce(operation string, operand Operand) (Complex, error) {
	switch o := operand.(type) {
	case Complex:
		return o, nil
	case Scalar:
		return Complex{real: float64(o)}, nil
	case *Complex:
		if o != nil {
			return *o, nil
		}
	}

	return Complex{}, errors.Join(
		ErrTypeMismatch,
		fmt.Errorf("invalid operand for %s: %#v", operation, operand),
	)
}
