package fraction

import (
	"errors"
	"fmt"
)

// Operand is the closed set of right-hand operands accepted by Fraction
// arithmetic and comparisons.
//
// It is implemented by Fraction and Whole only.
type Operand interface {
	operand()
}

// Whole is an integer operand. It is coerced to Whole/1 before combining.
type Whole int64

func (Whole) operand() {}

func (Fraction) operand() {}

// coerce turns an operand into a Fraction or fails with ErrTypeMismatch naming the operand.
func coerce(operation string, operand Operand) (Fraction, error) {
	switch o := operand.(type) {
	case Fraction:
		return o.orZero(), nil
	case Whole:
		return FromInt(int64(o))
	case *Fraction:
		if o != nil {
			return o.orZero(), nil
		}
	}

	return Fraction{}, errors.Join(
		ErrTypeMismatch,
		fmt.Errorf("invalid operand for %s: %#v", operation, operand),
	)
}
