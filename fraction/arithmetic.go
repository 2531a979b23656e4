package fraction

import (
	"errors"
	"fmt"
)

// Add returns f + other, computed as (p*s + q*r) / (q*s) and renormalized.
func (f Fraction) Add(other Operand) (Fraction, error) {
	o, err := coerce(opAdd, other)
	if err != nil {
		return Fraction{}, err
	}

	return f.orZero().add(o)
}

// Subtract returns f - other, computed as f + (-1 * other).
func (f Fraction) Subtract(other Operand) (Fraction, error) {
	o, err := coerce(opSubtract, other)
	if err != nil {
		return Fraction{}, err
	}

	return f.orZero().add(o.Neg())
}

// Multiply returns f * other, computed as (p*r) / (q*s) and renormalized.
func (f Fraction) Multiply(other Operand) (Fraction, error) {
	o, err := coerce(opMultiply, other)
	if err != nil {
		return Fraction{}, err
	}

	f = f.orZero()

	numerator, err := checkedMul(f.numerator, o.numerator)
	if err != nil {
		return Fraction{}, err
	}

	denominator, err := checkedMul(f.denominator, o.denominator)
	if err != nil {
		return Fraction{}, err
	}

	return New(numerator, denominator)
}

// Divide returns f / other, computed as (p*s) / (q*r) and renormalized.
//
// Returns ErrDivisionByZero if other is zero.
func (f Fraction) Divide(other Operand) (Fraction, error) {
	o, err := coerce(opDivide, other)
	if err != nil {
		return Fraction{}, err
	}

	if o.numerator == 0 {
		return Fraction{}, divisionByZeroErr(opDivide)
	}

	f = f.orZero()

	numerator, err := checkedMul(f.numerator, o.denominator)
	if err != nil {
		return Fraction{}, err
	}

	denominator, err := checkedMul(f.denominator, o.numerator)
	if err != nil {
		return Fraction{}, err
	}

	return New(numerator, denominator)
}

// FloorDivide returns the whole-number Fraction floor((p*s) / (r*q)).
//
// Returns ErrDivisionByZero if other is zero.
func (f Fraction) FloorDivide(other Operand) (Fraction, error) {
	o, err := coerce(opFloorDivide, other)
	if err != nil {
		return Fraction{}, err
	}

	dividend, divisor, err := f.orZero().crossProducts(opFloorDivide, o)
	if err != nil {
		return Fraction{}, err
	}

	quotient, err := floorDiv(dividend, divisor)
	if err != nil {
		return Fraction{}, err
	}

	return FromInt(quotient)
}

// Modulo returns the whole-number Fraction (p*s) mod (r*q).
//
// The result carries the sign of the divisor r*q, matching FloorDivide:
// dividend == divisor*FloorDivide + Modulo.
// Returns ErrDivisionByZero if other is zero.
func (f Fraction) Modulo(other Operand) (Fraction, error) {
	o, err := coerce(opModulo, other)
	if err != nil {
		return Fraction{}, err
	}

	dividend, divisor, err := f.orZero().crossProducts(opModulo, o)
	if err != nil {
		return Fraction{}, err
	}

	return FromInt(floorMod(dividend, divisor))
}

// Power returns f raised to the integer power n.
//
// For a negative n numerator and denominator swap roles, so raising zero to a negative
// power fails with ErrDivisionByZero.
func (f Fraction) Power(n int) (Fraction, error) {
	f = f.orZero()

	top, bottom := f.numerator, f.denominator
	exp := uint64(n)

	if n < 0 {
		top, bottom = f.denominator, f.numerator
		exp = uint64(-(n + 1)) + 1
	}

	numerator, err := checkedPow(top, exp)
	if err != nil {
		return Fraction{}, err
	}

	denominator, err := checkedPow(bottom, exp)
	if err != nil {
		return Fraction{}, err
	}

	return New(numerator, denominator)
}

func (f Fraction) add(o Fraction) (Fraction, error) {
	left, err := checkedMul(o.denominator, f.numerator)
	if err != nil {
		return Fraction{}, err
	}

	right, err := checkedMul(f.denominator, o.numerator)
	if err != nil {
		return Fraction{}, err
	}

	numerator, err := checkedAdd(left, right)
	if err != nil {
		return Fraction{}, err
	}

	denominator, err := checkedMul(f.denominator, o.denominator)
	if err != nil {
		return Fraction{}, err
	}

	return New(numerator, denominator)
}

// crossProducts returns p*s and r*q for f = p/q and o = r/s.
func (f Fraction) crossProducts(operation string, o Fraction) (dividend, divisor int64, err error) {
	if o.numerator == 0 {
		return 0, 0, divisionByZeroErr(operation)
	}

	if dividend, err = checkedMul(f.numerator, o.denominator); err != nil {
		return 0, 0, err
	}

	if divisor, err = checkedMul(o.numerator, f.denominator); err != nil {
		return 0, 0, err
	}

	return dividend, divisor, nil
}

func divisionByZeroErr(operation string) error {
	return errors.Join(ErrDivisionByZero, fmt.Errorf("the divisor of %s is zero", operation))
}
