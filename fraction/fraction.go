package fraction

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

// Fraction is an immutable rational number in lowest terms.
//
// Invariants, established by New:
//   - the denominator is positive
//   - numerator and denominator are coprime, so zero is stored as 0/1
//
// The zero value behaves like Zero.
type Fraction struct {
	numerator   int64
	denominator int64
}

type fractionJSON struct {
	Numerator   int64 `json:"numerator"`
	Denominator int64 `json:"denominator"`
}

// Zero and One are the normalized fractions 0/1 and 1/1.
var (
	Zero = Fraction{numerator: 0, denominator: 1}
	One  = Fraction{numerator: 1, denominator: 1}
)

// New is a factory method for Fraction.
//
// It normalizes the input: the sign is folded into the numerator and both parts are
// divided by their greatest common divisor.
// Returns ErrDivisionByZero if the denominator is zero and ErrOverflow if either part
// is math.MinInt64, whose absolute value does not fit into int64.
func New(numerator, denominator int64) (Fraction, error) {
	if denominator == 0 {
		return Fraction{}, errors.Join(ErrDivisionByZero, errors.New("the denominator must not be zero"))
	}

	if numerator == math.MinInt64 || denominator == math.MinInt64 {
		return Fraction{}, errors.Join(ErrOverflow, fmt.Errorf("fraction %d/%d is out of range", numerator, denominator))
	}

	n, d := abs(numerator), abs(denominator)
	factor := gcd(n, d)

	n /= factor
	if (numerator < 0) != (denominator < 0) {
		n = -n
	}

	return Fraction{
		numerator:   n,
		denominator: d / factor,
	}, nil
}

// FromInt is a factory method for the whole-number Fraction n/1.
func FromInt(n int64) (Fraction, error) {
	return New(n, 1)
}

// Numerator returns the signed numerator in lowest terms.
func (f Fraction) Numerator() int64 {
	return f.orZero().numerator
}

// Denominator returns the denominator in lowest terms, which is always positive.
func (f Fraction) Denominator() int64 {
	return f.orZero().denominator
}

// IsZero reports whether f equals zero.
func (f Fraction) IsZero() bool {
	return f.numerator == 0
}

// Neg returns -f.
func (f Fraction) Neg() Fraction {
	f = f.orZero()

	return Fraction{numerator: -f.numerator, denominator: f.denominator}
}

// Abs returns |f|.
func (f Fraction) Abs() Fraction {
	f = f.orZero()

	return Fraction{numerator: abs(f.numerator), denominator: f.denominator}
}

// Pos returns f unchanged.
func (f Fraction) Pos() Fraction {
	return f.orZero()
}

// Float64 returns numerator / denominator as a real division.
func (f Fraction) Float64() float64 {
	f = f.orZero()

	return float64(f.numerator) / float64(f.denominator)
}

// Int64 returns f truncated toward zero.
func (f Fraction) Int64() int64 {
	f = f.orZero()

	return f.numerator / f.denominator
}

// Complex128 returns f as a complex number with an imaginary part of zero.
func (f Fraction) Complex128() complex128 {
	return complex(f.Float64(), 0)
}

// String renders whole numbers as "{numerator}", zero as "0" and everything else as
// "{numerator} / {denominator}".
func (f Fraction) String() string {
	if f.denominator == 1 {
		return strconv.FormatInt(f.numerator, 10)
	}

	if f.numerator == 0 {
		return "0"
	}

	return strconv.FormatInt(f.numerator, 10) + " / " + strconv.FormatInt(f.denominator, 10)
}

// GoString implements fmt.GoStringer, so %#v renders "Fraction(3, 4)".
func (f Fraction) GoString() string {
	f = f.orZero()

	return "Fraction(" + strconv.FormatInt(f.numerator, 10) + ", " + strconv.FormatInt(f.denominator, 10) + ")"
}

// MarshalJSON renders f as {"numerator":..,"denominator":..}.
func (f Fraction) MarshalJSON() ([]byte, error) {
	f = f.orZero()

	return jsoniter.ConfigFastest.Marshal(fractionJSON{
		Numerator:   f.numerator,
		Denominator: f.denominator,
	})
}

// orZero maps the zero value Fraction{} onto the normalized Zero.
func (f Fraction) orZero() Fraction {
	if f.denominator == 0 {
		return Zero
	}

	return f
}
