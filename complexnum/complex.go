package complexnum

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

// Complex is an immutable complex number a + bi.
//
// The zero value is the complex zero 0 + 0i.
type Complex struct {
	real      float64
	imaginary float64
}

type complexJSON struct {
	Real      float64 `json:"real"`
	Imaginary float64 `json:"imaginary"`
}

// New is a factory method for Complex.
//
// Both parts may be of any integer or float type; they are stored as float64.
func New[R, I Number](realPart R, imaginaryPart I) Complex {
	return Complex{
		real:      float64(realPart),
		imaginary: float64(imaginaryPart),
	}
}

// FromReal is a factory method for a Complex with an imaginary part of zero.
func FromReal[R Number](realPart R) Complex {
	return Complex{real: float64(realPart)}
}

// Real returns the real part of c.
func (c Complex) Real() float64 {
	return c.real
}

// Imaginary returns the imaginary part of c.
func (c Complex) Imaginary() float64 {
	return c.imaginary
}

// Add returns c + other.
func (c Complex) Add(other Operand) (Complex, error) {
	o, err := coerce(opAdd, other)
	if err != nil {
		return Complex{}, err
	}

	return Complex{
		real:      c.real + o.real,
		imaginary: c.imaginary + o.imaginary,
	}, nil
}

// Subtract returns c - other.
func (c Complex) Subtract(other Operand) (Complex, error) {
	o, err := coerce(opSubtract, other)
	if err != nil {
		return Complex{}, err
	}

	return Complex{
		real:      c.real - o.real,
		imaginary: c.imaginary - o.imaginary,
	}, nil
}

// Multiply returns c * other.
func (c Complex) Multiply(other Operand) (Complex, error) {
	o, err := coerce(opMultiply, other)
	if err != nil {
		return Complex{}, err
	}

	return c.multiply(o), nil
}

// Divide returns c / other, which equals c multiplied with the multiplicative inverse of other.
//
// Returns ErrDivisionByZero if other has a magnitude of zero and ErrOverflow if the
// quotient of finite operands is not representable as float64.
func (c Complex) Divide(other Operand) (Complex, error) {
	o, err := coerce(opDivide, other)
	if err != nil {
		return Complex{}, err
	}

	if o.Magnitude() == 0 {
		return Complex{}, errors.Join(ErrDivisionByZero, fmt.Errorf("divisor %s has zero magnitude", o))
	}

	q := c.quotient(o)
	if c.isFinite() && o.isFinite() && !q.isFinite() {
		return Complex{}, errors.Join(ErrOverflow, fmt.Errorf("%s / %s exceeds the float64 range", c, o))
	}

	return q, nil
}

// Magnitude returns the Euclidean norm sqrt(real² + imaginary²).
func (c Complex) Magnitude() float64 {
	return math.Hypot(c.real, c.imaginary)
}

// Conjugate returns real - imaginary·i.
func (c Complex) Conjugate() Complex {
	return Complex{
		real:      c.real,
		imaginary: -c.imaginary,
	}
}

// Complex128 converts c into Go's builtin complex type.
func (c Complex) Complex128() complex128 {
	return complex(c.real, c.imaginary)
}

// String renders c as "a + bi".
//
// A zero real part renders as "i{imaginary}", a zero imaginary part as "{real}"
// and the complex zero as "0".
func (c Complex) String() string {
	switch {
	case c.real == 0 && c.imaginary == 0:
		return "0"
	case c.real == 0:
		return "i" + formatPart(c.imaginary)
	case c.imaginary == 0:
		return formatPart(c.real)
	default:
		return formatPart(c.real) + " + " + formatPart(c.imaginary) + "i"
	}
}

// GoString implements fmt.GoStringer, so %#v renders "Complex(3, 4)".
func (c Complex) GoString() string {
	return "Complex(" + formatPart(c.real) + ", " + formatPart(c.imaginary) + ")"
}

// MarshalJSON renders c as {"real":..,"imaginary":..}.
func (c Complex) MarshalJSON() ([]byte, error) {
	return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(complexJSON{
		Real:      c.real,
		Imaginary: c.imaginary,
	})
}

func (c Complex) multiply(o Complex) Complex {
	return Complex{
		real:      c.real*o.real - c.imaginary*o.imaginary,
		imaginary: c.real*o.imaginary + c.imaginary*o.real,
	}
}

// quotient divides by o scaled by its larger component (Smith's method), so the
// squared magnitude of o is never formed and cannot underflow or overflow.
// o must have a non-zero magnitude.
func (c Complex) quotient(o Complex) Complex {
	if math.Abs(o.real) >= math.Abs(o.imaginary) {
		ratio := o.imaginary / o.real
		d := o.real + o.imaginary*ratio

		return Complex{
			real:      (c.real + c.imaginary*ratio) / d,
			imaginary: (c.imaginary - c.real*ratio) / d,
		}
	}

	ratio := o.real / o.imaginary
	d := o.real*ratio + o.imaginary

	return Complex{
		real:      (c.real*ratio + c.imaginary) / d,
		imaginary: (c.imaginary*ratio - c.real) / d,
	}
}

func (c Complex) isFinite() bool {
	return !math.IsInf(c.real, 0) && !math.IsNaN(c.real) &&
		!math.IsInf(c.imaginary, 0) && !math.IsNaN(c.imaginary)
}

func formatPart(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
