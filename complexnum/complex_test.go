package complexnum_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/abstract-data-types-go/complexnum"
)

const tolerance = 1e-9

func assertComplexInDelta(t *testing.T, expected, actual complexnum.Complex) {
	t.Helper()

	assert.InDelta(t, expected.Real(), actual.Real(), tolerance, "real part")
	assert.InDelta(t, expected.Imaginary(), actual.Imaginary(), tolerance, "imaginary part")
}

func assertComplexInEpsilon(t *testing.T, expected, actual complexnum.Complex) {
	t.Helper()

	assertPartInEpsilon := func(expected, actual float64, part string) {
		if expected == 0 {
			assert.InDelta(t, expected, actual, tolerance, part)
			return
		}

		assert.InEpsilon(t, expected, actual, tolerance, part)
	}

	assertPartInEpsilon(expected.Real(), actual.Real(), "real part")
	assertPartInEpsilon(expected.Imaginary(), actual.Imaginary(), "imaginary part")
}

func Test_New_AcceptsAllNumberKinds(t *testing.T) {
	assert.Equal(t, complexnum.New(3.0, 4.0), complexnum.New(3, 4))
	assert.Equal(t, complexnum.New(3.0, 4.0), complexnum.New(int8(3), uint64(4)))
	assert.Equal(t, complexnum.New(1.5, 0), complexnum.FromReal(float32(1.5)))
	assert.Equal(t, complexnum.New(0, 0), complexnum.Complex{})
}

//nolint:funlen
func Test_Complex_Arithmetic(t *testing.T) {
	a := complexnum.New(3, 4)
	b := complexnum.New(1, -2)

	tests := []struct {
		name     string
		op       func(complexnum.Complex, complexnum.Operand) (complexnum.Complex, error)
		left     complexnum.Complex
		right    complexnum.Operand
		expected complexnum.Complex
	}{
		{
			name:     "add complex",
			op:       complexnum.Complex.Add,
			left:     a,
			right:    b,
			expected: complexnum.New(4, 2),
		},
		{
			name:     "add scalar",
			op:       complexnum.Complex.Add,
			left:     a,
			right:    complexnum.Scalar(2.5),
			expected: complexnum.New(5.5, 4),
		},
		{
			name:     "subtract complex",
			op:       complexnum.Complex.Subtract,
			left:     a,
			right:    b,
			expected: complexnum.New(2, 6),
		},
		{
			name:     "subtract scalar",
			op:       complexnum.Complex.Subtract,
			left:     a,
			right:    complexnum.Scalar(-1),
			expected: complexnum.New(4, 4),
		},
		{
			name:     "multiply complex",
			op:       complexnum.Complex.Multiply,
			left:     a,
			right:    b,
			expected: complexnum.New(11, -2),
		},
		{
			name:     "multiply scalar",
			op:       complexnum.Complex.Multiply,
			left:     a,
			right:    complexnum.Scalar(2),
			expected: complexnum.New(6, 8),
		},
		{
			name:     "multiply i by i",
			op:       complexnum.Complex.Multiply,
			left:     complexnum.New(0, 1),
			right:    complexnum.New(0, 1),
			expected: complexnum.New(-1, 0),
		},
		{
			name:     "divide complex",
			op:       complexnum.Complex.Divide,
			left:     complexnum.New(11, -2),
			right:    b,
			expected: a,
		},
		{
			name:     "divide scalar",
			op:       complexnum.Complex.Divide,
			left:     a,
			right:    complexnum.Scalar(2),
			expected: complexnum.New(1.5, 2),
		},
		{
			name:     "divide by pointer to complex",
			op:       complexnum.Complex.Divide,
			left:     a,
			right:    &a,
			expected: complexnum.New(1, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := tt.op(tt.left, tt.right)
			require.NoError(t, err)
			assertComplexInDelta(t, tt.expected, result)
		})
	}
}

func Test_Complex_Arithmetic_IsCommutative(t *testing.T) {
	values := []complexnum.Complex{
		complexnum.New(3, 4),
		complexnum.New(-1.5, 2.25),
		complexnum.New(0, -7),
		complexnum.New(1e3, 1e-3),
	}

	for _, a := range values {
		for _, b := range values {
			ab, err := a.Add(b)
			require.NoError(t, err)
			ba, err := b.Add(a)
			require.NoError(t, err)
			assert.Equal(t, ab, ba)

			ab, err = a.Multiply(b)
			require.NoError(t, err)
			ba, err = b.Multiply(a)
			require.NoError(t, err)
			assert.Equal(t, ab, ba)
		}
	}
}

func Test_Complex_Divide_IsInverseOfMultiply(t *testing.T) {
	values := []complexnum.Complex{
		complexnum.New(3, 4),
		complexnum.New(-1.5, 2.25),
		complexnum.New(0, -7),
		complexnum.New(5, 0),
		complexnum.New(0.1, 0.2),
	}

	for _, a := range values {
		for _, b := range values {
			t.Run(fmt.Sprintf("(%s)/(%s)", a, b), func(t *testing.T) {
				quotient, err := a.Divide(b)
				require.NoError(t, err)

				product, err := quotient.Multiply(b)
				require.NoError(t, err)

				assertComplexInDelta(t, a, product)
			})
		}
	}
}

func Test_Complex_Divide_ExtremeMagnitudes(t *testing.T) {
	tiny := complexnum.New(1e-170, 1e-170)
	huge := complexnum.New(1e200, 1e200)

	tests := []struct {
		name     string
		dividend complexnum.Complex
		divisor  complexnum.Complex
		expected complexnum.Complex
	}{
		{
			name:     "one by a tiny real",
			dividend: complexnum.New(1, 0),
			divisor:  complexnum.New(1e-200, 0),
			expected: complexnum.New(1e200, 0),
		},
		{
			name:     "tiny by itself",
			dividend: tiny,
			divisor:  tiny,
			expected: complexnum.New(1, 0),
		},
		{
			name:     "huge by itself",
			dividend: huge,
			divisor:  huge,
			expected: complexnum.New(1, 0),
		},
		{
			name:     "tiny by a tiny imaginary",
			dividend: complexnum.New(1e-300, 2e-300),
			divisor:  complexnum.New(0, 1e-300),
			expected: complexnum.New(2, -1),
		},
		{
			name:     "huge real by huge",
			dividend: complexnum.New(1e300, 0),
			divisor:  complexnum.New(1e300, 1e300),
			expected: complexnum.New(0.5, -0.5),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quotient, err := tt.dividend.Divide(tt.divisor)
			require.NoError(t, err)
			assertComplexInEpsilon(t, tt.expected, quotient)

			product, err := quotient.Multiply(tt.divisor)
			require.NoError(t, err)
			assertComplexInEpsilon(t, tt.dividend, product)
		})
	}
}

func Test_Complex_Divide_Overflow(t *testing.T) {
	tests := []struct {
		name     string
		dividend complexnum.Complex
		divisor  complexnum.Operand
	}{
		{name: "huge by tiny", dividend: complexnum.New(1e300, 0), divisor: complexnum.New(1e-300, 0)},
		{name: "max float by half", dividend: complexnum.New(math.MaxFloat64, math.MaxFloat64), divisor: complexnum.Scalar(0.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.dividend.Divide(tt.divisor)
			assert.ErrorIs(t, err, complexnum.ErrOverflow)
			assert.NotErrorIs(t, err, complexnum.ErrDivisionByZero)
		})
	}
}

func Test_Complex_Divide_ByZero(t *testing.T) {
	a := complexnum.New(3, 4)

	tests := []struct {
		name    string
		divisor complexnum.Operand
	}{
		{name: "complex zero", divisor: complexnum.New(0, 0)},
		{name: "zero value complex", divisor: complexnum.Complex{}},
		{name: "negative zero parts", divisor: complexnum.New(math.Copysign(0, -1), math.Copysign(0, -1))},
		{name: "scalar zero", divisor: complexnum.Scalar(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := a.Divide(tt.divisor)
			assert.ErrorIs(t, err, complexnum.ErrDivisionByZero)
			assert.NotErrorIs(t, err, complexnum.ErrTypeMismatch)
		})
	}
}

func Test_Complex_Arithmetic_RejectsInvalidOperands(t *testing.T) {
	a := complexnum.New(3, 4)
	var nilComplex *complexnum.Complex

	tests := []struct {
		name    string
		op      func(complexnum.Operand) (complexnum.Complex, error)
		operand complexnum.Operand
		errText string
	}{
		{name: "add nil", op: a.Add, operand: nil, errText: "invalid operand for add"},
		{name: "subtract nil", op: a.Subtract, operand: nil, errText: "invalid operand for subtract"},
		{name: "multiply nil pointer", op: a.Multiply, operand: nilComplex, errText: "invalid operand for multiply"},
		{name: "divide nil", op: a.Divide, operand: nil, errText: "invalid operand for divide"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.op(tt.operand)
			assert.ErrorIs(t, err, complexnum.ErrTypeMismatch)
			assert.ErrorContains(t, err, tt.errText)
		})
	}
}

func Test_Complex_Magnitude(t *testing.T) {
	assert.Equal(t, 5.0, complexnum.New(3, 4).Magnitude())
	assert.Equal(t, 5.0, complexnum.New(-3, -4).Magnitude())
	assert.Equal(t, 0.0, complexnum.Complex{}.Magnitude())
	assert.InDelta(t, math.Sqrt2, complexnum.New(1, 1).Magnitude(), tolerance)
}

func Test_Complex_Conjugate(t *testing.T) {
	c := complexnum.New(3, 4)

	assert.Equal(t, complexnum.New(3, -4), c.Conjugate())
	assert.Equal(t, c, c.Conjugate().Conjugate())
	assert.Equal(t, complexnum.New(3, 4), c, "receiver must not be mutated")

	product, err := c.Multiply(c.Conjugate())
	require.NoError(t, err)
	assert.Equal(t, complexnum.New(25, 0), product)
}

func Test_Complex_Complex128(t *testing.T) {
	assert.Equal(t, complex(3, -4), complexnum.New(3, -4).Complex128())
}

func Test_Complex_String(t *testing.T) {
	tests := []struct {
		name     string
		value    complexnum.Complex
		expected string
	}{
		{name: "both parts", value: complexnum.New(3, 4), expected: "3 + 4i"},
		{name: "negative imaginary", value: complexnum.New(1, -2), expected: "1 + -2i"},
		{name: "fractional parts", value: complexnum.New(1.5, 0.25), expected: "1.5 + 0.25i"},
		{name: "real only", value: complexnum.New(7, 0), expected: "7"},
		{name: "imaginary only", value: complexnum.New(0, 4), expected: "i4"},
		{name: "negative imaginary only", value: complexnum.New(0, -2.5), expected: "i-2.5"},
		{name: "zero", value: complexnum.New(0, 0), expected: "0"},
		{name: "zero value", value: complexnum.Complex{}, expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.value.String())
		})
	}
}

func Test_Complex_GoString(t *testing.T) {
	assert.Equal(t, "Complex(3, 4)", fmt.Sprintf("%#v", complexnum.New(3, 4)))
	assert.Equal(t, "Complex(0.5, 0)", complexnum.FromReal(0.5).GoString())
}

func Test_Complex_MarshalJSON(t *testing.T) {
	data, err := complexnum.New(1.5, -2).MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"real": 1.5, "imaginary": -2}`, string(data))

	_, err = complexnum.New(math.NaN(), 0).MarshalJSON()
	assert.Error(t, err)
}
