// Package complexnum provides an immutable complex number value type.
//
// A Complex holds a real and an imaginary part as float64. Every operation returns
// a new value; the receiver is never mutated.
//
// Arithmetic accepts any Operand as the right-hand side:
//   - Complex: combined as is
//   - Scalar: coerced to Complex(x, 0) before combining
//
// Usage:
//
//	a := complexnum.New(3, 4)
//	b := complexnum.New(1, -2)
//
//	sum, err := a.Add(b)
//	if err != nil {
//		// handle error
//	}
//
//	scaled, _ := a.Multiply(complexnum.Scalar(2))
//	quotient, err := a.Divide(complexnum.New(0, 0)) // errors.Is(err, complexnum.ErrDivisionByZero)
//	fmt.Println(a.Magnitude()) // 5
package complexnum
