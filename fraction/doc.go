// Package fraction provides an immutable rational number value type.
//
// A Fraction is always stored in lowest terms with a positive denominator; the sign
// lives in the numerator. New is the only validation gate: once constructed, every
// operation relies on these invariants.
//
// Arithmetic and comparisons accept any Operand as the right-hand side:
//   - Fraction: combined as is
//   - Whole: an integer coerced to Whole/1
//
// All intermediate products are overflow-checked and fail with ErrOverflow instead of
// silently wrapping around.
//
// Usage:
//
//	a, err := fraction.New(6, -8) // -3 / 4
//	if err != nil {
//		// handle error
//	}
//
//	sum, _ := a.Add(fraction.Whole(1)) // 1 / 4
//	less, _ := a.Less(sum)              // true
//	_, err = a.Divide(fraction.Zero)    // errors.Is(err, fraction.ErrDivisionByZero)
package fraction
