package fraction

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"math/bits"
)

// gcd returns the greatest common divisor of two non-negative numbers, with gcd(0, n) == n.
func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// abs must not be called with math.MinInt64.
func abs(n int64) int64 {
	if n < 0 {
		return -n
	}

	return n
}

func sign(n int64) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

func overflowErr(operation string, a, b int64) error {
	return errors.Join(ErrOverflow, fmt.Errorf("%s of %d and %d does not fit into int64", operation, a, b))
}

func checkedAdd(a, b int64) (int64, error) {
	c := a + b
	if (c > a) != (b > 0) {
		return 0, overflowErr("sum", a, b)
	}

	return c, nil
}

func checkedMul(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}

	c := a * b
	if c/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, overflowErr("product", a, b)
	}

	return c, nil
}

// checkedPow computes base^exp by squaring.
func checkedPow(base int64, exp uint64) (int64, error) {
	result := int64(1)

	for exp > 0 {
		var err error

		if exp&1 == 1 {
			if result, err = checkedMul(result, base); err != nil {
				return 0, err
			}
		}

		exp >>= 1

		if exp > 0 {
			if base, err = checkedMul(base, base); err != nil {
				return 0, err
			}
		}
	}

	return result, nil
}

// floorDiv divides rounding toward negative infinity. b must not be zero.
func floorDiv(a, b int64) (int64, error) {
	if a == math.MinInt64 && b == -1 {
		return 0, overflowErr("quotient", a, b)
	}

	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}

	return q, nil
}

// floorMod returns a remainder with the sign of b. b must not be zero.
func floorMod(a, b int64) int64 {
	m := a % b
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}

	return m
}

// compareProducts compares a*b with c*d exactly, using 128-bit products.
// b and d must be positive, a and c must not be math.MinInt64.
func compareProducts(a, b, c, d int64) int {
	sa, sc := sign(a), sign(c)
	if sa != sc || sa == 0 {
		return cmp.Compare(sa, sc)
	}

	leftHi, leftLo := bits.Mul64(uint64(abs(a)), uint64(b))
	rightHi, rightLo := bits.Mul64(uint64(abs(c)), uint64(d))

	result := cmp.Compare(leftHi, rightHi)
	if result == 0 {
		result = cmp.Compare(leftLo, rightLo)
	}

	return sa * result
}
