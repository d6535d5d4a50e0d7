// Package checked implements arithmetic over 32-bit signed integers with
// overflow, division-by-zero and domain checks. Every function either
// returns an exact in-range result or a nil result with one of the sentinel
// errors; a wrapped value is never formed, even as an intermediate.
package checked

import (
	"errors"
	"math"
)

var (
	// ErrOverflow reports a result outside the int32 range.
	ErrOverflow = errors.New("overflow")

	// ErrDivisionByZero reports a division with a zero divisor.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrInvalidArgument reports an input outside an operation's domain,
	// such as a negative factorial or a negative exponent.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Add returns a + b, or ErrOverflow if the sum leaves the int32 range.
// The bound test runs before the addition so the sum is never computed
// unless it is representable.
func Add(a, b int32) (int32, error) {
	if (b > 0 && a > math.MaxInt32-b) || (b < 0 && a < math.MinInt32-b) {
		return 0, ErrOverflow
	}
	return a + b, nil
}

// Sub returns a - b, or ErrOverflow if the difference leaves the int32 range.
func Sub(a, b int32) (int32, error) {
	if (b > 0 && a < math.MinInt32+b) || (b < 0 && a > math.MaxInt32+b) {
		return 0, ErrOverflow
	}
	return a - b, nil
}

// Mul returns a * b, or ErrOverflow if the product leaves the int32 range.
// The pre-check divides the range bound by one factor instead of widening,
// so no out-of-range product exists at any point.
func Mul(a, b int32) (int32, error) {
	if (a > 0 && b > 0 && a > math.MaxInt32/b) ||
		(a > 0 && b <= 0 && b < math.MinInt32/a) ||
		(a <= 0 && b > 0 && a < math.MinInt32/b) ||
		(a < 0 && b <= 0 && b < math.MaxInt32/a) {
		return 0, ErrOverflow
	}
	return a * b, nil
}

// Div returns a / b truncated toward zero. It fails with ErrDivisionByZero
// when b is zero and with ErrOverflow for MinInt32 / -1, the one quotient
// that does not fit.
func Div(a, b int32) (int32, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	if a == math.MinInt32 && b == -1 {
		return 0, ErrOverflow
	}
	return a / b, nil
}

// Pow returns base raised to exp for exp >= 0, accumulating through Mul so
// an overflow anywhere in the computation aborts with ErrOverflow. A
// negative exponent fails with ErrInvalidArgument; exp of zero yields 1
// for any base, including zero.
func Pow(base, exp int32) (int32, error) {
	if exp < 0 {
		return 0, ErrInvalidArgument
	}

	result := int32(1)
	for i := int32(0); i < exp; i++ {
		var err error
		result, err = Mul(result, base)
		if err != nil {
			return 0, err
		}
	}
	return result, nil
}

// Fact returns n! for n >= 0, accumulating through Mul. A negative n fails
// with ErrInvalidArgument; 0! is 1. Anything beyond 12! overflows int32.
func Fact(n int32) (int32, error) {
	if n < 0 {
		return 0, ErrInvalidArgument
	}

	result := int32(1)
	for i := int32(2); i <= n; i++ {
		var err error
		result, err = Mul(result, i)
		if err != nil {
			return 0, err
		}
	}
	return result, nil
}
