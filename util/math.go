package util

import "errors"

var ErrZeroDenominator = errors.New("zero denominator")

// Gcd returns the greatest common divisor of |a| and |b|, with Gcd(0, 0) == 0.
func Gcd(a, b int64) int64 {
	a, b = abs(a), abs(b)
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Lcm returns the least common multiple of |a| and |b|.
func Lcm(a, b int64) (int64, error) {
	g := Gcd(a, b)
	if g == 0 {
		return 0, ErrZeroDenominator
	}
	return abs(a / g * b), nil
}

// Reduce divides a and b by their greatest common divisor, b is the
// denominator and must not be zero.
func Reduce(a, b int64) (int64, int64, error) {
	if b == 0 {
		return 0, 0, ErrZeroDenominator
	}
	g := Gcd(a, b)
	return a / g, b / g, nil
}

func abs(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
