package common

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/MixinNetwork/fraction/crypto"
	"github.com/MixinNetwork/fraction/util"
	"github.com/shopspring/decimal"
)

var (
	ErrZeroDenominator = util.ErrZeroDenominator
	ErrDivisionByZero  = errors.New("division by zero")
)

var (
	Zero Fraction
	One  = FromInt(1)
)

// Fraction is a mixed number, a whole part plus a proper fraction in lowest
// terms. The denominator is kept biased by one, so the zero value is 0 0/1.
//
// Every constructor and operator returns the canonical form, where the
// numerator never has the opposite sign of the whole part. Two fractions
// with the same value are therefore equal under ==.
//
// All components are int64 and overflow is not checked.
type Fraction struct {
	whole int64
	num   int64
	den   int64
}

// TryFraction builds the fraction num/den.
func TryFraction(num, den int64) (Fraction, error) {
	return canonical(0, num, den)
}

// TryMixed builds the mixed number whole + num/den.
func TryMixed(whole, num, den int64) (Fraction, error) {
	return canonical(whole, num, den)
}

func NewFraction(num, den int64) Fraction {
	f, err := TryFraction(num, den)
	if err != nil {
		panic(fmt.Errorf("NewFraction(%d, %d) %w", num, den, err))
	}
	return f
}

func NewMixed(whole, num, den int64) Fraction {
	f, err := TryMixed(whole, num, den)
	if err != nil {
		panic(fmt.Errorf("NewMixed(%d, %d, %d) %w", whole, num, den, err))
	}
	return f
}

func FromInt(n int64) Fraction {
	return Fraction{whole: n}
}

func canonical(whole, num, den int64) (Fraction, error) {
	num, den, err := util.Reduce(num, den)
	if err != nil {
		return Fraction{}, err
	}
	if den < 0 {
		num, den = -num, -den
	}
	whole += num / den
	num = num % den
	if num == 0 {
		den = 1
	}
	if whole < 0 && num > 0 {
		whole++
		num -= den
	} else if whole > 0 && num < 0 {
		whole--
		num += den
	}
	return Fraction{whole: whole, num: num, den: den - 1}, nil
}

// must is for arithmetic on canonical operands, whose denominators are never zero.
func must(f Fraction, err error) Fraction {
	if err != nil {
		panic(err)
	}
	return f
}

func (x Fraction) Whole() int64 {
	return x.whole
}

func (x Fraction) Numerator() int64 {
	return x.num
}

func (x Fraction) Denominator() int64 {
	return x.den + 1
}

// Improper returns the value as a single numerator over the denominator.
func (x Fraction) Improper() (int64, int64) {
	d := x.Denominator()
	return x.whole*d + x.num, d
}

func (x Fraction) Sign() int {
	switch {
	case x.whole > 0 || x.num > 0:
		return 1
	case x.whole < 0 || x.num < 0:
		return -1
	}
	return 0
}

func (x Fraction) IsZero() bool {
	return x == Zero
}

func (x Fraction) Float64() float64 {
	return float64(x.whole) + float64(x.num)/float64(x.Denominator())
}

// Decimal rounds the fractional part half away from zero to places digits.
func (x Fraction) Decimal(places int32) decimal.Decimal {
	w := decimal.NewFromInt(x.whole)
	r := decimal.NewFromInt(x.num).DivRound(decimal.NewFromInt(x.Denominator()), places)
	return w.Add(r)
}

func (x Fraction) String() string {
	return fmt.Sprintf("%d %d/%d", x.whole, x.num, x.Denominator())
}

func (x Fraction) Hash() crypto.Hash {
	var b [24]byte
	binary.BigEndian.PutUint64(b[0:], uint64(x.whole))
	binary.BigEndian.PutUint64(b[8:], uint64(x.num))
	binary.BigEndian.PutUint64(b[16:], uint64(x.Denominator()))
	return crypto.Blake3Hash(b[:])
}
