package common

import "github.com/MixinNetwork/fraction/util"

func (x Fraction) Add(y Fraction) Fraction {
	ad, bd := x.Denominator(), y.Denominator()
	l := lcm(ad, bd)
	num := x.num*(l/ad) + y.num*(l/bd)
	return must(canonical(x.whole+y.whole, num, l))
}

func (x Fraction) Sub(y Fraction) Fraction {
	ad, bd := x.Denominator(), y.Denominator()
	l := lcm(ad, bd)
	num := x.num*(l/ad) - y.num*(l/bd)
	return must(canonical(x.whole-y.whole, num, l))
}

// Mul expands (aw + an/ad) * (bw + bn/bd) term by term, cross reducing the
// fractional product first to keep the intermediates small.
func (x Fraction) Mul(y Fraction) Fraction {
	ad, bd := x.Denominator(), y.Denominator()
	an, bdr := reduce(x.num, bd)
	bn, adr := reduce(y.num, ad)

	p := must(canonical(x.whole*y.whole, an*bn, adr*bdr))
	p = p.Add(must(canonical(0, x.whole*y.num, bd)))
	return p.Add(must(canonical(0, y.whole*x.num, ad)))
}

// Div multiplies x by the reciprocal of y, it fails with ErrDivisionByZero
// when y is zero.
func (x Fraction) Div(y Fraction) (Fraction, error) {
	if y.IsZero() {
		return Fraction{}, ErrDivisionByZero
	}
	an, ad := x.Improper()
	bn, bd := y.Improper()
	an, bn = reduce(an, bn)
	ad, bd = reduce(ad, bd)
	return canonical(0, an*bd, ad*bn)
}

func (x Fraction) Reciprocal() (Fraction, error) {
	return One.Div(x)
}

func (x Fraction) Neg() Fraction {
	return Fraction{whole: -x.whole, num: -x.num, den: x.den}
}

func (x Fraction) Abs() Fraction {
	if x.Sign() < 0 {
		return x.Neg()
	}
	return x
}

func (x Fraction) AddInt(n int64) Fraction {
	return must(canonical(x.whole+n, x.num, x.Denominator()))
}

func (x Fraction) SubInt(n int64) Fraction {
	return must(canonical(x.whole-n, x.num, x.Denominator()))
}

func (x Fraction) MulInt(n int64) Fraction {
	return must(canonical(x.whole*n, x.num*n, x.Denominator()))
}

func (x Fraction) DivInt(n int64) (Fraction, error) {
	if n == 0 {
		return Fraction{}, ErrDivisionByZero
	}
	d := x.Denominator()
	return canonical(x.whole/n, (x.whole%n)*d+x.num, d*n)
}

func IntAdd(n int64, x Fraction) Fraction {
	return x.AddInt(n)
}

func IntSub(n int64, x Fraction) Fraction {
	return must(canonical(n-x.whole, -x.num, x.Denominator()))
}

func IntMul(n int64, x Fraction) Fraction {
	return x.MulInt(n)
}

func IntDiv(n int64, x Fraction) (Fraction, error) {
	if x.IsZero() {
		return Fraction{}, ErrDivisionByZero
	}
	num, den := x.Improper()
	return canonical(0, n*den, num)
}

// Cmp returns -1, 0 or +1. Comparing the whole parts first is exact because
// the fractional part never carries the value past a whole number.
func (x Fraction) Cmp(y Fraction) int {
	if x.whole != y.whole {
		if x.whole < y.whole {
			return -1
		}
		return 1
	}
	l, r := x.num*y.Denominator(), y.num*x.Denominator()
	switch {
	case l < r:
		return -1
	case l > r:
		return 1
	}
	return 0
}

func (x Fraction) Equal(y Fraction) bool {
	return x == y
}

func (x Fraction) NotEqual(y Fraction) bool {
	return x != y
}

func (x Fraction) Greater(y Fraction) bool {
	return x.Cmp(y) > 0
}

func (x Fraction) Less(y Fraction) bool {
	return x.Cmp(y) < 0
}

func (x Fraction) GreaterOrEqual(y Fraction) bool {
	return x.Equal(y) || x.Greater(y)
}

func (x Fraction) LessOrEqual(y Fraction) bool {
	return x.Equal(y) || x.Less(y)
}

func lcm(a, b int64) int64 {
	l, err := util.Lcm(a, b)
	if err != nil {
		panic(err)
	}
	return l
}

func reduce(a, b int64) (int64, int64) {
	a, b, err := util.Reduce(a, b)
	if err != nil {
		panic(err)
	}
	return a, b
}
