package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGcd(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(int64(0), Gcd(0, 0))
	assert.Equal(int64(7), Gcd(0, 7))
	assert.Equal(int64(7), Gcd(-7, 0))
	assert.Equal(int64(6), Gcd(12, 18))
	assert.Equal(int64(6), Gcd(-12, 18))
	assert.Equal(int64(6), Gcd(12, -18))
	assert.Equal(int64(6), Gcd(-18, -12))
	assert.Equal(int64(1), Gcd(17, 31))
	assert.Equal(int64(5), Gcd(5, 5))
}

func TestLcm(t *testing.T) {
	assert := assert.New(t)

	l, err := Lcm(4, 6)
	assert.Nil(err)
	assert.Equal(int64(12), l)
	l, err = Lcm(-4, 6)
	assert.Nil(err)
	assert.Equal(int64(12), l)
	l, err = Lcm(3, 1)
	assert.Nil(err)
	assert.Equal(int64(3), l)
	l, err = Lcm(0, 5)
	assert.Nil(err)
	assert.Equal(int64(0), l)

	_, err = Lcm(0, 0)
	assert.ErrorIs(err, ErrZeroDenominator)
}

func TestReduce(t *testing.T) {
	assert := assert.New(t)

	a, b, err := Reduce(6, 8)
	assert.Nil(err)
	assert.Equal(int64(3), a)
	assert.Equal(int64(4), b)

	a, b, err = Reduce(-6, 8)
	assert.Nil(err)
	assert.Equal(int64(-3), a)
	assert.Equal(int64(4), b)

	a, b, err = Reduce(6, -8)
	assert.Nil(err)
	assert.Equal(int64(3), a)
	assert.Equal(int64(-4), b)

	a, b, err = Reduce(0, 9)
	assert.Nil(err)
	assert.Equal(int64(0), a)
	assert.Equal(int64(1), b)

	a, b, err = Reduce(5, 7)
	assert.Nil(err)
	assert.Equal(int64(5), a)
	assert.Equal(int64(7), b)

	_, _, err = Reduce(5, 0)
	assert.ErrorIs(err, ErrZeroDenominator)
	_, _, err = Reduce(0, 0)
	assert.ErrorIs(err, ErrZeroDenominator)
}
