package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	assert := assert.New(t)

	out := filterOutput("add 0 1/2 0 1/3 => %s", "0 5/6")
	assert.Contains(out, "5/6")

	err := SetFilter("^div")
	assert.Nil(err)
	out = filterOutput("add 0 1/2 0 1/3 => %s", "0 5/6")
	assert.Equal("", out)
	out = filterOutput("div 0 1/2 0 0/1 => %s", "division by zero")
	assert.Contains(out, "division by zero")

	err = SetFilter("(?i)MUL|sub")
	assert.Nil(err)
	out = filterOutput("mul 1 2/3 0 1/2 => %s", "0 5/6")
	assert.Contains(out, "5/6")
	out = filterOutput("sub 0 1/2 0 1/3 => %s", "0 1/6")
	assert.Contains(out, "1/6")
	out = filterOutput("cmp 0 1/2 0 1/3 => %d", 1)
	assert.Equal("", out)

	err = SetFilter("(")
	assert.NotNil(err)
	err = SetFilter("")
	assert.Nil(err)
	out = filterOutput("cmp 0 1/2 0 1/3 => %d", 1)
	assert.Contains(out, "cmp")

	la := limiterAvailable("fraction 0 1/2")
	assert.True(la)
	SetLimiter(10)
	for i := 0; i < 10; i++ {
		la := limiterAvailable("fraction 0 1/3")
		assert.True(la)
	}
	la = limiterAvailable("fraction 0 1/3")
	assert.False(la)
	la = limiterAvailable("fraction 0 1/4")
	assert.True(la)
	SetLimiter(0)

	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(INFO)
	Verbosef("verbose %s", "0 1/2")
	assert.Equal(0, buf.Len())
	Errorf("error %s", "division by zero")
	assert.Contains(buf.String(), "error division by zero")
	SetLevel(VERBOSE)
	Verbosef("verbose %s", "0 1/2")
	assert.Contains(buf.String(), "verbose 0 1/2")
	Debugf("debug %s", "0 1/2")
	assert.NotContains(buf.String(), "debug")
}
