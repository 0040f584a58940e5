package quad

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLog2(t *testing.T) {
	closeEnough(t, Log2(FromInt64(8)), 3, 1e-6)
	closeEnough(t, Log2(oneBits), 0, 1e-9)
	assert.True(t, Log2(zeroBits).IsInfinity())
	assert.True(t, Log2(negate(oneBits)).IsNaN())
}

func TestLogFamily(t *testing.T) {
	closeEnough(t, Log(E()), 1, 1e-6)
	closeEnough(t, Log10(FromInt64(1000)), 3, 1e-6)
}

func TestExpFamily(t *testing.T) {
	closeEnough(t, Exp(zeroBits), 1, 1e-9)
	closeEnough(t, Exp(oneBits), math.E, 1e-6)
	closeEnough(t, Exp2(FromInt64(10)), 1024, 1e-6)
	closeEnough(t, Exp10(FromInt64(3)), 1000, 1e-6)
}

func TestPow(t *testing.T) {
	closeEnough(t, Pow(FromInt64(2), FromInt64(10)), 1024, 1e-6)
	closeEnough(t, Pow(FromInt64(-2), FromInt64(3)), -8, 1e-6)
	assert.True(t, Equal(Pow(FromInt64(5), zeroBits), oneBits))
}

func TestIlogb(t *testing.T) {
	assert.Equal(t, 3, Ilogb(FromInt64(8)))
	assert.Equal(t, 0, Ilogb(oneBits))
}
