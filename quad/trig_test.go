package quad

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// closeEnough compares a Float128 against a float64 reference within a
// loose tolerance, since the CORDIC/Newton approximations here are not
// expected to match math's hardware implementation bit-for-bit.
func closeEnough(t *testing.T, got Float128, want float64, tol float64) {
	t.Helper()
	g := ToFloat64(got)
	assert.InDelta(t, want, g, tol, "got %v want %v", g, want)
}

func TestSinCosBasics(t *testing.T) {
	closeEnough(t, Sin(zeroBits), 0, 1e-6)
	closeEnough(t, Cos(zeroBits), 1, 1e-6)
	closeEnough(t, Sin(Pi()), 0, 1e-6)
	closeEnough(t, Cos(Pi()), -1, 1e-6)

	half := Div(Pi(), FromInt64(2), nil)
	closeEnough(t, Sin(half), 1, 1e-6)
	closeEnough(t, Cos(half), 0, 1e-6)
}

func TestTan(t *testing.T) {
	quarter := Div(Pi(), FromInt64(4), nil)
	closeEnough(t, Tan(quarter), 1, 1e-6)
}

func TestAtanAndAtan2(t *testing.T) {
	closeEnough(t, Atan(oneBits), math.Pi/4, 1e-3)
	closeEnough(t, Atan2(oneBits, zeroBits), math.Pi/2, 1e-3)
}

func TestAsinAcos(t *testing.T) {
	closeEnough(t, Asin(oneBits), math.Pi/2, 1e-3)
	closeEnough(t, Acos(zeroBits), math.Pi/2, 1e-3)
}

func TestSinPiCosPi(t *testing.T) {
	closeEnough(t, SinPi(zeroBits), 0, 1e-6)
	closeEnough(t, CosPi(zeroBits), 1, 1e-6)
}
