package quad

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddBasic(t *testing.T) {
	a := MustParse("1.5")
	b := MustParse("2.25")
	got := Add(a, b, nil)
	assert.Equal(t, "3.75", Format(got, nil))
}

func TestAddInfinity(t *testing.T) {
	assert.True(t, Equal(Add(posInfBits, oneBits, nil), posInfBits))
	assert.True(t, Add(posInfBits, negInfBits, nil).IsNaN())
}

func TestSubCancelsToPositiveZero(t *testing.T) {
	a := MustParse("5")
	got := Sub(a, a, nil)
	assert.True(t, got.IsZero())
	assert.False(t, got.Sign())
}

func TestMulBasic(t *testing.T) {
	a := MustParse("2")
	b := MustParse("3")
	got := Mul(a, b, nil)
	assert.Equal(t, "6", Format(got, nil))
}

func TestMulByInfinityIsNaN(t *testing.T) {
	// Matches documented source behavior (see DESIGN.md): any infinity
	// operand in Mul yields qNaN, including finite*Inf.
	got := Mul(MustParse("2"), posInfBits, nil)
	assert.True(t, got.IsNaN())
}

func TestDivBasic(t *testing.T) {
	a := MustParse("1")
	b := MustParse("4")
	got := Div(a, b, nil)
	assert.Equal(t, "0.25", Format(got, nil))
}

func TestDivByZero(t *testing.T) {
	got := Div(oneBits, zeroBits, nil)
	assert.True(t, got.IsInfinity())
	assert.False(t, got.Sign())

	nan := Div(zeroBits, zeroBits, nil)
	assert.True(t, nan.IsNaN())
}

func TestCompareAndEqual(t *testing.T) {
	a := MustParse("1")
	b := MustParse("2")
	cmp, ordered := Compare(a, b)
	require.True(t, ordered)
	assert.Equal(t, -1, cmp)
	assert.True(t, Less(a, b))
	assert.False(t, Less(b, a))
	assert.True(t, Equal(zeroBits, negZeroBits))
}

func TestScaleB(t *testing.T) {
	v := MustParse("1")
	got := ScaleB(v, 3)
	assert.Equal(t, "8", Format(got, nil))
}

func TestFma(t *testing.T) {
	a := MustParse("2")
	b := MustParse("3")
	c := MustParse("4")
	got := Fma(a, b, c, nil)
	assert.Equal(t, "10", Format(got, nil))
}

func TestRemainderAndMod(t *testing.T) {
	a := MustParse("5.5")
	b := MustParse("2")
	r := Remainder(a, b, nil)
	assert.Equal(t, "-0.5", Format(r, nil))

	m := Mod(a, b, nil)
	assert.Equal(t, "1.5", Format(m, nil))
}

func TestBitIncrementDecrement(t *testing.T) {
	one := oneBits
	up := BitIncrement(one)
	down := BitDecrement(up)
	assert.True(t, Less(one, up))
	assert.True(t, Equal(down, one))
}
