package wideint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestU256HiLo(t *testing.T) {
	u := U256From(4, 3, 2, 1)
	assert.Equal(t, U128From(4, 3), u.Hi())
	assert.Equal(t, U128From(2, 1), u.Lo())
}

func TestU256AddSub(t *testing.T) {
	a := U256FromU128(U128From(0, 1))
	b := U256FromU128(U128From(0, 2))
	sum, carry := a.Add(b)
	assert.Equal(t, uint64(0), carry)
	assert.Equal(t, U256FromU128(U128From(0, 3)), sum)

	diff, borrow := a.Sub(b)
	assert.Equal(t, uint64(1), borrow)
	_ = diff
}

func TestU256Shifts(t *testing.T) {
	u := U256FromU128(U128From(0, 1))
	shifted := u.Shl(128)
	assert.Equal(t, U256From(0, 1, 0, 0), shifted)
	assert.Equal(t, u, shifted.Shr(128))
	assert.Equal(t, Zero256, u.Shl(256))
	assert.Equal(t, Zero256, u.Shr(256))
}

func TestU256Cmp(t *testing.T) {
	a := U256FromU128(U128From(0, 1))
	b := U256FromU128(U128From(0, 2))
	assert.Equal(t, -1, a.Cmp(b))
	assert.Equal(t, 1, b.Cmp(a))
	assert.Equal(t, 0, a.Cmp(a))
}

func TestU256LeadingTrailingZeros(t *testing.T) {
	assert.Equal(t, 256, Zero256.LeadingZeros())
	assert.Equal(t, 256, Zero256.TrailingZeros())

	u := U256FromU128(U128From(0, 1))
	assert.Equal(t, 255, u.LeadingZeros())
	assert.Equal(t, 0, u.TrailingZeros())
	assert.Equal(t, 1, u.BitLen())
}

func TestU256StickyBelow(t *testing.T) {
	u := U256FromU128(U128From(0, 0b1010))
	assert.Equal(t, uint64(0), u.StickyBelow(1))
	assert.Equal(t, uint64(1), u.StickyBelow(4))
	assert.Equal(t, uint64(0), Zero256.StickyBelow(300))
}

func TestMul256x256(t *testing.T) {
	one := U256FromU128(U128From(0, 1))
	got := Mul256x256(one, one)
	want := U512FromU256(one)
	assert.Equal(t, want, got)

	two := U256FromU128(U128From(0, 2))
	ten := U256FromU128(U128From(0, 10))
	got2 := Mul256x256(two, ten)
	assert.Equal(t, U512FromU256(U256FromU128(U128From(0, 20))), got2)
}

func TestDivRem256By128(t *testing.T) {
	n := U256FromU128(U128From(0, 100))
	d := U128From(0, 7)
	q, r := DivRem256By128(n, d)
	assert.Equal(t, U256FromU128(U128From(0, 14)), q)
	assert.Equal(t, U128From(0, 2), r)
}

func TestDivRem256By128WideDividend(t *testing.T) {
	// dividend spans into the upper 128 bits: (2^128) / 2 = 2^127
	n := U256From(0, 1, 0, 0)
	d := U128From(0, 2)
	q, r := DivRem256By128(n, d)
	assert.Equal(t, U256FromU128(U128From(1<<63, 0)), q)
	assert.Equal(t, U128From(0, 0), r)
}
