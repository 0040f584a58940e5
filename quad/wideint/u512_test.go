package wideint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestU512HiLo(t *testing.T) {
	v := U512FromU256(U256From(0, 0, 0, 1))
	assert.Equal(t, U256From(0, 0, 0, 1), v.Lo())
	assert.Equal(t, Zero256, v.Hi())
}

func TestU512AddSub(t *testing.T) {
	a := U512FromU128(U128From(0, 1))
	b := U512FromU128(U128From(0, 2))
	sum, carry := a.Add(b)
	assert.Equal(t, uint64(0), carry)
	assert.Equal(t, U512FromU128(U128From(0, 3)), sum)

	_, borrow := a.Sub(b)
	assert.Equal(t, uint64(1), borrow)
}

func TestU512Shifts(t *testing.T) {
	v := U512FromU128(U128From(0, 1))
	shifted := v.Shl(256)
	assert.Equal(t, v, shifted.Shr(256))
	assert.Equal(t, Zero512, v.Shl(512))
	assert.Equal(t, Zero512, v.Shr(512))
}

func TestU512Cmp(t *testing.T) {
	a := U512FromU128(U128From(0, 1))
	b := U512FromU128(U128From(0, 2))
	assert.Equal(t, -1, a.Cmp(b))
	assert.Equal(t, 1, b.Cmp(a))
	assert.Equal(t, 0, a.Cmp(a))
}

func TestU512LeadingTrailingZeros(t *testing.T) {
	assert.Equal(t, 512, Zero512.LeadingZeros())
	assert.Equal(t, 512, Zero512.TrailingZeros())

	v := U512FromU128(U128From(0, 1))
	assert.Equal(t, 511, v.LeadingZeros())
	assert.Equal(t, 0, v.TrailingZeros())
	assert.Equal(t, 1, v.BitLen())
}

func TestU512StickyBelow(t *testing.T) {
	v := U512FromU128(U128From(0, 0b1010))
	assert.Equal(t, uint64(0), v.StickyBelow(1))
	assert.Equal(t, uint64(1), v.StickyBelow(4))
	assert.Equal(t, uint64(0), Zero512.StickyBelow(500))
}
