package wideint

import "math/bits"

// U512 is a 512-bit unsigned integer stored as eight little-endian 64-bit
// limbs. It exists to host the 256x256->512 partial-product multiply
// required by §4.1.
type U512 struct {
	w [8]uint64
}

var Zero512 = U512{}

func U512FromU256(v U256) U512 {
	var out U512
	copy(out.w[:4], v.w[:])
	return out
}

func U512FromU128(v U128) U512 {
	return U512{w: [8]uint64{v.lo, v.hi, 0, 0, 0, 0, 0, 0}}
}

// Hi returns the upper 256 bits, Lo the lower 256 bits.
func (u U512) Hi() U256 { return U256{w: [4]uint64{u.w[4], u.w[5], u.w[6], u.w[7]}} }
func (u U512) Lo() U256 { return U256{w: [4]uint64{u.w[0], u.w[1], u.w[2], u.w[3]}} }

func (u U512) Limb(i int) uint64 { return u.w[i] }

func (u U512) IsZero() bool {
	for _, limb := range u.w {
		if limb != 0 {
			return false
		}
	}
	return true
}

func (u U512) Add(v U512) (U512, uint64) {
	var out U512
	c := uint64(0)
	for i := 0; i < 8; i++ {
		out.w[i], c = bits.Add64(u.w[i], v.w[i], c)
	}
	return out, c
}

func (u U512) Sub(v U512) (U512, uint64) {
	var out U512
	b := uint64(0)
	for i := 0; i < 8; i++ {
		out.w[i], b = bits.Sub64(u.w[i], v.w[i], b)
	}
	return out, b
}

func (u U512) And(v U512) U512 {
	var out U512
	for i := 0; i < 8; i++ {
		out.w[i] = u.w[i] & v.w[i]
	}
	return out
}

func (u U512) Or(v U512) U512 {
	var out U512
	for i := 0; i < 8; i++ {
		out.w[i] = u.w[i] | v.w[i]
	}
	return out
}

func (u U512) Xor(v U512) U512 {
	var out U512
	for i := 0; i < 8; i++ {
		out.w[i] = u.w[i] ^ v.w[i]
	}
	return out
}

func (u U512) Not() U512 {
	var out U512
	for i := 0; i < 8; i++ {
		out.w[i] = ^u.w[i]
	}
	return out
}

func (u U512) Shl(n uint) U512 {
	if n == 0 {
		return u
	}
	if n >= 512 {
		return U512{}
	}
	limbShift := n / 64
	bitShift := n % 64
	var out U512
	for i := 7; i >= 0; i-- {
		src := i - int(limbShift)
		if src < 0 {
			continue
		}
		v := u.w[src] << bitShift
		if bitShift != 0 && src > 0 {
			v |= u.w[src-1] >> (64 - bitShift)
		}
		out.w[i] = v
	}
	return out
}

func (u U512) Shr(n uint) U512 {
	if n == 0 {
		return u
	}
	if n >= 512 {
		return U512{}
	}
	limbShift := n / 64
	bitShift := n % 64
	var out U512
	for i := 0; i <= 7; i++ {
		src := i + int(limbShift)
		if src > 7 {
			continue
		}
		v := u.w[src] >> bitShift
		if bitShift != 0 && src < 7 {
			v |= u.w[src+1] << (64 - bitShift)
		}
		out.w[i] = v
	}
	return out
}

func (u U512) Cmp(v U512) int {
	for i := 7; i >= 0; i-- {
		if u.w[i] != v.w[i] {
			if u.w[i] < v.w[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func (u U512) LeadingZeros() int {
	for i := 7; i >= 0; i-- {
		if u.w[i] != 0 {
			return (7-i)*64 + bits.LeadingZeros64(u.w[i])
		}
	}
	return 512
}

func (u U512) TrailingZeros() int {
	for i := 0; i <= 7; i++ {
		if u.w[i] != 0 {
			return i*64 + bits.TrailingZeros64(u.w[i])
		}
	}
	return 512
}

func (u U512) BitLen() int { return 512 - u.LeadingZeros() }

func (u U512) Bit(i uint) uint64 {
	limb := i / 64
	return (u.w[limb] >> (i % 64)) & 1
}

// StickyBelow returns 1 if any bit in the low n bits of u is set, else 0. It is
// used to compute the sticky bit from the discarded low end of a widened
// significand without materializing the whole masked value.
func (u U512) StickyBelow(n uint) uint64 {
	if n == 0 {
		return 0
	}
	if n >= 512 {
		if u.IsZero() {
			return 0
		}
		return 1
	}
	masked := u.Shl(512 - n).Shr(512 - n)
	if masked.IsZero() {
		return 0
	}
	return 1
}
