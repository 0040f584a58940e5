package wideint

import "math/bits"

// U256 is a 256-bit unsigned integer stored as four little-endian 64-bit
// limbs: w[0] is least significant, w[3] most significant.
type U256 struct {
	w [4]uint64
}

var Zero256 = U256{}

func U256FromU128(v U128) U256 { return U256{w: [4]uint64{v.lo, v.hi, 0, 0}} }

// U256From assembles a U256 from explicit limbs, most significant first.
func U256From(w3, w2, w1, w0 uint64) U256 { return U256{w: [4]uint64{w0, w1, w2, w3}} }

// Hi returns the upper 128 bits, Lo the lower 128 bits.
func (u U256) Hi() U128 { return U128{lo: u.w[2], hi: u.w[3]} }
func (u U256) Lo() U128 { return U128{lo: u.w[0], hi: u.w[1]} }

func (u U256) Limb(i int) uint64 { return u.w[i] }

func (u U256) IsZero() bool {
	return u.w[0] == 0 && u.w[1] == 0 && u.w[2] == 0 && u.w[3] == 0
}

func (u U256) Add(v U256) (U256, uint64) {
	var out U256
	c := uint64(0)
	out.w[0], c = bits.Add64(u.w[0], v.w[0], c)
	out.w[1], c = bits.Add64(u.w[1], v.w[1], c)
	out.w[2], c = bits.Add64(u.w[2], v.w[2], c)
	out.w[3], c = bits.Add64(u.w[3], v.w[3], c)
	return out, c
}

func (u U256) Sub(v U256) (U256, uint64) {
	var out U256
	b := uint64(0)
	out.w[0], b = bits.Sub64(u.w[0], v.w[0], b)
	out.w[1], b = bits.Sub64(u.w[1], v.w[1], b)
	out.w[2], b = bits.Sub64(u.w[2], v.w[2], b)
	out.w[3], b = bits.Sub64(u.w[3], v.w[3], b)
	return out, b
}

func (u U256) And(v U256) U256 {
	return U256{w: [4]uint64{u.w[0] & v.w[0], u.w[1] & v.w[1], u.w[2] & v.w[2], u.w[3] & v.w[3]}}
}
func (u U256) Or(v U256) U256 {
	return U256{w: [4]uint64{u.w[0] | v.w[0], u.w[1] | v.w[1], u.w[2] | v.w[2], u.w[3] | v.w[3]}}
}
func (u U256) Xor(v U256) U256 {
	return U256{w: [4]uint64{u.w[0] ^ v.w[0], u.w[1] ^ v.w[1], u.w[2] ^ v.w[2], u.w[3] ^ v.w[3]}}
}
func (u U256) Not() U256 {
	return U256{w: [4]uint64{^u.w[0], ^u.w[1], ^u.w[2], ^u.w[3]}}
}

func (u U256) Shl(n uint) U256 {
	if n == 0 {
		return u
	}
	if n >= 256 {
		return U256{}
	}
	limbShift := n / 64
	bitShift := n % 64
	var out U256
	for i := 3; i >= 0; i-- {
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

func (u U256) Shr(n uint) U256 {
	if n == 0 {
		return u
	}
	if n >= 256 {
		return U256{}
	}
	limbShift := n / 64
	bitShift := n % 64
	var out U256
	for i := 0; i <= 3; i++ {
		src := i + int(limbShift)
		if src > 3 {
			continue
		}
		v := u.w[src] >> bitShift
		if bitShift != 0 && src < 3 {
			v |= u.w[src+1] << (64 - bitShift)
		}
		out.w[i] = v
	}
	return out
}

func (u U256) Cmp(v U256) int {
	for i := 3; i >= 0; i-- {
		if u.w[i] != v.w[i] {
			if u.w[i] < v.w[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func (u U256) LeadingZeros() int {
	for i := 3; i >= 0; i-- {
		if u.w[i] != 0 {
			return (3-i)*64 + bits.LeadingZeros64(u.w[i])
		}
	}
	return 256
}

func (u U256) TrailingZeros() int {
	for i := 0; i <= 3; i++ {
		if u.w[i] != 0 {
			return i*64 + bits.TrailingZeros64(u.w[i])
		}
	}
	return 256
}

func (u U256) BitLen() int { return 256 - u.LeadingZeros() }

func (u U256) Bit(i uint) uint64 {
	limb := i / 64
	return (u.w[limb] >> (i % 64)) & 1
}

func (u U256) setBit(i uint) U256 {
	limb := i / 64
	u.w[limb] |= 1 << (i % 64)
	return u
}

// StickyBelow reports whether any of the low n bits of u are set.
func (u U256) StickyBelow(n uint) uint64 {
	if n == 0 {
		return 0
	}
	if n >= 256 {
		if u.IsZero() {
			return 0
		}
		return 1
	}
	masked := u.Shl(256 - n).Shr(256 - n)
	if masked.IsZero() {
		return 0
	}
	return 1
}

// Mul256x256 performs the 256x256->512 partial-product multiply required
// by §4.1, built from four 128x128->256 partial products combined with a
// 128-bit shift of the cross products (the direct generalization of
// Mul128x128's 64-bit-shift combination one level up).
func Mul256x256(a, b U256) U512 {
	aLo, aHi := a.Lo(), a.Hi()
	bLo, bHi := b.Lo(), b.Hi()

	p00 := Mul128x128(aLo, bLo) // bits [0,256)
	p01 := Mul128x128(aLo, bHi) // bits [128,384)
	p10 := Mul128x128(aHi, bLo) // bits [128,384)
	p11 := Mul128x128(aHi, bHi) // bits [256,512)

	var out U512
	// Start with p00 in the low 256 bits.
	for i := 0; i < 4; i++ {
		out.w[i] = p00.w[i]
	}

	// Add p01 and p10 shifted left by 128 bits (i.e. starting at limb 2),
	// and p11 shifted left by 256 bits (starting at limb 4).
	acc := U512{}
	for i := 0; i < 4; i++ {
		acc.w[i+2] = p01.w[i]
	}
	out, c1 := out.Add(acc)

	acc = U512{}
	for i := 0; i < 4; i++ {
		acc.w[i+2] = p10.w[i]
	}
	out, c2 := out.Add(acc)

	acc = U512{}
	for i := 0; i < 4; i++ {
		acc.w[i+4] = p11.w[i]
	}
	out, _ = out.Add(acc)

	_ = c1
	_ = c2
	return out
}

// DivRem256By128 divides the 256-bit n by a 128-bit (or narrower) divisor d,
// returning a 256-bit quotient and a 128-bit remainder, implementing the
// §4.1/§4.5.3 "divisor one word narrower than the dividend" long
// division used directly by Divide.
func DivRem256By128(n U256, d U128) (q U256, r U128) {
	if d.IsZero() {
		panic("wideint: division by zero")
	}

	for i := 255; i >= 0; i-- {
		var bit uint64
		if n.Bit(uint(i)) == 1 {
			bit = 1
		}
		var qb uint64
		r, qb = divStep(r, bit, d)
		if qb != 0 {
			q = q.setBit(uint(i))
		}
	}
	return q, r
}
