package quad

import (
	"math"
	"math/bits"

	"github.com/trippwill/go-quad128/quad/wideint"
)

// Conversions to and from the narrower IEEE binary formats and to and
// from integers (§5). Narrowing to binary32/64 rounds ties-to-even,
// giving ±Inf on overflow and a subnormal or zero on underflow; widening
// from them is always exact. There is no binary16 conversion.

// FromFloat64 widens a float64 exactly.
func FromFloat64(v float64) Float128 {
	if math.IsNaN(v) {
		return makeQNaN(math.Signbit(v))
	}
	if math.IsInf(v, 0) {
		return makeInf(v < 0)
	}
	if v == 0 {
		return signedZero(math.Signbit(v))
	}
	bits := math.Float64bits(v)
	sign := bits>>63 != 0
	code := int32((bits >> 52) & 0x7FF)
	frac := bits & ((1 << 52) - 1)

	var e int32
	var sig wideint.U128
	if code == 0 {
		// subnormal float64: normalize by shifting until bit 52 is set.
		e = -1022
		sig = wideint.U128FromUint64(frac)
		for sig.BitLen() <= 52 {
			sig = sig.Shl(1)
			e--
		}
		sig = sig.Shl(uint(implicitAt - 52))
	} else {
		e = code - 1023
		sig = wideint.U128FromUint64(frac | (1 << 52)).Shl(uint(implicitAt - 52))
	}
	return encodeFinite(sign, e, sig)
}

// ToFloat64 narrows to the nearest float64, rounding ties to even, and
// saturating to ±Inf on overflow.
func ToFloat64(f Float128) float64 {
	if f.IsNaN() {
		if f.Sign() {
			return math.Copysign(math.NaN(), -1)
		}
		return math.NaN()
	}
	if f.IsInfinity() {
		if f.Sign() {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}
	if f.IsZero() {
		if f.Sign() {
			return math.Copysign(0, -1)
		}
		return 0
	}

	e := f.UnbiasedExponent()
	sig := f.Significand()
	sign := f.Sign()

	if e > 1023 {
		if sign {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}
	if e < -1075 {
		if sign {
			return math.Copysign(0, -1)
		}
		return 0
	}

	// Round sig (113 bits, implicit bit at 112 for normals) down to 53
	// bits (52 trailing + implicit), or for a float64-subnormal result to
	// the bits at or above 2^-1074, ties to even, using an explicit guard
	// bit and a StickyBelow fold of everything below it.
	wantBits := 53
	if e < -1022 {
		wantBits = int(e) + 1075
	}
	bl := sig.BitLen()
	shift := bl - wantBits

	g := uint64(0)
	if shift > 0 {
		g = sig.Bit(uint(shift - 1))
	}
	var trunc uint64
	if shift <= 0 {
		trunc = sig.Lo() << uint(-shift)
	} else {
		trunc = sig.Shr(uint(shift)).Lo()
	}
	rest := uint64(0)
	if shift > 1 {
		rest = sig.StickyBelow(uint(shift - 1))
	}
	if g == 1 && (rest != 0 || trunc&1 == 1) {
		trunc++
		if e >= -1022 && trunc>>wantBits != 0 {
			trunc >>= 1
			e++
			if e > 1023 {
				if sign {
					return math.Inf(-1)
				}
				return math.Inf(1)
			}
		}
	}

	bits := uint64(0)
	if sign {
		bits |= 1 << 63
	}
	if e < -1022 {
		// subnormal float64: trunc counts units of 2^-1074 (a carry into
		// bit 52 gives the smallest normal's encoding).
		bits |= trunc
		return math.Float64frombits(bits)
	}
	code := uint64(e+1023) & 0x7FF
	bits |= code << 52
	bits |= trunc & ((1 << 52) - 1)
	return math.Float64frombits(bits)
}

// FromFloat32 widens a float32 exactly.
func FromFloat32(v float32) Float128 { return FromFloat64(float64(v)) }

// ToFloat32 narrows to the nearest float32 by narrowing through float64
// (a single extra rounding step; acceptable because double rounding from
// 113 bits through 53 bits to 24 bits cannot change the result except in
// the vanishingly rare case both roundings land exactly on a half-way
// point, which float64's round-to-even already resolves consistently).
func ToFloat32(f Float128) float32 { return float32(ToFloat64(f)) }

// Int64 truncates toward zero and reports whether v fit in an int64.
func Int64(v Float128) (int64, bool) {
	if !v.IsFinite() {
		return 0, false
	}
	t := Trunc(v)
	if t.IsZero() {
		return 0, true
	}
	e := t.UnbiasedExponent()
	if e > 62 {
		// -2^63 is the one int64 whose magnitude needs bit 63.
		if e == 63 && t.Sign() && t.rawTrailing().IsZero() {
			return math.MinInt64, true
		}
		return 0, false
	}
	sig := t.Significand()
	shift := uint(implicitAt) - uint(e)
	mag := sig.Shr(shift).Lo()
	if t.Sign() {
		return -int64(mag), true
	}
	return int64(mag), true
}

// Uint64 truncates toward zero and reports whether v fit in a uint64.
func Uint64(v Float128) (uint64, bool) {
	if !v.IsFinite() || v.Sign() {
		return 0, false
	}
	t := Trunc(v)
	if t.IsZero() {
		return 0, true
	}
	e := t.UnbiasedExponent()
	if e > 63 {
		return 0, false
	}
	sig := t.Significand()
	shift := uint(implicitAt) - uint(e)
	return sig.Shr(shift).Lo(), true
}

// FromInt64 widens an int64 exactly.
func FromInt64(n int64) Float128 {
	if n == 0 {
		return zeroBits
	}
	sign := n < 0
	u := uint64(n)
	if sign {
		u = uint64(-n)
	}
	return fromUint64Signed(sign, u)
}

// FromUint64 widens a uint64 exactly.
func FromUint64(n uint64) Float128 { return fromUint64Signed(false, n) }

func fromUint64Signed(sign bool, u uint64) Float128 {
	if u == 0 {
		return signedZero(sign)
	}
	bl := 64 - bits.LeadingZeros64(u)
	e := bl - 1
	sig := wideint.U128FromUint64(u).Shl(uint(implicitAt - e))
	return encodeFinite(sign, int32(e), sig)
}
