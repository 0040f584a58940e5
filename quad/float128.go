// Package quad implements IEEE 754-2019 binary128 (quadruple-precision)
// floating point entirely in software, for hosts whose widest native
// integer is 64 bits. See SPEC_FULL.md for the full requirements this
// package implements.
package quad

import "github.com/trippwill/go-quad128/quad/wideint"

// Float128 is a 128-bit binary floating-point value: bit 127 is the sign,
// bits 126..112 are the 15-bit biased exponent (bias 16383), and bits
// 111..0 are the trailing significand. It is stored as two uint64 limbs,
// hi holding bits [64,128) and lo holding bits [0,64), so the layout is
// endian-neutral regardless of host byte order (see io.go for the
// explicit big/little-endian external byte representation).
type Float128 struct {
	hi uint64
	lo uint64
}

const (
	expBias    = 16383
	expMaxCode = 0x7FFF // biased exponent code reserved for Inf/NaN
	expBits    = 15
	sigBits    = 112 // trailing significand width
	implicitAt = 112 // bit position of the implicit leading one

	minNormalExp = 1 - expBias      // unbiased exponent of the smallest normal
	maxNormalExp = expMaxCode - 1 - expBias
)

var (
	// implicitBit112 has bit 112 set and nothing else: the implicit
	// leading one of a normal significand.
	implicitBit112 = wideint.U128From(1<<(implicitAt-64), 0)
	// trailingMask112 has bits 0..111 set: the storage mask for T.
	trailingMask112 = wideint.U128From((1<<(implicitAt-64))-1, ^uint64(0))
)

func (f Float128) rawSign() bool    { return f.hi>>63 != 0 }
func (f Float128) rawExpCode() uint32 { return uint32((f.hi >> 48) & 0x7FFF) }

// rawTrailing returns the raw 112-bit trailing significand field T.
func (f Float128) rawTrailing() wideint.U128 {
	return wideint.U128From(f.hi&((1<<48)-1), f.lo)
}

// Significand returns the full significand with the implicit leading bit
// folded in for normal numbers, or the bare trailing field for
// subnormals, NaNs, and infinities (per §4.3's decoder contract).
func (f Float128) Significand() wideint.U128 {
	t := f.rawTrailing()
	if f.rawExpCode() == 0 || f.rawExpCode() == expMaxCode {
		return t
	}
	return t.Or(implicitBit112)
}

// sentinelExp is returned by UnbiasedExponent for infinities and NaNs,
// where the format carries no meaningful exponent value.
const sentinelExp = 1 << 30

// UnbiasedExponent returns e = E - bias for normal numbers, -16382 for
// zero and subnormals (matching the value formula's use of the minimum
// normal exponent even though subnormals carry no implicit bit), and the
// sentinel value for infinities and NaNs.
func (f Float128) UnbiasedExponent() int32 {
	code := f.rawExpCode()
	switch {
	case code == 0:
		return minNormalExp
	case code == expMaxCode:
		return sentinelExp
	default:
		return int32(code) - expBias
	}
}

// Sign returns true if the sign bit is set (negative or -0/-Inf/-NaN).
func (f Float128) Sign() bool { return f.rawSign() }

// Classification predicates (§4.4).

func (f Float128) IsNaN() bool       { return f.rawExpCode() == expMaxCode && !f.rawTrailing().IsZero() }
func (f Float128) IsInfinity() bool  { return f.rawExpCode() == expMaxCode && f.rawTrailing().IsZero() }
func (f Float128) IsFinite() bool    { return f.rawExpCode() != expMaxCode }
func (f Float128) IsNormal() bool    { return f.rawExpCode() != 0 && f.rawExpCode() != expMaxCode }
func (f Float128) IsSubnormal() bool { return f.rawExpCode() == 0 && !f.rawTrailing().IsZero() }
func (f Float128) IsZero() bool      { return f.rawExpCode() == 0 && f.rawTrailing().IsZero() }
func (f Float128) IsPositive() bool  { return !f.rawSign() && !f.IsNaN() }
func (f Float128) IsNegative() bool  { return f.rawSign() && !f.IsNaN() }

// IsSignalingNaN reports whether f is the sentinel NaN pattern (§3 I2),
// which differs from the canonical quiet NaN only in its sign bit. It is
// still, observably, a NaN: IsNaN reports true for it. This package's
// own invalid operations and parse failures return the quiet NaN (and
// raise a Signal on a non-nil Context), so IsSignalingNaN is false for
// their results.
func (f Float128) IsSignalingNaN() bool {
	return f.hi == sNaNBits.hi && f.lo == sNaNBits.lo
}

// IsCanonical reports whether the significand's implicit-one position is
// exactly at bit 112, i.e. the leading-zero count of the full significand
// (T with the implicit bit folded in) is exactly 15 in a 128-bit
// container (§4.4), and reports true for every non-normal value. The
// binary128 encoding itself supplies the implicit bit of a normal at
// position 112, so every bit pattern, including ones obtained via
// FromBits or the byte-I/O readers in io.go, is reported canonical.
func (f Float128) IsCanonical() bool {
	if !f.IsNormal() {
		return true
	}
	return f.Significand().LeadingZeros() == 15
}

// IsPow2 reports whether |f| is an exact power of two: a normal with a
// zero trailing significand, or a subnormal whose trailing significand
// has exactly one bit set.
func (f Float128) IsPow2() bool {
	if !f.IsFinite() || f.IsZero() {
		return false
	}
	t := f.rawTrailing()
	if f.rawExpCode() != 0 {
		return t.IsZero()
	}
	return t.BitLen() == t.TrailingZeros()+1
}

// IsInteger reports whether f equals its own round-to-nearest-even
// integer value.
func (f Float128) IsInteger() bool {
	if !f.IsFinite() {
		return false
	}
	if f.IsZero() {
		return true
	}
	return Equal(f, Round(f))
}

// IsEvenInteger reports whether f is an integer and even.
func (f Float128) IsEvenInteger() bool {
	if !f.IsInteger() {
		return false
	}
	e := f.UnbiasedExponent()
	if e >= int32(sigBits) {
		return true // too large to carry a fractional or odd-unit bit
	}
	if e < 0 {
		return f.IsZero()
	}
	// The integer's least significant bit lives at position (sigBits - e)
	// of the trailing significand for a normal with exponent e.
	m := f.Significand()
	bitPos := uint(implicitAt) - uint(e)
	if bitPos > 127 {
		return true
	}
	return m.Bit(bitPos) == 0
}

// IsOddInteger reports whether f is an integer and odd.
func (f Float128) IsOddInteger() bool {
	return f.IsInteger() && !f.IsEvenInteger()
}

// Signbit reports the sign bit regardless of NaN-ness (unlike IsNegative,
// which excludes NaNs).
func Signbit(f Float128) bool { return f.rawSign() }

// CopySign returns a value with the magnitude of x and the sign of y.
func CopySign(x, y Float128) Float128 {
	out := x
	if y.rawSign() {
		out.hi |= 1 << 63
	} else {
		out.hi &^= 1 << 63
	}
	return out
}

// Bits returns the raw 128-bit encoding as (hi, lo) limbs.
func (f Float128) Bits() (hi, lo uint64) { return f.hi, f.lo }

// FromBits reconstructs a Float128 from raw limbs, with no validation:
// any 128-bit pattern is a valid (if possibly non-canonical, for NaNs)
// Float128.
func FromBits(hi, lo uint64) Float128 { return Float128{hi: hi, lo: lo} }

// encodeFinite is the single chokepoint for producing a finite,
// canonical encoding from a sign, an unbiased exponent, and a
// significand that is already normalized: either sig has bit 112 set and
// minNormalExp <= e <= maxNormalExp (a normal number), or e ==
// minNormalExp and sig < 2^112 (a subnormal, including zero).
func encodeFinite(sign bool, e int32, sig wideint.U128) Float128 {
	var f Float128
	if sign {
		f.hi |= 1 << 63
	}
	if sig.IsZero() {
		return f // +0/-0: exponent code 0, trailing 0
	}
	if sig.BitLen() > implicitAt {
		code := uint32(e + expBias)
		f.hi |= uint64(code&0x7FFF) << 48
		t := sig.And(trailingMask112)
		f.hi |= t.Hi()
		f.lo = t.Lo()
		return f
	}
	// Subnormal: exponent code stays 0, sig stored as-is.
	f.hi |= sig.Hi()
	f.lo = sig.Lo()
	return f
}

func makeInf(sign bool) Float128 {
	var f Float128
	if sign {
		f.hi |= 1 << 63
	}
	f.hi |= uint64(expMaxCode) << 48
	return f
}

func makeQNaN(sign bool) Float128 {
	f := makeInf(sign)
	f.hi &^= 1 << 63
	f.lo = 1
	return f
}
