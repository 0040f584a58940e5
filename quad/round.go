package quad

import "github.com/trippwill/go-quad128/quad/wideint"

// finishRound is the single chokepoint every arithmetic primitive uses to
// turn an unrounded intermediate result into a canonical Float128. wide
// holds the significand shifted left by three extra bits reserved for
// guard (bit 2), round (bit 1), and sticky (bit 0); e is the unbiased
// exponent corresponding to wide's bit 115 (the position the implicit one
// occupies once the value is normalized). extraSticky folds in any bits
// that were already known to be nonzero before normalization (e.g. the
// low half of a wide multiply) without needing to be represented in wide
// itself.
//
// This implements §3's guard/round/sticky rounding and §4.5's
// "normalize, then round-to-nearest-even, then encode" sequence common
// to every arithmetic primitive.
func finishRound(sign bool, wide wideint.U128, e int32, extraSticky uint64) Float128 {
	if wide.IsZero() && extraSticky == 0 {
		return signedZero(sign)
	}

	wide, e = normalizeWide(wide, e, extraSticky)

	if e > maxNormalExp {
		return makeInf(sign)
	}

	kept, e := roundToEven(wide, e)

	if e > maxNormalExp {
		return makeInf(sign)
	}

	return encodeFinite(sign, e, kept)
}

// normalizeWide shifts wide so its kept-plus-GRS window occupies exactly
// bits [0,116): 113 significand bits (bit 115 is the implicit one for a
// normal result) followed by 3 guard/round/sticky bits. If the result's
// exponent would fall below the minimum normal exponent, it instead
// shifts until e reaches minNormalExp, producing a subnormal (or zero)
// intermediate whose sticky bit absorbs every bit shifted out along the
// way, folding in extraSticky from the caller.
func normalizeWide(wide wideint.U128, e int32, extraSticky uint64) (wideint.U128, int32) {
	const wantBits = 116

	bl := wide.BitLen()
	switch {
	case bl > wantBits:
		shift := uint(bl - wantBits)
		sticky := wide.StickyBelow(shift) | extraSticky
		wide = wide.Shr(shift)
		if sticky != 0 {
			wide = setSticky(wide)
		}
		e += int32(shift)
	case bl < wantBits:
		shift := uint(wantBits - bl)
		if int64(e)-int64(shift) < int64(minNormalExp) {
			// Shift only until e reaches the smallest normal exponent,
			// leaving a subnormal intermediate; an e already below it is
			// handled by the subnormal branch below.
			shift = 0
			if e > minNormalExp {
				shift = uint(e - minNormalExp)
			}
		}
		wide = wide.Shl(shift)
		e -= int32(shift)
		if extraSticky != 0 {
			wide = setSticky(wide)
		}
	default:
		if extraSticky != 0 {
			wide = setSticky(wide)
		}
	}

	if e < minNormalExp {
		shift := uint(minNormalExp - e)
		if shift > 200 {
			// Far below the subnormal range: everything collapses to a
			// single sticky bit, rounding to zero or the smallest
			// subnormal depending on mode.
			return wideint.U128FromUint64(boolToU64(!wide.IsZero())), minNormalExp
		}
		sticky := wide.StickyBelow(shift)
		wide = wide.Shr(shift)
		if sticky != 0 {
			wide = setSticky(wide)
		}
		e = minNormalExp
	}

	return wide, e
}

func setSticky(wide wideint.U128) wideint.U128 {
	return wide.Or(wideint.U128FromUint64(1))
}

func boolToU64(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// roundToEven applies round-to-nearest-ties-to-even on the three
// reserved low bits of wide (guard = bit 2, round = bit 1, sticky =
// bit 0), returning the rounded 113-bit-or-narrower kept significand and
// a possibly incremented exponent (incrementing happens when rounding a
// kept value of all-ones carries into a new top bit).
func roundToEven(wide wideint.U128, e int32) (wideint.U128, int32) {
	g := wide.Bit(2)
	r := wide.Bit(1)
	s := wide.Bit(0)
	keptLSB := wide.Bit(3)

	roundUp := g == 1 && (r == 1 || s == 1 || keptLSB == 1)

	kept := wide.Shr(3)
	if !roundUp {
		return kept, e
	}

	kept, carry := kept.Add(wideint.One128)
	if carry != 0 || kept.BitLen() > implicitAt+1 {
		kept = kept.Shr(1)
		e++
	}
	return kept, e
}

func signedZero(sign bool) Float128 {
	var f Float128
	if sign {
		f.hi = 1 << 63
	}
	return f
}

// roundIntegerPart rounds the integer bits of a finite nonzero v given
// its fractional bit count, applying the chosen away-from-zero/toward-
// even policy, and re-normalizing on mantissa carry-out. It is the shared
// core of Round, Floor, Ceiling, and Trunc for |v| in the binary range
// where v has both integer and fractional bits.
func roundIntegerPart(sign bool, e int32, m wideint.U128, fracBits uint, roundUp bool) Float128 {
	intPart := m.Shr(fracBits).Shl(fracBits)
	if !roundUp {
		return encodeFinite(sign, e, intPart)
	}
	bumped, carry := intPart.Add(wideint.One128.Shl(fracBits))
	if carry != 0 || bumped.BitLen() > implicitAt+1 {
		bumped = bumped.Shr(1)
		e++
	}
	return encodeFinite(sign, e, bumped)
}

// Round rounds v to the nearest integer, ties to even (§4.5.7), except
// that every |v| in [0.5, 1) rounds to ±1, so ±0.5 gives ±1 rather than
// ±0.
func Round(v Float128) Float128 {
	if !v.IsFinite() || v.IsZero() {
		return v
	}
	sign := v.Sign()
	e := v.UnbiasedExponent()
	switch {
	case e < -1:
		return signedZero(sign)
	case e == -1:
		return One1Signed(sign)
	case e >= int32(sigBits):
		return v
	}

	m := v.Significand()
	fracBits := uint(sigBits) - uint(e)
	fracMask := wideint.One128.Shl(fracBits)
	fracMask, _ = fracMask.Sub(wideint.One128)
	frac := m.And(fracMask)
	if frac.IsZero() {
		return v
	}

	halfBit := frac.Bit(fracBits - 1)
	below := frac.And(fracMask.Shr(1)) // bits strictly below the half position
	restNonzero := !below.IsZero()
	intLSB := m.Bit(fracBits) == 1

	roundUp := halfBit == 1 && (restNonzero || intLSB)
	return roundIntegerPart(sign, e, m, fracBits, roundUp)
}

// Floor returns the largest integral value <= v.
func Floor(v Float128) Float128 { return roundDirected(v, true) }

// Ceiling returns the smallest integral value >= v.
func Ceiling(v Float128) Float128 { return roundDirected(v, false) }

func roundDirected(v Float128, towardNegInf bool) Float128 {
	if !v.IsFinite() || v.IsZero() {
		return v
	}
	sign := v.Sign()
	e := v.UnbiasedExponent()
	roundAwayFromZero := (towardNegInf && sign) || (!towardNegInf && !sign)

	if e < 0 {
		if roundAwayFromZero {
			return One1Signed(sign)
		}
		return signedZero(sign)
	}
	if e >= int32(sigBits) {
		return v
	}

	m := v.Significand()
	fracBits := uint(sigBits) - uint(e)
	fracMask := wideint.One128.Shl(fracBits)
	fracMask, _ = fracMask.Sub(wideint.One128)
	frac := m.And(fracMask)
	if frac.IsZero() {
		return v
	}

	return roundIntegerPart(sign, e, m, fracBits, roundAwayFromZero)
}

// Trunc returns v rounded toward zero (the integer part).
func Trunc(v Float128) Float128 {
	if !v.IsFinite() || v.IsZero() {
		return v
	}
	sign := v.Sign()
	e := v.UnbiasedExponent()
	if e < 0 {
		return signedZero(sign)
	}
	if e >= int32(sigBits) {
		return v
	}
	m := v.Significand()
	fracBits := uint(sigBits) - uint(e)
	return roundIntegerPart(sign, e, m, fracBits, false)
}

// Modf splits v into integer and fractional parts, both carrying v's
// sign, per the conventional math.Modf contract.
func Modf(v Float128) (intPart, frac Float128) {
	if !v.IsFinite() {
		if v.IsNaN() {
			return v, v
		}
		return v, signedZero(v.Sign())
	}
	ip := Trunc(v)
	fr := Sub(v, ip, nil)
	return ip, fr
}

// One1Signed returns +1 or -1.
func One1Signed(sign bool) Float128 {
	if sign {
		return negOneBits
	}
	return oneBits
}

// RoundDigits rounds v to the given number of fractional decimal digits
// (§4.5.7's round(x, digits)), using the pow-10 table for digits in
// [0,37]. digits >= 38 returns v unchanged; digits < 0 is an argument
// error (the only rounding mode this operation supports is
// ties-to-even, matching the Non-goal that excludes other modes here).
func RoundDigits(v Float128, digits int) (Float128, error) {
	if digits < 0 {
		return qNaNBits, ErrArgument
	}
	if digits >= 38 || !v.IsFinite() || v.IsZero() {
		return v, nil
	}
	ensureTables()
	scale := pow10Table[digits]
	scaled := Mul(v, scale, nil)
	rounded := Round(scaled)
	result := Div(rounded, scale, nil)
	return result, nil
}
