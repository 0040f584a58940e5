package quad

import "github.com/trippwill/go-quad128/quad/wideint"

// Add, Sub, Mul, Div, and Fma are the IEEE 754 arithmetic primitives
// (§4.5.1-§4.5.4). None of them return a Go error: every domain error
// maps to a NaN or infinity result, per §7's error model, and a non-nil
// ctx additionally has the corresponding Signal bit set on it (mirroring
// the teacher's Context.HandleSignals pattern in fixedpoint/context.go).
// ctx may be nil, in which case the operation still computes the IEEE
// result but no diagnostics are recorded.

// accelFor returns ctx's configured Accelerator, or wideint.Host if ctx is
// nil or was constructed without setting one explicitly.
func accelFor(ctx *Context) wideint.Accelerator {
	if ctx == nil || ctx.Accelerator == nil {
		return wideint.Host
	}
	return ctx.Accelerator
}

// Add returns a+b, correctly rounded.
func Add(a, b Float128, ctx *Context) Float128 {
	if r, ok := specialAdd(a, b, ctx); ok {
		return r
	}
	return addFinite(a, b, ctx)
}

// Sub returns a-b, correctly rounded.
func Sub(a, b Float128, ctx *Context) Float128 {
	return Add(a, negate(b), ctx)
}

func negate(f Float128) Float128 {
	f.hi ^= 1 << 63
	return f
}

// specialAdd handles every combination involving a NaN or an infinity,
// and the case of two zero operands, returning (result, true) if it
// applied. A single zero operand is left to addFinite.
func specialAdd(a, b Float128, ctx *Context) (Float128, bool) {
	if a.IsNaN() || b.IsNaN() {
		return propagateNaN(a, b, ctx), true
	}
	if a.IsInfinity() || b.IsInfinity() {
		switch {
		case a.IsInfinity() && b.IsInfinity():
			if a.Sign() != b.Sign() {
				ctx.raise(SignalInvalidOperation)
				return qNaNBits, true
			}
			return a, true
		case a.IsInfinity():
			return a, true
		default:
			return b, true
		}
	}
	if a.IsZero() && b.IsZero() {
		if a.Sign() && b.Sign() {
			return negZeroBits, true
		}
		if a.Sign() != b.Sign() {
			// x + (-x) with differing signs: +0 except under round-toward-
			// negative, which this package's arithmetic core does not vary
			// by (the core always rounds ties-to-even; directed rounding
			// modes are reserved for the narrowing/boundary operations).
			return zeroBits, true
		}
		return zeroBits, true
	}
	return Float128{}, false
}

func propagateNaN(a, b Float128, ctx *Context) Float128 {
	if a.IsSignalingNaN() || b.IsSignalingNaN() {
		ctx.raise(SignalInvalidOperation)
	}
	if a.IsNaN() {
		return makeQNaN(a.Sign())
	}
	return makeQNaN(b.Sign())
}

// addFinite adds two finite, nonzero (or mixed with a zero already ruled
// significant by the caller) operands by aligning the smaller magnitude's
// significand to the larger's exponent, folding the shifted-out bits into
// a sticky bit, and funneling the result through finishRound.
func addFinite(a, b Float128, ctx *Context) Float128 {
	if a.IsZero() {
		return b
	}
	if b.IsZero() {
		return a
	}

	ae, be := a.UnbiasedExponent(), b.UnbiasedExponent()
	am, bm := a.Significand(), b.Significand()
	as, bs := a.Sign(), b.Sign()

	// Work in a common exponent frame, shifting each significand left by
	// 3 to reserve guard/round/sticky bits.
	am = am.Shl(3)
	bm = bm.Shl(3)

	if ae < be {
		ae, be = be, ae
		am, bm = bm, am
		as, bs = bs, as
	}

	shift := uint(ae - be)
	var sticky uint64
	if shift > 0 {
		if shift >= 128 {
			sticky = boolToU64(!bm.IsZero())
			bm = wideint.Zero128
		} else {
			sticky = bm.StickyBelow(shift)
			bm = bm.Shr(shift)
			if sticky != 0 {
				bm = setSticky(bm)
			}
		}
	}

	if as == bs {
		sum, carry := am.Add(bm)
		if carry != 0 {
			sticky |= sum.Bit(0)
			sum = sum.Shr(1).Or(wideint.U128From(1<<63, 0))
			ae++
		}
		return finishRound(as, sum, ae, sticky)
	}

	// Differing signs: subtract the smaller magnitude from the larger.
	cmp := am.Cmp(bm)
	switch {
	case cmp == 0:
		return zeroBits
	case cmp < 0:
		am, bm = bm, am
		as = bs
	}
	diff, _ := am.Sub(bm)
	return finishRound(as, diff, ae, 0)
}

// Mul returns a*b, correctly rounded.
func Mul(a, b Float128, ctx *Context) Float128 {
	if a.IsNaN() || b.IsNaN() {
		return propagateNaN(a, b, ctx)
	}
	sign := a.Sign() != b.Sign()
	// Any infinity operand, including finite*Inf, yields qNaN here: this
	// matches the source behavior this package mirrors rather than strict
	// IEEE 754 (which defines finite*Inf = signed Inf). Add, by contrast,
	// does follow IEEE 754 for finite+Inf (see specialAdd) — the source's
	// own Add and Mul disagree on this point and both are preserved as-is
	// rather than reconciled.
	if a.IsInfinity() || b.IsInfinity() {
		ctx.raise(SignalInvalidOperation)
		return qNaNBits
	}
	if a.IsZero() || b.IsZero() {
		if sign {
			return negZeroBits
		}
		return zeroBits
	}

	ae, be := a.UnbiasedExponent(), b.UnbiasedExponent()
	am, bm := a.Significand(), b.Significand()

	wide := wideint.Mul128x128Via(accelFor(ctx), am, bm)
	// am and bm each carry their implicit bit at position 112, so their
	// raw integer product carries its own implicit-squared bit near
	// position 224; finishRound wants the exponent expressed relative to
	// a 116-bit window whose implicit bit sits at position 115, hence
	// the 224-115=109 adjustment.
	e := ae + be - 109

	// wide is a 226-bit-or-narrower product of two 113-bit significands,
	// held in a U256; its bit length is 225 or 226. Fold it down to the
	// 116-bit GRS window finishRound expects, carrying anything shifted
	// out below that into a single sticky bit.
	bl := wide.BitLen()
	const wantBits = 116
	var hi128 wideint.U128
	var extraSticky uint64
	if bl > wantBits {
		shift := uint(bl - wantBits)
		extraSticky = wide.StickyBelow(shift)
		hi128 = wide.Shr(shift).Lo()
		e += int32(bl) - int32(wantBits)
	} else {
		hi128 = wide.Lo()
	}

	return finishRound(sign, hi128, e, extraSticky)
}

// Div returns a/b, correctly rounded.
func Div(a, b Float128, ctx *Context) Float128 {
	if a.IsNaN() || b.IsNaN() {
		return propagateNaN(a, b, ctx)
	}
	sign := a.Sign() != b.Sign()
	if a.IsInfinity() && b.IsInfinity() {
		ctx.raise(SignalInvalidOperation)
		return qNaNBits
	}
	if a.IsInfinity() {
		return makeInf(sign)
	}
	if b.IsInfinity() {
		if sign {
			return negZeroBits
		}
		return zeroBits
	}
	if b.IsZero() {
		if a.IsZero() {
			ctx.raise(SignalInvalidOperation)
			return qNaNBits
		}
		ctx.raise(SignalDivisionByZero)
		return makeInf(sign)
	}
	if a.IsZero() {
		if sign {
			return negZeroBits
		}
		return zeroBits
	}

	ae, be := a.UnbiasedExponent(), b.UnbiasedExponent()
	am, bm := a.Significand(), b.Significand()

	// Widen the dividend so the quotient comes out with the 3 GRS bits
	// plus headroom: shift am left so its bit length exceeds bm's by at
	// least 116+64, guaranteeing a 116+-bit quotient from a single
	// 256/128 long division.
	shift := uint(bm.BitLen() - am.BitLen() + wantQuotientBits)
	wideNum := wideint.U256FromU128(am).Shl(shift)
	q, r := wideint.DivRem256By128(wideNum, bm)
	// am, bm carry their implicit bit at 112; widening am by shift before
	// dividing leaves the quotient expressed 115-shift bits below where
	// finishRound's 116-bit window expects its implicit bit, so the
	// exponent needs the matching +115 correction.
	e := ae - be - int32(shift) + 115

	sticky := boolToU64(!r.IsZero())
	return finishRound(sign, q.Lo(), e, sticky)
}

const wantQuotientBits = 120

// Fma returns a*b+c, computed as if to infinite precision and rounded
// exactly once at the end (§4.5.3). The exact 226-bit product and the
// aligned addend are summed in a U256; bits of the smaller operand that
// alignment shifts out are folded into a single sticky bit.
func Fma(a, b, c Float128, ctx *Context) Float128 {
	if a.IsNaN() || b.IsNaN() || c.IsNaN() {
		return propagateNaN3(a, b, c, ctx)
	}
	sign := a.Sign() != b.Sign()
	if (a.IsInfinity() || b.IsInfinity()) && (a.IsZero() || b.IsZero()) {
		ctx.raise(SignalInvalidOperation)
		return qNaNBits
	}
	if a.IsInfinity() || b.IsInfinity() {
		prod := makeInf(sign)
		return Add(prod, c, ctx)
	}
	if a.IsZero() || b.IsZero() {
		var prod Float128
		if sign {
			prod = negZeroBits
		} else {
			prod = zeroBits
		}
		return Add(prod, c, ctx)
	}
	if c.IsInfinity() {
		return c
	}

	ae, be := a.UnbiasedExponent(), b.UnbiasedExponent()
	am, bm := a.Significand(), b.Significand()
	prodWide := wideint.Mul128x128Via(accelFor(ctx), am, bm)
	prodExp := ae + be

	if c.IsZero() {
		return mulRoundOnly(sign, prodWide, prodExp)
	}

	ce := c.UnbiasedExponent()
	cm := c.Significand()
	csign := c.Sign()

	return fmaAlign(sign, prodWide, prodExp, csign, cm, ce, ctx)
}

// fmaAlign performs the shared-exponent alignment and add/subtract for
// Fma once the product (prod, prodExp) and addend (addend, addendExp)
// are both expressed as a U256 w and an exponent exp with value
// w * 2^(exp-224): the product of two significands whose implicit bits
// sit at 112 already has that scale, and the addend is shifted up 112
// bits to match.
func fmaAlign(prodSign bool, prod wideint.U256, prodExp int32, addSign bool, addend wideint.U128, addExp int32, ctx *Context) Float128 {
	addWide := wideint.U256FromU128(addend).Shl(224 - 112)

	var hi, lo wideint.U256
	var hiExp int32
	var loSign, hiSign bool
	if prodExp >= addExp {
		hi, lo = prod, addWide
		hiExp = prodExp
		hiSign, loSign = prodSign, addSign
	} else {
		hi, lo = addWide, prod
		hiExp = addExp
		hiSign, loSign = addSign, prodSign
	}

	shift := uint(hiExp - minInt32(prodExp, addExp))
	var sticky uint64
	if shift > 0 {
		sticky = lo.StickyBelow(shift)
		lo = lo.Shr(shift)
	}

	var sumSign bool
	var sum wideint.U256
	if hiSign == loSign {
		var carry uint64
		sum, carry = hi.Add(lo)
		sumSign = hiSign
		if carry != 0 {
			sticky |= sum.Bit(0)
			sum = sum.Shr(1)
			hiExp++
		}
	} else {
		cmp := hi.Cmp(lo)
		if cmp == 0 && sticky == 0 {
			return zeroBits
		}
		if cmp < 0 {
			hi, lo = lo, hi
			hiSign = loSign
		}
		sum, _ = hi.Sub(lo)
		sumSign = hiSign
	}

	bl := sum.BitLen()
	const wantBits = 116
	var kept wideint.U128
	var extraSticky uint64
	// sum's bit 115 weighs 2^(hiExp-109), the same 224-115 offset Mul uses.
	e := hiExp - 109
	if bl > wantBits {
		s := uint(bl - wantBits)
		extraSticky = sum.StickyBelow(s) | sticky
		kept = sum.Shr(s).Lo()
		e += int32(bl) - int32(wantBits)
	} else {
		kept = sum.Lo()
		extraSticky = sticky
	}

	return finishRound(sumSign, kept, e, extraSticky)
}

func minInt32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func mulRoundOnly(sign bool, wide wideint.U256, prodExp int32) Float128 {
	e := prodExp - 109
	bl := wide.BitLen()
	const wantBits = 116
	if bl <= wantBits {
		return finishRound(sign, wide.Lo(), e, 0)
	}
	shift := uint(bl - wantBits)
	sticky := wide.StickyBelow(shift)
	return finishRound(sign, wide.Shr(shift).Lo(), e+int32(bl)-int32(wantBits), sticky)
}

func propagateNaN3(a, b, c Float128, ctx *Context) Float128 {
	if a.IsSignalingNaN() || b.IsSignalingNaN() || c.IsSignalingNaN() {
		ctx.raise(SignalInvalidOperation)
	}
	switch {
	case a.IsNaN():
		return makeQNaN(a.Sign())
	case b.IsNaN():
		return makeQNaN(b.Sign())
	default:
		return makeQNaN(c.Sign())
	}
}

// Compare returns -1, 0, or 1 as a<b, a==b, or a>b, and a second value
// reporting whether the comparison was well-ordered (false when either
// operand is NaN, matching §4.6's unordered-comparison semantics).
func Compare(a, b Float128) (cmp int, ordered bool) {
	if a.IsNaN() || b.IsNaN() {
		return 0, false
	}
	if a.IsZero() && b.IsZero() {
		return 0, true
	}
	as, bs := a.Sign(), b.Sign()
	switch {
	case as && !bs:
		return -1, true
	case !as && bs:
		return 1, true
	}
	mag := compareMagnitude(a, b)
	if as {
		mag = -mag
	}
	return mag, true
}

func compareMagnitude(a, b Float128) int {
	ae, be := a.UnbiasedExponent(), b.UnbiasedExponent()
	if ae != be {
		if ae < be {
			return -1
		}
		return 1
	}
	return a.Significand().Cmp(b.Significand())
}

// Equal reports whether a and b compare equal under IEEE rules (NaN is
// never equal to anything, including itself; +0 equals -0).
func Equal(a, b Float128) bool {
	cmp, ordered := Compare(a, b)
	return ordered && cmp == 0
}

// Less reports whether a < b under IEEE rules (false for any NaN
// operand).
func Less(a, b Float128) bool {
	cmp, ordered := Compare(a, b)
	return ordered && cmp < 0
}

// ScaleB returns x * 2^n (§4.5.6). The result is exact unless it
// overflows to infinity or falls into the subnormal range, where the
// bits shifted out are rounded to nearest, ties to even.
func ScaleB(x Float128, n int) Float128 {
	if !x.IsFinite() || x.IsZero() {
		return x
	}
	e := x.UnbiasedExponent() + int32(n)
	sign := x.Sign()
	sig := x.Significand()
	// finishRound takes the significand in its 116-bit GRS-extended
	// window (hence the shift by 3), renormalizes a subnormal x, and
	// handles overflow and underflow.
	return finishRound(sign, sig.Shl(3), e, 0)
}

// Remainder returns the IEEE remainder of a/b: a - n*b where n is a/b
// rounded to the nearest integer, ties to even (§4.5.5).
func Remainder(a, b Float128, ctx *Context) Float128 {
	if a.IsNaN() || b.IsNaN() || a.IsInfinity() || b.IsZero() {
		ctx.raise(SignalInvalidOperation)
		return qNaNBits
	}
	if b.IsInfinity() {
		return a
	}
	if a.IsZero() {
		return a
	}
	q := Div(a, b, nil)
	n := Round(q)
	prod := Mul(n, b, nil)
	return Sub(a, prod, ctx)
}

// Mod returns a - n*b where n = Trunc(a/b), the C-library fmod
// convention (result carries a's sign, unlike Remainder).
func Mod(a, b Float128, ctx *Context) Float128 {
	if a.IsNaN() || b.IsNaN() || a.IsInfinity() || b.IsZero() {
		ctx.raise(SignalInvalidOperation)
		return qNaNBits
	}
	if b.IsInfinity() {
		return a
	}
	if a.IsZero() {
		return a
	}
	q := Div(a, b, nil)
	n := Trunc(q)
	prod := Mul(n, b, nil)
	return Sub(a, prod, ctx)
}

// BitIncrement returns the least Float128 greater than x (nextUp, §4.5.6).
func BitIncrement(x Float128) Float128 {
	if x.IsNaN() {
		return x
	}
	if x.IsInfinity() {
		if x.Sign() {
			return encodeFinite(true, maxNormalExp, maxSignificand())
		}
		return x
	}
	if x.IsZero() {
		return Float128{lo: 1}
	}
	hi, lo := x.Bits()
	if x.Sign() {
		if lo == 0 {
			hi--
			lo = ^uint64(0)
		} else {
			lo--
		}
		return Float128{hi: hi, lo: lo}
	}
	lo++
	if lo == 0 {
		hi++
	}
	return Float128{hi: hi, lo: lo}
}

// BitDecrement returns the greatest Float128 less than x (nextDown).
func BitDecrement(x Float128) Float128 {
	return negate(BitIncrement(negate(x)))
}

func maxSignificand() wideint.U128 {
	return trailingMask112.Or(implicitBit112)
}
