package quad

import "sync"

// Ilogb, Log2, Log, Log10, Exp, Exp2, Exp10, and Pow round out the
// transcendental surface. Log2 is the workhorse: it is computed by a
// direct bit-recursive range reduction (repeatedly squaring the mantissa
// back into [1,2) and accumulating one reduction bit per step) rather
// than a generic Newton iteration, since division-free squaring
// converges to full precision in a bounded number of steps without
// needing an initial Newton seed.

// Ilogb returns the unbiased base-2 exponent of x's binary representation.
func Ilogb(x Float128) int {
	if !x.IsFinite() || x.IsZero() {
		return 0
	}
	return int(x.UnbiasedExponent())
}

// Log2 returns log2(x).
func Log2(x Float128) Float128 {
	if x.IsNaN() || x.Sign() {
		return qNaNBits
	}
	if x.IsZero() {
		return negate(posInfBits)
	}
	if x.IsInfinity() {
		return x
	}
	if Equal(x, oneBits) {
		return zeroBits
	}

	ensureTables()
	e := x.UnbiasedExponent()
	if x.IsSubnormal() {
		// A subnormal's leading one sits below the implicit-bit position.
		e -= int32(implicitAt + 1 - x.Significand().BitLen())
	}
	mantissa := ScaleB(x, int(-e)) // in [1,2)
	frac := log2Frac(mantissa)
	return Add(FromInt64(int64(e)), frac, nil)
}

// log2Frac computes log2(m) for m in [1,2) via repeated squaring: at
// each step, if m^2 >= 2, halve it and record a 1 bit at the current
// binary place, accumulating log2(m) bit by bit.
func log2Frac(m Float128) Float128 {
	result := zeroBits
	place := ScaleB(oneBits, -1)
	two := FromInt64(2)
	for i := 0; i < 120; i++ {
		m = Mul(m, m, nil)
		if !Less(m, two) {
			m = Mul(m, ScaleB(oneBits, -1), nil)
			result = Add(result, place, nil)
		}
		place = Mul(place, ScaleB(oneBits, -1), nil)
	}
	return result
}

// Log returns the natural logarithm of x.
func Log(x Float128) Float128 {
	ensureTables()
	l2 := Log2(x)
	if !l2.IsFinite() {
		return l2
	}
	return Mul(l2, lnOf2(), nil)
}

// lnOf2 returns ln(2) = 1/log2(e), computed once from the bootstrapped e
// constant.
var ln2Cache Float128
var ln2Once sync.Once

func lnOf2() Float128 {
	ln2Once.Do(func() {
		ensureTables()
		ln2Cache = Div(oneBits, Log2(eBits), nil)
	})
	return ln2Cache
}

// Log10 returns the base-10 logarithm of x.
func Log10(x Float128) Float128 {
	ensureTables()
	return Div(Log(x), lnOf10(), nil)
}

var ln10Cache Float128
var ln10Once sync.Once

func lnOf10() Float128 {
	ln10Once.Do(func() {
		ln10Cache = Log(FromInt64(10))
	})
	return ln10Cache
}

// Exp2 returns 2^x.
func Exp2(x Float128) Float128 {
	if x.IsNaN() {
		return x
	}
	if x.IsZero() {
		return oneBits
	}
	ip := Trunc(x)
	frac, _ := Int64(ip)
	fracPart := Sub(x, ip, nil)

	// 2^fracPart via the same Taylor-in-Horner technique used for the
	// CORDIC bootstrap trig tables: converges quickly since |fracPart|<1.
	result := exp2FracSeries(fracPart)
	return ScaleB(result, int(frac))
}

func exp2FracSeries(x Float128) Float128 {
	ensureTables()
	ln2 := lnOf2()
	y := Mul(x, ln2, nil)
	return expSeries(y)
}

// expSeries evaluates e^x via its Taylor series in Horner form, accurate
// for |x| well under 1 (callers range-reduce first).
func expSeries(x Float128) Float128 {
	const terms = 30
	acc := invFactorial(terms)
	for k := terms - 1; k >= 0; k-- {
		prod := Mul(acc, x, nil)
		acc = Add(invFactorial(k), prod, nil)
	}
	return acc
}

// Exp returns e^x.
func Exp(x Float128) Float128 {
	if x.IsNaN() {
		return x
	}
	if x.IsZero() {
		return oneBits
	}
	if x.IsInfinity() {
		if x.Sign() {
			return zeroBits
		}
		return x
	}
	ensureTables()
	log2e := Log2(eBits)
	scaled := Mul(x, log2e, nil)
	return Exp2(scaled)
}

// Exp10 returns 10^x.
func Exp10(x Float128) Float128 {
	ensureTables()
	return Exp(Mul(x, lnOf10(), nil))
}

// Pow returns x^y.
func Pow(x, y Float128) Float128 {
	if y.IsZero() {
		return oneBits
	}
	if x.IsNaN() || y.IsNaN() {
		return qNaNBits
	}
	if Equal(x, oneBits) {
		return oneBits
	}
	if x.IsZero() {
		if y.Sign() {
			return posInfBits
		}
		return zeroBits
	}
	if x.Sign() && !y.IsInteger() {
		return qNaNBits
	}

	sign := false
	mag := x
	if x.Sign() {
		mag = negate(x)
		if y.IsOddInteger() {
			sign = true
		}
	}

	r := Exp2(Mul(y, Log2(mag), nil))
	if sign {
		return negate(r)
	}
	return r
}
