package quad

import (
	"math/bits"
	"sync"

	"github.com/trippwill/go-quad128/quad/wideint"
)

// Package-level constants and lookup tables, built once on first use
// rather than at package init so a program that never touches
// trigonometry or decimal rounding never pays for the CORDIC tables.
// This mirrors the teacher's lazy-precision-table pattern (fixedpoint's
// package-level pow-ten cache) generalized with sync.Once for safe
// concurrent first access.

var (
	zeroBits    = Float128{}
	negZeroBits = Float128{hi: 1 << 63}
	oneBits     = encodeFinite(false, 0, implicitBit112)
	negOneBits  = encodeFinite(true, 0, implicitBit112)
	qNaNBits    = makeQNaN(false)
	// sNaNBits is the one signaling bit pattern this package recognizes:
	// exponent all-ones, trailing significand 1 (so it is a NaN), and the
	// sign bit set. The quiet NaN this package otherwise produces has the
	// same exponent and trailing significand with the sign bit clear, so
	// the sign bit alone tells the two apart.
	sNaNBits = Float128{hi: 1<<63 | uint64(expMaxCode)<<48, lo: 1}
	posInfBits = makeInf(false)
	negInfBits = makeInf(true)
)

// pow10Table holds 10^0 .. 10^37, enough to scale any value representable
// exactly as a binary128 integer with up to 38 significant decimal
// digits, matching DefaultPrecision and RoundDigits' documented range.
var pow10Table [38]Float128

// Decimal-literal bootstrap: the transcendental constants are each
// parsed, once, from a 36-significant-digit decimal literal (two more
// digits than binary128's ~34-decimal-digit precision), using
// decimalToFloat128 — the same machinery Parse uses for user input. Pi
// and E are the only two literals parsed; the quarter/half/double
// multiples of pi are derived from Pi by ScaleB, which is an exact bit
// operation and avoids parsing (and rounding) them independently.
var (
	piBits  Float128
	tauBits Float128
	piHalfBits Float128
	piQuarterBits Float128
	eBits   Float128
)

// cordicN is the number of CORDIC rotation steps (and the length of the
// theta/K_n tables): enough that 2^-cordicN is well below binary128's
// unit in the last place.
const cordicN = 118

var (
	cordicTheta [cordicN]Float128
	cordicGain  Float128 // K_n = product of cos(theta_k), k = 0..cordicN-1
)

var bootstrapOnce sync.Once

func ensureTables() {
	bootstrapOnce.Do(func() {
		bootstrapConstants()
		bootstrapPow10()
		bootstrapCordic()
	})
}

// Pi returns the constant pi to full binary128 precision.
func Pi() Float128 { ensureTables(); return piBits }

// Tau returns 2*pi.
func Tau() Float128 { ensureTables(); return tauBits }

// E returns Euler's number to full binary128 precision.
func E() Float128 { ensureTables(); return eBits }

func bootstrapConstants() {
	piBits = decimalToFloat128(false, "314159265358979323846264338327950288", 1)
	eBits = decimalToFloat128(false, "271828182845904523536028747135266250", 1)
	tauBits = ScaleB(piBits, 1)
	piHalfBits = ScaleB(piBits, -1)
	piQuarterBits = ScaleB(piBits, -2)
}

func bootstrapPow10() {
	pow10Table[0] = oneBits
	ten := decimalToFloat128(false, "1", 2)
	for i := 1; i < len(pow10Table); i++ {
		pow10Table[i] = Mul(pow10Table[i-1], ten, nil)
	}
}

// bootstrapCordic fills the theta table with theta_k = atan(2^-k) and
// computes the CORDIC gain K_n = prod(cos(theta_k)). Each theta_k is
// computed with a Taylor-series evaluation of atan in Horner form (not
// the package's general Newton-iteration Atan, which would recursively
// need Sin/Cos, which in turn need this very table), for k >= 1 and
// x = 2^-k:
//
//	atan(x) = x - x^3/3 + x^5/5 - x^7/7 ... (14 terms)
//
// The first omitted term is x^29/29, so for k >= 4 the truncation error
// is below binary128 precision; for k = 1..3 it is not (about 6e-11 at
// k = 1), and those three table entries carry that error. theta_0 =
// atan(1) = pi/4 is taken from the parsed pi constant.
func bootstrapCordic() {
	cordicTheta[0] = piQuarterBits
	gain := cosSmallAngle(cordicTheta[0])
	for k := 1; k < cordicN; k++ {
		x := ScaleB(oneBits, -k)
		cordicTheta[k] = atanSeriesSmall(x)
		gain = Mul(gain, cosSmallAngle(cordicTheta[k]), nil)
	}
	cordicGain = gain
}

// atanSeriesSmall evaluates atan(x) for |x| <= 1/2 via a 14-term
// alternating power series in Horner form:
//
//	atan(x) = x * (1 - x^2*(1/3 - x^2*(1/5 - x^2*(1/7 - ... ))))
func atanSeriesSmall(x Float128) Float128 {
	x2 := Mul(x, x, nil)
	const terms = 14
	acc := invOddInt(2*terms - 1)
	for k := terms - 1; k >= 1; k-- {
		term := invOddInt(2*k - 1)
		prod := Mul(acc, x2, nil)
		acc = Sub(term, prod, nil)
	}
	result := Mul(x, acc, nil)
	return result
}

// cosSmallAngle computes cos(theta) for the small per-step CORDIC angles
// via its own short Taylor series (cos(x) = 1 - x^2/2 + x^4/24 - ...),
// independent of the Sin/Cos package entry points (which are themselves
// built from this very table once bootstrapping completes). Horner form:
//
//	cos(x) = c_0 + x^2*(c_1 + x^2*(... + x^2*c_n))
//
// where c_k = (-1)^k / (2k)!.
func cosSmallAngle(theta Float128) Float128 {
	x2 := Mul(theta, theta, nil)
	const terms = 10
	acc := signedInvFactorial(terms)
	for k := terms - 1; k >= 0; k-- {
		prod := Mul(acc, x2, nil)
		acc = Add(signedInvFactorial(k), prod, nil)
	}
	return acc
}

// signedInvFactorial returns (-1)^k / (2k)!.
func signedInvFactorial(k int) Float128 {
	v := invFactorial(2 * k)
	if k%2 == 1 {
		v.hi ^= 1 << 63
	}
	return v
}

// invOddInt returns 1/n as a Float128 for small odd n, computed once via
// integer-to-float construction and a single division (no table needed:
// n is always < 32).
func invOddInt(n int) Float128 {
	v := intToFloat128(uint64(n))
	one := oneBits
	r := Div(one, v, nil)
	return r
}

var (
	factorialMu    sync.Mutex
	factorialCache = map[int]Float128{}
)

func invFactorial(n int) Float128 {
	factorialMu.Lock()
	defer factorialMu.Unlock()
	if v, ok := factorialCache[n]; ok {
		return v
	}
	f := intToFloat128(1)
	for i := 2; i <= n; i++ {
		f = Mul(f, intToFloat128(uint64(i)), nil)
	}
	r := Div(oneBits, f, nil)
	factorialCache[n] = r
	return r
}

// intToFloat128 widens a small non-negative integer exactly (n fits
// easily within the 113-bit significand for every call site in this
// file, all n < 64!).
func intToFloat128(n uint64) Float128 {
	if n == 0 {
		return zeroBits
	}
	bl := 64 - bits.LeadingZeros64(n)
	e := bl - 1
	sig := wideint.U128FromUint64(n).Shl(uint(implicitAt - e))
	return encodeFinite(false, int32(e), sig)
}
