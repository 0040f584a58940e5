package quad

import (
	"math/big"

	"github.com/trippwill/go-quad128/quad/wideint"
)

// decimalToFloat128 converts an exact decimal value, given as an unsigned
// digit string and a base-10 exponent (value = 0.digits * 10^pointExp,
// i.e. pointExp counts the digits before the decimal point), into the
// nearest Float128 under round-to-nearest-ties-to-even. It is the shared
// core behind both Parse (parse.go) and the bootstrap constants in
// tables.go, and follows the teacher's strings.go precedent of reaching
// for math/big to do exact decimal scratch arithmetic rather than
// hand-rolling arbitrary-precision decimal math.
//
// The conversion forms the value exactly as a big.Int numerator over a
// big.Int denominator (a power of ten), finds the binary exponent, and
// takes the significand from a single integer division of the numerator,
// scaled by a power of two, by the denominator; twice the remainder is
// compared with the denominator for the round-to-nearest decision. No
// floating intermediate is used.
func decimalToFloat128(sign bool, digits string, pointExp int) Float128 {
	if digits == "" {
		return signedZero(sign)
	}
	// Strip leading zeros; each one moves the decimal point one place
	// (0.00d * 10^p == 0.d * 10^(p-2)), so pointExp shrinks to match.
	lead := 0
	for lead < len(digits)-1 && digits[lead] == '0' {
		lead++
	}
	digits = digits[lead:]
	pointExp -= lead
	if digits == "0" {
		return signedZero(sign)
	}

	num := new(big.Int)
	num.SetString(digits, 10)
	// value = num * 10^(pointExp - len(digits))
	shift := pointExp - len(digits)

	den := big.NewInt(1)
	if shift < 0 {
		den = pow10Big(-shift)
	} else {
		num = new(big.Int).Mul(num, pow10Big(shift))
	}

	if num.Sign() == 0 {
		return signedZero(sign)
	}

	// Binary-exponent estimate: find e such that 2^e <= num/den < 2^(e+1).
	e := bitLength(num) - bitLength(den)
	// Refine by comparing num against den<<e directly (handles the off-
	// by-one the bit-length subtraction can introduce either direction).
	for cmpShifted(num, den, e) < 0 {
		e--
	}
	for cmpShifted(num, den, e+1) >= 0 {
		e++
	}

	// Extract 113 significant bits (implicit bit plus 112 trailing) by
	// computing floor(num * 2^(112-e) / den) and using the remainder for
	// the round/sticky decision. Below the normal range only the bits at
	// or above 2^(minNormalExp-112) exist, so the extraction starts there
	// and the rounding lands on the subnormal's last bit.
	if e < minNormalExp {
		e = minNormalExp
	}
	shiftBits := 112 - e
	var scaledNum *big.Int
	if shiftBits >= 0 {
		scaledNum = new(big.Int).Lsh(num, uint(shiftBits))
	} else {
		den = new(big.Int).Lsh(den, uint(-shiftBits))
		scaledNum = num
	}

	q, r := new(big.Int).QuoRem(scaledNum, den, new(big.Int))
	sig := bigToU128(q)

	half := new(big.Int).Lsh(r, 1)
	cmpHalf := half.Cmp(den)
	exact := r.Sign() == 0

	roundUp := false
	if !exact {
		keptOdd := sig.Bit(0) == 1
		roundUp = roundDecision(RoundTiesToEven, sign, signOfCmp(cmpHalf), keptOdd)
	}

	if roundUp {
		bumped, carry := sig.Add(wideint.One128)
		if carry != 0 || bumped.BitLen() > implicitAt+1 {
			bumped = bumped.Shr(1)
			e++
		}
		return finishDecimalEncode(sign, e, bumped)
	}
	return finishDecimalEncode(sign, e, sig)
}

func signOfCmp(c int) int {
	switch {
	case c < 0:
		return -1
	case c > 0:
		return 1
	default:
		return 0
	}
}

// finishDecimalEncode packs an already-rounded significand at unbiased
// exponent e into a Float128: a 113-bit one (bit 112 set) for a normal
// value, or a narrower one at e == minNormalExp for a subnormal. Exponent
// overflow gives infinity. An e below minNormalExp is shifted up to it
// with the shifted-out bits dropped, not rounded; decimalToFloat128
// never passes one.
func finishDecimalEncode(sign bool, e int, sig wideint.U128) Float128 {
	if e > maxNormalExp {
		return makeInf(sign)
	}
	if e < minNormalExp {
		shift := uint(minNormalExp - e)
		if shift >= 113 {
			return signedZero(sign)
		}
		sig = sig.Shr(shift)
		e = minNormalExp
	}
	return encodeFinite(sign, int32(e), sig)
}

func pow10Big(n int) *big.Int {
	if n <= 0 {
		return big.NewInt(1)
	}
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

func bitLength(n *big.Int) int { return n.BitLen() }

// cmpShifted compares num against den<<e (e may be negative, meaning
// den>>(-e) with the convention that a negative shift only matters up to
// sign, since both operands are positive here).
func cmpShifted(num, den *big.Int, e int) int {
	if e >= 0 {
		shifted := new(big.Int).Lsh(den, uint(e))
		return num.Cmp(shifted)
	}
	shifted := new(big.Int).Lsh(num, uint(-e))
	return shifted.Cmp(den)
}

func bigToU128(n *big.Int) wideint.U128 {
	var lo, hi uint64
	bz := n.Bytes()
	var buf [16]byte
	if len(bz) > 16 {
		bz = bz[len(bz)-16:]
	}
	copy(buf[16-len(bz):], bz)
	for i := 0; i < 8; i++ {
		hi = hi<<8 | uint64(buf[i])
	}
	for i := 8; i < 16; i++ {
		lo = lo<<8 | uint64(buf[i])
	}
	return wideint.U128From(hi, lo)
}
