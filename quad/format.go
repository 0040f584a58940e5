package quad

import (
	"math/big"
	"strconv"
	"strings"
)

// Format renders v as a decimal string using ctx's Precision, Locale,
// NegativePattern, and TextTokens (or the package defaults if ctx is
// nil), per §6.2. The digit sequence it emits round-trips through Parse
// back to the same bit pattern for any value this package itself
// produced (§4.7's round-trip guarantee).
func Format(v Float128, ctx *Context) string {
	c := clampContext(ctx)

	if v.IsNaN() {
		return signedToken(v.Sign(), c.Tokens.NaN, c)
	}
	if v.IsInfinity() {
		if v.Sign() {
			return c.Tokens.NegativeInf
		}
		return c.Tokens.PositiveInf
	}
	if v.IsZero() {
		return applyNegativePattern(v.Sign(), "0", c)
	}

	digits, exp10 := decimalDigits(v, int(c.Precision))
	body := formatScientificOrPlain(digits, exp10, c)
	return applyNegativePattern(v.Sign(), body, c)
}

func signedToken(sign bool, token string, c *Context) string {
	if !sign {
		return token
	}
	return applyNegativePattern(true, token, c)
}

func applyNegativePattern(sign bool, body string, c *Context) string {
	if !sign {
		return body
	}
	switch c.NegativePattern {
	case NegativeParens:
		return "(" + body + ")"
	case NegativeLeadingSign:
		return "-" + body
	case NegativeLeadingSignSpace:
		return "- " + body
	case NegativeTrailingSign:
		return body + "-"
	case NegativeTrailingSignSpace:
		return body + " -"
	default:
		return "-" + body
	}
}

// decimalDigits extracts up to precision significant decimal digits of
// |v| and the base-10 exponent of the first digit, via the inverse of
// decimalToFloat128: repeated multiplication-by-ten while tracking
// integer/fractional split would lose precision in float arithmetic, so
// this instead converts the exact binary value to a big decimal using
// the significand and exponent directly.
func decimalDigits(v Float128, precision int) (digits string, exp10 int) {
	sign := v.Sign()
	mag := v
	if sign {
		mag = negate(v)
	}
	num, den := exactRatio(mag)
	return ratioToDigits(num, den, precision)
}

// formatScientificOrPlain lays out digits (precision significant digits,
// most significant first) with the decimal point placed exp10 digits
// from the left, using plain notation for exponents in a conventional
// range and scientific notation (mantissa e exponent) outside it,
// matching common decimal-library convention (and the teacher's
// String()/Scientific() split in fixedpoint/strings.go).
func formatScientificOrPlain(digits string, exp10 int, c *Context) string {
	digits = strings.TrimRight(digits, "0")
	if digits == "" {
		digits = "0"
	}

	if exp10 > -6 && exp10 <= 21 {
		return plainLayout(digits, exp10, c)
	}
	return scientificLayout(digits, exp10, c)
}

func plainLayout(digits string, exp10 int, c *Context) string {
	dp := string(c.Locale.Decimal)
	if exp10 <= 0 {
		return "0" + dp + strings.Repeat("0", -exp10) + digits
	}
	if exp10 >= len(digits) {
		return digits + strings.Repeat("0", exp10-len(digits))
	}
	return digits[:exp10] + dp + digits[exp10:]
}

func scientificLayout(digits string, exp10 int, c *Context) string {
	dp := string(c.Locale.Decimal)
	mantissa := digits[:1]
	if len(digits) > 1 {
		mantissa += dp + digits[1:]
	}
	e := exp10 - 1
	return mantissa + "e" + strconv.Itoa(e)
}

// exactRatio expresses |v|'s exact value as num/den, num and den positive
// big.Ints, for a finite nonzero v.
func exactRatio(v Float128) (num, den *big.Int) {
	e := v.UnbiasedExponent()
	sig := v.Significand()
	num = new(big.Int).SetUint64(sig.Hi())
	num.Lsh(num, 64)
	num.Or(num, new(big.Int).SetUint64(sig.Lo()))
	// value = sig * 2^(e-112)
	shift := e - int32(implicitAt)
	den = big.NewInt(1)
	if shift >= 0 {
		num.Lsh(num, uint(shift))
	} else {
		den.Lsh(den, uint(-shift))
	}
	return num, den
}

// ratioToDigits extracts the leading `precision` significant decimal
// digits of num/den and the base-10 exponent of the first digit (i.e.
// the returned digits represent 0.d1d2d3... * 10^exp10), rounding the
// final retained digit to nearest.
func ratioToDigits(num, den *big.Int, precision int) (string, int) {
	if precision <= 0 {
		precision = DefaultPrecision
	}
	// exp10 estimate: count digits in num/den's integer part.
	q := new(big.Int).Div(num, den)
	exp10 := len(q.String())
	if q.Sign() == 0 {
		// value < 1: exp10 is minus the number of zeros between the
		// decimal point and the first significant digit.
		exp10 = 1
		scaled := new(big.Int).Set(num)
		ten := big.NewInt(10)
		for scaled.Cmp(den) < 0 {
			scaled.Mul(scaled, ten)
			exp10--
		}
	}

	// Scale num so that num/den, truncated to an integer, has exactly
	// `precision` digits.
	scale := precision - exp10
	scaledNum := new(big.Int).Set(num)
	if scale >= 0 {
		scaledNum.Mul(scaledNum, pow10Big(scale))
	} else {
		den = new(big.Int).Mul(den, pow10Big(-scale))
	}

	digitsInt, rem := new(big.Int).QuoRem(scaledNum, den, new(big.Int))
	half := new(big.Int).Lsh(rem, 1)
	if half.Cmp(den) >= 0 {
		digitsInt.Add(digitsInt, big.NewInt(1))
	}

	ds := digitsInt.String()
	if len(ds) > precision {
		// Rounding carried an extra digit (e.g. 999...9 -> 1000...0).
		exp10++
		ds = ds[:precision]
	}
	for len(ds) < precision {
		ds += "0"
	}
	return ds, exp10
}
