package quad

// Sqrt, Cbrt, RootN, and Hypot all build on Newton's method seeded from a
// cheap bit-level initial guess (halving the exponent), the standard
// software-FPU square-root technique when no hardware sqrt instruction
// is available.

// Sqrt returns the square root of x.
func Sqrt(x Float128) Float128 {
	if x.IsNaN() {
		return x
	}
	if x.IsZero() {
		return x
	}
	if x.Sign() {
		return qNaNBits
	}
	if x.IsInfinity() {
		return x
	}

	e := x.UnbiasedExponent()
	guessExp := e / 2
	y := ScaleB(oneBits, int(guessExp))

	for i := 0; i < 12; i++ {
		y = Mul(ScaleB(oneBits, -1), Add(y, Div(x, y, nil), nil), nil)
	}
	return y
}

// Cbrt returns the cube root of x (defined for negative x, unlike Sqrt).
func Cbrt(x Float128) Float128 {
	if x.IsNaN() || x.IsZero() || x.IsInfinity() {
		return x
	}
	sign := x.Sign()
	mag := x
	if sign {
		mag = negate(x)
	}

	e := mag.UnbiasedExponent()
	y := ScaleB(oneBits, int(e/3))
	three := FromInt64(3)
	for i := 0; i < 16; i++ {
		y2 := Mul(y, y, nil)
		y = Div(Add(Mul(two(), y, nil), Div(mag, y2, nil), nil), three, nil)
	}
	if sign {
		return negate(y)
	}
	return y
}

func two() Float128 { return FromInt64(2) }

// RootN returns the principal n-th root of x. For even n, x must be
// non-negative; for negative n, it returns the reciprocal n-th root.
func RootN(x Float128, n int) (Float128, error) {
	if n == 0 {
		return qNaNBits, ErrArgument
	}
	if n == 2 {
		return Sqrt(x), nil
	}
	if n == 3 {
		return Cbrt(x), nil
	}
	if n < 0 {
		r, err := RootN(x, -n)
		if err != nil {
			return r, err
		}
		return Div(oneBits, r, nil), nil
	}
	if x.IsZero() || x.IsNaN() {
		return x, nil
	}
	if x.Sign() && n%2 == 0 {
		return qNaNBits, ErrArgument
	}

	sign := x.Sign()
	mag := x
	if sign {
		mag = negate(x)
	}

	nf := FromInt64(int64(n))
	nMinus1 := FromInt64(int64(n - 1))
	e := mag.UnbiasedExponent()
	y := ScaleB(oneBits, int(int(e)/n))
	for i := 0; i < 20; i++ {
		// y_{k+1} = ((n-1)*y_k + x/y_k^(n-1)) / n
		pow := powIntFloat(y, n-1)
		y = Div(Add(Mul(nMinus1, y, nil), Div(mag, pow, nil), nil), nf, nil)
	}
	if sign {
		return negate(y), nil
	}
	return y, nil
}

func powIntFloat(base Float128, n int) Float128 {
	if n == 0 {
		return oneBits
	}
	result := oneBits
	b := base
	for n > 0 {
		if n&1 == 1 {
			result = Mul(result, b, nil)
		}
		b = Mul(b, b, nil)
		n >>= 1
	}
	return result
}

// Hypot returns sqrt(x^2+y^2), computed to avoid spurious overflow by
// scaling out the larger operand's exponent first.
func Hypot(x, y Float128) Float128 {
	x = abs(x)
	y = abs(y)
	if Less(x, y) {
		x, y = y, x
	}
	if x.IsZero() {
		return x
	}
	ratio := Div(y, x, nil)
	inner := Add(oneBits, Mul(ratio, ratio, nil), nil)
	return Mul(x, Sqrt(inner), nil)
}

func abs(x Float128) Float128 {
	x.hi &^= 1 << 63
	return x
}

// Sinh returns (e^x - e^-x) / 2.
func Sinh(x Float128) Float128 {
	ex := Exp(x)
	exInv := Div(oneBits, ex, nil)
	return Mul(ScaleB(oneBits, -1), Sub(ex, exInv, nil), nil)
}

// Cosh returns (e^x + e^-x) / 2.
func Cosh(x Float128) Float128 {
	ex := Exp(x)
	exInv := Div(oneBits, ex, nil)
	return Mul(ScaleB(oneBits, -1), Add(ex, exInv, nil), nil)
}

// Tanh returns sinh(x)/cosh(x).
func Tanh(x Float128) Float128 {
	e2x := Exp(Mul(two(), x, nil))
	num := Sub(e2x, oneBits, nil)
	den := Add(e2x, oneBits, nil)
	return Div(num, den, nil)
}

// Asinh returns the inverse hyperbolic sine: ln(x + sqrt(x^2+1)).
func Asinh(x Float128) Float128 {
	inner := Sqrt(Add(Mul(x, x, nil), oneBits, nil))
	return Log(Add(x, inner, nil))
}

// Acosh returns the inverse hyperbolic cosine: ln(x + sqrt(x^2-1)), for
// x >= 1.
func Acosh(x Float128) Float128 {
	inner := Sqrt(Sub(Mul(x, x, nil), oneBits, nil))
	return Log(Add(x, inner, nil))
}

// Atanh returns the inverse hyperbolic tangent: 0.5*ln((1+x)/(1-x)).
func Atanh(x Float128) Float128 {
	num := Add(oneBits, x, nil)
	den := Sub(oneBits, x, nil)
	return Mul(ScaleB(oneBits, -1), Log(Div(num, den, nil)), nil)
}
