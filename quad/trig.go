package quad

// Sin, Cos, and the rest of the circular functions are built on a CORDIC
// rotation using the theta/gain tables bootstrapped in tables.go, the
// standard software-FPU technique for transcendentals when no hardware
// FPU (and hence no fast hardware sin/cos) is available: every step is a
// shift, add, and table lookup, never a Taylor series evaluated at full
// precision.

// Sin returns sin(x).
func Sin(x Float128) Float128 {
	s, _ := sinCos(x)
	return s
}

// Cos returns cos(x).
func Cos(x Float128) Float128 {
	_, c := sinCos(x)
	return c
}

// SinCos returns sin(x) and cos(x) together, sharing the CORDIC rotation.
func SinCos(x Float128) (sin, cos Float128) { return sinCos(x) }

func sinCos(x Float128) (Float128, Float128) {
	if !x.IsFinite() {
		return qNaNBits, qNaNBits
	}
	ensureTables()

	sign := x.Sign()
	mag := x
	if sign {
		mag = negate(x)
	}

	// Range-reduce to [-pi, pi] by subtracting the nearest multiple of
	// tau, then to the CORDIC-native [-pi/2, pi/2] by reflecting through
	// the axis when necessary.
	k := Round(Div(mag, tauBits, nil))
	mag = Sub(mag, Mul(k, tauBits, nil), nil)

	flipSign := false
	if Less(piHalfBits, mag) {
		mag = Sub(piBits, mag, nil)
		flipSign = true
	} else if Less(mag, negate(piHalfBits)) {
		mag = Sub(negate(piBits), mag, nil)
		flipSign = true
	}

	// Each rotation step grows the vector by 1/cos(theta_k), so starting
	// from (K_n, 0) ends on the unit circle.
	cx := cordicGain
	cy := zeroBits
	angle := mag

	for k := 0; k < cordicN; k++ {
		step := ScaleB(oneBits, -k)
		dx := Mul(cy, step, nil)
		dy := Mul(cx, step, nil)
		if !angle.Sign() {
			cx = Sub(cx, dx, nil)
			cy = Add(cy, dy, nil)
			angle = Sub(angle, cordicTheta[k], nil)
		} else {
			cx = Add(cx, dx, nil)
			cy = Sub(cy, dy, nil)
			angle = Add(angle, cordicTheta[k], nil)
		}
	}

	sinV, cosV := cy, cx
	if flipSign {
		cosV = negate(cosV)
	}
	if sign {
		sinV = negate(sinV)
	}
	return sinV, cosV
}

// Tan returns tan(x) = sin(x)/cos(x).
func Tan(x Float128) Float128 {
	s, c := sinCos(x)
	return Div(s, c, nil)
}

// SinPi returns sin(pi*x), computed as Sin(x*Pi()); there is no separate
// reduction for x near an integer.
func SinPi(x Float128) Float128 {
	ensureTables()
	return Sin(Mul(x, piBits, nil))
}

// CosPi returns cos(pi*x).
func CosPi(x Float128) Float128 {
	ensureTables()
	return Cos(Mul(x, piBits, nil))
}

// Atan returns atan(x) via Newton's method on tan(y)-x=0, i.e. the
// iteration y_{n+1} = y_n - (tan(y_n)-x)*cos(y_n)^2 = y_n -
// sin(y_n)*cos(y_n) + x*cos(y_n)^2, seeded with y_0 = x for |x| <= 1;
// for |x| > 1 it returns pi/2 - atan(1/|x|) with the matching sign.
func Atan(x Float128) Float128 {
	ensureTables()
	if x.IsZero() {
		return x
	}
	sign := x.Sign()
	mag := x
	if sign {
		mag = negate(x)
	}

	var y Float128
	if Less(oneBits, mag) {
		inv := Div(oneBits, mag, nil)
		y = Sub(piHalfBits, atanSmall(inv), nil)
	} else {
		y = atanSmall(mag)
	}
	if sign {
		y = negate(y)
	}
	return y
}

// atanSmall runs 25 Newton iterations on |x| <= 1, seeded with x itself
// (see nearestCordicAngle).
func atanSmall(x Float128) Float128 {
	y := nearestCordicAngle(x)
	for i := 0; i < 25; i++ {
		s, c := sinCos(y)
		c2 := Mul(c, c, nil)
		y = Add(y, Mul(Sub(x, Div(s, c, nil), nil), c2, nil), nil)
	}
	return y
}

func nearestCordicAngle(x Float128) Float128 {
	// A reasonable seed: x itself for small x (tan(x) ~ x near 0).
	return x
}

// Atan2 returns the angle of the vector (x, y) in (-pi, pi], handling
// all four quadrants and the axis cases per the conventional atan2
// contract.
func Atan2(y, x Float128) Float128 {
	ensureTables()
	if x.IsZero() && y.IsZero() {
		if y.Sign() {
			if x.Sign() {
				return negate(piBits)
			}
			return negZeroBits
		}
		if x.Sign() {
			return piBits
		}
		return zeroBits
	}
	if x.IsZero() {
		if y.Sign() {
			return negate(piHalfBits)
		}
		return piHalfBits
	}
	r := Atan(Div(y, x, nil))
	if x.Sign() {
		if y.Sign() {
			return Sub(r, piBits, nil)
		}
		return Add(r, piBits, nil)
	}
	return r
}

// Asin returns asin(x) = atan(x / sqrt(1-x^2)), with the axis cases
// handled directly.
func Asin(x Float128) Float128 {
	ensureTables()
	if Equal(x, oneBits) {
		return piHalfBits
	}
	if Equal(x, negOneBits) {
		return negate(piHalfBits)
	}
	one := oneBits
	x2 := Mul(x, x, nil)
	denom := Sqrt(Sub(one, x2, nil))
	return Atan(Div(x, denom, nil))
}

// Acos returns acos(x) = pi/2 - asin(x).
func Acos(x Float128) Float128 {
	ensureTables()
	return Sub(piHalfBits, Asin(x), nil)
}
