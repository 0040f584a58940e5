package wideint

import "math/bits"

// Accelerator is the capability seam described by §4.2: two primitives a
// hardware-assisted backend can replace without changing any observable
// result. Mul128x128Via (and, through it, quad.Mul and quad.Fma via a
// Context's Accelerator field) consumes Bigmul64 for its four 64x64->128
// cross products. Divrem128 has no consumer yet: quad.Div needs a
// 256-bit-dividend/128-bit-divisor quotient, and DivRem256By128's bit-serial
// long division has no decomposition into 128/128 Divrem128 calls short of
// rewriting the algorithm itself, so Div still calls DivRem256By128
// directly.
type Accelerator interface {
	// Bigmul64 returns the full unsigned 64x64->128 product of a and b.
	Bigmul64(a, b uint64) (lo, hi uint64)
	// Divrem128 returns the quotient and remainder of n/d. Precondition:
	// d != 0.
	Divrem128(n, d U128) (q, r U128)
}

// Host is the default Accelerator: it delegates to math/bits, which on
// every Go-supported 64-bit host compiles Mul64/Div64 down to a single
// hardware multiply/divide instruction. This is the "host intrinsic"
// backend described by §4.2.
var Host Accelerator = hostAccelerator{}

// Soft is the pure-software Accelerator: Bigmul64 is built from four
// 32x32 partial products (never assuming a wide hardware multiplier
// exists) and Divrem128 uses the WideInt long-division routine. Useful
// on or for verifying hosts/backends without a native 64x64->128 multiply.
var Soft Accelerator = softAccelerator{}

type hostAccelerator struct{}

func (hostAccelerator) Bigmul64(a, b uint64) (lo, hi uint64) {
	hi, lo = bits.Mul64(a, b)
	return lo, hi
}

func (hostAccelerator) Divrem128(n, d U128) (q, r U128) {
	return n.DivRem(d)
}

type softAccelerator struct{}

func (softAccelerator) Bigmul64(a, b uint64) (lo, hi uint64) {
	return Mul64x64(a, b)
}

func (softAccelerator) Divrem128(n, d U128) (q, r U128) {
	return divRemGeneric(n, d)
}
