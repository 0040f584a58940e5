package quad

import (
	"testing"
)

func BenchmarkAdd(b *testing.B) {
	x := MustParse("123.456")
	y := MustParse("789.012")

	for b.Loop() {
		_ = Add(x, y, nil)
	}
}

func BenchmarkMul(b *testing.B) {
	x := MustParse("123.456")
	y := MustParse("789.012")

	for b.Loop() {
		_ = Mul(x, y, nil)
	}
}

func BenchmarkDiv(b *testing.B) {
	x := MustParse("123.456")
	y := MustParse("789.012")

	for b.Loop() {
		_ = Div(x, y, nil)
	}
}

func BenchmarkFma(b *testing.B) {
	x := MustParse("123.456")
	y := MustParse("789.012")
	z := MustParse("1.5")

	for b.Loop() {
		_ = Fma(x, y, z, nil)
	}
}

func BenchmarkParse(b *testing.B) {
	for b.Loop() {
		_ = MustParse("123456789.012345678901234567890123456")
	}
}

func BenchmarkFormat(b *testing.B) {
	x := MustParse("123456789.012345678901234567890123456")
	ctx := NewContext()

	for b.Loop() {
		_ = Format(x, ctx)
	}
}

func BenchmarkSqrt(b *testing.B) {
	x := MustParse("2")

	for b.Loop() {
		_ = Sqrt(x)
	}
}

func BenchmarkSin(b *testing.B) {
	x := MustParse("0.785398163397448")

	for b.Loop() {
		_ = Sin(x)
	}
}
