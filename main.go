package main

import (
	"fmt"
	"unsafe"

	"github.com/trippwill/go-quad128/quad"
)

func main() {
	println("Float128 size:", unsafe.Sizeof(quad.Float128{}))
	println("--------------------")

	format := "%-10s\t%30s\t%s\n"
	sep := "-------------------------------------------------------------"

	a := quad.MustParse("100.00")
	b := quad.MustParse("200.00")
	c := quad.Add(a, b, nil)

	fmt.Printf(format, "a", quad.Format(a, nil), a.Debug())
	fmt.Printf(format, "b", quad.Format(b, nil), b.Debug())
	fmt.Printf(format, "a+b", quad.Format(c, nil), c.Debug())
	println(sep)

	a = quad.MustParse("-0.50")
	b = quad.MustParse("37.50")
	c = quad.Add(a, b, nil)
	d := quad.Sub(a, b, nil)

	fmt.Printf(format, "a", quad.Format(a, nil), a.Debug())
	fmt.Printf(format, "b", quad.Format(b, nil), b.Debug())
	fmt.Printf(format, "a+b", quad.Format(c, nil), c.Debug())
	fmt.Printf(format, "a-b", quad.Format(d, nil), d.Debug())
	println(sep)

	a = quad.MustParse("0.1")
	c = quad.Mul(a, a, nil)
	fmt.Printf(format, "a", quad.Format(a, nil), a.Debug())
	fmt.Printf(format, "a*a", quad.Format(c, nil), c.Debug())
	println(sep)

	one := quad.FromInt64(1)
	three := quad.FromInt64(3)
	q := quad.Div(one, three, nil)
	fmt.Printf(format, "1", quad.Format(one, nil), one.Debug())
	fmt.Printf(format, "3", quad.Format(three, nil), three.Debug())
	fmt.Printf(format, "1/3", quad.Format(q, nil), q.Debug())
	println(sep)

	ctx := quad.NewContext()
	ctx.Precision = 20
	pi := quad.Pi()
	two := quad.FromInt64(2)
	fmt.Printf(format, "pi", quad.Format(pi, ctx), pi.Debug())
	fmt.Printf(format, "sin(pi/2)", quad.Format(quad.Sin(quad.Div(pi, two, nil)), ctx), "")
	fmt.Printf(format, "sqrt(2)", quad.Format(quad.Sqrt(two), ctx), "")
	println(sep)

	inf := quad.MustParse("Infinity")
	ninf := quad.MustParse("-Infinity")
	nan := quad.MustParse("NaN")
	fmt.Println("Infinity:", quad.Format(inf, nil), "NaN:", quad.Format(nan, nil), "-Infinity:", quad.Format(ninf, nil))
	fmt.Println("Infinity is infinite:", inf.IsInfinity())
	fmt.Println("NaN is NaN:", nan.IsNaN())
}
