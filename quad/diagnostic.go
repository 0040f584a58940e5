package quad

import (
	"fmt"
	"log"
)

// Debug returns a verbose diagnostic rendering of v: sign, raw biased
// exponent code, unbiased exponent, and significand, all in hex/decimal,
// for use in test failure messages and interactive debugging. It is
// deliberately distinct from Format/String, which render the decimal
// value a user would recognize.
func (f Float128) Debug() string {
	switch {
	case f.IsNaN():
		kind := "qNaN"
		if f.IsSignalingNaN() {
			kind = "sNaN"
		}
		return fmt.Sprintf("%s(sign=%v payload=%#x)", kind, f.Sign(), f.rawTrailing())
	case f.IsInfinity():
		return fmt.Sprintf("Inf(sign=%v)", f.Sign())
	case f.IsZero():
		return fmt.Sprintf("Zero(sign=%v)", f.Sign())
	}
	return fmt.Sprintf("Float128(sign=%v expCode=%#x unbiasedExp=%d sig=%#x)",
		f.Sign(), f.rawExpCode(), f.UnbiasedExponent(), f.Significand())
}

// logRoundingAnomaly reports an unexpected internal rounding-path error
// to the standard logger, mirroring the teacher's Context.Parse handling
// of a Round failure it cannot otherwise surface (fixedpoint/context.go).
// Arithmetic itself never panics, so this only fires for conditions this
// package's own invariants should have prevented.
func logRoundingAnomaly(op string, err error) {
	log.Printf("quad: unexpected error in %s: %v", op, err)
}
