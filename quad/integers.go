package quad

// Checked and saturating conversions to the narrower integer widths
// (§5), built on top of Int64/Uint64 and a direct clamp-to-range for the
// saturation arithmetic, the same idiom the teacher's currency package
// uses for its own bounds checks.

// ToInt8 returns v truncated toward zero as an int8, or false if v does
// not fit.
func ToInt8(v Float128) (int8, bool) { return checkedNarrow[int8](v) }

// ToInt16 returns v truncated toward zero as an int16, or false if v
// does not fit.
func ToInt16(v Float128) (int16, bool) { return checkedNarrow[int16](v) }

// ToInt32 returns v truncated toward zero as an int32, or false if v
// does not fit.
func ToInt32(v Float128) (int32, bool) { return checkedNarrow[int32](v) }

// ToUint8 returns v truncated toward zero as a uint8, or false if v does
// not fit.
func ToUint8(v Float128) (uint8, bool) { return checkedNarrowUnsigned[uint8](v) }

// ToUint16 returns v truncated toward zero as a uint16, or false if v
// does not fit.
func ToUint16(v Float128) (uint16, bool) { return checkedNarrowUnsigned[uint16](v) }

// ToUint32 returns v truncated toward zero as a uint32, or false if v
// does not fit.
func ToUint32(v Float128) (uint32, bool) { return checkedNarrowUnsigned[uint32](v) }

func checkedNarrow[I int8 | int16 | int32](v Float128) (I, bool) {
	n, ok := Int64(v)
	if !ok {
		return 0, false
	}
	var lo, hi int64
	switch any(I(0)).(type) {
	case int8:
		lo, hi = -1<<7, 1<<7-1
	case int16:
		lo, hi = -1<<15, 1<<15-1
	case int32:
		lo, hi = -1<<31, 1<<31-1
	}
	if n < lo || n > hi {
		return 0, false
	}
	return I(n), true
}

func checkedNarrowUnsigned[I uint8 | uint16 | uint32](v Float128) (I, bool) {
	n, ok := Uint64(v)
	if !ok {
		return 0, false
	}
	var hi uint64
	switch any(I(0)).(type) {
	case uint8:
		hi = 1<<8 - 1
	case uint16:
		hi = 1<<16 - 1
	case uint32:
		hi = 1<<32 - 1
	}
	if n > hi {
		return 0, false
	}
	return I(n), true
}

// SaturatingInt64 truncates toward zero, clamping to [math.MinInt64,
// math.MaxInt64] on overflow and mapping NaN to 0, instead of reporting
// failure the way Int64 does.
func SaturatingInt64(v Float128) int64 {
	if v.IsNaN() {
		return 0
	}
	if n, ok := Int64(v); ok {
		return n
	}
	if v.Sign() {
		return minInt64
	}
	return maxInt64
}

// SaturatingUint64 truncates toward zero, clamping to [0, math.MaxUint64]
// and flooring negative values to 0.
func SaturatingUint64(v Float128) uint64 {
	if v.IsNaN() || v.Sign() {
		return 0
	}
	if n, ok := Uint64(v); ok {
		return n
	}
	return maxUint64
}

const (
	minInt64  = -1 << 63
	maxInt64  = 1<<63 - 1
	maxUint64 = 1<<64 - 1
)

// SaturatingInt32 clamps v to [math.MinInt32, math.MaxInt32].
func SaturatingInt32(v Float128) int32 {
	n := SaturatingInt64(v)
	switch {
	case n < -1<<31:
		n = -1 << 31
	case n > 1<<31-1:
		n = 1<<31 - 1
	}
	return int32(n)
}

// SaturatingUint32 clamps v to [0, math.MaxUint32].
func SaturatingUint32(v Float128) uint32 {
	n := SaturatingUint64(v)
	if n > 1<<32-1 {
		return 1<<32 - 1
	}
	return uint32(n)
}
