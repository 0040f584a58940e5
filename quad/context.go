package quad

import "github.com/trippwill/go-quad128/quad/wideint"

// Locale configures the decimal separator and thousands separator
// accepted when parsing and emitted when formatting, mirroring the
// teacher's currency.ParseOpts / fixedpoint.Locale split between the
// storage layer and the text layer.
type Locale struct {
	Decimal   rune
	Thousands rune
}

// DefaultLocale matches conventional US formatting.
var DefaultLocale = Locale{Decimal: '.', Thousands: ','}

// NegativePattern selects where the negative-number sign token is placed
// when formatting (§6.2). Pattern 0 additionally allows parsing a
// parenthesized value as negative.
type NegativePattern uint8

const (
	NegativeParens          NegativePattern = iota // (1.5)
	NegativeLeadingSign                            // -1.5
	NegativeLeadingSignSpace                       // - 1.5
	NegativeTrailingSign                           // 1.5-
	NegativeTrailingSignSpace                      // 1.5 -
)

const maxNegativePattern = NegativeTrailingSignSpace

// TextTokens configures the NaN/Infinity spellings accepted by Parse and
// emitted by Format (§6.2).
type TextTokens struct {
	NaN          string
	PositiveInf  string
	NegativeInf  string
}

var DefaultTextTokens = TextTokens{
	NaN:         "NaN",
	PositiveInf: "Infinity",
	NegativeInf: "-Infinity",
}

// Context bundles the configuration threaded through parsing, formatting,
// and the optional digit-rounding/narrowing helpers: precision (decimal
// significant digits kept by Format), a Rounding mode (carried and
// loaded from configuration, but read by no operation, all of which
// round ties-to-even), a Locale, a
// NegativePattern, and TextTokens. It also accumulates Signal conditions
// raised since the last ClearSignals call, the same Context-as-side-
// channel idiom as the teacher's fixedpoint.Context.
type Context struct {
	Precision       uint
	Rounding        Rounding
	Locale          Locale
	NegativePattern NegativePattern
	Tokens          TextTokens

	// Accelerator selects the §4.2 capability seam Mul and Fma route their
	// 64x64->128 cross products through. Nil means wideint.Host, the
	// math/bits-backed default; set it to wideint.Soft to force the
	// pure-software fallback (e.g. for cross-checking on an unfamiliar
	// host).
	Accelerator wideint.Accelerator

	signals Signal
	traps   Signal
}

// DefaultPrecision is the number of significant decimal digits Format
// emits by default, matching §4.7's round-trip guarantee for values this
// package itself produced.
const DefaultPrecision = 38

// NewContext returns a Context with the package defaults: 38-digit
// precision, ties-to-even rounding, the default locale, a leading-sign
// negative pattern, and the default NaN/Infinity tokens.
func NewContext() *Context {
	return &Context{
		Precision:       DefaultPrecision,
		Rounding:        DefaultRoundingMode,
		Locale:          DefaultLocale,
		NegativePattern: NegativeLeadingSign,
		Tokens:          DefaultTextTokens,
		Accelerator:     wideint.Host,
	}
}

// SetTraps configures which signals, when raised, should be considered
// by HandleSignals.
func (c *Context) SetTraps(s Signal) { c.traps = s }

// Signals returns the conditions raised since the context was created or
// last cleared.
func (c *Context) Signals() Signal { return c.signals }

// ClearSignals resets the accumulated signal state.
func (c *Context) ClearSignals() { c.signals = SignalClear }

func (c *Context) raise(s Signal) {
	if c == nil {
		return
	}
	c.signals |= s
}

// HandleSignals returns fallback if any trapped signal was raised since
// the last clear, else original. It mirrors fixedpoint.Context's
// same-named method.
func (c *Context) HandleSignals(original, fallback Float128) Float128 {
	if c == nil {
		return original
	}
	if c.signals&c.traps != 0 {
		return fallback
	}
	return original
}

func clampContext(ctx *Context) *Context {
	if ctx == nil {
		return NewContext()
	}
	return ctx
}
