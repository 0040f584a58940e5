// Package quadtext layers golang.org/x/text locale formatting over the
// quad package's decimal Format/Parse, the same division of labor the
// teacher's currency package draws between FixedPoint's own digit math
// and golang.org/x/text/{language,message,number} for locale display
// (currency/fixed-point.go's FixedPoint.Format).
package quadtext

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/trippwill/go-quad128/quad"
)

// Format renders v under tag's locale conventions (decimal separator,
// digit grouping), at the given number of fractional digits, by first
// obtaining an exact decimal string from quad.Format and handing it to
// golang.org/x/text/number for locale-correct punctuation. Unlike
// quad.Format with a raw quad.Context, this follows the requesting
// locale rather than a manually configured Locale/NegativePattern pair.
func Format(v quad.Float128, tag language.Tag, fractionDigits int) string {
	if v.IsNaN() || v.IsInfinity() {
		return quad.Format(v, nil)
	}

	ctx := quad.NewContext()
	ctx.Precision = quad.DefaultPrecision
	digits := quad.Format(v, ctx)

	p := message.NewPrinter(tag)
	return p.Sprintf("%v", number.Decimal(digits, number.Scale(fractionDigits)))
}

// FormatSymbol renders v as Format does, prefixed by symbol and a space,
// mirroring currency.Amount.Format's "symbol value" layout.
func FormatSymbol(v quad.Float128, symbol string, tag language.Tag, fractionDigits int) string {
	return symbol + " " + Format(v, tag, fractionDigits)
}

// localeSeparators maps a BCP-47 tag to the decimal/thousands
// separators Parse needs; golang.org/x/text does not expose these as a
// simple accessor, so the common locales are tabulated directly, the
// same closed set of conventions currency.ParseOpts hard-codes via its
// constructor arguments.
var localeSeparators = map[string]quad.Locale{
	"en": {Decimal: '.', Thousands: ','},
	"de": {Decimal: ',', Thousands: '.'},
	"fr": {Decimal: ',', Thousands: ' '},
	"ch": {Decimal: '.', Thousands: '\''},
}

// ParseLocale parses s using the decimal/thousands convention for tag's
// base language, falling back to the package default (US English-style)
// locale for an unrecognized tag.
func ParseLocale(s string, tag language.Tag) (quad.Float128, error) {
	base, _ := tag.Base()
	loc, ok := localeSeparators[base.String()]
	if !ok {
		loc = quad.DefaultLocale
	}
	ctx := quad.NewContext()
	ctx.Locale = loc
	return quad.Parse(s, ctx)
}
