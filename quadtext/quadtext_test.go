package quadtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/trippwill/go-quad128/quad"
)

func TestFormatPassesThroughSpecialValues(t *testing.T) {
	nan := quad.MustParse("NaN")
	inf := quad.MustParse("Infinity")
	assert.Equal(t, quad.Format(nan, nil), Format(nan, language.English, 2))
	assert.Equal(t, quad.Format(inf, nil), Format(inf, language.English, 2))
}

func TestFormatSymbolPrefixesSymbol(t *testing.T) {
	v := quad.MustParse("19.99")
	out := FormatSymbol(v, "$", language.English, 2)
	assert.Contains(t, out, "$")
	assert.Contains(t, out, "19")
}

func TestParseLocaleKnownAndFallback(t *testing.T) {
	got, err := ParseLocale("1.234,56", language.German)
	assert.NoError(t, err)
	want := quad.MustParse("1234.56")
	assert.True(t, quad.Equal(got, want))

	got2, err := ParseLocale("1234.56", language.English)
	assert.NoError(t, err)
	assert.True(t, quad.Equal(got2, want))

	// An unrecognized base language falls back to the default locale.
	got3, err := ParseLocale("42.5", language.MustParse("zu"))
	assert.NoError(t, err)
	assert.True(t, quad.Equal(got3, quad.MustParse("42.5")))
}
