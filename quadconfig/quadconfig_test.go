package quadconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trippwill/go-quad128/quad"
)

func TestParseAppliesOverrides(t *testing.T) {
	data := []byte(`
precision: 10
rounding: toward-zero
decimal: ","
thousands: "."
negative_pattern: parens
nan: "not-a-number"
positive_infinity: "inf"
negative_infinity: "-inf"
`)
	ctx, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, uint(10), ctx.Precision)
	assert.Equal(t, quad.RoundTowardZero, ctx.Rounding)
	assert.Equal(t, ',', ctx.Locale.Decimal)
	assert.Equal(t, '.', ctx.Locale.Thousands)
	assert.Equal(t, quad.NegativeParens, ctx.NegativePattern)
	assert.Equal(t, "not-a-number", ctx.Tokens.NaN)
	assert.Equal(t, "inf", ctx.Tokens.PositiveInf)
	assert.Equal(t, "-inf", ctx.Tokens.NegativeInf)
}

func TestParseLeavesDefaultsForBlankFields(t *testing.T) {
	ctx, err := Parse([]byte(`precision: 5`))
	require.NoError(t, err)
	assert.Equal(t, uint(5), ctx.Precision)
	assert.Equal(t, quad.RoundTiesToEven, ctx.Rounding)
	assert.Equal(t, quad.DefaultLocale, ctx.Locale)
}

func TestParseRejectsUnknownRounding(t *testing.T) {
	_, err := Parse([]byte(`rounding: sideways`))
	assert.Error(t, err)
}

func TestParseRejectsUnknownNegativePattern(t *testing.T) {
	_, err := Parse([]byte(`negative_pattern: upside-down`))
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/to/config.yaml")
	assert.Error(t, err)
}
