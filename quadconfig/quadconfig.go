// Package quadconfig loads a quad.Context's defaults from YAML, the same
// externalized-configuration role currency.ParseOpts plays for
// NewFixedPoint, generalized here to a full file using gopkg.in/yaml.v3
// rather than constructor arguments.
package quadconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/trippwill/go-quad128/quad"
)

// Document is the on-disk shape of a quad.Context: a YAML-friendly
// mirror of quad.Context's exported fields, using plain runes/strings in
// place of quad's own Locale/TextTokens/NegativePattern types so the
// file stays readable without custom YAML marshalers on the core types.
type Document struct {
	Precision       uint   `yaml:"precision"`
	Rounding        string `yaml:"rounding"`
	Decimal         string `yaml:"decimal"`
	Thousands       string `yaml:"thousands"`
	NegativePattern string `yaml:"negative_pattern"`
	NaN             string `yaml:"nan"`
	PositiveInf     string `yaml:"positive_infinity"`
	NegativeInf     string `yaml:"negative_infinity"`
}

var roundingByName = map[string]quad.Rounding{
	"ties-to-even":  quad.RoundTiesToEven,
	"ties-to-away":  quad.RoundTiesToAway,
	"toward-zero":   quad.RoundTowardZero,
	"toward-pos":    quad.RoundTowardPositive,
	"toward-neg":    quad.RoundTowardNegative,
}

var negativePatternByName = map[string]quad.NegativePattern{
	"parens":             quad.NegativeParens,
	"leading-sign":       quad.NegativeLeadingSign,
	"leading-sign-space": quad.NegativeLeadingSignSpace,
	"trailing-sign":      quad.NegativeTrailingSign,
	"trailing-sign-space": quad.NegativeTrailingSignSpace,
}

// Load reads a YAML document from path and returns the quad.Context it
// describes. Any field left blank keeps quad.NewContext's default.
func Load(path string) (*quad.Context, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("quadconfig: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML bytes into a quad.Context, the in-memory
// counterpart of Load for configuration already held in memory (e.g.
// embedded via go:embed).
func Parse(data []byte) (*quad.Context, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("quadconfig: decode: %w", err)
	}
	return doc.Context()
}

// Context builds a quad.Context from the document, applying quad's own
// defaults for any zero-value field.
func (d Document) Context() (*quad.Context, error) {
	ctx := quad.NewContext()

	if d.Precision != 0 {
		ctx.Precision = d.Precision
	}
	if d.Rounding != "" {
		r, ok := roundingByName[d.Rounding]
		if !ok {
			return nil, fmt.Errorf("quadconfig: unknown rounding mode %q", d.Rounding)
		}
		ctx.Rounding = r
	}
	if d.Decimal != "" {
		ctx.Locale.Decimal = []rune(d.Decimal)[0]
	}
	if d.Thousands != "" {
		ctx.Locale.Thousands = []rune(d.Thousands)[0]
	}
	if d.NegativePattern != "" {
		np, ok := negativePatternByName[d.NegativePattern]
		if !ok {
			return nil, fmt.Errorf("quadconfig: unknown negative pattern %q", d.NegativePattern)
		}
		ctx.NegativePattern = np
	}
	if d.NaN != "" {
		ctx.Tokens.NaN = d.NaN
	}
	if d.PositiveInf != "" {
		ctx.Tokens.PositiveInf = d.PositiveInf
	}
	if d.NegativeInf != "" {
		ctx.Tokens.NegativeInf = d.NegativeInf
	}
	return ctx, nil
}
