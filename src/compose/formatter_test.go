package compose

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestDeriveFormatterOptionsDefaults(t *testing.T) {
	want := FormatterOptions{
		EndOfLine:      "auto",
		Semi:           false,
		SingleQuote:    true,
		TabWidth:       2,
		TrailingComma:  "all",
		UseTabs:        false,
		BracketSpacing: true,
		QuoteProps:     "consistent",
		ArrowParens:    "avoid",
	}

	if diff := cmp.Diff(want, DeriveFormatterOptions(Style{})); diff != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestDeriveFormatterOptionsTable(t *testing.T) {
	indents := []int{0, 2, 4, 8, IndentTab}
	quotes := []string{"", QuotesSingle, QuotesDouble}
	semis := []*bool{nil, Bool(false), Bool(true)}
	commas := []string{"", CommaDangleNever, CommaDangleAlways, CommaDangleAlwaysMultiline, CommaDangleOnlyMultiline}

	for _, indent := range indents {
		for _, q := range quotes {
			for _, semi := range semis {
				for _, comma := range commas {
					got := DeriveFormatterOptions(Style{Indent: indent, Quotes: q, Semi: semi, CommaDangle: comma})

					wantWidth := indent
					switch indent {
					case 0, IndentTab:
						wantWidth = 2
					}
					assert.Equal(t, wantWidth, got.TabWidth)
					assert.Equal(t, indent == IndentTab, got.UseTabs)
					assert.Equal(t, q != QuotesDouble, got.SingleQuote)
					assert.Equal(t, semi != nil && *semi, got.Semi)
					if comma == CommaDangleNever {
						assert.Equal(t, TrailingCommaNone, got.TrailingComma)
					} else {
						assert.Equal(t, TrailingCommaAll, got.TrailingComma)
					}
				}
			}
		}
	}
}

func TestDeriveFormatterOptionsQuoteProps(t *testing.T) {
	tests := map[string]string{
		"":                     "consistent",
		"consistent":           "consistent",
		"consistent-as-needed": "consistent",
		"as-needed":            "as-needed",
		"always":               "preserve",
		"bogus":                "preserve",
	}
	for in, want := range tests {
		got := DeriveFormatterOptions(Style{QuoteProps: in})
		assert.Equal(t, want, got.QuoteProps, "quoteProps %q", in)
	}
}

func TestDeriveFormatterOptionsFlags(t *testing.T) {
	got := DeriveFormatterOptions(Style{ArrowParens: Bool(true), BlockSpacing: Bool(false)})
	assert.Equal(t, ArrowParensAlways, got.ArrowParens)
	assert.False(t, got.BracketSpacing)

	got = DeriveFormatterOptions(Style{ArrowParens: Bool(false), BlockSpacing: Bool(true)})
	assert.Equal(t, ArrowParensAvoid, got.ArrowParens)
	assert.True(t, got.BracketSpacing)
}

func TestFormatterSettingsPassthroughWins(t *testing.T) {
	got := FormatterSettings(Style{Indent: 4}, map[string]any{
		"tabWidth":            8,
		"printWidth":          120,
		"astroAllowShorthand": true,
		"parser":              "babel",
	})

	assert.Equal(t, 8, got["tabWidth"])
	assert.Equal(t, 120, got["printWidth"])
	assert.Equal(t, true, got["astroAllowShorthand"])
	assert.Equal(t, "astro", got["parser"], "parser is fixed")
	assert.Equal(t, []any{"prettier-plugin-astro"}, got["plugins"])
	assert.Equal(t, true, got["singleQuote"])
}
