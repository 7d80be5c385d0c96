package config

import (
	"fmt"
	"slices"

	"github.com/sofmeright/astromate/src/compose"
)

var (
	knownQuotes      = []string{compose.QuotesSingle, compose.QuotesDouble}
	knownQuoteProps  = []string{compose.QuotePropsAlways, compose.QuotePropsAsNeeded, compose.QuotePropsConsistent, compose.QuotePropsConsistentAsNeeded}
	knownCommaDangle = []string{compose.CommaDangleNever, compose.CommaDangleAlways, compose.CommaDangleAlwaysMultiline, compose.CommaDangleOnlyMultiline}
	knownFormats     = []string{"json", "yaml"}
)

// Validate checks a loaded Config. Values the composer would pass through
// unchanged are reported as warnings; an unusable indent or output format is
// a hard error. profiles lists the names the registry accepts.
func Validate(cfg *Config, profiles []string) (warnings []string, err error) {
	if cfg.Profile != "" && !slices.Contains(profiles, cfg.Profile) {
		warnings = append(warnings, fmt.Sprintf("config: unknown profile %q (known: %v)", cfg.Profile, profiles))
	}
	if s := cfg.Style.Quotes; s != "" && !slices.Contains(knownQuotes, s) {
		warnings = append(warnings, fmt.Sprintf("style.quotes: unknown value %q, treated as double", s))
	}
	if s := cfg.Style.QuoteProps; s != "" && !slices.Contains(knownQuoteProps, s) {
		warnings = append(warnings, fmt.Sprintf("style.quoteProps: unknown value %q, treated as preserve", s))
	}
	if s := cfg.Style.CommaDangle; s != "" && !slices.Contains(knownCommaDangle, s) {
		warnings = append(warnings, fmt.Sprintf("style.commaDangle: unknown value %q, treated as always", s))
	}
	for rule := range cfg.Overrides {
		if rule == "" {
			warnings = append(warnings, "overrides: empty rule name")
		}
	}

	if _, err := parseIndent(cfg.Style.Indent); err != nil {
		return warnings, err
	}
	if f := cfg.Output.Format; f != "" && !slices.Contains(knownFormats, f) {
		return warnings, fmt.Errorf("output.format: unknown format %q (supported: json, yaml)", f)
	}
	return warnings, nil
}
