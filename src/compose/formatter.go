package compose

import "strings"

// Formatter option values.
const (
	TrailingCommaNone = "none"
	TrailingCommaAll  = "all"

	QuotePropsPreserve = "preserve"

	ArrowParensAlways = "always"
	ArrowParensAvoid  = "avoid"

	EndOfLineAuto = "auto"
)

// FormatterOptions are the settings handed to the external formatter.
type FormatterOptions struct {
	EndOfLine      string `json:"endOfLine" yaml:"endOfLine"`
	Semi           bool   `json:"semi" yaml:"semi"`
	SingleQuote    bool   `json:"singleQuote" yaml:"singleQuote"`
	TabWidth       int    `json:"tabWidth" yaml:"tabWidth"`
	TrailingComma  string `json:"trailingComma" yaml:"trailingComma"`
	UseTabs        bool   `json:"useTabs" yaml:"useTabs"`
	BracketSpacing bool   `json:"bracketSpacing" yaml:"bracketSpacing"`
	QuoteProps     string `json:"quoteProps" yaml:"quoteProps"`
	ArrowParens    string `json:"arrowParens" yaml:"arrowParens"`
}

// DeriveFormatterOptions maps a style onto formatter options. It is a
// total function of its input.
func DeriveFormatterOptions(s Style) FormatterOptions {
	return s.resolve().formatterOptions()
}

func (r resolvedStyle) formatterOptions() FormatterOptions {
	f := FormatterOptions{
		EndOfLine:      EndOfLineAuto,
		Semi:           r.semi,
		SingleQuote:    r.quotes == QuotesSingle,
		TabWidth:       r.indent,
		TrailingComma:  TrailingCommaAll,
		UseTabs:        r.indent == IndentTab,
		BracketSpacing: r.blockSpacing,
		QuoteProps:     QuotePropsPreserve,
		ArrowParens:    ArrowParensAvoid,
	}
	if f.UseTabs {
		f.TabWidth = 2
	}
	if r.commaDangle == CommaDangleNever {
		f.TrailingComma = TrailingCommaNone
	}
	switch {
	case strings.Contains(r.quoteProps, QuotePropsConsistent):
		f.QuoteProps = QuotePropsConsistent
	case r.quoteProps == QuotePropsAsNeeded:
		f.QuoteProps = QuotePropsAsNeeded
	}
	if r.arrowParens {
		f.ArrowParens = ArrowParensAlways
	}
	return f
}

// Map returns the options keyed by their formatter names.
func (f FormatterOptions) Map() map[string]any {
	return map[string]any{
		"endOfLine":      f.EndOfLine,
		"semi":           f.Semi,
		"singleQuote":    f.SingleQuote,
		"tabWidth":       f.TabWidth,
		"trailingComma":  f.TrailingComma,
		"useTabs":        f.UseTabs,
		"bracketSpacing": f.BracketSpacing,
		"quoteProps":     f.QuoteProps,
		"arrowParens":    f.ArrowParens,
	}
}

// FormatterSettings returns the formatter rule settings: derived options,
// then the caller's passthrough options, then the fixed parser and plugin
// list.
func FormatterSettings(s Style, passthrough map[string]any) map[string]any {
	return s.resolve().formatterSettings(passthrough)
}

func (r resolvedStyle) formatterSettings(passthrough map[string]any) map[string]any {
	settings := r.formatterOptions().Map()
	for k, v := range passthrough {
		settings[k] = v
	}
	settings["parser"] = formatterParser
	settings["plugins"] = []any{formatterPlugin}
	return settings
}
