package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sofmeright/astromate/src/compose"
)

// ErrInvalidIndent is returned for an indent that is neither a number nor
// "tab".
var ErrInvalidIndent = errors.New(`style.indent: must be a number or "tab"`)

// StyleConfig mirrors compose.Style in file form. Indent is kept loose
// because YAML and TOML decode numbers differently and "tab" is a string.
type StyleConfig struct {
	PluginName     string `yaml:"pluginName" toml:"pluginName"`
	TypePluginName string `yaml:"typePluginName" toml:"typePluginName"`
	Indent         any    `yaml:"indent" toml:"indent"`
	Quotes         string `yaml:"quotes" toml:"quotes"`
	Semi           *bool  `yaml:"semi" toml:"semi"`
	ArrowParens    *bool  `yaml:"arrowParens" toml:"arrowParens"`
	BlockSpacing   *bool  `yaml:"blockSpacing" toml:"blockSpacing"`
	QuoteProps     string `yaml:"quoteProps" toml:"quoteProps"`
	CommaDangle    string `yaml:"commaDangle" toml:"commaDangle"`
}

// Options converts the file configuration into composition options.
func (c *Config) Options() (compose.Options, error) {
	indent, err := parseIndent(c.Style.Indent)
	if err != nil {
		return compose.Options{}, err
	}

	return compose.Options{
		Profile: compose.Profile(c.Profile),
		Style: compose.Style{
			PluginName:     c.Style.PluginName,
			TypePluginName: c.Style.TypePluginName,
			Indent:         indent,
			Quotes:         c.Style.Quotes,
			Semi:           c.Style.Semi,
			ArrowParens:    c.Style.ArrowParens,
			BlockSpacing:   c.Style.BlockSpacing,
			QuoteProps:     c.Style.QuoteProps,
			CommaDangle:    c.Style.CommaDangle,
		},
		Overrides: c.Overrides,
		Formatter: c.Prettier,
	}, nil
}

// ParseIndent accepts a width or "tab", as given on the command line.
func ParseIndent(s string) (int, error) {
	return parseIndent(s)
}

func parseIndent(v any) (int, error) {
	switch n := v.(type) {
	case nil:
		return 0, nil
	case int:
		return checkWidth(n)
	case int64:
		return checkWidth(int(n))
	case uint64:
		return checkWidth(int(n))
	case float64:
		if n != float64(int(n)) {
			return 0, fmt.Errorf("%w, got %v", ErrInvalidIndent, n)
		}
		return checkWidth(int(n))
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, nil
		}
		if strings.EqualFold(s, "tab") {
			return compose.IndentTab, nil
		}
		w, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("%w, got %q", ErrInvalidIndent, n)
		}
		return checkWidth(w)
	default:
		return 0, fmt.Errorf("%w, got %T", ErrInvalidIndent, v)
	}
}

func checkWidth(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w, got %d", ErrInvalidIndent, n)
	}
	return n, nil
}
