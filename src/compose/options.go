package compose

import "strings"

// Profile selects the base rule sets a composition starts from.
type Profile string

// Known profiles. Other values are handed to the registry unchecked.
const (
	ProfileAll                Profile = "all"
	ProfileBase               Profile = "base"
	ProfileRecommended        Profile = "recommended"
	ProfileJSXA11yRecommended Profile = "jsx-a11y-recommended"
	ProfileJSXA11yStrict      Profile = "jsx-a11y-strict"
)

// Accessibility reports whether the profile needs the jsx-a11y plugin.
func (p Profile) Accessibility() bool {
	return p == ProfileJSXA11yRecommended || p == ProfileJSXA11yStrict
}

// IndentTab is the Style.Indent sentinel for tab indentation.
const IndentTab = -1

// Quote styles.
const (
	QuotesSingle = "single"
	QuotesDouble = "double"
)

// Property quoting modes.
const (
	QuotePropsAlways             = "always"
	QuotePropsAsNeeded           = "as-needed"
	QuotePropsConsistent         = "consistent"
	QuotePropsConsistentAsNeeded = "consistent-as-needed"
)

// Trailing comma modes.
const (
	CommaDangleNever           = "never"
	CommaDangleAlways          = "always"
	CommaDangleAlwaysMultiline = "always-multiline"
	CommaDangleOnlyMultiline   = "only-multiline"
)

// DefaultPluginName is the stylistic rule prefix disabled under the formatter.
const DefaultPluginName = "@stylistic"

// Style describes the code style. Zero values mean "use the default".
type Style struct {
	// PluginName overrides the stylistic rule prefix.
	PluginName string
	// TypePluginName, when set, also disables the type-system formatting
	// rules under this prefix (e.g. "@typescript-eslint" or "ts").
	TypePluginName string
	// Indent is a width in spaces, or IndentTab. Default 2.
	Indent int
	// Quotes is QuotesSingle or QuotesDouble. Default single.
	Quotes string
	// Semi enables semicolons. Default false.
	Semi *bool
	// ArrowParens always parenthesizes arrow parameters. Default false.
	ArrowParens *bool
	// BlockSpacing requires spaces inside braces. Default true.
	BlockSpacing *bool
	// QuoteProps is one of the QuoteProps* modes. Default consistent-as-needed.
	QuoteProps string
	// CommaDangle is one of the CommaDangle* modes. Default always-multiline.
	CommaDangle string
}

// Options is the input of a composition. The zero value is valid.
type Options struct {
	Profile Profile
	Style   Style
	// Overrides become the rules of the last fragment, as given.
	Overrides map[string]any
	// Formatter options are merged over the derived formatter options.
	Formatter map[string]any
}

// Bool returns a pointer to v, for the optional Style flags.
func Bool(v bool) *bool { return &v }

// resolvedStyle is Style with every default applied.
type resolvedStyle struct {
	pluginName     string
	typePluginName string
	indent         int
	quotes         string
	semi           bool
	arrowParens    bool
	blockSpacing   bool
	quoteProps     string
	commaDangle    string
}

func (s Style) resolve() resolvedStyle {
	r := resolvedStyle{
		pluginName:     DefaultPluginName,
		typePluginName: strings.TrimSpace(s.TypePluginName),
		indent:         2,
		quotes:         QuotesSingle,
		blockSpacing:   true,
		quoteProps:     QuotePropsConsistentAsNeeded,
		commaDangle:    CommaDangleAlwaysMultiline,
	}
	if s.PluginName != "" {
		r.pluginName = s.PluginName
	}
	if s.Indent != 0 {
		r.indent = s.Indent
	}
	if s.Quotes != "" {
		r.quotes = s.Quotes
	}
	if s.Semi != nil {
		r.semi = *s.Semi
	}
	if s.ArrowParens != nil {
		r.arrowParens = *s.ArrowParens
	}
	if s.BlockSpacing != nil {
		r.blockSpacing = *s.BlockSpacing
	}
	if s.QuoteProps != "" {
		r.quoteProps = s.QuoteProps
	}
	if s.CommaDangle != "" {
		r.commaDangle = s.CommaDangle
	}
	return r
}

func (o Options) profile() Profile {
	if o.Profile == "" {
		return ProfileRecommended
	}
	return o.Profile
}
