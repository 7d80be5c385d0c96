// Package compose turns a handful of style options into the ordered
// fragment list of an Astro lint configuration: the profile's rule sets, a
// formatter invocation, the rules that conflict with the formatter switched
// off, and finally the caller's own overrides.
package compose

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/sofmeright/astromate/src/flatconfig"
	"github.com/sofmeright/astromate/src/logging"
	"github.com/sofmeright/astromate/src/pkgcheck"
	"github.com/sofmeright/astromate/src/registry"
)

// File globs the appended fragments are scoped to. The two sub-globs are the
// script blocks the Astro processor extracts from a component.
const (
	GlobAstro   = "**/*.astro"
	GlobAstroTS = "**/*.astro/*.ts"
	GlobAstroJS = "**/*.astro/*.js"
)

// Names of the fragments appended after the profile.
const (
	FragmentFormatter = "astro/formatter"
	FragmentDisables  = "astro/disables"
	FragmentRules     = "astro/rules"
)

const (
	formatterPluginKey = "format"
	formatterPackage   = "eslint-plugin-format"
	formatterRule      = "format/prettier"
	formatterParser    = "astro"
	formatterPlugin    = "prettier-plugin-astro"

	a11yPackage = "eslint-plugin-jsx-a11y"
	a11yWarning = "astromate: to use a11y you need to install eslint-plugin-jsx-a11y"
)

// Registry supplies the fragments of a named profile.
type Registry interface {
	Lookup(profile string) ([]flatconfig.Fragment, error)
}

// PackageChecker reports whether a package is installed in the host project.
type PackageChecker interface {
	Exists(name string) bool
}

// Composer builds configurations. It holds no per-call state and may be
// shared between goroutines. The zero value is usable.
type Composer struct {
	// Registry defaults to the built-in profiles.
	Registry Registry
	// Packages defaults to a resolver rooted at the working directory.
	Packages PackageChecker
	// Logger receives the missing-dependency warning. The zero value
	// discards it.
	Logger zerolog.Logger
}

// New returns a composer backed by the built-in profiles, resolving
// packages from the working directory and logging to the global logger.
func New() *Composer {
	return &Composer{
		Registry: registry.Builtin{},
		Packages: pkgcheck.New(""),
		Logger:   logging.WithComponent("compose"),
	}
}

// Compose builds a configuration with the default composer.
func Compose(opts Options) ([]flatconfig.Fragment, error) {
	return New().Compose(opts)
}

// Compose returns the profile fragments followed by the formatter, disables
// and overrides fragments, in that order. The only error is a failed
// profile lookup.
func (c *Composer) Compose(opts Options) ([]flatconfig.Fragment, error) {
	profile := opts.profile()
	style := opts.Style.resolve()

	if profile.Accessibility() && !c.packages().Exists(a11yPackage) {
		c.Logger.Warn().
			Str("package", a11yPackage).
			Str("profile", string(profile)).
			Msg(a11yWarning)
	}

	base, err := c.registry().Lookup(string(profile))
	if err != nil {
		return nil, fmt.Errorf("looking up profile %s: %w", profile, err)
	}

	fragments := make([]flatconfig.Fragment, 0, len(base)+3)
	fragments = append(fragments, base...)
	fragments = append(fragments,
		formatterFragment(style, opts.Formatter),
		disablesFragment(style),
		overridesFragment(opts.Overrides),
	)
	return fragments, nil
}

func (c *Composer) registry() Registry {
	if c.Registry == nil {
		return registry.Builtin{}
	}
	return c.Registry
}

func (c *Composer) packages() PackageChecker {
	if c.Packages == nil {
		return pkgcheck.New("")
	}
	return c.Packages
}

func formatterFragment(style resolvedStyle, passthrough map[string]any) flatconfig.Fragment {
	return flatconfig.Fragment{
		Name:    FragmentFormatter,
		Files:   []string{GlobAstro},
		Plugins: map[string]flatconfig.Plugin{formatterPluginKey: {Package: formatterPackage}},
		Rules: flatconfig.Rules{
			formatterRule: []any{flatconfig.SeverityError, style.formatterSettings(passthrough)},
		},
	}
}

func disablesFragment(style resolvedStyle) flatconfig.Fragment {
	sets := []flatconfig.Rules{
		flatconfig.Prefix(style.pluginName, flatconfig.Off(stylisticConflicts...)),
		flatconfig.Off(unprefixedConflicts...),
	}
	if style.typePluginName != "" {
		sets = append(sets, flatconfig.Prefix(style.typePluginName, flatconfig.Off(typeSystemConflicts...)))
	}

	return flatconfig.Fragment{
		Name:  FragmentDisables,
		Files: scopedGlobs(),
		LanguageOptions: map[string]any{
			"parserOptions": map[string]any{
				"project": false,
				"program": nil,
			},
		},
		Rules: flatconfig.Merge(sets...),
	}
}

func overridesFragment(overrides map[string]any) flatconfig.Fragment {
	return flatconfig.Fragment{
		Name:  FragmentRules,
		Files: scopedGlobs(),
		Rules: flatconfig.Merge(overrides),
	}
}

func scopedGlobs() []string {
	return []string{GlobAstro, GlobAstroTS, GlobAstroJS}
}
