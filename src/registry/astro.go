package registry

import "github.com/sofmeright/astromate/src/flatconfig"

// Profile names shipped with the tool.
const (
	ProfileBase               = "base"
	ProfileRecommended        = "recommended"
	ProfileAll                = "all"
	ProfileJSXA11yRecommended = "jsx-a11y-recommended"
	ProfileJSXA11yStrict      = "jsx-a11y-strict"
)

const (
	pluginAstro                = "astro"
	pluginJSXA11y              = "jsx-a11y"
	parserAstro                = "astro-eslint-parser"
	parserTypeScript           = "@typescript-eslint/parser"
	processorAstroClientSideTS = "astro/client-side-ts"
)

var (
	filesAstro   = []string{"*.astro", "**/*.astro"}
	filesAstroJS = []string{"**/*.astro/*.js", "*.astro/*.js"}
	filesAstroTS = []string{"**/*.astro/*.ts", "*.astro/*.ts"}
)

func init() {
	Register(ProfileBase, base)
	Register(ProfileRecommended, recommended)
	Register(ProfileAll, all)
	Register(ProfileJSXA11yRecommended, func() []flatconfig.Fragment {
		return jsxA11y("recommended", a11yRecommendedRules())
	})
	Register(ProfileJSXA11yStrict, func() []flatconfig.Fragment {
		return jsxA11y("strict", a11yStrictRules())
	})
}

func base() []flatconfig.Fragment {
	return []flatconfig.Fragment{
		{
			Name:    "astro/base/plugins",
			Plugins: map[string]flatconfig.Plugin{pluginAstro: {Package: "eslint-plugin-astro"}},
			Rules:   flatconfig.Rules{},
		},
		{
			Name:  "astro/base",
			Files: clone(filesAstro),
			LanguageOptions: map[string]any{
				"globals": map[string]any{
					"Astro":    "readonly",
					"Fragment": "readonly",
				},
				"parser": parserAstro,
				"parserOptions": map[string]any{
					"parser":              parserTypeScript,
					"extraFileExtensions": []any{".astro"},
					"sourceType":          "module",
				},
			},
			Processor: processorAstroClientSideTS,
			Rules:     flatconfig.Rules{},
		},
		{
			Name:  "astro/base/javascript",
			Files: clone(filesAstroJS),
			LanguageOptions: map[string]any{
				"globals":    map[string]any{"window": "readonly", "document": "readonly"},
				"sourceType": "module",
			},
			Rules: flatconfig.Rules{"prettier/prettier": flatconfig.SeverityOff},
		},
		{
			Name:  "astro/base/typescript",
			Files: clone(filesAstroTS),
			LanguageOptions: map[string]any{
				"globals":       map[string]any{"window": "readonly", "document": "readonly"},
				"parser":        parserTypeScript,
				"parserOptions": map[string]any{"project": nil},
				"sourceType":    "module",
			},
			Rules: flatconfig.Rules{"prettier/prettier": flatconfig.SeverityOff},
		},
	}
}

func recommended() []flatconfig.Fragment {
	return append(base(), flatconfig.Fragment{
		Name:  "astro/recommended",
		Rules: recommendedRules(),
	})
}

func all() []flatconfig.Fragment {
	return append(base(), flatconfig.Fragment{
		Name:  "astro/all",
		Rules: flatconfig.Merge(recommendedRules(), extraRules()),
	})
}

func jsxA11y(variant string, rules flatconfig.Rules) []flatconfig.Fragment {
	return append(recommended(),
		flatconfig.Fragment{
			Name:    "astro/jsx-a11y/plugins",
			Plugins: map[string]flatconfig.Plugin{pluginJSXA11y: {Package: "eslint-plugin-jsx-a11y"}},
			Rules:   flatconfig.Rules{},
		},
		flatconfig.Fragment{
			Name:  "astro/jsx-a11y-" + variant,
			Files: clone(filesAstro),
			Rules: flatconfig.Prefix(pluginAstro+"/jsx-a11y", rules),
		},
	)
}

func recommendedRules() flatconfig.Rules {
	return flatconfig.Prefix(pluginAstro, errorRules(
		"missing-client-only-directive-value",
		"no-conflict-set-directives",
		"no-deprecated-astro-canonicalurl",
		"no-deprecated-astro-fetchcontent",
		"no-deprecated-astro-resolve",
		"no-deprecated-getentrybyslug",
		"no-unused-define-vars-in-style",
		"valid-compile",
	))
}

func extraRules() flatconfig.Rules {
	return flatconfig.Prefix(pluginAstro, errorRules(
		"no-exports-from-components",
		"no-set-html-directive",
		"no-set-text-directive",
		"no-unsafe-inline-scripts",
		"no-unused-css-selector",
		"prefer-class-list-directive",
		"prefer-object-class-list",
		"prefer-split-class-list",
		"semi",
		"sort-attributes",
	))
}

var a11yRuleNames = []string{
	"alt-text",
	"anchor-ambiguous-text",
	"anchor-has-content",
	"anchor-is-valid",
	"aria-activedescendant-has-tabindex",
	"aria-props",
	"aria-proptypes",
	"aria-role",
	"aria-unsupported-elements",
	"autocomplete-valid",
	"click-events-have-key-events",
	"heading-has-content",
	"html-has-lang",
	"iframe-has-title",
	"img-redundant-alt",
	"interactive-supports-focus",
	"label-has-associated-control",
	"media-has-caption",
	"mouse-events-have-key-events",
	"no-access-key",
	"no-autofocus",
	"no-distracting-elements",
	"no-interactive-element-to-noninteractive-role",
	"no-noninteractive-element-interactions",
	"no-noninteractive-element-to-interactive-role",
	"no-noninteractive-tabindex",
	"no-redundant-roles",
	"no-static-element-interactions",
	"role-has-required-aria-props",
	"role-supports-aria-props",
	"scope",
	"tabindex-no-positive",
}

func a11yStrictRules() flatconfig.Rules {
	rules := errorRules(a11yRuleNames...)
	rules["anchor-ambiguous-text"] = flatconfig.SeverityOff
	return rules
}

func a11yRecommendedRules() flatconfig.Rules {
	rules := a11yStrictRules()
	rules["media-has-caption"] = flatconfig.SeverityOff
	rules["no-noninteractive-tabindex"] = []any{
		flatconfig.SeverityError,
		map[string]any{"tags": []any{}, "roles": []any{"tabpanel"}, "allowExpressionValues": true},
	}
	rules["no-static-element-interactions"] = []any{
		flatconfig.SeverityError,
		map[string]any{
			"allowExpressionValues": true,
			"handlers":              []any{"onClick", "onMouseDown", "onMouseUp", "onKeyPress", "onKeyDown", "onKeyUp"},
		},
	}
	return rules
}

func errorRules(names ...string) flatconfig.Rules {
	out := make(flatconfig.Rules, len(names))
	for _, n := range names {
		out[n] = flatconfig.SeverityError
	}
	return out
}

func clone(s []string) []string { return append([]string(nil), s...) }
