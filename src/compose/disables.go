package compose

// Rules that fight the formatter's own output. Hand-maintained; keep in sync
// with the stylistic plugin when it gains layout rules.
var stylisticConflicts = []string{
	"arrow-parens",
	"block-spacing",
	"comma-dangle",
	"indent",
	"max-len",
	"no-multi-spaces",
	"object-curly-newline",
	"object-curly-spacing",
	"operator-linebreak",
	"quotes",
	"semi",
	"space-before-blocks",
	"space-before-function-paren",
	"jsx-closing-tag-location",
	"jsx-indent",
	"jsx-one-expression-per-line",
	"no-multiple-empty-lines",
	"quote-props",
}

var unprefixedConflicts = []string{
	"astro/no-set-html-directive",
	"astro/semi",
	"arrow-body-style",
	"prefer-arrow-callback",
	"antfu/consistent-list-newline",
}

var typeSystemConflicts = []string{
	"block-spacing",
	"brace-style",
	"comma-dangle",
	"comma-spacing",
	"func-call-spacing",
	"indent",
	"key-spacing",
	"keyword-spacing",
	"lines-around-comment",
	"lines-between-class-members",
	"member-delimiter-style",
	"no-extra-parens",
	"no-extra-semi",
	"object-curly-spacing",
	"padding-line-between-statements",
	"quotes",
	"semi",
	"space-before-blocks",
	"space-before-function-paren",
	"space-infix-ops",
	"type-annotation-spacing",
}
