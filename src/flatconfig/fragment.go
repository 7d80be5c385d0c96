// Package flatconfig models the flat configuration consumed by the rule
// engine: an ordered list of optionally glob-scoped fragments where later
// fragments override earlier ones.
package flatconfig

// Severity strings understood by the rule engine.
const (
	SeverityOff   = "off"
	SeverityWarn  = "warn"
	SeverityError = "error"
)

// Rules maps a rule identifier to its setting. A setting is either a
// severity string or a list whose first element is the severity.
type Rules map[string]any

// Plugin is an opaque reference to a plugin package registered by a fragment.
type Plugin struct {
	Package string `json:"package" yaml:"package"`
}

// Fragment is one element of a flat configuration.
type Fragment struct {
	Name            string            `json:"name,omitempty" yaml:"name,omitempty"`
	Files           []string          `json:"files,omitempty" yaml:"files,omitempty"`
	Plugins         map[string]Plugin `json:"plugins,omitempty" yaml:"plugins,omitempty"`
	LanguageOptions map[string]any    `json:"languageOptions,omitempty" yaml:"languageOptions,omitempty"`
	Processor       string            `json:"processor,omitempty" yaml:"processor,omitempty"`
	Rules           Rules             `json:"rules" yaml:"rules"`
}

// Global reports whether the fragment applies to every file.
func (f Fragment) Global() bool { return len(f.Files) == 0 }

// Matches reports whether the fragment applies to path.
func (f Fragment) Matches(path string) bool {
	if f.Global() {
		return true
	}
	for _, pattern := range f.Files {
		if MatchGlob(pattern, path) {
			return true
		}
	}
	return false
}

// Prefix returns a copy of rules with every identifier namespaced as
// "prefix/name".
func Prefix(prefix string, rules Rules) Rules {
	out := make(Rules, len(rules))
	for name, setting := range rules {
		out[prefix+"/"+name] = setting
	}
	return out
}

// Off builds a rule set that disables every named rule.
func Off(names ...string) Rules {
	out := make(Rules, len(names))
	for _, name := range names {
		out[name] = SeverityOff
	}
	return out
}

// Merge copies rule sets into a new map. Later sets win.
func Merge(sets ...Rules) Rules {
	n := 0
	for _, s := range sets {
		n += len(s)
	}
	out := make(Rules, n)
	for _, s := range sets {
		for name, setting := range s {
			out[name] = setting
		}
	}
	return out
}

// SeverityOf extracts the severity from a rule setting. Numeric severities
// (0, 1, 2) are normalized to their string form.
func SeverityOf(setting any) string {
	switch v := setting.(type) {
	case string:
		return v
	case int:
		return severityFromLevel(v)
	case int64:
		return severityFromLevel(int(v))
	case float64:
		return severityFromLevel(int(v))
	case []any:
		if len(v) > 0 {
			return SeverityOf(v[0])
		}
	}
	return ""
}

func severityFromLevel(level int) string {
	switch level {
	case 0:
		return SeverityOff
	case 1:
		return SeverityWarn
	case 2:
		return SeverityError
	default:
		return ""
	}
}
