package flatconfig

import "strconv"

// Effective is the merged configuration that applies to a single file.
type Effective struct {
	Path            string            `json:"path" yaml:"path"`
	Fragments       []string          `json:"fragments" yaml:"fragments"`
	Plugins         map[string]Plugin `json:"plugins,omitempty" yaml:"plugins,omitempty"`
	LanguageOptions map[string]any    `json:"languageOptions,omitempty" yaml:"languageOptions,omitempty"`
	Processor       string            `json:"processor,omitempty" yaml:"processor,omitempty"`
	Rules           Rules             `json:"rules" yaml:"rules"`
}

// Resolve folds every fragment matching path into one configuration, in
// order. Plugins and rules are replaced key by key, except that a bare
// severity only changes the severity of an earlier setting with options.
// languageOptions are merged recursively so a later fragment can adjust a
// nested field without dropping its siblings.
func Resolve(fragments []Fragment, path string) Effective {
	eff := Effective{
		Path:      path,
		Fragments: []string{},
		Rules:     Rules{},
	}

	for i, f := range fragments {
		if !f.Matches(path) {
			continue
		}

		name := f.Name
		if name == "" {
			name = anonymousName(i)
		}
		eff.Fragments = append(eff.Fragments, name)

		if len(f.Plugins) > 0 {
			if eff.Plugins == nil {
				eff.Plugins = make(map[string]Plugin, len(f.Plugins))
			}
			for k, p := range f.Plugins {
				eff.Plugins[k] = p
			}
		}
		if len(f.LanguageOptions) > 0 {
			eff.LanguageOptions = mergeObjects(eff.LanguageOptions, f.LanguageOptions)
		}
		if f.Processor != "" {
			eff.Processor = f.Processor
		}
		for rule, setting := range f.Rules {
			eff.Rules[rule] = mergeRule(eff.Rules[rule], setting)
		}
	}

	return eff
}

// Enabled returns the rules of eff whose severity is not "off".
func (e Effective) Enabled() Rules {
	out := Rules{}
	for rule, setting := range e.Rules {
		if SeverityOf(setting) != SeverityOff {
			out[rule] = setting
		}
	}
	return out
}

// mergeRule applies next over prev. A bare severity keeps the options of a
// previous [severity, options...] setting.
func mergeRule(prev, next any) any {
	switch next.(type) {
	case string, int, int64, float64:
	default:
		return next
	}
	list, ok := prev.([]any)
	if !ok || len(list) < 2 {
		return next
	}
	return append([]any{next}, list[1:]...)
}

func anonymousName(i int) string {
	return "#" + strconv.Itoa(i)
}

func mergeObjects(dst, src map[string]any) map[string]any {
	out := make(map[string]any, len(dst)+len(src))
	for k, v := range dst {
		out[k] = v
	}
	for k, v := range src {
		if sub, ok := v.(map[string]any); ok {
			if prev, ok := out[k].(map[string]any); ok {
				out[k] = mergeObjects(prev, sub)
				continue
			}
		}
		out[k] = v
	}
	return out
}
