package flatconfig

import (
	"path/filepath"
	"strings"
)

// MatchGlob matches a file pattern against a forward-slash path. "**"
// matches zero or more whole path segments; everything else follows
// filepath.Match.
func MatchGlob(pattern, path string) bool {
	path = strings.TrimPrefix(filepath.ToSlash(path), "./")
	return matchGlob(pattern, path)
}

func matchGlob(pattern, path string) bool {
	if !strings.Contains(pattern, "**") {
		matched, _ := filepath.Match(pattern, path)
		return matched
	}

	idx := strings.Index(pattern, "**")
	prefix := pattern[:idx]
	suffix := strings.TrimLeft(pattern[idx+2:], "/")

	if prefix != "" {
		prefix = strings.TrimRight(prefix, "/")
		if path != prefix && !strings.HasPrefix(path, prefix+"/") {
			return false
		}
		path = strings.TrimLeft(strings.TrimPrefix(path, prefix), "/")
	}

	if suffix == "" {
		return true
	}

	// Try the suffix against every tail: "a/b/c", "b/c", "c".
	parts := strings.Split(path, "/")
	for i := 0; i < len(parts); i++ {
		if matchGlob(suffix, strings.Join(parts[i:], "/")) {
			return true
		}
	}
	return false
}
