// Package pkgcheck answers whether a JavaScript package is installed in the
// host project by reading node_modules manifests. It never executes anything.
package pkgcheck

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotInstalled is returned when no manifest for the package is found.
var ErrNotInstalled = errors.New("pkgcheck: package not installed")

// Package is the subset of an installed package.json we care about.
type Package struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Dir     string `json:"-"`
}

// Resolver locates packages the way Node does: node_modules in the start
// directory, then in each parent.
type Resolver struct {
	// Dir is where the lookup starts. Empty means the working directory.
	Dir string
	// Root bounds the upward walk. Empty means the enclosing git worktree,
	// or the filesystem root outside of one.
	Root string
}

// New returns a resolver starting at dir.
func New(dir string) *Resolver {
	return &Resolver{Dir: dir}
}

// Exists reports whether name resolves. Any lookup failure counts as absent.
func (r *Resolver) Exists(name string) bool {
	_, err := r.Resolve(name)
	return err == nil
}

// Resolve finds the nearest installed manifest for name.
func (r *Resolver) Resolve(name string) (Package, error) {
	if !validName(name) {
		return Package{}, fmt.Errorf("pkgcheck: invalid package name %q", name)
	}

	start := r.Dir
	if start == "" {
		wd, err := os.Getwd()
		if err != nil {
			return Package{}, fmt.Errorf("getting working directory: %w", err)
		}
		start = wd
	}
	start, err := filepath.Abs(start)
	if err != nil {
		return Package{}, fmt.Errorf("resolving %s: %w", start, err)
	}

	root := r.Root
	if root == "" {
		root = ProjectRoot(start)
	}
	if root != "" {
		if root, err = filepath.Abs(root); err != nil {
			return Package{}, fmt.Errorf("resolving %s: %w", r.Root, err)
		}
	}

	start = realPath(start)
	if root != "" {
		root = realPath(root)
	}

	for dir := start; ; {
		pkg, err := readManifest(filepath.Join(dir, "node_modules", filepath.FromSlash(name)))
		if err == nil {
			if pkg.Name == "" {
				pkg.Name = name
			}
			return pkg, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return Package{}, err
		}

		parent := filepath.Dir(dir)
		if dir == root || parent == dir {
			break
		}
		dir = parent
	}

	return Package{}, fmt.Errorf("%w: %s", ErrNotInstalled, name)
}

// realPath resolves symlinks so the walk can be compared against root.
// Paths that cannot be resolved are used as given.
func realPath(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		return resolved
	}
	return path
}

func readManifest(dir string) (Package, error) {
	path := filepath.Join(dir, "package.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return Package{}, err
	}

	var pkg Package
	if err := json.Unmarshal(data, &pkg); err != nil {
		return Package{}, fmt.Errorf("pkgcheck: parse %s: %w", path, err)
	}
	pkg.Dir = dir
	return pkg, nil
}

// validName accepts "name" and "@scope/name" and nothing that could escape
// node_modules.
func validName(name string) bool {
	if name == "" || strings.Contains(name, "..") || strings.Contains(name, "\\") {
		return false
	}
	parts := strings.Split(name, "/")
	switch len(parts) {
	case 1:
		return !strings.HasPrefix(name, "@")
	case 2:
		return strings.HasPrefix(parts[0], "@") && len(parts[0]) > 1 && parts[1] != ""
	default:
		return false
	}
}
