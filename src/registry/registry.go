// Package registry holds the named profiles a composition starts from.
// Profile files register themselves from init().
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/sofmeright/astromate/src/flatconfig"
)

// ErrUnknownProfile is returned by Lookup for names nobody registered.
var ErrUnknownProfile = errors.New("registry: unknown profile")

// Constructor builds a fresh fragment list for one profile.
type Constructor func() []flatconfig.Fragment

var (
	registryMu sync.RWMutex
	registry   = map[string]Constructor{}
)

// Register adds a profile constructor to the global registry.
func Register(name string, constructor Constructor) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("registry: duplicate profile registration: %s", name))
	}
	registry[name] = constructor
}

// Lookup returns newly built fragments for the named profile.
func Lookup(name string) ([]flatconfig.Fragment, error) {
	registryMu.RLock()
	ctor, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
	}
	return ctor(), nil
}

// All returns sorted names of all registered profiles.
func All() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RuleNames returns the sorted, de-duplicated rule identifiers a profile
// configures.
func RuleNames(name string) ([]string, error) {
	fragments, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	seen := map[string]bool{}
	var names []string
	for _, f := range fragments {
		for rule := range f.Rules {
			if !seen[rule] {
				seen[rule] = true
				names = append(names, rule)
			}
		}
	}
	sort.Strings(names)
	return names, nil
}

// Builtin exposes the global registry to callers that take a lookup
// interface.
type Builtin struct{}

// Lookup implements the composer's registry contract.
func (Builtin) Lookup(name string) ([]flatconfig.Fragment, error) { return Lookup(name) }
