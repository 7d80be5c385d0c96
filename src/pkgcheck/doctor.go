package pkgcheck

import (
	"context"
	"errors"
	"runtime"

	"github.com/Masterminds/semver/v3"
	"golang.org/x/sync/errgroup"
)

// Peer is a package the generated configuration expects to be installed.
type Peer struct {
	Name       string
	Constraint string
	Optional   bool
	// Reason says which part of the configuration needs the package.
	Reason string
}

// Peers lists the packages referenced by composed configurations.
var Peers = []Peer{
	{Name: "eslint", Constraint: ">=8.57.0", Reason: "rule engine"},
	{Name: "eslint-plugin-astro", Constraint: ">=1.0.0", Reason: "profile rule sets"},
	{Name: "eslint-plugin-format", Constraint: ">=0.1.0", Reason: "formatter fragment"},
	{Name: "prettier", Constraint: ">=3.0.0", Reason: "formatter fragment"},
	{Name: "prettier-plugin-astro", Constraint: ">=0.13.0", Reason: "formatter fragment"},
	{Name: "@stylistic/eslint-plugin", Constraint: ">=2.0.0", Optional: true, Reason: "stylistic disables"},
	{Name: "eslint-plugin-jsx-a11y", Constraint: ">=6.0.0", Optional: true, Reason: "jsx-a11y profiles"},
}

// Status is the outcome of checking one peer.
type Status string

const (
	StatusOK       Status = "ok"
	StatusMissing  Status = "missing"
	StatusMismatch Status = "mismatch"
	StatusError    Status = "error"
)

// Result is the check outcome for one peer.
type Result struct {
	Peer      Peer
	Installed string
	Status    Status
	Detail    string
}

// Failed reports whether r should fail a doctor run. Optional peers never do.
func (r Result) Failed() bool {
	return r.Status != StatusOK && !r.Peer.Optional
}

// PackageResolver is satisfied by *Resolver.
type PackageResolver interface {
	Resolve(name string) (Package, error)
}

// Doctor checks every peer concurrently. Results keep the order of peers.
// The error is non-nil only when ctx is cancelled.
func Doctor(ctx context.Context, resolver PackageResolver, peers []Peer) ([]Result, error) {
	results := make([]Result, len(peers))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, peer := range peers {
		i, peer := i, peer
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = check(resolver, peer)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func check(resolver PackageResolver, peer Peer) Result {
	res := Result{Peer: peer}

	pkg, err := resolver.Resolve(peer.Name)
	if err != nil {
		if errors.Is(err, ErrNotInstalled) {
			res.Status = StatusMissing
			res.Detail = "not installed"
		} else {
			res.Status = StatusError
			res.Detail = err.Error()
		}
		return res
	}
	res.Installed = pkg.Version

	if peer.Constraint == "" {
		res.Status = StatusOK
		return res
	}

	constraint, err := semver.NewConstraint(peer.Constraint)
	if err != nil {
		res.Status = StatusError
		res.Detail = "bad constraint: " + err.Error()
		return res
	}
	version, err := semver.NewVersion(pkg.Version)
	if err != nil {
		res.Status = StatusError
		res.Detail = "unparseable version " + pkg.Version
		return res
	}

	if !constraint.Check(version) {
		res.Status = StatusMismatch
		res.Detail = "requires " + peer.Constraint
		return res
	}

	res.Status = StatusOK
	return res
}
