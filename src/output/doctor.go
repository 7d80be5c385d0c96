package output

import (
	"fmt"
	"io"

	"github.com/sofmeright/astromate/src/pkgcheck"
)

// DoctorReport writes one row per peer check followed by a summary line.
func DoctorReport(w io.Writer, results []pkgcheck.Result, color bool) {
	sec := NewSection(w, "Peers", color)

	failed := 0
	for _, r := range results {
		icon := "ok"
		switch {
		case r.Failed():
			icon = "failed"
			failed++
		case r.Status != pkgcheck.StatusOK:
			icon = "skipped"
		}

		installed := r.Installed
		if installed == "" {
			installed = "-"
		}
		detail := r.Peer.Reason
		if r.Detail != "" {
			detail = r.Detail
		}
		if r.Peer.Optional {
			detail += " (optional)"
		}

		sec.Row("%s %-28s%-10s%s", StatusIcon(icon, color), r.Peer.Name, installed, Dimmed(detail, color))
	}

	sec.Separator()
	if failed == 0 {
		sec.Row("%d peers checked, all required peers satisfied", len(results))
	} else {
		sec.Row("%d peers checked, %d required peers unsatisfied", len(results), failed)
	}
	sec.Close()
}

// RuleList writes rule identifiers inside a section titled after the profile.
func RuleList(w io.Writer, profile string, rules []string, color bool) {
	sec := NewSection(w, fmt.Sprintf("Rules (%s)", profile), color)
	for _, r := range rules {
		sec.Row("%s", r)
	}
	sec.Separator()
	sec.Row("%d rules", len(rules))
	sec.Close()
}
