package syncer

import (
	"fmt"
	"strings"
)

// Result represents the outcome of one sync run.
type Result struct {
	Created int // pages created in the mirror
	Updated int // master pages matched to an existing mirror page
	Skipped int // master pages without a title
	Failed  int // pages whose write failed after retries

	// Warnings holds the distinct status options from Master that had no
	// legal equivalent in Mirror, sorted.
	Warnings []string

	DryRun bool // whether writes were suppressed
}

// HasWarnings returns true if any status options could not be mapped.
func (r *Result) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// Summary returns a human-readable summary of the run.
func (r *Result) Summary() string {
	summary := fmt.Sprintf("Created: %d, Updated: %d, Skipped (no title): %d",
		r.Created, r.Updated, r.Skipped)
	if r.Failed > 0 {
		summary += fmt.Sprintf(", Failed: %d", r.Failed)
	}
	if r.HasWarnings() {
		summary += fmt.Sprintf("; unmapped status options: %s", strings.Join(r.Warnings, ", "))
	}
	if r.DryRun {
		summary += " (dry run)"
	}
	return summary
}
