// Package incident contains the pure business logic for incident reports.
package incident

import (
	"fmt"
	"sort"
	"strings"

	"github.com/example/gridboard/internal/models"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// ReportContext provides context for incident report guards.
type ReportContext struct {
	Draft models.IncidentDraft
}

// CanReport evaluates whether an incident draft can be submitted.
// Rules:
// - Title is required
// - Reporter is required
// - Severity, when set, must be a known value
func CanReport(ctx ReportContext) GuardResult {
	if strings.TrimSpace(ctx.Draft.Title) == "" {
		return GuardResult{Allowed: false, Reason: "incident title is required"}
	}
	if ctx.Draft.ReportedBy == "" {
		return GuardResult{Allowed: false, Reason: "incident reporter is required"}
	}
	if ctx.Draft.Severity != "" && !ctx.Draft.Severity.IsKnown() {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("invalid severity %q (must be critical, high, medium, or low)", ctx.Draft.Severity),
		}
	}

	return GuardResult{Allowed: true}
}

// Normalize fills the defaults the backing service applies to a new incident.
func Normalize(draft models.IncidentDraft) models.IncidentDraft {
	if draft.Severity == "" {
		draft.Severity = models.SeverityLow
	}
	if draft.Status == "" {
		draft.Status = models.IncidentOpen
	}
	return draft
}

// Summary counts incidents by resolution.
type Summary struct {
	Open     int
	Resolved int
	Other    int
}

// Summarize counts open, resolved, and other-status incidents.
func Summarize(incidents []models.Incident) Summary {
	var s Summary
	for _, inc := range incidents {
		switch inc.Status {
		case models.IncidentOpen:
			s.Open++
		case models.IncidentResolved:
			s.Resolved++
		default:
			s.Other++
		}
	}
	return s
}

// BySeverity returns a copy of incidents ordered most severe first; ties keep
// source order.
func BySeverity(incidents []models.Incident) []models.Incident {
	out := make([]models.Incident, len(incidents))
	copy(out, incidents)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Severity.Rank() < out[j].Severity.Rank()
	})
	return out
}
