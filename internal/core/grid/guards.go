// Package grid contains the pure business logic for power-grid sections:
// update guards, status statistics, chart projection, and topology lookups.
package grid

import (
	"fmt"

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

// UpdateSectionContext provides context for operator updates to a section.
type UpdateSectionContext struct {
	SectionID string
	Status    models.GridStatus
	Load      int
}

// CanUpdateSection evaluates whether an operator update can be issued.
// Rules:
// - Section ID is required
// - Status must be one of the four grid statuses
// - Load must lie within [0,100]
func CanUpdateSection(ctx UpdateSectionContext) GuardResult {
	if ctx.SectionID == "" {
		return GuardResult{Allowed: false, Reason: "grid section ID is required"}
	}
	if !ctx.Status.IsKnown() {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("invalid grid status %q (must be online, offline, maintenance, or alert)", ctx.Status),
		}
	}
	if ctx.Load < 0 || ctx.Load > 100 {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("load %d out of range (must be 0-100)", ctx.Load),
		}
	}

	return GuardResult{Allowed: true}
}

// CheckIntegrity reports the first section carrying a status outside the
// closed set.
func CheckIntegrity(sections []models.GridSection) error {
	for _, s := range sections {
		if !s.Status.IsKnown() {
			return fmt.Errorf("grid section %s has unknown status %q", s.ID, s.Status)
		}
	}
	return nil
}
