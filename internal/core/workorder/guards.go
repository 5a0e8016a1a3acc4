// Package workorder contains the pure business logic for work order operations.
// Guards are pure functions that evaluate preconditions without side effects.
package workorder

import (
	"fmt"
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

// CreateWorkContext provides context for work order creation guards.
type CreateWorkContext struct {
	Draft models.WorkOrderDraft
}

// StatusUpdateContext provides context for status update guards.
type StatusUpdateContext struct {
	WorkOrderID string
	Status      models.WorkStatus
}

// CanCreateWork evaluates whether a draft can be submitted.
// Rules:
// - Title and location are required
// - Status and priority must be known values
// - Estimated end must not precede start
func CanCreateWork(ctx CreateWorkContext) GuardResult {
	d := ctx.Draft
	if strings.TrimSpace(d.Title) == "" {
		return GuardResult{Allowed: false, Reason: "work order title is required"}
	}
	if strings.TrimSpace(d.Location) == "" {
		return GuardResult{Allowed: false, Reason: "work order location is required"}
	}
	if !d.Status.IsKnown() {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("invalid work status %q (must be pending, in-progress, completed, or delayed)", d.Status),
		}
	}
	if !d.Priority.IsKnown() {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("invalid priority %q (must be low, medium, high, or critical)", d.Priority),
		}
	}
	if d.StartTime.IsZero() || d.EstimatedEndTime.IsZero() {
		return GuardResult{Allowed: false, Reason: "start time and estimated end time are required"}
	}
	if d.EstimatedEndTime.Before(d.StartTime) {
		return GuardResult{Allowed: false, Reason: "estimated end time is before start time"}
	}

	return GuardResult{Allowed: true}
}

// CanUpdateStatus evaluates whether a status update can be issued.
// Rules:
// - Work order ID is required
// - Target status must be one of the four known statuses
func CanUpdateStatus(ctx StatusUpdateContext) GuardResult {
	if ctx.WorkOrderID == "" {
		return GuardResult{Allowed: false, Reason: "work order ID is required"}
	}
	if !ctx.Status.IsKnown() {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("invalid work status %q (must be pending, in-progress, completed, or delayed)", ctx.Status),
		}
	}

	return GuardResult{Allowed: true}
}

// CheckIntegrity reports the first work order carrying a status outside the
// closed set. A nil result means the collection is well-formed.
func CheckIntegrity(orders []models.WorkOrder) error {
	for _, o := range orders {
		if !o.Status.IsKnown() {
			return fmt.Errorf("work order %s has unknown status %q", o.ID, o.Status)
		}
	}
	return nil
}
