// Package schedule contains the pure business logic for shift schedules.
package schedule

import (
	"fmt"
	"time"

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

// UpsertContext provides context for schedule upsert guards.
type UpsertContext struct {
	Schedule models.Schedule
}

// CanUpsert evaluates whether a schedule can be written.
// Rules:
// - ID and employee are required (upsert is keyed by ID)
// - Shift must end after it starts
func CanUpsert(ctx UpsertContext) GuardResult {
	s := ctx.Schedule
	if s.ID == "" {
		return GuardResult{Allowed: false, Reason: "schedule ID is required"}
	}
	if s.EmployeeID == "" {
		return GuardResult{Allowed: false, Reason: "schedule employee is required"}
	}
	if s.ShiftStart.IsZero() || s.ShiftEnd.IsZero() {
		return GuardResult{Allowed: false, Reason: "shift start and end are required"}
	}
	if !s.ShiftEnd.After(s.ShiftStart) {
		return GuardResult{Allowed: false, Reason: "shift must end after it starts"}
	}

	return GuardResult{Allowed: true}
}

// Duration returns the length of the shift.
func Duration(s models.Schedule) time.Duration {
	return s.ShiftEnd.Sub(s.ShiftStart)
}

// OnShift reports whether now falls within [ShiftStart, ShiftEnd).
func OnShift(s models.Schedule, now time.Time) bool {
	return !now.Before(s.ShiftStart) && now.Before(s.ShiftEnd)
}

// OnShiftNow returns the schedules active at now, in source order.
func OnShiftNow(schedules []models.Schedule, now time.Time) []models.Schedule {
	var out []models.Schedule
	for _, s := range schedules {
		if OnShift(s, now) {
			out = append(out, s)
		}
	}
	return out
}

// TypeLabel groups shift types for display: "regular" or "other".
func TypeLabel(s models.Schedule) string {
	if s.IsRegular() {
		return models.ShiftRegular
	}
	return "other"
}
