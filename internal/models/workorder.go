// Package models holds the record shapes shared by the store, the gateway
// adapters, and the pure view functions in internal/core.
package models

import (
	"fmt"
	"time"
)

// WorkStatus is the lifecycle state of a field work order.
// Values outside the closed set are representable so the raw string survives,
// but IsKnown reports false for them.
type WorkStatus string

const (
	WorkPending    WorkStatus = "pending"
	WorkInProgress WorkStatus = "in-progress"
	WorkCompleted  WorkStatus = "completed"
	WorkDelayed    WorkStatus = "delayed"
)

// WorkStatuses lists the closed set in board display order.
var WorkStatuses = []WorkStatus{WorkInProgress, WorkPending, WorkDelayed, WorkCompleted}

// IsKnown reports whether s is one of the four work statuses.
func (s WorkStatus) IsKnown() bool {
	switch s {
	case WorkPending, WorkInProgress, WorkCompleted, WorkDelayed:
		return true
	}
	return false
}

// Label returns the capitalised display form ("In-progress", "Pending").
func (s WorkStatus) Label() string {
	return capitalize(string(s))
}

// ParseWorkStatus returns the status for raw. Unknown values are returned
// as-is together with an error.
func ParseWorkStatus(raw string) (WorkStatus, error) {
	s := WorkStatus(raw)
	if !s.IsKnown() {
		return s, fmt.Errorf("unknown work status %q", raw)
	}
	return s, nil
}

// Priority ranks how urgently a work order must be handled.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// IsKnown reports whether p is one of the four priorities.
func (p Priority) IsKnown() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// Label returns the capitalised display form.
func (p Priority) Label() string {
	return capitalize(string(p))
}

// ParsePriority returns the priority for raw, or an error for unknown values.
func ParsePriority(raw string) (Priority, error) {
	p := Priority(raw)
	if !p.IsKnown() {
		return p, fmt.Errorf("unknown priority %q", raw)
	}
	return p, nil
}

// WorkOrder is a unit of field work. AssignedEmployeeIDs is expanded by the
// gateway from the assignment relation; entries may reference employees that
// are not loaded.
type WorkOrder struct {
	ID                  string     `json:"id"`
	Title               string     `json:"title"`
	Description         string     `json:"description"`
	Location            string     `json:"location"`
	Status              WorkStatus `json:"status"`
	StartTime           time.Time  `json:"start_time"`
	EstimatedEndTime    time.Time  `json:"estimated_end_time"`
	AssignedEmployeeIDs []string   `json:"assigned_employee_ids"`
	Priority            Priority   `json:"priority"`
}

// Clone returns a copy that shares no slices with w.
func (w WorkOrder) Clone() WorkOrder {
	w.AssignedEmployeeIDs = cloneIDs(w.AssignedEmployeeIDs)
	return w
}

// WorkOrderDraft is a work order that has not been assigned an ID yet.
type WorkOrderDraft struct {
	Title               string     `json:"title"`
	Description         string     `json:"description"`
	Location            string     `json:"location"`
	Status              WorkStatus `json:"status"`
	StartTime           time.Time  `json:"start_time"`
	EstimatedEndTime    time.Time  `json:"estimated_end_time"`
	AssignedEmployeeIDs []string   `json:"assigned_employee_ids"`
	Priority            Priority   `json:"priority"`
}

func cloneIDs(ids []string) []string {
	if ids == nil {
		return nil
	}
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}
