// Package primary defines the primary ports (driving adapters) for the application.
// These are the interfaces through which callers drive the application core.
package primary

import (
	"context"
	"time"

	"github.com/example/gridboard/internal/models"
)

// Store defines the primary port for the synchronized record store.
//
// Operations never return errors. After an operation settles, LastError is
// empty on success and holds a human-readable message on failure. Loading is
// true while at least one operation is in flight.
type Store interface {
	// FetchEmployees replaces the employee collection from the data service.
	FetchEmployees(ctx context.Context)

	// FetchWorkOrders replaces the work order collection from the data service.
	FetchWorkOrders(ctx context.Context)

	// FetchGridSections replaces the grid section collection from the data service.
	FetchGridSections(ctx context.Context)

	// FetchIncidents replaces the incident collection from the data service.
	FetchIncidents(ctx context.Context)

	// FetchSchedules replaces the schedule collection from the data service.
	FetchSchedules(ctx context.Context)

	// RefreshAll fetches every collection concurrently.
	RefreshAll(ctx context.Context)

	// UpdateWorkStatus changes a work order's status, then re-fetches work orders.
	// Notes are recorded in the log only.
	UpdateWorkStatus(ctx context.Context, id string, status models.WorkStatus, notes string)

	// AddNewWork creates a work order, then re-fetches work orders.
	AddNewWork(ctx context.Context, draft models.WorkOrderDraft)

	// AddIncident reports an incident, then re-fetches incidents.
	AddIncident(ctx context.Context, draft models.IncidentDraft)

	// UpdateSchedule upserts a schedule by ID, then re-fetches schedules.
	UpdateSchedule(ctx context.Context, schedule models.Schedule)

	// UpdateGridSection sets a section's status and load, then re-fetches grid sections.
	UpdateGridSection(ctx context.Context, id string, status models.GridStatus, load int)

	// Snapshot returns copies of every collection plus the current flags.
	Snapshot() Snapshot

	// Loading reports whether any operation is in flight.
	Loading() bool

	// LastError returns the message left by the most recently started operation.
	LastError() string
}

// Snapshot is a point-in-time copy of store state. Callers may modify it freely.
type Snapshot struct {
	Employees    []models.Employee
	WorkOrders   []models.WorkOrder
	GridSections []models.GridSection
	Incidents    []models.Incident
	Schedules    []models.Schedule
	Loading      bool
	LastError    string
	TakenAt      time.Time
}
