package primary

import (
	"time"

	"github.com/example/gridboard/internal/models"
)

// DashboardService defines the primary port for derived board views.
// Every method reads one store snapshot and computes its view from scratch.
type DashboardService interface {
	// Overview returns the combined board shown after login.
	Overview(now time.Time) *Overview

	// WorkBoard returns work orders grouped by status in display order.
	WorkBoard(now time.Time) *WorkBoard

	// GridBoard returns grid statistics, the load chart, and section rows.
	GridBoard() *GridBoard

	// IncidentBoard returns incidents most severe first with reporter names.
	IncidentBoard() *IncidentBoard

	// ScheduleBoard returns schedules with employee names and on-shift flags.
	ScheduleBoard(now time.Time) *ScheduleBoard

	// EmployeeDirectory returns the employee collection in service order.
	EmployeeDirectory() []models.Employee
}

// Overview is the combined board.
type Overview struct {
	Work      *WorkBoard
	Grid      *GridBoard
	Incidents *IncidentBoard
	Schedules *ScheduleBoard
	Loading   bool
	LastError string
}

// WorkBoard groups work order cards by status.
type WorkBoard struct {
	Columns []WorkColumn
	Unknown []WorkCard
	Total   int
}

// WorkColumn is one status group.
type WorkColumn struct {
	Status models.WorkStatus
	Label  string
	Cards  []WorkCard
}

// WorkCard is a work order with resolved references and remaining time.
type WorkCard struct {
	Order         models.WorkOrder
	Remaining     string
	Overdue       bool
	Assignees     []models.Employee
	MissingIDs    []string
	PriorityLabel string
	PriorityKnown bool
}

// GridBoard summarizes grid health.
type GridBoard struct {
	Online         int
	Offline        int
	Maintenance    int
	Alert          int
	Total          int
	AvgLoad        int
	AvgLoadDefined bool
	Chart          []ChartBar
	Sections       []GridRow
}

// ChartBar is one bar of the load chart.
type ChartBar struct {
	Label  string
	Load   int
	Status models.GridStatus
}

// GridRow is one section with its load band and resolved neighbours.
type GridRow struct {
	Section   models.GridSection
	Band      string
	Neighbors []string
	Dangling  []string
}

// IncidentBoard lists incidents with counts.
type IncidentBoard struct {
	Open     int
	Resolved int
	Other    int
	Rows     []IncidentRow
}

// IncidentRow is an incident with its reporter resolved.
type IncidentRow struct {
	Incident      models.Incident
	ReporterName  string
	ReporterKnown bool
}

// ScheduleBoard lists schedules with resolved employees.
type ScheduleBoard struct {
	OnShift int
	Rows    []ScheduleRow
}

// ScheduleRow is a schedule with its employee resolved.
type ScheduleRow struct {
	Schedule      models.Schedule
	EmployeeName  string
	EmployeeKnown bool
	TypeLabel     string
	Duration      time.Duration
	OnShift       bool
}
