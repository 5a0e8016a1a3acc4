package app

import (
	"time"

	"github.com/example/gridboard/internal/core/grid"
	"github.com/example/gridboard/internal/core/incident"
	"github.com/example/gridboard/internal/core/schedule"
	"github.com/example/gridboard/internal/core/workorder"
	"github.com/example/gridboard/internal/models"
	"github.com/example/gridboard/internal/ports/primary"
)

// DashboardServiceImpl implements the DashboardService interface by composing
// the pure core views over a store snapshot.
type DashboardServiceImpl struct {
	store primary.Store
}

// NewDashboardService creates a new DashboardService reading from store.
func NewDashboardService(store primary.Store) *DashboardServiceImpl {
	return &DashboardServiceImpl{store: store}
}

var _ primary.DashboardService = (*DashboardServiceImpl)(nil)

// Overview builds every board from a single snapshot.
func (s *DashboardServiceImpl) Overview(now time.Time) *primary.Overview {
	snap := s.store.Snapshot()
	return &primary.Overview{
		Work:      buildWorkBoard(snap, now),
		Grid:      buildGridBoard(snap),
		Incidents: buildIncidentBoard(snap),
		Schedules: buildScheduleBoard(snap, now),
		Loading:   snap.Loading,
		LastError: snap.LastError,
	}
}

// WorkBoard groups work orders into display columns.
func (s *DashboardServiceImpl) WorkBoard(now time.Time) *primary.WorkBoard {
	return buildWorkBoard(s.store.Snapshot(), now)
}

// GridBoard summarizes the grid.
func (s *DashboardServiceImpl) GridBoard() *primary.GridBoard {
	return buildGridBoard(s.store.Snapshot())
}

// IncidentBoard lists incidents most severe first.
func (s *DashboardServiceImpl) IncidentBoard() *primary.IncidentBoard {
	return buildIncidentBoard(s.store.Snapshot())
}

// ScheduleBoard lists schedules with on-shift flags at now.
func (s *DashboardServiceImpl) ScheduleBoard(now time.Time) *primary.ScheduleBoard {
	return buildScheduleBoard(s.store.Snapshot(), now)
}

// EmployeeDirectory returns the loaded employees.
func (s *DashboardServiceImpl) EmployeeDirectory() []models.Employee {
	return s.store.Snapshot().Employees
}

func buildWorkBoard(snap primary.Snapshot, now time.Time) *primary.WorkBoard {
	buckets := workorder.Bucket(snap.WorkOrders)
	board := &primary.WorkBoard{Total: buckets.Len()}

	card := func(o models.WorkOrder) primary.WorkCard {
		remaining := workorder.Remaining(o, now)
		crew := workorder.AssignedEmployees(o, snap.Employees)
		return primary.WorkCard{
			Order:         o,
			Remaining:     remaining.String(),
			Overdue:       remaining.State == workorder.StateOverdue,
			Assignees:     crew.Employees,
			MissingIDs:    crew.Missing,
			PriorityLabel: o.Priority.Label(),
			PriorityKnown: o.Priority.IsKnown(),
		}
	}

	for _, status := range models.WorkStatuses {
		col := primary.WorkColumn{Status: status, Label: status.Label()}
		for _, o := range buckets.For(status) {
			col.Cards = append(col.Cards, card(o))
		}
		board.Columns = append(board.Columns, col)
	}
	for _, o := range buckets.Unknown {
		board.Unknown = append(board.Unknown, card(o))
	}
	return board
}

func buildGridBoard(snap primary.Snapshot) *primary.GridBoard {
	stats := grid.Stats(snap.GridSections)
	board := &primary.GridBoard{
		Online:         stats.Online,
		Offline:        stats.Offline,
		Maintenance:    stats.Maintenance,
		Alert:          stats.Alert,
		Total:          stats.Total(),
		AvgLoad:        stats.AvgLoad,
		AvgLoadDefined: stats.AvgLoadDefined,
	}

	for _, p := range grid.Chart(snap.GridSections) {
		board.Chart = append(board.Chart, primary.ChartBar{Label: p.Label, Load: p.Load, Status: p.Status})
	}
	for _, sec := range snap.GridSections {
		hood := grid.Neighbors(sec, snap.GridSections)
		row := primary.GridRow{
			Section:  sec,
			Band:     string(grid.LoadBand(sec.Load)),
			Dangling: hood.Dangling,
		}
		for _, peer := range hood.Connected {
			row.Neighbors = append(row.Neighbors, peer.Name)
		}
		board.Sections = append(board.Sections, row)
	}
	return board
}

func buildIncidentBoard(snap primary.Snapshot) *primary.IncidentBoard {
	summary := incident.Summarize(snap.Incidents)
	board := &primary.IncidentBoard{
		Open:     summary.Open,
		Resolved: summary.Resolved,
		Other:    summary.Other,
	}
	for _, inc := range incident.BySeverity(snap.Incidents) {
		row := primary.IncidentRow{Incident: inc}
		if e, ok := workorder.FindEmployee(snap.Employees, inc.ReportedBy); ok {
			row.ReporterName = e.Name
			row.ReporterKnown = true
		}
		board.Rows = append(board.Rows, row)
	}
	return board
}

func buildScheduleBoard(snap primary.Snapshot, now time.Time) *primary.ScheduleBoard {
	board := &primary.ScheduleBoard{}
	for _, sch := range snap.Schedules {
		row := primary.ScheduleRow{
			Schedule:  sch,
			TypeLabel: schedule.TypeLabel(sch),
			Duration:  schedule.Duration(sch),
			OnShift:   schedule.OnShift(sch, now),
		}
		if e, ok := workorder.FindEmployee(snap.Employees, sch.EmployeeID); ok {
			row.EmployeeName = e.Name
			row.EmployeeKnown = true
		}
		if row.OnShift {
			board.OnShift++
		}
		board.Rows = append(board.Rows, row)
	}
	return board
}
