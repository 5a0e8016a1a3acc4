package app

import (
	"context"
	"testing"

	"github.com/example/gridboard/internal/models"
)

func loadedDashboard(t *testing.T) *DashboardServiceImpl {
	t.Helper()
	store := NewStore(seededGateway())
	store.RefreshAll(context.Background())
	if msg := store.LastError(); msg != "" {
		t.Fatalf("refresh failed: %s", msg)
	}
	return NewDashboardService(store)
}

func TestDashboardService_WorkBoard(t *testing.T) {
	board := loadedDashboard(t).WorkBoard(fixtureNow)

	if board.Total != 3 {
		t.Errorf("Total = %d, want 3", board.Total)
	}
	wantOrder := []models.WorkStatus{models.WorkInProgress, models.WorkPending, models.WorkDelayed, models.WorkCompleted}
	if len(board.Columns) != len(wantOrder) {
		t.Fatalf("got %d columns, want %d", len(board.Columns), len(wantOrder))
	}
	for i, status := range wantOrder {
		if board.Columns[i].Status != status {
			t.Errorf("column %d = %s, want %s", i, board.Columns[i].Status, status)
		}
	}

	active := board.Columns[0].Cards
	if len(active) != 1 {
		t.Fatalf("in-progress cards = %d, want 1", len(active))
	}
	card := active[0]
	if card.Remaining != "1h 30m remaining" {
		t.Errorf("Remaining = %q", card.Remaining)
	}
	if len(card.Assignees) != 1 || card.Assignees[0].Name != "Rajesh Kumar" {
		t.Errorf("Assignees = %+v", card.Assignees)
	}
	if len(card.MissingIDs) != 1 || card.MissingIDs[0] != "EMP999" {
		t.Errorf("MissingIDs = %v", card.MissingIDs)
	}

	delayed := board.Columns[2].Cards
	if len(delayed) != 1 || !delayed[0].Overdue || delayed[0].Remaining != "Overdue" {
		t.Errorf("delayed cards = %+v", delayed)
	}
	if len(board.Columns[3].Cards) != 0 {
		t.Errorf("completed cards = %d, want 0", len(board.Columns[3].Cards))
	}
}

func TestDashboardService_GridBoard(t *testing.T) {
	board := loadedDashboard(t).GridBoard()

	if board.Online != 1 || board.Offline != 1 || board.Total != 2 {
		t.Errorf("counts = %+v", board)
	}
	if !board.AvgLoadDefined || board.AvgLoad != 39 {
		t.Errorf("AvgLoad = %d (defined %v), want 39", board.AvgLoad, board.AvgLoadDefined)
	}
	if len(board.Chart) != 1 || board.Chart[0].Label != "Koramangala" {
		t.Errorf("Chart = %+v", board.Chart)
	}
	if board.Sections[0].Band != "high" {
		t.Errorf("Band = %q, want high", board.Sections[0].Band)
	}
	east := board.Sections[1]
	if len(east.Neighbors) != 1 || east.Neighbors[0] != "Koramangala Central" {
		t.Errorf("Neighbors = %v", east.Neighbors)
	}
	if len(east.Dangling) != 1 || east.Dangling[0] != "GRID404" {
		t.Errorf("Dangling = %v", east.Dangling)
	}
}

func TestDashboardService_EmptyGrid(t *testing.T) {
	board := NewDashboardService(NewStore(newMockGateway())).GridBoard()

	if board.AvgLoadDefined {
		t.Error("average load should be undefined for an empty grid")
	}
	if board.Total != 0 || len(board.Chart) != 0 {
		t.Errorf("unexpected board %+v", board)
	}
}

func TestDashboardService_IncidentBoard(t *testing.T) {
	board := loadedDashboard(t).IncidentBoard()

	if board.Open != 1 || board.Resolved != 1 {
		t.Errorf("Open/Resolved = %d/%d", board.Open, board.Resolved)
	}
	if board.Rows[0].Incident.ID != "INC002" {
		t.Errorf("first row = %s, want the critical incident", board.Rows[0].Incident.ID)
	}
	if board.Rows[0].ReporterKnown {
		t.Error("dangling reporter resolved unexpectedly")
	}
	if !board.Rows[1].ReporterKnown || board.Rows[1].ReporterName != "Priya Sharma" {
		t.Errorf("second row = %+v", board.Rows[1])
	}
}

func TestDashboardService_ScheduleBoardAndOverview(t *testing.T) {
	dash := loadedDashboard(t)

	sched := dash.ScheduleBoard(fixtureNow)
	if sched.OnShift != 1 || !sched.Rows[0].OnShift {
		t.Errorf("OnShift = %d", sched.OnShift)
	}
	if sched.Rows[0].EmployeeName != "Rajesh Kumar" || sched.Rows[0].TypeLabel != "regular" {
		t.Errorf("row = %+v", sched.Rows[0])
	}

	overview := dash.Overview(fixtureNow)
	if overview.Work == nil || overview.Grid == nil || overview.Incidents == nil || overview.Schedules == nil {
		t.Fatal("overview missing a board")
	}
	if overview.Loading || overview.LastError != "" {
		t.Errorf("Loading/LastError = %v/%q", overview.Loading, overview.LastError)
	}
	if len(dash.EmployeeDirectory()) != 2 {
		t.Errorf("EmployeeDirectory() = %d entries", len(dash.EmployeeDirectory()))
	}
}
