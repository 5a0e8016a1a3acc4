package schedule

import (
	"testing"
	"time"

	"github.com/example/gridboard/internal/models"
)

var shiftStart = time.Date(2025, 1, 15, 6, 0, 0, 0, time.UTC)

func dayShift() models.Schedule {
	return models.Schedule{
		ID:         "SCH001",
		EmployeeID: "EMP003",
		ShiftStart: shiftStart,
		ShiftEnd:   shiftStart.Add(8 * time.Hour),
		Type:       models.ShiftRegular,
	}
}

func TestCanUpsert(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(s *models.Schedule)
		wantAllowed bool
		wantReason  string
	}{
		{"valid", func(s *models.Schedule) {}, true, ""},
		{"missing id", func(s *models.Schedule) { s.ID = "" }, false, "schedule ID is required"},
		{"missing employee", func(s *models.Schedule) { s.EmployeeID = "" }, false, "schedule employee is required"},
		{"missing end", func(s *models.Schedule) { s.ShiftEnd = time.Time{} }, false, "shift start and end are required"},
		{"zero length", func(s *models.Schedule) { s.ShiftEnd = s.ShiftStart }, false, "shift must end after it starts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := dayShift()
			tt.mutate(&s)
			result := CanUpsert(UpsertContext{Schedule: s})
			if result.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
			if !tt.wantAllowed && result.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", result.Reason, tt.wantReason)
			}
		})
	}
}

func TestOnShift(t *testing.T) {
	s := dayShift()
	tests := []struct {
		at   time.Time
		want bool
	}{
		{shiftStart.Add(-time.Second), false},
		{shiftStart, true},
		{shiftStart.Add(4 * time.Hour), true},
		{s.ShiftEnd, false},
	}
	for _, tt := range tests {
		if got := OnShift(s, tt.at); got != tt.want {
			t.Errorf("OnShift(%v) = %v, want %v", tt.at, got, tt.want)
		}
	}

	night := dayShift()
	night.ID = "SCH002"
	night.ShiftStart = s.ShiftEnd
	night.ShiftEnd = night.ShiftStart.Add(8 * time.Hour)
	active := OnShiftNow([]models.Schedule{s, night}, shiftStart.Add(time.Hour))
	if len(active) != 1 || active[0].ID != "SCH001" {
		t.Errorf("OnShiftNow = %v", active)
	}
}

func TestDurationAndType(t *testing.T) {
	s := dayShift()
	if Duration(s) != 8*time.Hour {
		t.Errorf("Duration = %v", Duration(s))
	}
	if TypeLabel(s) != "regular" {
		t.Errorf("TypeLabel = %q", TypeLabel(s))
	}
	s.Type = "overtime"
	if TypeLabel(s) != "other" {
		t.Errorf("TypeLabel = %q", TypeLabel(s))
	}
}
