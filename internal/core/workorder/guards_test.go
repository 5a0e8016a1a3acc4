package workorder

import (
	"testing"
	"time"

	"github.com/example/gridboard/internal/models"
)

func validDraft() models.WorkOrderDraft {
	start := time.Date(2025, 1, 15, 8, 30, 0, 0, time.UTC)
	return models.WorkOrderDraft{
		Title:            "Transformer Maintenance - Jayanagar",
		Location:         "Jayanagar 4th Block",
		Status:           models.WorkPending,
		Priority:         models.PriorityMedium,
		StartTime:        start,
		EstimatedEndTime: start.Add(6 * time.Hour),
	}
}

func TestCanCreateWork(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(d *models.WorkOrderDraft)
		wantAllowed bool
		wantReason  string
	}{
		{
			name:        "valid draft",
			mutate:      func(d *models.WorkOrderDraft) {},
			wantAllowed: true,
		},
		{
			name:       "missing title",
			mutate:     func(d *models.WorkOrderDraft) { d.Title = "  " },
			wantReason: "work order title is required",
		},
		{
			name:       "missing location",
			mutate:     func(d *models.WorkOrderDraft) { d.Location = "" },
			wantReason: "work order location is required",
		},
		{
			name:       "unknown status",
			mutate:     func(d *models.WorkOrderDraft) { d.Status = "paused" },
			wantReason: `invalid work status "paused" (must be pending, in-progress, completed, or delayed)`,
		},
		{
			name:       "unknown priority",
			mutate:     func(d *models.WorkOrderDraft) { d.Priority = "urgent" },
			wantReason: `invalid priority "urgent" (must be low, medium, high, or critical)`,
		},
		{
			name:       "missing times",
			mutate:     func(d *models.WorkOrderDraft) { d.StartTime = time.Time{} },
			wantReason: "start time and estimated end time are required",
		},
		{
			name: "end before start",
			mutate: func(d *models.WorkOrderDraft) {
				d.EstimatedEndTime = d.StartTime.Add(-time.Minute)
			},
			wantReason: "estimated end time is before start time",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.mutate(&d)
			result := CanCreateWork(CreateWorkContext{Draft: d})
			if result.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
			if !tt.wantAllowed && result.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", result.Reason, tt.wantReason)
			}
		})
	}
}

func TestCanUpdateStatus(t *testing.T) {
	tests := []struct {
		name        string
		ctx         StatusUpdateContext
		wantAllowed bool
		wantReason  string
	}{
		{
			name:        "known status",
			ctx:         StatusUpdateContext{WorkOrderID: "WRK001", Status: models.WorkCompleted},
			wantAllowed: true,
		},
		{
			name:       "missing ID",
			ctx:        StatusUpdateContext{Status: models.WorkCompleted},
			wantReason: "work order ID is required",
		},
		{
			name:       "unknown status",
			ctx:        StatusUpdateContext{WorkOrderID: "WRK001", Status: "done"},
			wantReason: `invalid work status "done" (must be pending, in-progress, completed, or delayed)`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanUpdateStatus(tt.ctx)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
			if !tt.wantAllowed && result.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", result.Reason, tt.wantReason)
			}
			if tt.wantAllowed && result.Error() != nil {
				t.Errorf("Error() = %v, want nil", result.Error())
			}
		})
	}
}

func TestCheckIntegrity(t *testing.T) {
	ok := []models.WorkOrder{{ID: "WRK001", Status: models.WorkPending}}
	if err := CheckIntegrity(ok); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	bad := append(ok, models.WorkOrder{ID: "WRK002", Status: "archived"})
	err := CheckIntegrity(bad)
	if err == nil {
		t.Fatal("expected integrity error")
	}
	if err.Error() != `work order WRK002 has unknown status "archived"` {
		t.Errorf("error = %q", err.Error())
	}
}
