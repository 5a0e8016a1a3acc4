package models

import "testing"

func TestParseWorkStatus(t *testing.T) {
	tests := []struct {
		raw       string
		want      WorkStatus
		wantKnown bool
	}{
		{"pending", WorkPending, true},
		{"in-progress", WorkInProgress, true},
		{"completed", WorkCompleted, true},
		{"delayed", WorkDelayed, true},
		{"in_progress", WorkStatus("in_progress"), false},
		{"", WorkStatus(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseWorkStatus(tt.raw)
			if got != tt.want {
				t.Errorf("status = %q, want %q", got, tt.want)
			}
			if (err == nil) != tt.wantKnown {
				t.Errorf("err = %v, wantKnown %v", err, tt.wantKnown)
			}
			if got.IsKnown() != tt.wantKnown {
				t.Errorf("IsKnown() = %v, want %v", got.IsKnown(), tt.wantKnown)
			}
		})
	}
}

func TestParseGridStatus_PreservesUnknownRaw(t *testing.T) {
	got, err := ParseGridStatus("tripped")
	if err == nil {
		t.Fatal("expected error for unknown status")
	}
	if string(got) != "tripped" {
		t.Errorf("raw value lost: got %q", got)
	}
}

func TestLabels(t *testing.T) {
	if got := WorkInProgress.Label(); got != "In-progress" {
		t.Errorf("WorkInProgress.Label() = %q", got)
	}
	if got := PriorityCritical.Label(); got != "Critical" {
		t.Errorf("PriorityCritical.Label() = %q", got)
	}
	if got := GridMaintenance.Label(); got != "Maintenance" {
		t.Errorf("GridMaintenance.Label() = %q", got)
	}
}

func TestSeverityRank(t *testing.T) {
	if SeverityCritical.Rank() >= SeverityHigh.Rank() {
		t.Error("critical should rank before high")
	}
	if Severity("weird").Rank() != SeverityLow.Rank() {
		t.Error("unknown severity should rank as low")
	}
}

func TestClone_DoesNotShareIDs(t *testing.T) {
	w := WorkOrder{ID: "WRK001", AssignedEmployeeIDs: []string{"EMP001"}}
	c := w.Clone()
	c.AssignedEmployeeIDs[0] = "EMP999"
	if w.AssignedEmployeeIDs[0] != "EMP001" {
		t.Error("work order clone shares assigned IDs")
	}

	g := GridSection{ID: "GRID001", ConnectedToIDs: []string{"GRID002"}}
	gc := g.Clone()
	gc.ConnectedToIDs[0] = "GRID999"
	if g.ConnectedToIDs[0] != "GRID002" {
		t.Error("grid section clone shares connection IDs")
	}
}
