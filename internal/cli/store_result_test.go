package cli

import (
	"context"
	"testing"

	"github.com/example/gridboard/internal/models"
	"github.com/example/gridboard/internal/ports/primary"
)

// fakeStore implements primary.Store; fetches set LastError from failOn.
type fakeStore struct {
	failOn    map[string]string
	lastError string
	fetched   []string
}

func (f *fakeStore) fetch(name string) {
	f.fetched = append(f.fetched, name)
	f.lastError = f.failOn[name]
}

func (f *fakeStore) FetchEmployees(context.Context)    { f.fetch("employees") }
func (f *fakeStore) FetchWorkOrders(context.Context)   { f.fetch("work_orders") }
func (f *fakeStore) FetchGridSections(context.Context) { f.fetch("grid_sections") }
func (f *fakeStore) FetchIncidents(context.Context)    { f.fetch("incidents") }
func (f *fakeStore) FetchSchedules(context.Context)    { f.fetch("schedules") }
func (f *fakeStore) RefreshAll(context.Context)        {}
func (f *fakeStore) UpdateWorkStatus(context.Context, string, models.WorkStatus, string) {
}
func (f *fakeStore) AddNewWork(context.Context, models.WorkOrderDraft) {}
func (f *fakeStore) AddIncident(context.Context, models.IncidentDraft) {}
func (f *fakeStore) UpdateSchedule(context.Context, models.Schedule)   {}
func (f *fakeStore) UpdateGridSection(context.Context, string, models.GridStatus, int) {
}
func (f *fakeStore) Snapshot() primary.Snapshot { return primary.Snapshot{LastError: f.lastError} }
func (f *fakeStore) Loading() bool              { return false }
func (f *fakeStore) LastError() string          { return f.lastError }

var _ primary.Store = (*fakeStore)(nil)

func TestLoadAll_StopsAtFirstFailure(t *testing.T) {
	store := &fakeStore{failOn: map[string]string{"employees": "operation timed out"}}

	err := loadAll(context.Background(), store, "load work orders", store.FetchEmployees, store.FetchWorkOrders)
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "failed to load work orders: operation timed out" {
		t.Errorf("unexpected error %q", err.Error())
	}
	if len(store.fetched) != 1 {
		t.Errorf("expected fetching to stop after the failure, fetched %v", store.fetched)
	}
}

func TestLoadAll_Success(t *testing.T) {
	store := &fakeStore{}

	if err := loadAll(context.Background(), store, "load schedules", store.FetchEmployees, store.FetchSchedules); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.fetched) != 2 || store.fetched[1] != "schedules" {
		t.Errorf("expected both fetches in order, got %v", store.fetched)
	}
}

func TestStoreResult(t *testing.T) {
	if err := storeResult(&fakeStore{}, "update"); err != nil {
		t.Errorf("expected nil for empty LastError, got %v", err)
	}
	err := storeResult(&fakeStore{lastError: "work order title is required"}, "create work order")
	if err == nil || err.Error() != "failed to create work order: work order title is required" {
		t.Errorf("unexpected error %v", err)
	}
}
