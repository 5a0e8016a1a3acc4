package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/example/gridboard/internal/models"
	"github.com/example/gridboard/internal/ports/secondary"
)

// ============================================================================
// Mock Implementations
// ============================================================================

// Ensure mockGateway implements the interface
var _ secondary.Gateway = (*mockGateway)(nil)

// mockGateway implements secondary.Gateway for testing. It records every call
// in order so tests can assert write-before-refetch sequencing.
type mockGateway struct {
	mu sync.Mutex

	employees    []models.Employee
	workOrders   []models.WorkOrder
	gridSections []models.GridSection
	incidents    []models.Incident
	schedules    []models.Schedule

	fetchErr  map[secondary.Collection]error
	mutateErr error

	// workOrdersFn overrides FetchWorkOrders when set.
	workOrdersFn func(ctx context.Context) ([]models.WorkOrder, error)

	calls     []string
	mutations []secondary.Mutation
}

func newMockGateway() *mockGateway {
	return &mockGateway{fetchErr: make(map[secondary.Collection]error)}
}

func (m *mockGateway) record(call string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, call)
}

func (m *mockGateway) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

func (m *mockGateway) errFor(c secondary.Collection) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fetchErr[c]
}

func (m *mockGateway) FetchEmployees(ctx context.Context) ([]models.Employee, error) {
	m.record("fetch:employees")
	if err := m.errFor(secondary.CollectionEmployees); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Employee(nil), m.employees...), nil
}

func (m *mockGateway) FetchWorkOrders(ctx context.Context) ([]models.WorkOrder, error) {
	m.record("fetch:work_orders")
	if m.workOrdersFn != nil {
		return m.workOrdersFn(ctx)
	}
	if err := m.errFor(secondary.CollectionWorkOrders); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.WorkOrder, len(m.workOrders))
	for i, o := range m.workOrders {
		out[i] = o.Clone()
	}
	return out, nil
}

func (m *mockGateway) FetchGridSections(ctx context.Context) ([]models.GridSection, error) {
	m.record("fetch:grid_sections")
	if err := m.errFor(secondary.CollectionGridSections); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.GridSection, len(m.gridSections))
	for i, g := range m.gridSections {
		out[i] = g.Clone()
	}
	return out, nil
}

func (m *mockGateway) FetchIncidents(ctx context.Context) ([]models.Incident, error) {
	m.record("fetch:incidents")
	if err := m.errFor(secondary.CollectionIncidents); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Incident(nil), m.incidents...), nil
}

func (m *mockGateway) FetchSchedules(ctx context.Context) ([]models.Schedule, error) {
	m.record("fetch:schedules")
	if err := m.errFor(secondary.CollectionSchedules); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Schedule(nil), m.schedules...), nil
}

func (m *mockGateway) Mutate(ctx context.Context, mut secondary.Mutation) error {
	m.record(fmt.Sprintf("%s:%s", mut.Op, mut.Collection))
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.mutateErr != nil {
		return m.mutateErr
	}
	m.mutations = append(m.mutations, mut)

	switch {
	case mut.Collection == secondary.CollectionWorkOrders && mut.Op == secondary.OpUpdate:
		for i := range m.workOrders {
			if m.workOrders[i].ID == mut.ID {
				if status, ok := mut.Fields["status"].(string); ok {
					m.workOrders[i].Status = models.WorkStatus(status)
				}
				return nil
			}
		}
		return secondary.NewGatewayError(secondary.ErrNotFound, nil, "work order %s not found", mut.ID)
	case mut.Collection == secondary.CollectionWorkOrders && mut.Op == secondary.OpInsert:
		d := mut.Record.(*models.WorkOrderDraft)
		m.workOrders = append(m.workOrders, models.WorkOrder{
			ID:               fmt.Sprintf("WRK-%03d", len(m.workOrders)+1),
			Title:            d.Title,
			Location:         d.Location,
			Status:           d.Status,
			StartTime:        d.StartTime,
			EstimatedEndTime: d.EstimatedEndTime,
			Priority:         d.Priority,
		})
	case mut.Collection == secondary.CollectionIncidents && mut.Op == secondary.OpInsert:
		d := mut.Record.(*models.IncidentDraft)
		m.incidents = append(m.incidents, models.Incident{
			ID:         fmt.Sprintf("INC-%03d", len(m.incidents)+1),
			Title:      d.Title,
			Severity:   d.Severity,
			Status:     d.Status,
			ReportedBy: d.ReportedBy,
		})
	case mut.Collection == secondary.CollectionSchedules && mut.Op == secondary.OpUpsert:
		s := *mut.Record.(*models.Schedule)
		for i := range m.schedules {
			if m.schedules[i].ID == s.ID {
				m.schedules[i] = s
				return nil
			}
		}
		m.schedules = append(m.schedules, s)
	case mut.Collection == secondary.CollectionGridSections && mut.Op == secondary.OpUpdate:
		for i := range m.gridSections {
			if m.gridSections[i].ID == mut.ID {
				m.gridSections[i].Status = models.GridStatus(mut.Fields["status"].(string))
				m.gridSections[i].Load = mut.Fields["load"].(int)
				return nil
			}
		}
		return secondary.NewGatewayError(secondary.ErrNotFound, nil, "grid section %s not found", mut.ID)
	}
	return nil
}

// Ensure mockSessionStore implements the interface
var _ secondary.SessionStore = (*mockSessionStore)(nil)

// mockSessionStore implements secondary.SessionStore for testing.
type mockSessionStore struct {
	sessions map[string]*models.Session
	putErr   error
	getErr   error
}

func newMockSessionStore() *mockSessionStore {
	return &mockSessionStore{sessions: make(map[string]*models.Session)}
}

func (m *mockSessionStore) Put(ctx context.Context, session *models.Session) error {
	if m.putErr != nil {
		return m.putErr
	}
	copied := *session
	m.sessions[session.Token] = &copied
	return nil
}

func (m *mockSessionStore) Get(ctx context.Context, token string) (*models.Session, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	s, ok := m.sessions[token]
	if !ok {
		return nil, nil
	}
	copied := *s
	return &copied, nil
}

func (m *mockSessionStore) Delete(ctx context.Context, token string) error {
	delete(m.sessions, token)
	return nil
}

// Ensure recordingMetrics implements the interface
var _ secondary.StoreMetrics = (*recordingMetrics)(nil)

// recordingMetrics implements secondary.StoreMetrics for testing.
type recordingMetrics struct {
	mu       sync.Mutex
	outcomes map[string]int
	stale    map[string]int
	sizes    map[string]int
	maxInfl  int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{
		outcomes: make(map[string]int),
		stale:    make(map[string]int),
		sizes:    make(map[string]int),
	}
}

func (r *recordingMetrics) ObserveOperation(collection, op, outcome string, elapsed time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes[collection+"/"+op+"/"+outcome]++
}

func (r *recordingMetrics) SetInflight(n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if n > r.maxInfl {
		r.maxInfl = n
	}
}

func (r *recordingMetrics) RecordStale(collection string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stale[collection]++
}

func (r *recordingMetrics) SetCollectionSize(collection string, n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sizes[collection] = n
}

func (r *recordingMetrics) count(key string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.outcomes[key]
}

// ============================================================================
// Fixtures
// ============================================================================

var fixtureNow = time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)

func fixtureEmployees() []models.Employee {
	return []models.Employee{
		{ID: "EMP001", Name: "Rajesh Kumar", Role: "Senior Technician", Department: "Maintenance"},
		{ID: "EMP002", Name: "Priya Sharma", Role: "Safety Officer", Department: "Safety"},
	}
}

func fixtureWorkOrders() []models.WorkOrder {
	return []models.WorkOrder{
		{
			ID: "WRK001", Title: "Transformer Maintenance", Location: "Koramangala Substation",
			Status: models.WorkInProgress, Priority: models.PriorityHigh,
			StartTime: fixtureNow.Add(-2 * time.Hour), EstimatedEndTime: fixtureNow.Add(90 * time.Minute),
			AssignedEmployeeIDs: []string{"EMP001", "EMP999"},
		},
		{
			ID: "WRK002", Title: "Line Inspection", Location: "Whitefield",
			Status: models.WorkPending, Priority: models.PriorityMedium,
			StartTime: fixtureNow.Add(time.Hour), EstimatedEndTime: fixtureNow.Add(5 * time.Hour),
		},
		{
			ID: "WRK003", Title: "Cable Replacement", Location: "Indiranagar",
			Status: models.WorkDelayed, Priority: models.PriorityCritical,
			StartTime: fixtureNow.Add(-6 * time.Hour), EstimatedEndTime: fixtureNow.Add(-time.Hour),
		},
	}
}

func fixtureGridSections() []models.GridSection {
	return []models.GridSection{
		{ID: "GRID001", Name: "Koramangala Central", Status: models.GridOnline, Load: 78, Region: "South", ConnectedToIDs: []string{"GRID002"}},
		{ID: "GRID002", Name: "Indiranagar East", Status: models.GridOffline, Load: 0, Region: "East", ConnectedToIDs: []string{"GRID001", "GRID404"}},
	}
}

func seededGateway() *mockGateway {
	gw := newMockGateway()
	gw.employees = fixtureEmployees()
	gw.workOrders = fixtureWorkOrders()
	gw.gridSections = fixtureGridSections()
	gw.incidents = []models.Incident{
		{ID: "INC001", Title: "Exposed wire", Severity: models.SeverityMedium, Status: models.IncidentOpen, ReportedBy: "EMP002"},
		{ID: "INC002", Title: "Arc flash", Severity: models.SeverityCritical, Status: models.IncidentResolved, ReportedBy: "EMP404"},
	}
	gw.schedules = []models.Schedule{
		{ID: "SCH001", EmployeeID: "EMP001", ShiftStart: fixtureNow.Add(-time.Hour), ShiftEnd: fixtureNow.Add(7 * time.Hour), Type: models.ShiftRegular},
	}
	return gw
}
