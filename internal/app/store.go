package app

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/example/gridboard/internal/core/grid"
	"github.com/example/gridboard/internal/core/incident"
	"github.com/example/gridboard/internal/core/schedule"
	"github.com/example/gridboard/internal/core/workorder"
	"github.com/example/gridboard/internal/ctxutil"
	"github.com/example/gridboard/internal/models"
	"github.com/example/gridboard/internal/ports/primary"
	"github.com/example/gridboard/internal/ports/secondary"
)

// DefaultOperationTimeout bounds a single store operation when none is configured.
const DefaultOperationTimeout = 15 * time.Second

// Outcome labels recorded for each operation.
const (
	outcomeOK       = "ok"
	outcomeError    = "error"
	outcomeRejected = "rejected"
	outcomeStale    = "stale"
)

// StoreImpl implements the Store interface.
//
// Each collection carries a ticket counter. A fetch response is applied only
// if its ticket is still the latest issued for that collection, so a slow
// response can never overwrite a newer one.
type StoreImpl struct {
	gateway secondary.Gateway
	metrics secondary.StoreMetrics
	logger  logrus.FieldLogger
	timeout time.Duration
	clock   func() time.Time

	mu           sync.Mutex
	employees    []models.Employee
	workOrders   []models.WorkOrder
	gridSections []models.GridSection
	incidents    []models.Incident
	schedules    []models.Schedule
	inflight     int
	lastError    string
	tickets      map[secondary.Collection]uint64
}

// StoreOption configures a StoreImpl.
type StoreOption func(*StoreImpl)

// WithMetrics sets the metrics sink.
func WithMetrics(m secondary.StoreMetrics) StoreOption {
	return func(s *StoreImpl) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l logrus.FieldLogger) StoreOption {
	return func(s *StoreImpl) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithTimeout sets the per-operation timeout. Non-positive values are ignored.
func WithTimeout(d time.Duration) StoreOption {
	return func(s *StoreImpl) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithClock sets the clock used to stamp snapshots.
func WithClock(clock func() time.Time) StoreOption {
	return func(s *StoreImpl) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// NewStore creates a new Store over the given gateway. All collections start empty.
func NewStore(gateway secondary.Gateway, opts ...StoreOption) *StoreImpl {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	s := &StoreImpl{
		gateway: gateway,
		metrics: secondary.NoopMetrics{},
		logger:  discard,
		timeout: DefaultOperationTimeout,
		clock:   time.Now,
		tickets: make(map[secondary.Collection]uint64),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ primary.Store = (*StoreImpl)(nil)

// FetchEmployees replaces the employee collection.
func (s *StoreImpl) FetchEmployees(ctx context.Context) {
	s.begin()
	defer s.end()
	s.refreshEmployees(ctx)
}

// FetchWorkOrders replaces the work order collection.
func (s *StoreImpl) FetchWorkOrders(ctx context.Context) {
	s.begin()
	defer s.end()
	s.refreshWorkOrders(ctx)
}

// FetchGridSections replaces the grid section collection.
func (s *StoreImpl) FetchGridSections(ctx context.Context) {
	s.begin()
	defer s.end()
	s.refreshGridSections(ctx)
}

// FetchIncidents replaces the incident collection.
func (s *StoreImpl) FetchIncidents(ctx context.Context) {
	s.begin()
	defer s.end()
	s.refreshIncidents(ctx)
}

// FetchSchedules replaces the schedule collection.
func (s *StoreImpl) FetchSchedules(ctx context.Context) {
	s.begin()
	defer s.end()
	s.refreshSchedules(ctx)
}

// RefreshAll fetches all five collections concurrently. Each fetch follows
// the single-collection protocol; the last failure to settle wins LastError.
func (s *StoreImpl) RefreshAll(ctx context.Context) {
	s.begin()
	defer s.end()

	// A failed fetch leaves its siblings running.
	var g errgroup.Group
	for _, refresh := range []func(context.Context){
		s.refreshEmployees,
		s.refreshWorkOrders,
		s.refreshGridSections,
		s.refreshIncidents,
		s.refreshSchedules,
	} {
		refresh := refresh
		g.Go(func() error {
			refresh(ctx)
			return nil
		})
	}
	_ = g.Wait()
}

// UpdateWorkStatus changes a work order's status and re-fetches work orders.
func (s *StoreImpl) UpdateWorkStatus(ctx context.Context, id string, status models.WorkStatus, notes string) {
	s.begin()
	defer s.end()

	if result := workorder.CanUpdateStatus(workorder.StatusUpdateContext{WorkOrderID: id, Status: status}); !result.Allowed {
		s.reject(secondary.CollectionWorkOrders, secondary.OpUpdate, result.Reason)
		return
	}
	if notes != "" {
		s.logger.WithFields(logrus.Fields{"work_order_id": id, "status": status, "notes": notes}).
			Debug("status update notes")
	}

	m := secondary.UpdateWorkOrder(id, map[string]any{"status": string(status)})
	if s.write(ctx, m) {
		s.refreshWorkOrders(ctx)
	}
}

// AddNewWork creates a work order and re-fetches work orders.
func (s *StoreImpl) AddNewWork(ctx context.Context, draft models.WorkOrderDraft) {
	s.begin()
	defer s.end()

	if result := workorder.CanCreateWork(workorder.CreateWorkContext{Draft: draft}); !result.Allowed {
		s.reject(secondary.CollectionWorkOrders, secondary.OpInsert, result.Reason)
		return
	}

	if s.write(ctx, secondary.InsertWorkOrder(draft)) {
		s.refreshWorkOrders(ctx)
	}
}

// AddIncident reports an incident and re-fetches incidents.
func (s *StoreImpl) AddIncident(ctx context.Context, draft models.IncidentDraft) {
	s.begin()
	defer s.end()

	if result := incident.CanReport(incident.ReportContext{Draft: draft}); !result.Allowed {
		s.reject(secondary.CollectionIncidents, secondary.OpInsert, result.Reason)
		return
	}

	if s.write(ctx, secondary.InsertIncident(incident.Normalize(draft))) {
		s.refreshIncidents(ctx)
	}
}

// UpdateSchedule upserts a schedule and re-fetches schedules.
func (s *StoreImpl) UpdateSchedule(ctx context.Context, sched models.Schedule) {
	s.begin()
	defer s.end()

	if result := schedule.CanUpsert(schedule.UpsertContext{Schedule: sched}); !result.Allowed {
		s.reject(secondary.CollectionSchedules, secondary.OpUpsert, result.Reason)
		return
	}

	if s.write(ctx, secondary.UpsertSchedule(sched)) {
		s.refreshSchedules(ctx)
	}
}

// UpdateGridSection sets a section's status and load and re-fetches grid sections.
func (s *StoreImpl) UpdateGridSection(ctx context.Context, id string, status models.GridStatus, load int) {
	s.begin()
	defer s.end()

	if result := grid.CanUpdateSection(grid.UpdateSectionContext{SectionID: id, Status: status, Load: load}); !result.Allowed {
		s.reject(secondary.CollectionGridSections, secondary.OpUpdate, result.Reason)
		return
	}

	m := secondary.UpdateGridSection(id, map[string]any{"status": string(status), "load": load})
	if s.write(ctx, m) {
		s.refreshGridSections(ctx)
	}
}

// Snapshot returns deep copies of every collection plus the current flags.
func (s *StoreImpl) Snapshot() primary.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := primary.Snapshot{
		Employees:    append([]models.Employee(nil), s.employees...),
		Incidents:    append([]models.Incident(nil), s.incidents...),
		Schedules:    append([]models.Schedule(nil), s.schedules...),
		WorkOrders:   make([]models.WorkOrder, len(s.workOrders)),
		GridSections: make([]models.GridSection, len(s.gridSections)),
		Loading:      s.inflight > 0,
		LastError:    s.lastError,
		TakenAt:      s.clock(),
	}
	for i, o := range s.workOrders {
		snap.WorkOrders[i] = o.Clone()
	}
	for i, g := range s.gridSections {
		snap.GridSections[i] = g.Clone()
	}
	return snap
}

// Loading reports whether any operation is in flight.
func (s *StoreImpl) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inflight > 0
}

// LastError returns the message left by the most recent failure, or "".
func (s *StoreImpl) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}

func (s *StoreImpl) refreshEmployees(ctx context.Context) {
	fetchCollection(ctx, s, secondary.CollectionEmployees, s.gateway.FetchEmployees, nil,
		func(items []models.Employee) { s.employees = items })
}

func (s *StoreImpl) refreshWorkOrders(ctx context.Context) {
	fetchCollection(ctx, s, secondary.CollectionWorkOrders, s.gateway.FetchWorkOrders, workorder.CheckIntegrity,
		func(items []models.WorkOrder) { s.workOrders = items })
}

func (s *StoreImpl) refreshGridSections(ctx context.Context) {
	fetchCollection(ctx, s, secondary.CollectionGridSections, s.gateway.FetchGridSections, grid.CheckIntegrity,
		func(items []models.GridSection) { s.gridSections = items })
}

func (s *StoreImpl) refreshIncidents(ctx context.Context) {
	fetchCollection(ctx, s, secondary.CollectionIncidents, s.gateway.FetchIncidents, nil,
		func(items []models.Incident) { s.incidents = items })
}

func (s *StoreImpl) refreshSchedules(ctx context.Context) {
	fetchCollection(ctx, s, secondary.CollectionSchedules, s.gateway.FetchSchedules, nil,
		func(items []models.Schedule) { s.schedules = items })
}

// fetchCollection runs one fenced fetch. apply is called under the store lock.
func fetchCollection[T any](
	ctx context.Context,
	s *StoreImpl,
	coll secondary.Collection,
	fetch func(context.Context) ([]T, error),
	check func([]T) error,
	apply func([]T),
) {
	s.mu.Lock()
	s.tickets[coll]++
	ticket := s.tickets[coll]
	s.mu.Unlock()

	opCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	items, err := await(opCtx, fetch)
	if err == nil && check != nil {
		if cerr := check(items); cerr != nil {
			err = secondary.NewGatewayError(secondary.ErrMalformed, cerr, "malformed %s response: %s", coll, cerr.Error())
		}
	}
	elapsed := time.Since(start)

	s.mu.Lock()
	defer s.mu.Unlock()

	log := s.logger.WithFields(logrus.Fields{"collection": coll, "op": "fetch", "elapsed": elapsed})
	if ticket != s.tickets[coll] {
		log.Debug("discarding stale response")
		s.metrics.RecordStale(string(coll))
		s.metrics.ObserveOperation(string(coll), "fetch", outcomeStale, elapsed)
		return
	}
	if err != nil {
		gwErr := secondary.AsGatewayError(err)
		s.lastError = gwErr.Message
		log.WithField("kind", gwErr.Kind).WithError(err).Warn("fetch failed")
		s.metrics.ObserveOperation(string(coll), "fetch", outcomeError, elapsed)
		return
	}

	if items == nil {
		items = []T{}
	}
	apply(items)
	log.WithField("count", len(items)).Debug("collection replaced")
	s.metrics.ObserveOperation(string(coll), "fetch", outcomeOK, elapsed)
	s.metrics.SetCollectionSize(string(coll), len(items))
}

// write issues a mutation and reports whether it succeeded.
func (s *StoreImpl) write(ctx context.Context, m secondary.Mutation) bool {
	opCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	_, err := await(opCtx, func(c context.Context) (struct{}, error) {
		return struct{}{}, s.gateway.Mutate(c, m)
	})
	elapsed := time.Since(start)

	log := s.logger.WithFields(logrus.Fields{
		"collection": m.Collection,
		"op":         m.Op,
		"id":         m.ID,
		"actor":      ctxutil.ActorFromContext(ctx),
		"elapsed":    elapsed,
	})
	if err != nil {
		gwErr := secondary.AsGatewayError(err)
		s.mu.Lock()
		s.lastError = gwErr.Message
		s.mu.Unlock()
		log.WithField("kind", gwErr.Kind).WithError(err).Warn("mutation failed")
		s.metrics.ObserveOperation(string(m.Collection), string(m.Op), outcomeError, elapsed)
		return false
	}

	log.Info("mutation applied")
	s.metrics.ObserveOperation(string(m.Collection), string(m.Op), outcomeOK, elapsed)
	return true
}

// reject records a locally refused mutation as a validation failure.
func (s *StoreImpl) reject(coll secondary.Collection, op secondary.MutationOp, reason string) {
	s.mu.Lock()
	s.lastError = reason
	s.mu.Unlock()

	s.logger.WithFields(logrus.Fields{"collection": coll, "op": op, "kind": secondary.ErrValidation}).
		Info("mutation rejected: " + reason)
	s.metrics.ObserveOperation(string(coll), string(op), outcomeRejected, 0)
}

func (s *StoreImpl) begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inflight++
	s.lastError = ""
	s.metrics.SetInflight(s.inflight)
}

func (s *StoreImpl) end() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inflight--
	s.metrics.SetInflight(s.inflight)
}

// await runs call in its own goroutine so a gateway that ignores its context
// still cannot hold the caller past ctx's deadline.
func await[T any](ctx context.Context, call func(context.Context) (T, error)) (T, error) {
	type result struct {
		value T
		err   error
	}
	done := make(chan result, 1)
	go func() {
		v, err := call(ctx)
		done <- result{v, err}
	}()

	select {
	case r := <-done:
		return r.value, r.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
