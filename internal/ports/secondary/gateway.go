// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import (
	"context"

	"github.com/example/gridboard/internal/models"
)

// Collection names one of the five record collections held by the backing service.
type Collection string

const (
	CollectionEmployees    Collection = "employees"
	CollectionWorkOrders   Collection = "work_orders"
	CollectionGridSections Collection = "grid_sections"
	CollectionIncidents    Collection = "incidents"
	CollectionSchedules    Collection = "schedules"
)

// Collections lists every collection in load order.
var Collections = []Collection{
	CollectionEmployees,
	CollectionWorkOrders,
	CollectionGridSections,
	CollectionIncidents,
	CollectionSchedules,
}

// IsKnown reports whether c names one of the five collections.
func (c Collection) IsKnown() bool {
	for _, known := range Collections {
		if c == known {
			return true
		}
	}
	return false
}

// Gateway defines the secondary port for the remote data service.
// Implementations perform relational expansion themselves and never retry.
// Every error returned is a *GatewayError.
type Gateway interface {
	// FetchEmployees returns all employees in service order.
	FetchEmployees(ctx context.Context) ([]models.Employee, error)

	// FetchWorkOrders returns all work orders with AssignedEmployeeIDs expanded.
	FetchWorkOrders(ctx context.Context) ([]models.WorkOrder, error)

	// FetchGridSections returns all grid sections with ConnectedToIDs expanded.
	FetchGridSections(ctx context.Context) ([]models.GridSection, error)

	// FetchIncidents returns all incidents in service order.
	FetchIncidents(ctx context.Context) ([]models.Incident, error)

	// FetchSchedules returns all schedules in service order.
	FetchSchedules(ctx context.Context) ([]models.Schedule, error)

	// Mutate applies a single insert, partial update, or upsert.
	Mutate(ctx context.Context, m Mutation) error
}

// MutationOp is the kind of write a Mutation performs.
type MutationOp string

const (
	OpInsert MutationOp = "insert"
	OpUpdate MutationOp = "update"
	OpUpsert MutationOp = "upsert"
)

// Mutation describes one write against a collection.
//
// Insert carries a draft in Record (*models.WorkOrderDraft or *models.IncidentDraft).
// Update carries the target ID and the changed columns in Fields.
// Upsert carries the full record in Record (*models.Schedule).
type Mutation struct {
	Collection Collection
	Op         MutationOp
	ID         string
	Record     any
	Fields     map[string]any
}

// InsertWorkOrder builds the mutation that creates a work order from a draft.
func InsertWorkOrder(draft models.WorkOrderDraft) Mutation {
	return Mutation{Collection: CollectionWorkOrders, Op: OpInsert, Record: &draft}
}

// UpdateWorkOrder builds a partial update of a work order.
func UpdateWorkOrder(id string, fields map[string]any) Mutation {
	return Mutation{Collection: CollectionWorkOrders, Op: OpUpdate, ID: id, Fields: fields}
}

// InsertIncident builds the mutation that reports an incident.
func InsertIncident(draft models.IncidentDraft) Mutation {
	return Mutation{Collection: CollectionIncidents, Op: OpInsert, Record: &draft}
}

// UpsertSchedule builds the mutation that creates or replaces a schedule by ID.
func UpsertSchedule(schedule models.Schedule) Mutation {
	return Mutation{Collection: CollectionSchedules, Op: OpUpsert, ID: schedule.ID, Record: &schedule}
}

// UpdateGridSection builds a partial update of a grid section.
func UpdateGridSection(id string, fields map[string]any) Mutation {
	return Mutation{Collection: CollectionGridSections, Op: OpUpdate, ID: id, Fields: fields}
}
