package sqlstore

import (
	"context"
	"database/sql"

	"github.com/example/gridboard/internal/models"
)

// FetchEmployees returns all employees in insertion order.
func (g *Gateway) FetchEmployees(ctx context.Context) ([]models.Employee, error) {
	rows, err := g.conn.QueryContext(ctx, "SELECT id, name, role, contact, department FROM employees ORDER BY seq")
	if err != nil {
		return nil, classify(err, "fetch employees")
	}
	defer rows.Close()

	var employees []models.Employee
	for rows.Next() {
		var e models.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Role, &e.Contact, &e.Department); err != nil {
			return nil, malformed(err, "failed to read employee row: %v", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err, "fetch employees")
	}
	return employees, nil
}

// FetchWorkOrders returns all work orders with their assigned employee IDs.
func (g *Gateway) FetchWorkOrders(ctx context.Context) ([]models.WorkOrder, error) {
	rows, err := g.conn.QueryContext(ctx,
		"SELECT id, title, description, location, status, start_time, estimated_end_time, priority FROM work_orders ORDER BY seq")
	if err != nil {
		return nil, classify(err, "fetch work orders")
	}
	defer rows.Close()

	var orders []models.WorkOrder
	for rows.Next() {
		var (
			o          models.WorkOrder
			status     string
			priority   string
			start, end string
		)
		if err := rows.Scan(&o.ID, &o.Title, &o.Description, &o.Location, &status, &start, &end, &priority); err != nil {
			return nil, malformed(err, "failed to read work order row: %v", err)
		}
		o.Status = models.WorkStatus(status)
		o.Priority = models.Priority(priority)
		if o.StartTime, err = parseTime(start, "start_time", o.ID); err != nil {
			return nil, err
		}
		if o.EstimatedEndTime, err = parseTime(end, "estimated_end_time", o.ID); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err, "fetch work orders")
	}

	crews, err := g.expand(ctx, "SELECT work_order_id, employee_id FROM work_order_assignments ORDER BY work_order_id, position")
	if err != nil {
		return nil, classify(err, "fetch work order assignments")
	}
	for i := range orders {
		orders[i].AssignedEmployeeIDs = crews[orders[i].ID]
	}
	return orders, nil
}

// FetchGridSections returns all grid sections with their connected section IDs.
func (g *Gateway) FetchGridSections(ctx context.Context) ([]models.GridSection, error) {
	rows, err := g.conn.QueryContext(ctx, "SELECT id, name, status, load, region FROM grid_sections ORDER BY seq")
	if err != nil {
		return nil, classify(err, "fetch grid sections")
	}
	defer rows.Close()

	var sections []models.GridSection
	for rows.Next() {
		var (
			s      models.GridSection
			status string
		)
		if err := rows.Scan(&s.ID, &s.Name, &status, &s.Load, &s.Region); err != nil {
			return nil, malformed(err, "failed to read grid section row: %v", err)
		}
		s.Status = models.GridStatus(status)
		sections = append(sections, s)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err, "fetch grid sections")
	}

	links, err := g.expand(ctx, "SELECT from_section_id, to_section_id FROM grid_connections ORDER BY from_section_id, position")
	if err != nil {
		return nil, classify(err, "fetch grid connections")
	}
	for i := range sections {
		sections[i].ConnectedToIDs = links[sections[i].ID]
	}
	return sections, nil
}

// FetchIncidents returns all incidents in insertion order.
func (g *Gateway) FetchIncidents(ctx context.Context) ([]models.Incident, error) {
	rows, err := g.conn.QueryContext(ctx,
		"SELECT id, title, description, severity, status, reported_by, created_at FROM incidents ORDER BY seq")
	if err != nil {
		return nil, classify(err, "fetch incidents")
	}
	defer rows.Close()

	var incidents []models.Incident
	for rows.Next() {
		var (
			inc       models.Incident
			severity  string
			createdAt string
		)
		if err := rows.Scan(&inc.ID, &inc.Title, &inc.Description, &severity, &inc.Status, &inc.ReportedBy, &createdAt); err != nil {
			return nil, malformed(err, "failed to read incident row: %v", err)
		}
		inc.Severity = models.Severity(severity)
		if inc.CreatedAt, err = parseTime(createdAt, "created_at", inc.ID); err != nil {
			return nil, err
		}
		incidents = append(incidents, inc)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err, "fetch incidents")
	}
	return incidents, nil
}

// FetchSchedules returns all schedules in insertion order.
func (g *Gateway) FetchSchedules(ctx context.Context) ([]models.Schedule, error) {
	rows, err := g.conn.QueryContext(ctx,
		"SELECT id, employee_id, shift_start, shift_end, type FROM schedules ORDER BY seq")
	if err != nil {
		return nil, classify(err, "fetch schedules")
	}
	defer rows.Close()

	var schedules []models.Schedule
	for rows.Next() {
		var (
			s          models.Schedule
			start, end string
		)
		if err := rows.Scan(&s.ID, &s.EmployeeID, &start, &end, &s.Type); err != nil {
			return nil, malformed(err, "failed to read schedule row: %v", err)
		}
		if s.ShiftStart, err = parseTime(start, "shift_start", s.ID); err != nil {
			return nil, err
		}
		if s.ShiftEnd, err = parseTime(end, "shift_end", s.ID); err != nil {
			return nil, err
		}
		schedules = append(schedules, s)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err, "fetch schedules")
	}
	return schedules, nil
}

// expand reads a two-column join table into owner ID -> ordered related IDs.
func (g *Gateway) expand(ctx context.Context, query string) (map[string][]string, error) {
	rows, err := g.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string][]string)
	for rows.Next() {
		var owner, related sql.NullString
		if err := rows.Scan(&owner, &related); err != nil {
			return nil, err
		}
		out[owner.String] = append(out[owner.String], related.String)
	}
	return out, rows.Err()
}
