package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/example/gridboard/internal/models"
	"github.com/example/gridboard/internal/ports/secondary"
)

// Mutate applies one insert, partial update, or upsert.
func (g *Gateway) Mutate(ctx context.Context, m secondary.Mutation) error {
	switch {
	case m.Collection == secondary.CollectionWorkOrders && m.Op == secondary.OpInsert:
		draft, ok := workOrderDraft(m.Record)
		if !ok {
			return invalidRecord(m)
		}
		return g.insertWorkOrder(ctx, draft)
	case m.Collection == secondary.CollectionWorkOrders && m.Op == secondary.OpUpdate:
		return g.updateWorkOrder(ctx, m.ID, m.Fields)
	case m.Collection == secondary.CollectionIncidents && m.Op == secondary.OpInsert:
		draft, ok := incidentDraft(m.Record)
		if !ok {
			return invalidRecord(m)
		}
		return g.insertIncident(ctx, draft)
	case m.Collection == secondary.CollectionSchedules && m.Op == secondary.OpUpsert:
		sched, ok := scheduleRecord(m.Record)
		if !ok {
			return invalidRecord(m)
		}
		if m.ID != "" && sched.ID == "" {
			sched.ID = m.ID
		}
		return g.upsertSchedule(ctx, sched)
	case m.Collection == secondary.CollectionGridSections && m.Op == secondary.OpUpdate:
		return g.updateGridSection(ctx, m.ID, m.Fields)
	}
	return secondary.NewGatewayError(secondary.ErrValidation, nil, "unsupported mutation: %s on %s", m.Op, m.Collection)
}

func (g *Gateway) insertWorkOrder(ctx context.Context, d models.WorkOrderDraft) error {
	id := g.newID("WRK")
	err := g.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, g.q(
			"INSERT INTO work_orders (id, title, description, location, status, start_time, estimated_end_time, priority) VALUES (?, ?, ?, ?, ?, ?, ?, ?)"),
			id, d.Title, d.Description, d.Location, string(d.Status),
			formatTime(d.StartTime), formatTime(d.EstimatedEndTime), string(d.Priority),
		); err != nil {
			return err
		}
		return g.replaceAssignments(ctx, tx, id, d.AssignedEmployeeIDs)
	})
	return classify(err, "create work order")
}

// workOrderColumns lists the columns a partial work order update may set.
var workOrderColumns = map[string]bool{
	"status":             true,
	"title":              true,
	"description":        true,
	"location":           true,
	"priority":           true,
	"estimated_end_time": true,
}

func (g *Gateway) updateWorkOrder(ctx context.Context, id string, fields map[string]any) error {
	if id == "" {
		return secondary.NewGatewayError(secondary.ErrValidation, nil, "work order ID is required")
	}
	if len(fields) == 0 {
		return secondary.NewGatewayError(secondary.ErrValidation, nil, "no fields to update")
	}

	var (
		sets    []string
		args    []any
		crew    []string
		hasCrew bool
	)
	for _, name := range sortedKeys(fields) {
		value := fields[name]
		if name == "assigned_employee_ids" {
			ids, ok := stringList(value)
			if !ok {
				return invalidField("work_orders", name, value)
			}
			crew, hasCrew = ids, true
			continue
		}
		if !workOrderColumns[name] {
			return secondary.NewGatewayError(secondary.ErrValidation, nil, "unknown work_orders field %q", name)
		}
		s, ok := stringValue(value)
		if !ok {
			return invalidField("work_orders", name, value)
		}
		switch name {
		case "status":
			if !models.WorkStatus(s).IsKnown() {
				return secondary.NewGatewayError(secondary.ErrValidation, nil, "invalid work status %q", s)
			}
		case "priority":
			if !models.Priority(s).IsKnown() {
				return secondary.NewGatewayError(secondary.ErrValidation, nil, "invalid priority %q", s)
			}
		case "estimated_end_time":
			t, err := time.Parse(time.RFC3339, s)
			if err != nil {
				return invalidField("work_orders", name, value)
			}
			s = formatTime(t)
		}
		sets = append(sets, name+" = ?")
		args = append(args, s)
	}

	err := g.withTx(ctx, func(tx *sql.Tx) error {
		if len(sets) > 0 {
			res, err := tx.ExecContext(ctx, g.q("UPDATE work_orders SET "+strings.Join(sets, ", ")+" WHERE id = ?"), append(args, id)...)
			if err != nil {
				return err
			}
			if n, err := res.RowsAffected(); err == nil && n == 0 {
				return secondary.NewGatewayError(secondary.ErrNotFound, nil, "work order %s not found", id)
			}
		} else if err := g.requireRow(ctx, tx, "work_orders", id, "work order"); err != nil {
			return err
		}
		if hasCrew {
			return g.replaceAssignments(ctx, tx, id, crew)
		}
		return nil
	})
	return classify(err, "update work order")
}

func (g *Gateway) replaceAssignments(ctx context.Context, tx *sql.Tx, workOrderID string, employeeIDs []string) error {
	if _, err := tx.ExecContext(ctx, g.q("DELETE FROM work_order_assignments WHERE work_order_id = ?"), workOrderID); err != nil {
		return err
	}
	seen := make(map[string]bool, len(employeeIDs))
	for i, emp := range employeeIDs {
		if seen[emp] {
			continue
		}
		seen[emp] = true
		if _, err := tx.ExecContext(ctx, g.q(
			"INSERT INTO work_order_assignments (work_order_id, employee_id, position) VALUES (?, ?, ?)"),
			workOrderID, emp, i,
		); err != nil {
			return err
		}
	}
	return nil
}

func (g *Gateway) insertIncident(ctx context.Context, d models.IncidentDraft) error {
	if d.Severity == "" {
		d.Severity = models.SeverityLow
	}
	if d.Status == "" {
		d.Status = models.IncidentOpen
	}
	_, err := g.conn.ExecContext(ctx, g.q(
		"INSERT INTO incidents (id, title, description, severity, status, reported_by, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)"),
		g.newID("INC"), d.Title, d.Description, string(d.Severity), d.Status, d.ReportedBy, formatTime(g.now()),
	)
	return classify(err, "create incident")
}

func (g *Gateway) upsertSchedule(ctx context.Context, s models.Schedule) error {
	if s.ID == "" {
		return secondary.NewGatewayError(secondary.ErrValidation, nil, "schedule ID is required")
	}
	if s.Type == "" {
		s.Type = models.ShiftRegular
	}
	_, err := g.conn.ExecContext(ctx, g.q(`
		INSERT INTO schedules (id, employee_id, shift_start, shift_end, type) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			employee_id = excluded.employee_id,
			shift_start = excluded.shift_start,
			shift_end = excluded.shift_end,
			type = excluded.type`),
		s.ID, s.EmployeeID, formatTime(s.ShiftStart), formatTime(s.ShiftEnd), s.Type,
	)
	return classify(err, "upsert schedule")
}

func (g *Gateway) updateGridSection(ctx context.Context, id string, fields map[string]any) error {
	if id == "" {
		return secondary.NewGatewayError(secondary.ErrValidation, nil, "grid section ID is required")
	}
	if len(fields) == 0 {
		return secondary.NewGatewayError(secondary.ErrValidation, nil, "no fields to update")
	}

	var (
		sets []string
		args []any
	)
	for _, name := range sortedKeys(fields) {
		value := fields[name]
		switch name {
		case "load":
			load, ok := intValue(value)
			if !ok {
				return invalidField("grid_sections", name, value)
			}
			args = append(args, load)
		case "status":
			s, ok := stringValue(value)
			if !ok {
				return invalidField("grid_sections", name, value)
			}
			if !models.GridStatus(s).IsKnown() {
				return secondary.NewGatewayError(secondary.ErrValidation, nil, "invalid grid status %q", s)
			}
			args = append(args, s)
		case "name", "region":
			s, ok := stringValue(value)
			if !ok {
				return invalidField("grid_sections", name, value)
			}
			args = append(args, s)
		default:
			return secondary.NewGatewayError(secondary.ErrValidation, nil, "unknown grid_sections field %q", name)
		}
		sets = append(sets, name+" = ?")
	}

	res, err := g.conn.ExecContext(ctx, g.q("UPDATE grid_sections SET "+strings.Join(sets, ", ")+" WHERE id = ?"), append(args, id)...)
	if err != nil {
		return classify(err, "update grid section")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return secondary.NewGatewayError(secondary.ErrNotFound, nil, "grid section %s not found", id)
	}
	return nil
}

func (g *Gateway) requireRow(ctx context.Context, tx *sql.Tx, table, id, noun string) error {
	var one int
	err := tx.QueryRowContext(ctx, g.q("SELECT 1 FROM "+table+" WHERE id = ?"), id).Scan(&one)
	if err == sql.ErrNoRows {
		return secondary.NewGatewayError(secondary.ErrNotFound, nil, "%s %s not found", noun, id)
	}
	return err
}

func invalidRecord(m secondary.Mutation) error {
	return secondary.NewGatewayError(secondary.ErrValidation, nil, "invalid %s record for %s: %T", m.Op, m.Collection, m.Record)
}

func invalidField(table, name string, value any) error {
	return secondary.NewGatewayError(secondary.ErrValidation, nil, "invalid value for %s.%s: %v", table, name, value)
}

func workOrderDraft(record any) (models.WorkOrderDraft, bool) {
	switch r := record.(type) {
	case *models.WorkOrderDraft:
		if r != nil {
			return *r, true
		}
	case models.WorkOrderDraft:
		return r, true
	}
	return models.WorkOrderDraft{}, false
}

func incidentDraft(record any) (models.IncidentDraft, bool) {
	switch r := record.(type) {
	case *models.IncidentDraft:
		if r != nil {
			return *r, true
		}
	case models.IncidentDraft:
		return r, true
	}
	return models.IncidentDraft{}, false
}

func scheduleRecord(record any) (models.Schedule, bool) {
	switch r := record.(type) {
	case *models.Schedule:
		if r != nil {
			return *r, true
		}
	case models.Schedule:
		return r, true
	}
	return models.Schedule{}, false
}

func sortedKeys(fields map[string]any) []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// stringValue accepts plain strings and the string-kinded model enums.
func stringValue(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case models.WorkStatus:
		return string(t), true
	case models.GridStatus:
		return string(t), true
	case models.Priority:
		return string(t), true
	case time.Time:
		return formatTime(t), true
	case fmt.Stringer:
		return t.String(), true
	}
	return "", false
}

// intValue accepts Go integers and the integral numbers produced by JSON decoding.
func intValue(v any) (int, bool) {
	switch t := v.(type) {
	case int:
		return t, true
	case int64:
		return int(t), true
	case float64:
		if t != math.Trunc(t) {
			return 0, false
		}
		return int(t), true
	case json.Number:
		n, err := t.Int64()
		if err != nil {
			return 0, false
		}
		return int(n), true
	}
	return 0, false
}

func stringList(v any) ([]string, bool) {
	switch t := v.(type) {
	case []string:
		return t, true
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	}
	return nil, false
}
