package db

import (
	"database/sql"
	"fmt"
	"time"
)

// SeedFixtures populates the database with development fixtures: the
// Bangalore utility crew, its work orders, and the city grid. Times are laid
// out relative to now so the board shows a live mix of active, overdue, and
// finished work. Existing rows are left untouched.
func SeedFixtures(database *sql.DB, dialect Dialect, now time.Time) error {
	ts := func(d time.Duration) string { return now.Add(d).UTC().Format(time.RFC3339) }
	exec := func(query string, args ...any) error {
		_, err := database.Exec(dialect.Rebind(query), args...)
		return err
	}

	// Employees
	employees := []struct{ id, name, role, contact, dept string }{
		{"EMP001", "Rajesh Kumar", "Senior Electrical Engineer", "9876543210", "Maintenance"},
		{"EMP002", "Priya Sharma", "Safety Inspector", "9876543211", "Safety"},
		{"EMP003", "Suresh Gowda", "Line Technician", "9876543212", "Field Operations"},
		{"EMP004", "Divya Patil", "Electrical Supervisor", "9876543213", "Maintenance"},
		{"EMP005", "Karthik Rao", "Grid Operator", "9876543214", "Operations"},
	}
	for _, e := range employees {
		if err := exec(
			"INSERT INTO employees (id, name, role, contact, department) VALUES (?, ?, ?, ?, ?) ON CONFLICT (id) DO NOTHING",
			e.id, e.name, e.role, e.contact, e.dept,
		); err != nil {
			return fmt.Errorf("seed employees: %w", err)
		}
	}

	// Work orders
	workOrders := []struct {
		id, title, location, status, desc, priority string
		start, end                                  time.Duration
		crew                                        []string
	}{
		{"WRK001", "Transformer Maintenance - Jayanagar", "Jayanagar 4th Block", "in-progress",
			"Routine maintenance and inspection of distribution transformers", "medium",
			-2 * time.Hour, 4 * time.Hour, []string{"EMP001", "EMP003"}},
		{"WRK002", "Power Line Repair - Malleshwaram", "Malleshwaram 18th Cross", "pending",
			"Repair damaged power lines due to fallen tree", "high",
			24 * time.Hour, 32 * time.Hour, []string{"EMP003", "EMP004"}},
		{"WRK003", "Substation Inspection - Electronic City", "Electronic City Phase 1", "completed",
			"Safety inspection of substation equipment", "medium",
			-24 * time.Hour, -19 * time.Hour, []string{"EMP002", "EMP005"}},
		{"WRK004", "Emergency Repair - Koramangala", "Koramangala 5th Block", "in-progress",
			"Emergency repair of damaged transformer due to heavy rainfall", "critical",
			-3 * time.Hour, 2 * time.Hour, []string{"EMP001", "EMP004", "EMP003"}},
		{"WRK005", "Grid Upgrade - MG Road", "MG Road Metro Station Area", "delayed",
			"Upgrading power grid capacity to handle increased load", "high",
			-48 * time.Hour, -16 * time.Hour, []string{"EMP005", "EMP001"}},
	}
	for _, w := range workOrders {
		if err := exec(
			"INSERT INTO work_orders (id, title, description, location, status, start_time, estimated_end_time, priority) VALUES (?, ?, ?, ?, ?, ?, ?, ?) ON CONFLICT (id) DO NOTHING",
			w.id, w.title, w.desc, w.location, w.status, ts(w.start), ts(w.end), w.priority,
		); err != nil {
			return fmt.Errorf("seed work orders: %w", err)
		}
		for i, emp := range w.crew {
			if err := exec(
				"INSERT INTO work_order_assignments (work_order_id, employee_id, position) VALUES (?, ?, ?) ON CONFLICT DO NOTHING",
				w.id, emp, i,
			); err != nil {
				return fmt.Errorf("seed work order assignments: %w", err)
			}
		}
	}

	// Grid sections
	sections := []struct {
		id, name, status, region string
		load                     int
		connected                []string
	}{
		{"GRID001", "North Bangalore Substation", "online", "North Bangalore", 78, []string{"GRID002", "GRID005"}},
		{"GRID002", "Central Distribution Hub", "online", "Central Bangalore", 85, []string{"GRID001", "GRID003", "GRID004"}},
		{"GRID003", "South Zone Power Station", "maintenance", "South Bangalore", 45, []string{"GRID002", "GRID005"}},
		{"GRID004", "East Bangalore Grid", "alert", "East Bangalore", 92, []string{"GRID002"}},
		{"GRID005", "West Zone Distribution", "online", "West Bangalore", 67, []string{"GRID001", "GRID003"}},
		{"GRID006", "Industrial Area Substation", "offline", "Southeast Bangalore", 0, nil},
	}
	for _, s := range sections {
		if err := exec(
			"INSERT INTO grid_sections (id, name, status, load, region) VALUES (?, ?, ?, ?, ?) ON CONFLICT (id) DO NOTHING",
			s.id, s.name, s.status, s.load, s.region,
		); err != nil {
			return fmt.Errorf("seed grid sections: %w", err)
		}
	}
	for _, s := range sections {
		for i, peer := range s.connected {
			if err := exec(
				"INSERT INTO grid_connections (from_section_id, to_section_id, position) VALUES (?, ?, ?) ON CONFLICT DO NOTHING",
				s.id, peer, i,
			); err != nil {
				return fmt.Errorf("seed grid connections: %w", err)
			}
		}
	}

	// Incidents
	incidents := []struct {
		id, title, desc, severity, status, reporter string
		at                                          time.Duration
	}{
		{"INC001", "Exposed conductor near bus stop", "Insulation stripped on low-hanging service line", "high", "open", "EMP002", -5 * time.Hour},
		{"INC002", "Ladder slip during pole climb", "Minor injury, first aid administered on site", "medium", "resolved", "EMP003", -30 * time.Hour},
		{"INC003", "Transformer oil leak", "Leak observed at Koramangala unit after rainfall", "critical", "open", "EMP004", -90 * time.Minute},
	}
	for _, inc := range incidents {
		if err := exec(
			"INSERT INTO incidents (id, title, description, severity, status, reported_by, created_at) VALUES (?, ?, ?, ?, ?, ?, ?) ON CONFLICT (id) DO NOTHING",
			inc.id, inc.title, inc.desc, inc.severity, inc.status, inc.reporter, ts(inc.at),
		); err != nil {
			return fmt.Errorf("seed incidents: %w", err)
		}
	}

	// Schedules
	schedules := []struct {
		id, employeeID, shiftType string
		start, end                time.Duration
	}{
		{"SCH001", "EMP001", "regular", -2 * time.Hour, 6 * time.Hour},
		{"SCH002", "EMP003", "regular", -2 * time.Hour, 6 * time.Hour},
		{"SCH003", "EMP005", "on-call", 6 * time.Hour, 18 * time.Hour},
		{"SCH004", "EMP004", "overtime", -4 * time.Hour, 2 * time.Hour},
	}
	for _, s := range schedules {
		if err := exec(
			"INSERT INTO schedules (id, employee_id, shift_start, shift_end, type) VALUES (?, ?, ?, ?, ?) ON CONFLICT (id) DO NOTHING",
			s.id, s.employeeID, ts(s.start), ts(s.end), s.shiftType,
		); err != nil {
			return fmt.Errorf("seed schedules: %w", err)
		}
	}

	return nil
}
