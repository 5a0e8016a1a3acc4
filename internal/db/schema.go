package db

import "strings"

// SchemaSQL is the complete schema for the record tables (SQLite dialect).
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. Tests use it via
// GetSchemaSQL() rather than declaring their own tables, so an adapter that
// references a missing column fails with "no such column" at test time.
//
// Every table carries a seq column. Collections are returned in seq order,
// which is insertion order.
//
// Status columns carry no CHECK constraint: an unrecognised
// status must reach the application, which rejects it as malformed.
// Cross-collection references (assignments, reporters, schedule owners,
// grid connections) may dangle and so have no foreign key to their target.
const SchemaSQL = `
-- Employees (reference data)
CREATE TABLE IF NOT EXISTS employees (
	seq INTEGER PRIMARY KEY AUTOINCREMENT,
	id TEXT NOT NULL UNIQUE,
	name TEXT NOT NULL,
	role TEXT NOT NULL DEFAULT '',
	contact TEXT NOT NULL DEFAULT '',
	department TEXT NOT NULL DEFAULT ''
);

-- Work orders
CREATE TABLE IF NOT EXISTS work_orders (
	seq INTEGER PRIMARY KEY AUTOINCREMENT,
	id TEXT NOT NULL UNIQUE,
	title TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	location TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL DEFAULT 'pending',
	start_time TEXT NOT NULL,
	estimated_end_time TEXT NOT NULL,
	priority TEXT NOT NULL DEFAULT 'medium'
);

CREATE TABLE IF NOT EXISTS work_order_assignments (
	work_order_id TEXT NOT NULL REFERENCES work_orders(id) ON DELETE CASCADE,
	employee_id TEXT NOT NULL,
	position INTEGER NOT NULL,
	PRIMARY KEY (work_order_id, employee_id)
);

-- Grid sections (undirected adjacency stored as directed rows per side)
CREATE TABLE IF NOT EXISTS grid_sections (
	seq INTEGER PRIMARY KEY AUTOINCREMENT,
	id TEXT NOT NULL UNIQUE,
	name TEXT NOT NULL,
	status TEXT NOT NULL DEFAULT 'online',
	load INTEGER NOT NULL DEFAULT 0 CHECK (load BETWEEN 0 AND 100),
	region TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS grid_connections (
	from_section_id TEXT NOT NULL REFERENCES grid_sections(id) ON DELETE CASCADE,
	to_section_id TEXT NOT NULL,
	position INTEGER NOT NULL,
	PRIMARY KEY (from_section_id, to_section_id)
);

-- Incidents (created only)
CREATE TABLE IF NOT EXISTS incidents (
	seq INTEGER PRIMARY KEY AUTOINCREMENT,
	id TEXT NOT NULL UNIQUE,
	title TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	severity TEXT NOT NULL DEFAULT 'low',
	status TEXT NOT NULL DEFAULT 'open',
	reported_by TEXT NOT NULL,
	created_at TEXT NOT NULL
);

-- Schedules (upserted by id)
CREATE TABLE IF NOT EXISTS schedules (
	seq INTEGER PRIMARY KEY AUTOINCREMENT,
	id TEXT NOT NULL UNIQUE,
	employee_id TEXT NOT NULL,
	shift_start TEXT NOT NULL,
	shift_end TEXT NOT NULL,
	type TEXT NOT NULL DEFAULT 'regular'
);
`

// PostgresSchemaSQL is SchemaSQL for Postgres. Only the sequence column differs.
var PostgresSchemaSQL = strings.ReplaceAll(SchemaSQL, "INTEGER PRIMARY KEY AUTOINCREMENT", "BIGSERIAL PRIMARY KEY")

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}
