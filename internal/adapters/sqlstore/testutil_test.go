// Package sqlstore_test contains integration tests for the SQL gateway.
//
// This file is the SINGLE POINT where the database schema is loaded for tests.
// All setup goes through setupTestDB(), which applies db.GetSchemaSQL() so
// tests run against the authoritative schema.
package sqlstore_test

import (
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/gridboard/internal/db"
)

var seedTime = time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	testDB.SetMaxOpenConns(1)

	if _, err := testDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}
	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// setupSeededDB creates a test database loaded with the development fixtures.
func setupSeededDB(t *testing.T) *sql.DB {
	t.Helper()
	testDB := setupTestDB(t)
	if err := db.SeedFixtures(testDB, db.SQLite, seedTime); err != nil {
		t.Fatalf("failed to seed fixtures: %v", err)
	}
	return testDB
}
