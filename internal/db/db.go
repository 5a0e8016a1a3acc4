package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

// Dialect selects the SQL flavour and driver used for the record tables.
type Dialect string

const (
	SQLite   Dialect = "sqlite"
	Postgres Dialect = "postgres"
)

// ParseDialect validates a configured backend name.
func ParseDialect(raw string) (Dialect, error) {
	switch Dialect(raw) {
	case SQLite, Postgres:
		return Dialect(raw), nil
	}
	return "", fmt.Errorf("unknown database dialect %q (must be sqlite or postgres)", raw)
}

// Driver returns the database/sql driver name registered for the dialect.
func (d Dialect) Driver() string {
	if d == Postgres {
		return "pgx"
	}
	return "sqlite3"
}

// Schema returns the schema SQL for the dialect.
func (d Dialect) Schema() string {
	if d == Postgres {
		return PostgresSchemaSQL
	}
	return SchemaSQL
}

// Rebind rewrites ? placeholders into the dialect's form. Queries in this
// module never contain a literal question mark.
func (d Dialect) Rebind(query string) string {
	if d != Postgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

var db *sql.DB

// Open connects to the database and applies the schema.
func Open(dialect Dialect, dsn string) (*sql.DB, error) {
	conn, err := sql.Open(dialect.Driver(), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if dialect == SQLite && strings.Contains(dsn, ":memory:") {
		// Each connection to :memory: is a separate database.
		conn.SetMaxOpenConns(1)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if dialect == SQLite {
		// Enable foreign keys
		if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
	}

	if _, err := conn.Exec(dialect.Schema()); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return conn, nil
}

// GetDB returns the process-wide database connection, opening it on first use.
func GetDB(dialect Dialect, dsn string) (*sql.DB, error) {
	if db != nil {
		return db, nil
	}

	if dialect == SQLite && dsn != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dsn), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	conn, err := Open(dialect, dsn)
	if err != nil {
		return nil, err
	}
	db = conn
	return db, nil
}

// Close closes the database connection
func Close() error {
	if db != nil {
		err := db.Close()
		db = nil
		return err
	}
	return nil
}
