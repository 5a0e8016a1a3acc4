// Package sqlstore implements the data-service gateway over database/sql.
// The same queries serve SQLite (mattn/go-sqlite3) and Postgres (pgx stdlib);
// placeholders are rebound per dialect.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"

	"github.com/example/gridboard/internal/db"
	"github.com/example/gridboard/internal/ports/secondary"
)

// Gateway implements secondary.Gateway against the record tables.
type Gateway struct {
	conn    *sql.DB
	dialect db.Dialect
	now     func() time.Time
	newID   func(prefix string) string
}

// NewGateway creates a new SQL gateway over an open connection whose schema
// has been applied.
func NewGateway(conn *sql.DB, dialect db.Dialect) *Gateway {
	return &Gateway{
		conn:    conn,
		dialect: dialect,
		now:     time.Now,
		newID:   generateID,
	}
}

var _ secondary.Gateway = (*Gateway)(nil)

// generateID returns a short unique identifier such as "WRK-1A2B3C4D".
func generateID(prefix string) string {
	return prefix + "-" + strings.ToUpper(uuid.NewString()[:8])
}

func (g *Gateway) q(query string) string {
	return g.dialect.Rebind(query)
}

// withTx runs fn in a transaction, rolling back on any error.
func (g *Gateway) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := g.conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// classify converts a driver error into a GatewayError. action completes the
// phrase "failed to ...".
func classify(err error, action string) error {
	if err == nil {
		return nil
	}

	var gwErr *secondary.GatewayError
	if errors.As(err, &gwErr) {
		return gwErr
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return secondary.AsGatewayError(err)
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) && liteErr.Code == sqlite3.ErrConstraint {
		return secondary.NewGatewayError(secondary.ErrValidation, err, "failed to %s: %s", action, liteErr.Error())
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case strings.HasPrefix(pgErr.Code, "23"):
			return secondary.NewGatewayError(secondary.ErrValidation, err, "failed to %s: %s", action, pgErr.Message)
		case strings.HasPrefix(pgErr.Code, "28"), pgErr.Code == "42501":
			return secondary.NewGatewayError(secondary.ErrAuthorization, err, "failed to %s: %s", action, pgErr.Message)
		}
	}

	return secondary.NewGatewayError(secondary.ErrTransport, err, "failed to %s: %v", action, err)
}

func malformed(err error, format string, args ...any) error {
	return secondary.NewGatewayError(secondary.ErrMalformed, err, format, args...)
}

func parseTime(raw, column, id string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, malformed(err, "invalid %s %q on record %s", column, raw, id)
	}
	return t, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
