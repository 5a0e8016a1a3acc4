package secondary

import (
	"context"
	"time"

	"github.com/example/gridboard/internal/models"
)

// SessionStore defines the secondary port for session persistence.
type SessionStore interface {
	// Put stores a session until its ExpiresAt.
	Put(ctx context.Context, session *models.Session) error

	// Get returns the session for token, or nil when none exists.
	Get(ctx context.Context, token string) (*models.Session, error)

	// Delete removes the session for token. Missing tokens are not an error.
	Delete(ctx context.Context, token string) error
}

// StoreMetrics receives operational measurements from the synchronized store.
type StoreMetrics interface {
	ObserveOperation(collection, op, outcome string, elapsed time.Duration)
	SetInflight(n int)
	RecordStale(collection string)
	SetCollectionSize(collection string, n int)
}

// NoopMetrics discards every measurement.
type NoopMetrics struct{}

func (NoopMetrics) ObserveOperation(string, string, string, time.Duration) {}
func (NoopMetrics) SetInflight(int)                                      {}
func (NoopMetrics) RecordStale(string)                                   {}
func (NoopMetrics) SetCollectionSize(string, int)                        {}

var _ StoreMetrics = NoopMetrics{}
