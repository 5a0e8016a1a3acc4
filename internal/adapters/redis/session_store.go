// Package redis stores login sessions in Redis so several dashboard
// processes can share them.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/example/gridboard/internal/models"
	"github.com/example/gridboard/internal/ports/secondary"
)

// DefaultKeyPrefix namespaces session keys.
const DefaultKeyPrefix = "gridboard:session:"

// SessionStore implements secondary.SessionStore on a Redis client. Each
// session is one JSON value whose key expires with the session.
type SessionStore struct {
	client goredis.Cmdable
	prefix string
	now    func() time.Time
}

// NewClient creates a Redis client for addr.
func NewClient(addr string) *goredis.Client {
	return goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: "",
		DB:       0,
	})
}

// NewSessionStore creates a session store using client.
func NewSessionStore(client goredis.Cmdable) *SessionStore {
	return &SessionStore{client: client, prefix: DefaultKeyPrefix, now: time.Now}
}

var _ secondary.SessionStore = (*SessionStore)(nil)

// Ping checks connectivity.
func (s *SessionStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to reach redis: %w", err)
	}
	return nil
}

// Put stores session with a TTL ending at its ExpiresAt.
func (s *SessionStore) Put(ctx context.Context, session *models.Session) error {
	if session == nil || session.Token == "" {
		return fmt.Errorf("session token is required")
	}
	ttl := TTL(session, s.now())
	if ttl <= 0 {
		return fmt.Errorf("session %s is already expired", session.Token)
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := s.client.Set(ctx, s.Key(session.Token), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// Get returns the session for token, or nil when Redis has no live key.
func (s *SessionStore) Get(ctx context.Context, token string) (*models.Session, error) {
	val, err := s.client.Get(ctx, s.Key(token)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var session models.Session
	if err := json.Unmarshal(val, &session); err != nil {
		return nil, fmt.Errorf("failed to parse session: %w", err)
	}
	return &session, nil
}

// Delete removes the session key.
func (s *SessionStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, s.Key(token)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// Key returns the Redis key for token.
func (s *SessionStore) Key(token string) string {
	return s.prefix + token
}

// TTL returns how long session remains valid at now, truncated to whole
// milliseconds as Redis stores them.
func TTL(session *models.Session, now time.Time) time.Duration {
	return session.ExpiresAt.Sub(now).Truncate(time.Millisecond)
}
