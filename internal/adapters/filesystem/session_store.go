// Package filesystem contains filesystem-based adapter implementations.
package filesystem

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/example/gridboard/internal/models"
	"github.com/example/gridboard/internal/ports/secondary"
)

var tokenPattern = regexp.MustCompile(`^[A-Za-z0-9-]+$`)

// SessionStore implements secondary.SessionStore with one JSON file per token.
type SessionStore struct {
	dir string
	now func() time.Time
}

// NewSessionStore creates a file-backed session store rooted at dir.
// If dir is empty, defaults to ~/.gridboard/sessions.
func NewSessionStore(dir string) (*SessionStore, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dir = filepath.Join(home, ".gridboard", "sessions")
	}
	return &SessionStore{dir: dir, now: time.Now}, nil
}

var _ secondary.SessionStore = (*SessionStore)(nil)

// Put writes the session file, replacing any previous one for the token.
func (s *SessionStore) Put(ctx context.Context, session *models.Session) error {
	if session == nil {
		return fmt.Errorf("session is required")
	}
	path, err := s.path(session.Token)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("failed to create sessions dir: %w", err)
	}

	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	// Readers never observe a partially written file.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}

// Get reads the session for token. Expired sessions are removed and reported
// as missing.
func (s *SessionStore) Get(ctx context.Context, token string) (*models.Session, error) {
	path, err := s.path(token)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var session models.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to parse session: %w", err)
	}
	if !s.now().Before(session.ExpiresAt) {
		_ = os.Remove(path)
		return nil, nil
	}
	return &session, nil
}

// Delete removes the session file for token.
func (s *SessionStore) Delete(ctx context.Context, token string) error {
	path, err := s.path(token)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove session: %w", err)
	}
	return nil
}

// Dir returns the directory holding session files.
func (s *SessionStore) Dir() string {
	return s.dir
}

func (s *SessionStore) path(token string) (string, error) {
	if !tokenPattern.MatchString(token) {
		return "", fmt.Errorf("invalid session token %q", token)
	}
	return filepath.Join(s.dir, token+".json"), nil
}
