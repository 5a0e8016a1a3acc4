package filesystem

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// TokenFile remembers the session token of the current CLI user between
// invocations.
type TokenFile struct {
	path string
}

// NewTokenFile creates a TokenFile at path.
func NewTokenFile(path string) *TokenFile {
	return &TokenFile{path: path}
}

// Load returns the saved token, or "" when none is saved.
func (f *TokenFile) Load() (string, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read session token: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Save records token.
func (f *TokenFile) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0700); err != nil {
		return fmt.Errorf("failed to create token dir: %w", err)
	}
	if err := os.WriteFile(f.path, []byte(token+"\n"), 0600); err != nil {
		return fmt.Errorf("failed to write session token: %w", err)
	}
	return nil
}

// Clear forgets the saved token.
func (f *TokenFile) Clear() error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove session token: %w", err)
	}
	return nil
}
