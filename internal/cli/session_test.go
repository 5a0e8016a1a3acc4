package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/example/gridboard/internal/models"
	"github.com/example/gridboard/internal/ports/primary"
)

// fakeSessions implements primary.SessionService; active drives CurrentUser.
type fakeSessions struct {
	active bool
}

func (f *fakeSessions) Login(context.Context, string, string) bool { return false }
func (f *fakeSessions) Resume(context.Context, string) bool        { return f.active }
func (f *fakeSessions) Logout(context.Context)                     { f.active = false }
func (f *fakeSessions) Token() string                              { return "" }
func (f *fakeSessions) Loading() bool                              { return false }
func (f *fakeSessions) LastError() string                          { return "" }
func (f *fakeSessions) CurrentUser() (models.User, bool) {
	if !f.active {
		return models.User{}, false
	}
	return models.User{ID: "EMP001", Name: "Rajesh Kumar"}, true
}

var _ primary.SessionService = (*fakeSessions)(nil)

func TestEnsureActive(t *testing.T) {
	sessions := &fakeSessions{active: true}
	if err := ensureActive(sessions); err != nil {
		t.Fatalf("ensureActive() on a live session = %v", err)
	}

	// The idle limit passes between two refreshes.
	sessions.active = false
	if err := ensureActive(sessions); !errors.Is(err, errSessionExpired) {
		t.Errorf("ensureActive() after expiry = %v, want %v", err, errSessionExpired)
	}
}
