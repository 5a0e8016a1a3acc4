package primary

import (
	"context"

	"github.com/example/gridboard/internal/models"
)

// SessionService defines the primary port for staff authentication.
// Like the store, it reports failures through LastError rather than errors.
type SessionService interface {
	// Login checks the credentials against the employee directory and, on
	// success, opens a session and makes it current.
	Login(ctx context.Context, name, id string) bool

	// Resume makes a previously issued session current if it has not expired
	// and extends its expiry by the idle limit.
	Resume(ctx context.Context, token string) bool

	// Logout ends the current session. It is a no-op when no one is logged in.
	Logout(ctx context.Context)

	// CurrentUser returns the logged-in user, if any.
	CurrentUser() (models.User, bool)

	// Token returns the current session token, or "" when logged out.
	Token() string

	// Loading reports whether a login is in progress.
	Loading() bool

	// LastError returns the message left by the last Login or Resume.
	LastError() string
}
