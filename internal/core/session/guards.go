// Package session contains the pure business logic for staff login.
// Guards are pure functions that evaluate preconditions without side effects.
package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/example/gridboard/internal/models"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// LoginContext provides context for login guards. Directory is the employee
// collection credentials are checked against.
type LoginContext struct {
	Name      string
	ID        string
	Directory []models.Employee
}

// Authenticate finds the employee whose name matches case-insensitively and
// whose ID matches exactly.
func Authenticate(ctx LoginContext) (models.Employee, bool) {
	if ctx.Name == "" || ctx.ID == "" {
		return models.Employee{}, false
	}
	for _, e := range ctx.Directory {
		if e.ID == ctx.ID && strings.EqualFold(e.Name, ctx.Name) {
			return e, true
		}
	}
	return models.Employee{}, false
}

// CanLogin evaluates whether credentials identify a directory employee.
func CanLogin(ctx LoginContext) GuardResult {
	if _, ok := Authenticate(ctx); !ok {
		return GuardResult{Allowed: false, Reason: "Invalid credentials. Please check your name and ID."}
	}
	return GuardResult{Allowed: true}
}

// ExpiresAt returns when a session last active at now ends under the given idle limit.
func ExpiresAt(now time.Time, ttl time.Duration) time.Time {
	return now.Add(ttl)
}

// IsExpired reports whether s is no longer valid at now. A nil session is expired.
func IsExpired(s *models.Session, now time.Time) bool {
	if s == nil {
		return true
	}
	return !now.Before(s.ExpiresAt)
}
