package app

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	coresession "github.com/example/gridboard/internal/core/session"
	"github.com/example/gridboard/internal/models"
	"github.com/example/gridboard/internal/ports/primary"
	"github.com/example/gridboard/internal/ports/secondary"
)

// DefaultAutoLogout is the idle limit applied when none is configured.
const DefaultAutoLogout = 30 * time.Minute

// Messages surfaced through SessionService.LastError.
const (
	msgAuthFailed     = "An error occurred during authentication."
	msgSessionExpired = "Session expired. Please log in again."
)

// SessionServiceImpl implements the SessionService interface.
type SessionServiceImpl struct {
	directory secondary.Gateway
	sessions  secondary.SessionStore
	ttl       time.Duration
	timeout   time.Duration
	logger    logrus.FieldLogger
	now       func() time.Time

	mu        sync.Mutex
	current   *models.Session
	loading   bool
	lastError string
}

// NewSessionService creates a new SessionService with injected dependencies.
// The gateway serves as the employee directory for credential checks.
func NewSessionService(directory secondary.Gateway, sessions secondary.SessionStore, ttl time.Duration, logger logrus.FieldLogger) *SessionServiceImpl {
	if ttl <= 0 {
		ttl = DefaultAutoLogout
	}
	if logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		logger = discard
	}
	return &SessionServiceImpl{
		directory: directory,
		sessions:  sessions,
		ttl:       ttl,
		timeout:   DefaultOperationTimeout,
		logger:    logger,
		now:       time.Now,
	}
}

var _ primary.SessionService = (*SessionServiceImpl)(nil)

// Login authenticates against the employee directory and opens a session.
func (s *SessionServiceImpl) Login(ctx context.Context, name, id string) bool {
	s.mu.Lock()
	s.loading = true
	s.lastError = ""
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	opCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	employees, err := await(opCtx, s.directory.FetchEmployees)
	if err != nil {
		s.logger.WithError(err).Warn("failed to load employee directory")
		s.fail(msgAuthFailed)
		return false
	}

	loginCtx := coresession.LoginContext{Name: name, ID: id, Directory: employees}
	if result := coresession.CanLogin(loginCtx); !result.Allowed {
		s.logger.WithField("employee_id", id).Info("login refused")
		s.fail(result.Reason)
		return false
	}
	employee, _ := coresession.Authenticate(loginCtx)

	now := s.now()
	session := &models.Session{
		Token:     uuid.NewString(),
		UserID:    employee.ID,
		UserName:  employee.Name,
		CreatedAt: now,
		ExpiresAt: coresession.ExpiresAt(now, s.ttl),
	}
	if err := s.sessions.Put(opCtx, session); err != nil {
		s.logger.WithError(err).Error("failed to persist session")
		s.fail(msgAuthFailed)
		return false
	}

	s.mu.Lock()
	s.current = session
	s.mu.Unlock()
	s.logger.WithField("employee_id", employee.ID).Info("login succeeded")
	return true
}

// Resume restores a session issued by an earlier Login. Each successful
// Resume counts as activity and moves the expiry to now plus the idle limit.
func (s *SessionServiceImpl) Resume(ctx context.Context, token string) bool {
	s.mu.Lock()
	s.lastError = ""
	s.mu.Unlock()

	if token == "" {
		s.fail(msgSessionExpired)
		return false
	}

	session, err := s.sessions.Get(ctx, token)
	if err != nil {
		s.logger.WithError(err).Warn("failed to load session")
		s.fail(msgAuthFailed)
		return false
	}
	now := s.now()
	if coresession.IsExpired(session, now) {
		if session != nil {
			if err := s.sessions.Delete(ctx, token); err != nil {
				s.logger.WithError(err).Warn("failed to delete expired session")
			}
		}
		s.fail(msgSessionExpired)
		return false
	}

	session.ExpiresAt = coresession.ExpiresAt(now, s.ttl)
	if err := s.sessions.Put(ctx, session); err != nil {
		s.logger.WithError(err).Warn("failed to extend session")
		s.fail(msgAuthFailed)
		return false
	}

	s.mu.Lock()
	s.current = session
	s.mu.Unlock()
	return true
}

// Logout ends the current session.
func (s *SessionServiceImpl) Logout(ctx context.Context) {
	s.mu.Lock()
	session := s.current
	s.current = nil
	s.mu.Unlock()

	if session == nil {
		return
	}
	if err := s.sessions.Delete(ctx, session.Token); err != nil {
		s.logger.WithError(err).Warn("failed to delete session")
	}
	s.logger.WithField("employee_id", session.UserID).Info("logged out")
}

// CurrentUser returns the logged-in user. An expired session counts as logged out.
func (s *SessionServiceImpl) CurrentUser() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if coresession.IsExpired(s.current, s.now()) {
		return models.User{}, false
	}
	return s.current.User(), true
}

// Token returns the current session token.
func (s *SessionServiceImpl) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return ""
	}
	return s.current.Token
}

// Loading reports whether a login is in progress.
func (s *SessionServiceImpl) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// LastError returns the message left by the last Login or Resume.
func (s *SessionServiceImpl) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}

func (s *SessionServiceImpl) fail(msg string) {
	s.mu.Lock()
	s.lastError = msg
	s.mu.Unlock()
}
