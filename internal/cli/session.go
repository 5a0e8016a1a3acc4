package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/example/gridboard/internal/ctxutil"
	"github.com/example/gridboard/internal/models"
	"github.com/example/gridboard/internal/ports/primary"
	"github.com/example/gridboard/internal/wire"
)

var loginCmd = &cobra.Command{
	Use:   "login [name] [employee-id]",
	Short: "Log in with your name and employee ID",
	Long: `Log in with your name and employee ID.

The name is matched case-insensitively; the ID must match exactly.

Examples:
  gridboard login "Rajesh Kumar" EMP001`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext(cmd)
		sessions := wire.SessionService()

		if !sessions.Login(ctx, args[0], args[1]) {
			return fmt.Errorf("%s", sessions.LastError())
		}
		if err := wire.TokenFile().Save(sessions.Token()); err != nil {
			return err
		}

		user, _ := sessions.CurrentUser()
		fmt.Printf("✓ Logged in as %s (%s)\n", user.Name, user.ID)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext(cmd)
		tokens := wire.TokenFile()

		token, err := tokens.Load()
		if err != nil {
			return err
		}
		if token == "" {
			fmt.Println("Not logged in")
			return nil
		}

		sessions := wire.SessionService()
		if sessions.Resume(ctx, token) {
			sessions.Logout(ctx)
		}
		if err := tokens.Clear(); err != nil {
			return err
		}

		fmt.Println("✓ Logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in employee",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, user, err := requireSession(commandContext(cmd))
		if err != nil {
			return err
		}
		fmt.Printf("%s (%s)\n", user.Name, user.ID)
		return nil
	},
}

// LoginCmd returns the login command.
func LoginCmd() *cobra.Command {
	return loginCmd
}

// LogoutCmd returns the logout command.
func LogoutCmd() *cobra.Command {
	return logoutCmd
}

// WhoamiCmd returns the whoami command.
func WhoamiCmd() *cobra.Command {
	return whoamiCmd
}

// requireSession resumes the saved session and returns a context carrying
// the employee as actor. Every data command goes through it.
func requireSession(ctx context.Context) (context.Context, models.User, error) {
	tokens := wire.TokenFile()
	token, err := tokens.Load()
	if err != nil {
		return ctx, models.User{}, err
	}
	if token == "" {
		return ctx, models.User{}, fmt.Errorf("not logged in: run 'gridboard login <name> <employee-id>'")
	}

	sessions := wire.SessionService()
	if !sessions.Resume(ctx, token) {
		_ = tokens.Clear()
		msg := sessions.LastError()
		if msg == "" {
			msg = "not logged in"
		}
		return ctx, models.User{}, fmt.Errorf("%s", msg)
	}

	user, _ := sessions.CurrentUser()
	return ctxutil.WithActorID(ctx, user.ID), user, nil
}

var errSessionExpired = errors.New("session expired: run 'gridboard login <name> <employee-id>'")

// ensureActive fails once the current session has passed its idle limit.
// Watching the board does not count as activity.
func ensureActive(sessions primary.SessionService) error {
	if _, ok := sessions.CurrentUser(); !ok {
		return errSessionExpired
	}
	return nil
}

// commandContext returns the command's context tagged with a fresh
// correlation ID.
func commandContext(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return ctxutil.WithCorrelationID(ctx, uuid.NewString())
}
