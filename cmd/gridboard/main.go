package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/example/gridboard/internal/cli"
	"github.com/example/gridboard/internal/version"
	"github.com/example/gridboard/internal/wire"
)

func main() {
	var root string

	rootCmd := &cobra.Command{
		Use:     "gridboard",
		Short:   "Gridboard - field safety dashboard for electric utility crews",
		Version: version.String(),
		Long: `Gridboard shows field work orders, grid section health, safety incidents,
and shift schedules from a shared data service, and records updates made
by logged-in staff.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			wire.SetRoot(root)
		},
	}
	rootCmd.PersistentFlags().StringVar(&root, "config-dir", "", "Directory containing .gridboard/ (default $HOME)")

	// Session
	rootCmd.AddCommand(cli.LoginCmd())
	rootCmd.AddCommand(cli.LogoutCmd())
	rootCmd.AddCommand(cli.WhoamiCmd())

	// Dashboard
	rootCmd.AddCommand(cli.BoardCmd())
	rootCmd.AddCommand(cli.WorkCmd())
	rootCmd.AddCommand(cli.GridCmd())
	rootCmd.AddCommand(cli.IncidentCmd())
	rootCmd.AddCommand(cli.ScheduleCmd())
	rootCmd.AddCommand(cli.EmployeeCmd())

	// Operations
	rootCmd.AddCommand(cli.ServeCmd())
	rootCmd.AddCommand(cli.SeedCmd())
	rootCmd.AddCommand(cli.ConfigCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
