package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/gridboard/internal/wire"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Show the dashboard overview",
	Long: `Show grid health, work order status, open incidents, and who is on shift.

With --watch the board is refreshed on an interval until interrupted, and
store metrics are served on metrics_addr when it is configured.

Examples:
  gridboard board
  gridboard board --watch 30s`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, _, err := requireSession(commandContext(cmd))
		if err != nil {
			return err
		}
		watch, _ := cmd.Flags().GetDuration("watch")

		sessions := wire.SessionService()
		store := wire.Store()
		adapter := wire.BoardAdapter()

		if watch <= 0 {
			store.RefreshAll(ctx)
			adapter.Overview(time.Now())
			return storeResult(store, "refresh board")
		}

		stop, err := serveMetrics()
		if err != nil {
			return err
		}
		defer stop()

		ticker := time.NewTicker(watch)
		defer ticker.Stop()
		for {
			if err := ensureActive(sessions); err != nil {
				_ = wire.TokenFile().Clear()
				return err
			}
			store.RefreshAll(ctx)
			fmt.Print("\033[H\033[2J")
			adapter.Overview(time.Now())
			fmt.Printf("\nRefreshed %s, every %s. Ctrl-C to exit.\n", time.Now().Format("15:04:05"), watch)

			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
			}
		}
	},
}

// serveMetrics starts the /metrics listener when metrics_addr is set and
// returns a function that shuts it down.
func serveMetrics() (func(), error) {
	cfg, err := wire.Config()
	if err != nil {
		return nil, err
	}
	if cfg.MetricsAddr == "" {
		return func() {}, nil
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", wire.Metrics().Handler())
	srv := &http.Server{Addr: cfg.MetricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			wire.Logger().WithError(err).Error("metrics listener stopped")
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}

// BoardCmd returns the board command.
func BoardCmd() *cobra.Command {
	boardCmd.Flags().Duration("watch", 0, "Refresh on this interval until interrupted (e.g. 30s)")
	return boardCmd
}
