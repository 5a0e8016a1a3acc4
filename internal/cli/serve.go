package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/example/gridboard/internal/adapters/rest"
	"github.com/example/gridboard/internal/adapters/sqlstore"
	"github.com/example/gridboard/internal/wire"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the data service over the local database",
	Long: `Run the JSON data service that rest-backend dashboards connect to.

Collections are served under /rest/v1 and require api_key, sent in the
apikey header or as a bearer token. /healthz and /metrics are open.

Examples:
  GRIDBOARD_API_KEY=secret gridboard serve --listen :8080`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := wire.Config()
		if err != nil {
			return err
		}
		if cfg.APIKey == "" {
			return fmt.Errorf("serve requires api_key (set it in config.yaml or GRIDBOARD_API_KEY)")
		}
		addr, _ := cmd.Flags().GetString("listen")
		if addr == "" {
			addr = cfg.ListenAddr
		}

		conn, dialect, err := wire.Database()
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}

		collector := wire.Metrics()
		reg := collector.Registry()
		reg.MustRegister(collectors.NewGoCollector())
		reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

		gin.SetMode(gin.ReleaseMode)
		logger := wire.Logger()
		server := rest.NewServer(sqlstore.NewGateway(conn, dialect), cfg.APIKey, logger.WithField("module", "rest"),
			rest.WithHandler("/metrics", collector.Handler()))

		srv := &http.Server{
			Addr:              addr,
			Handler:           server.Handler(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.ListenAndServe()
		}()
		fmt.Printf("✓ Serving %s data on %s\n", dialect, addr)

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("failed to serve: %w", err)
			}
			return nil
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down: %w", err)
		}
		fmt.Println("✓ Stopped")
		return nil
	},
}

// ServeCmd returns the serve command.
func ServeCmd() *cobra.Command {
	serveCmd.Flags().String("listen", "", "Listen address (default listen_addr from config)")
	return serveCmd
}
