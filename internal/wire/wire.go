// Package wire provides dependency injection for the gridboard application.
// It creates singleton services with lazy initialization.
package wire

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"

	cliadapter "github.com/example/gridboard/internal/adapters/cli"
	"github.com/example/gridboard/internal/adapters/filesystem"
	redisadapter "github.com/example/gridboard/internal/adapters/redis"
	"github.com/example/gridboard/internal/adapters/rest"
	"github.com/example/gridboard/internal/adapters/sqlstore"
	"github.com/example/gridboard/internal/app"
	"github.com/example/gridboard/internal/config"
	"github.com/example/gridboard/internal/db"
	"github.com/example/gridboard/internal/metrics"
	"github.com/example/gridboard/internal/ports/primary"
	"github.com/example/gridboard/internal/ports/secondary"
)

var (
	root      string
	cfg       *config.Config
	cfgErr    error
	cfgOnce   sync.Once

	collector   *metrics.Collector
	metricsOnce sync.Once

	gateway          secondary.Gateway
	store            primary.Store
	sessionService   primary.SessionService
	dashboardService primary.DashboardService
	once             sync.Once
)

// SetRoot sets the directory holding .gridboard/. It must be called before
// any other function in this package; an empty dir means the home directory.
func SetRoot(dir string) {
	root = dir
}

// Root returns the resolved config root.
func Root() string {
	if root == "" {
		home, err := config.DefaultRoot()
		if err != nil {
			config.GetLogger().Fatalf("failed to resolve config root: %v", err)
		}
		root = home
	}
	return root
}

// Config returns the effective configuration, loading it on first use.
func Config() (*config.Config, error) {
	cfgOnce.Do(func() {
		cfg, cfgErr = config.Load(Root())
		if cfgErr == nil {
			cfgErr = config.SetLogLevel(cfg.LogLevel)
		}
	})
	return cfg, cfgErr
}

// Logger returns the process logger.
func Logger() *logrus.Logger {
	return config.GetLogger()
}

// Metrics returns the singleton metrics collector. It does not build the
// gateway or session store, so serve can expose metrics on its own.
func Metrics() *metrics.Collector {
	metricsOnce.Do(func() {
		collector = metrics.NewCollector(nil)
	})
	return collector
}

// Gateway returns the singleton data gateway for the configured backend.
func Gateway() secondary.Gateway {
	once.Do(initServices)
	return gateway
}

// Store returns the singleton Store instance.
func Store() primary.Store {
	once.Do(initServices)
	return store
}

// SessionService returns the singleton SessionService instance.
func SessionService() primary.SessionService {
	once.Do(initServices)
	return sessionService
}

// DashboardService returns the singleton DashboardService instance.
func DashboardService() primary.DashboardService {
	once.Do(initServices)
	return dashboardService
}

// TokenFile returns the file holding the current CLI session token.
func TokenFile() *filesystem.TokenFile {
	return filesystem.NewTokenFile(config.TokenPath(Root()))
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	c, err := Config()
	if err != nil {
		config.GetLogger().Fatalf("failed to load config: %v", err)
	}
	logger := config.GetLogger()

	gateway, err = newGateway(c)
	if err != nil {
		config.GetLogger().Fatalf("failed to initialize gateway: %v", err)
	}

	sessions, err := newSessionStore(c)
	if err != nil {
		config.GetLogger().Fatalf("failed to initialize session store: %v", err)
	}

	store = app.NewStore(gateway,
		app.WithMetrics(Metrics()),
		app.WithLogger(logger.WithField("module", "store")),
		app.WithTimeout(c.OperationTimeout),
	)
	sessionService = app.NewSessionService(gateway, sessions, c.AutoLogout(), logger.WithField("module", "session"))
	dashboardService = app.NewDashboardService(store)
}

func newGateway(c *config.Config) (secondary.Gateway, error) {
	if c.Backend == config.BackendREST {
		return rest.NewClient(c.RestURL, c.APIKey), nil
	}
	conn, dialect, err := Database()
	if err != nil {
		return nil, err
	}
	return sqlstore.NewGateway(conn, dialect), nil
}

func newSessionStore(c *config.Config) (secondary.SessionStore, error) {
	if c.SessionBackend == config.SessionRedis {
		return redisadapter.NewSessionStore(redisadapter.NewClient(c.RedisAddr)), nil
	}
	return filesystem.NewSessionStore(config.SessionsDir(Root()))
}

// Database opens the configured SQL database. It fails for the rest backend.
func Database() (*sql.DB, db.Dialect, error) {
	c, err := Config()
	if err != nil {
		return nil, "", err
	}

	switch c.Backend {
	case config.BackendSQLite:
		conn, err := db.GetDB(db.SQLite, c.SQLitePath)
		return conn, db.SQLite, err
	case config.BackendPostgres:
		conn, err := db.GetDB(db.Postgres, c.PostgresDSN)
		return conn, db.Postgres, err
	}
	return nil, "", fmt.Errorf("backend %q has no local database", c.Backend)
}

// BoardAdapter returns a new BoardAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func BoardAdapter() *cliadapter.BoardAdapter {
	return BoardAdapterWithOutput(os.Stdout)
}

// BoardAdapterWithOutput returns a new BoardAdapter writing to the given output.
// This variant allows testing or alternate output destinations.
func BoardAdapterWithOutput(out io.Writer) *cliadapter.BoardAdapter {
	once.Do(initServices)
	return cliadapter.NewBoardAdapter(dashboardService, out)
}
