package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if cfg.AutoLogout() != 30*time.Minute {
		t.Errorf("expected 30m auto logout, got %s", cfg.AutoLogout())
	}
	if cfg.OperationTimeout != 15*time.Second {
		t.Errorf("expected 15s timeout, got %s", cfg.OperationTimeout)
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()
	cfg.Backend = BackendREST
	cfg.RestURL = "http://localhost:8080"
	cfg.APIKey = "secret"
	cfg.OperationTimeout = 5 * time.Second

	if err := SaveConfig(dir, cfg); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, ".gridboard", "config.yaml"))
	if err != nil {
		t.Fatalf("config file missing: %v", err)
	}
	if !strings.Contains(string(data), "operation_timeout: 5s") {
		t.Errorf("expected duration encoded as 5s, got:\n%s", data)
	}

	loaded, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if loaded.Backend != BackendREST || loaded.RestURL != cfg.RestURL || loaded.OperationTimeout != 5*time.Second {
		t.Errorf("unexpected loaded config: %+v", loaded)
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := LoadConfig(t.TempDir())
	if err == nil {
		t.Fatal("expected error for missing config")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected ErrNotExist in chain, got %v", err)
	}
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(Dir(dir), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(Dir(dir), "config.yaml"), []byte("log_level: debug\n"), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.LogLevel != "debug" || cfg.Backend != BackendSQLite || cfg.AutoLogoutMinutes != 30 {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.SQLitePath != filepath.Join(dir, ".gridboard", "gridboard.db") {
		t.Errorf("unexpected sqlite path %s", cfg.SQLitePath)
	}
}

func TestLoad_DotEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(Dir(dir), 0755); err != nil {
		t.Fatal(err)
	}
	env := "GRIDBOARD_AUTO_LOGOUT_MINUTES=45\n"
	if err := os.WriteFile(filepath.Join(Dir(dir), ".env"), []byte(env), 0600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("GRIDBOARD_AUTO_LOGOUT_MINUTES") })

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.AutoLogoutMinutes != 45 {
		t.Errorf("expected 45 from .env, got %d", cfg.AutoLogoutMinutes)
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"GRIDBOARD_BACKEND":           "postgres",
		"GRIDBOARD_POSTGRES_DSN":      "postgres://grid@localhost/grid",
		"GRIDBOARD_OPERATION_TIMEOUT": "2s",
		"GRIDBOARD_SESSION_BACKEND":   "redis",
		"GRIDBOARD_LOG_LEVEL":         "",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Default()
	if err := cfg.ApplyEnv(lookup); err != nil {
		t.Fatalf("ApplyEnv failed: %v", err)
	}
	if cfg.Backend != BackendPostgres || cfg.PostgresDSN == "" || cfg.OperationTimeout != 2*time.Second {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.SessionBackend != SessionRedis {
		t.Errorf("expected redis session backend, got %s", cfg.SessionBackend)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("empty env value should not override, got %q", cfg.LogLevel)
	}

	bad := func(k string) (string, bool) {
		if k == "GRIDBOARD_OPERATION_TIMEOUT" {
			return "soon", true
		}
		return "", false
	}
	if err := Default().ApplyEnv(bad); err == nil {
		t.Error("expected error for unparsable timeout")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"unknown backend", func(c *Config) { c.Backend = "mongo" }, "unknown backend"},
		{"postgres without dsn", func(c *Config) { c.Backend = BackendPostgres }, "requires postgres_dsn"},
		{"rest without url", func(c *Config) { c.Backend = BackendREST }, "requires rest_url"},
		{"unknown session backend", func(c *Config) { c.SessionBackend = "memcache" }, "unknown session backend"},
		{"redis without addr", func(c *Config) { c.SessionBackend = SessionRedis; c.RedisAddr = "" }, "requires redis_addr"},
		{"zero timeout", func(c *Config) { c.OperationTimeout = 0 }, "operation_timeout must be positive"},
		{"negative auto logout", func(c *Config) { c.AutoLogoutMinutes = -1 }, "auto_logout_minutes must be positive"},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "invalid log_level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %q", tt.wantErr, err.Error())
			}
		})
	}
}

func TestLogError(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(&buf)

	LogError(logger, "store", "FetchWorkOrders", "refresh", map[string]int{"attempt": 1}, errors.New("boom"))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON log line, got %q", buf.String())
	}
	if entry["msg"] != "boom" || entry["module"] != "store" || entry["funcName"] != "FetchWorkOrders" {
		t.Errorf("unexpected entry: %v", entry)
	}
	if _, ok := entry["data"]; !ok {
		t.Error("expected data field")
	}
}

func TestSetLogLevel(t *testing.T) {
	t.Cleanup(func() { _ = SetLogLevel("warn") })

	if err := SetLogLevel("debug"); err != nil {
		t.Fatalf("SetLogLevel failed: %v", err)
	}
	if GetLogger().GetLevel() != logrus.DebugLevel {
		t.Errorf("expected debug level, got %s", GetLogger().GetLevel())
	}
	if err := SetLogLevel("chatty"); err == nil {
		t.Error("expected error for unknown level")
	}
}
