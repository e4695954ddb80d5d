package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"
)

func validEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_DSN", "postgres://u:p@localhost:5432/testdb")
}

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

func chdirTemp(t *testing.T) {
	t.Helper()
	origDir, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	_ = os.Chdir(t.TempDir())
}

const validYAML = `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: "5s"
  shutdown_timeout: "5s"

database:
  dsn: "postgres://u:p@localhost:5432/testdb"
  max_conns: 10
  min_conns: 2
  auto_migrate: false

api:
  prefix: "/v1"
  default_page_size: 12
  max_page_size: 50
  write_rate_per_min: 30

cors:
  allowed_origins: "https://call.example.com, https://admin.example.com"

log:
  level: "debug"
  format: "text"
`

func TestLoad_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Server
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("server.host = %q, want %q", cfg.Server.Host, "127.0.0.1")
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("server.port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("server.read_timeout = %v, want %v", cfg.Server.ReadTimeout, 5*time.Second)
	}

	// Database
	if cfg.Database.MaxConns != 10 {
		t.Errorf("database.max_conns = %d, want 10", cfg.Database.MaxConns)
	}
	if cfg.Database.AutoMigrate {
		t.Error("database.auto_migrate should be false")
	}

	// API
	if cfg.API.Prefix != "/v1" {
		t.Errorf("api.prefix = %q, want /v1", cfg.API.Prefix)
	}
	if cfg.API.DefaultPageSize != 12 || cfg.API.MaxPageSize != 50 {
		t.Errorf("api page sizes = %d/%d, want 12/50", cfg.API.DefaultPageSize, cfg.API.MaxPageSize)
	}
	if cfg.API.WriteRatePerMin != 30 {
		t.Errorf("api.write_rate_per_min = %d, want 30", cfg.API.WriteRatePerMin)
	}

	// CORS
	want := []string{"https://call.example.com", "https://admin.example.com"}
	if got := cfg.CORS.Origins(); !slices.Equal(got, want) {
		t.Errorf("cors origins = %v, want %v", got, want)
	}

	// Log
	if cfg.Log.Level != "debug" || cfg.Log.Format != "text" {
		t.Errorf("log = %+v, want debug/text", cfg.Log)
	}
}

func TestLoad_ENVOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("SERVER_PORT", "3000")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 3000 {
		t.Errorf("server.port = %d, want 3000 (ENV override)", cfg.Server.Port)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log.level = %q, want %q (ENV override)", cfg.Log.Level, "warn")
	}
}

func TestLoad_NoFile_ENVOnly(t *testing.T) {
	validEnv(t)
	t.Setenv("CONFIG_PATH", "")
	chdirTemp(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 8000 {
		t.Errorf("server.port = %d, want 8000 (default)", cfg.Server.Port)
	}
	if cfg.API.Prefix != "/api" {
		t.Errorf("api.prefix = %q, want /api (default)", cfg.API.Prefix)
	}
	if cfg.API.DefaultPageSize != 6 || cfg.API.MaxPageSize != 100 {
		t.Errorf("api page sizes = %d/%d, want 6/100", cfg.API.DefaultPageSize, cfg.API.MaxPageSize)
	}
	if !cfg.Database.AutoMigrate {
		t.Error("database.auto_migrate should default to true")
	}
	if len(cfg.CORS.Origins()) != 8 {
		t.Errorf("default cors origins = %v, want the 8 dev-server origins", cfg.CORS.Origins())
	}
	if !slices.Contains(cfg.CORS.Origins(), "http://127.0.0.1:5176") {
		t.Error("default cors origins should include http://127.0.0.1:5176")
	}
}

func TestLoad_MissingDSN(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("DATABASE_DSN", "")
	os.Unsetenv("DATABASE_DSN")
	chdirTemp(t)

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing database dsn")
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, `{{{invalid yaml`)
	t.Setenv("CONFIG_PATH", path)

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestLoad_ValidationRunsAfterRead(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("API_DEFAULT_PAGE_SIZE", "500")

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "default_page_size") {
		t.Fatalf("expected default_page_size validation error, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Validate
// ---------------------------------------------------------------------------

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, "server.port"},
		{"min conns above max", func(c *Config) { c.Database.MinConns = 30 }, "min_conns"},
		{"max page size zero", func(c *Config) { c.API.MaxPageSize = 0 }, "max_page_size"},
		{"default above max", func(c *Config) { c.API.DefaultPageSize = 101 }, "default_page_size"},
		{"default zero", func(c *Config) { c.API.DefaultPageSize = 0 }, "default_page_size"},
		{"negative rate", func(c *Config) { c.API.WriteRatePerMin = -1 }, "write_rate_per_min"},
		{"rate disabled", func(c *Config) { c.API.WriteRatePerMin = 0 }, ""},
		{"prefix without slash", func(c *Config) { c.API.Prefix = "api" }, "prefix"},
		{"prefix trailing slash", func(c *Config) { c.API.Prefix = "/api/" }, "prefix"},
		{"no prefix", func(c *Config) { c.API.Prefix = "" }, ""},
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }, "log: level"},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, "log: format"},
		{"upper case level", func(c *Config) { c.Log.Level = "WARN" }, ""},
		{"no origins", func(c *Config) { c.CORS.AllowedOrigins = " , " }, "cors"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Client config
// ---------------------------------------------------------------------------

func TestLoadClient_Defaults(t *testing.T) {
	t.Setenv("CONSOLE_CONFIG_PATH", "")
	chdirTemp(t)

	cfg, err := LoadClient()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.BaseURL != "http://localhost:8000" {
		t.Errorf("base_url = %q", cfg.BaseURL)
	}
	if cfg.Timeout != 10*time.Second {
		t.Errorf("timeout = %v, want 10s", cfg.Timeout)
	}
	if cfg.PageSize != 6 {
		t.Errorf("page_size = %d, want 6", cfg.PageSize)
	}
	if cfg.DebounceDelay != 400*time.Millisecond {
		t.Errorf("debounce_delay = %v, want 400ms", cfg.DebounceDelay)
	}
	if cfg.ErrorClearDelay != 3*time.Second {
		t.Errorf("error_clear_delay = %v, want 3s", cfg.ErrorClearDelay)
	}
	if cfg.State.Backend != StateBackendSQLite {
		t.Errorf("state.backend = %q, want sqlite", cfg.State.Backend)
	}
}

func TestLoadClient_YAMLAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "console.yaml")
	content := `
base_url: "http://api.internal:9000"
page_size: 10
state:
  backend: "redis"
  redis_addr: "cache:6379"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	t.Setenv("CONSOLE_CONFIG_PATH", path)
	t.Setenv("CLIENT_DEBOUNCE_DELAY", "250ms")

	cfg, err := LoadClient()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.BaseURL != "http://api.internal:9000" || cfg.PageSize != 10 {
		t.Errorf("client = %+v", cfg)
	}
	if cfg.State.Backend != StateBackendRedis || cfg.State.RedisAddr != "cache:6379" {
		t.Errorf("state = %+v", cfg.State)
	}
	if cfg.DebounceDelay != 250*time.Millisecond {
		t.Errorf("debounce_delay = %v, want 250ms (ENV override)", cfg.DebounceDelay)
	}
}

func TestClientValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *ClientConfig)
		wantErr string
	}{
		{"valid", func(c *ClientConfig) {}, ""},
		{"relative url", func(c *ClientConfig) { c.BaseURL = "localhost:8000" }, "base_url"},
		{"zero timeout", func(c *ClientConfig) { c.Timeout = 0 }, "timeout"},
		{"zero page size", func(c *ClientConfig) { c.PageSize = 0 }, "page_size"},
		{"zero error clear", func(c *ClientConfig) { c.ErrorClearDelay = 0 }, "error_clear_delay"},
		{"no debounce", func(c *ClientConfig) { c.DebounceDelay = 0 }, ""},
		{"unknown backend", func(c *ClientConfig) { c.State.Backend = "etcd" }, "state.backend"},
		{"sqlite without path", func(c *ClientConfig) { c.State.SQLitePath = "" }, "sqlite_path"},
		{"redis without addr", func(c *ClientConfig) {
			c.State.Backend = StateBackendRedis
			c.State.RedisAddr = ""
		}, "redis_addr"},
		{"memory", func(c *ClientConfig) { c.State.Backend = StateBackendMemory }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

// validConfig returns a Config that passes all validation checks.
func validConfig() Config {
	return Config{
		Server:   ServerConfig{Port: 8000},
		Database: DatabaseConfig{DSN: "postgres://localhost/db", MaxConns: 25, MinConns: 2},
		API:      APIConfig{Prefix: "/api", DefaultPageSize: 6, MaxPageSize: 100, WriteRatePerMin: 120},
		Log:      LogConfig{Level: "info", Format: "json"},
		CORS:     CORSConfig{AllowedOrigins: "http://localhost:5173"},
	}
}

func validClientConfig() ClientConfig {
	return ClientConfig{
		BaseURL:         "http://localhost:8000",
		Timeout:         10 * time.Second,
		PageSize:        6,
		DebounceDelay:   400 * time.Millisecond,
		ErrorClearDelay: 3 * time.Second,
		State:           StateConfig{Backend: StateBackendSQLite, SQLitePath: "state.db"},
		Log:             LogConfig{Level: "info", Format: "text"},
	}
}
