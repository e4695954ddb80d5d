package config

import (
	"strings"
	"time"
)

// Config is the root server configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	API      APIConfig      `yaml:"api"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
}

// CORSConfig holds CORS settings. The defaults allow the local Vite dev server ports.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"http://localhost:5173,http://localhost:5174,http://localhost:5175,http://localhost:5176,http://127.0.0.1:5173,http://127.0.0.1:5174,http://127.0.0.1:5175,http://127.0.0.1:5176"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,PUT,PATCH,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8000"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
}

// APIConfig holds participant API settings.
type APIConfig struct {
	Prefix          string `yaml:"prefix"             env:"API_PREFIX"             env-default:"/api"`
	DefaultPageSize int    `yaml:"default_page_size"  env:"API_DEFAULT_PAGE_SIZE"  env-default:"6"`
	MaxPageSize     int    `yaml:"max_page_size"      env:"API_MAX_PAGE_SIZE"      env-default:"100"`
	WriteRatePerMin int    `yaml:"write_rate_per_min" env:"API_WRITE_RATE_PER_MIN" env-default:"120"`
	MetricsEnabled  bool   `yaml:"metrics_enabled"    env:"API_METRICS_ENABLED"    env-default:"true"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// ClientConfig configures the console front end: the API adapter, the view
// state controller timings and where controller state is persisted.
type ClientConfig struct {
	BaseURL         string        `yaml:"base_url"          env:"CLIENT_BASE_URL"          env-default:"http://localhost:8000"`
	Timeout         time.Duration `yaml:"timeout"           env:"CLIENT_TIMEOUT"           env-default:"10s"`
	PageSize        int           `yaml:"page_size"         env:"CLIENT_PAGE_SIZE"         env-default:"6"`
	DebounceDelay   time.Duration `yaml:"debounce_delay"    env:"CLIENT_DEBOUNCE_DELAY"    env-default:"400ms"`
	ErrorClearDelay time.Duration `yaml:"error_clear_delay" env:"CLIENT_ERROR_CLEAR_DELAY" env-default:"3s"`
	State           StateConfig   `yaml:"state"`
	Log             LogConfig     `yaml:"log"`
}

// StateConfig selects the durable store for controller preferences.
type StateConfig struct {
	Backend       string `yaml:"backend"        env:"STATE_BACKEND"        env-default:"sqlite"`
	SQLitePath    string `yaml:"sqlite_path"    env:"STATE_SQLITE_PATH"    env-default:"./console-state.db"`
	RedisAddr     string `yaml:"redis_addr"     env:"STATE_REDIS_ADDR"     env-default:"localhost:6379"`
	RedisPassword string `yaml:"redis_password" env:"STATE_REDIS_PASSWORD"`
	RedisDB       int    `yaml:"redis_db"       env:"STATE_REDIS_DB"       env-default:"0"`
	RedisPrefix   string `yaml:"redis_prefix"   env:"STATE_REDIS_PREFIX"   env-default:"participants-console:"`
}

// Origins returns the configured CORS origins as a trimmed list.
func (c CORSConfig) Origins() []string {
	return splitList(c.AllowedOrigins)
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
