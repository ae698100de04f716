package config

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/sethvargo/go-envconfig"
)

const envPrefix = "PT_"

type Config struct {
	Environment string `toml:"environment" env:"ENVIRONMENT, overwrite"`
	Host        string `toml:"host" env:"HOST, overwrite"`
	Port        int    `toml:"port" env:"PORT, overwrite"`

	// logging
	LogLevel      string `toml:"log_level" env:"LOG_LEVEL, overwrite"`
	LogsPath      string `toml:"logs_path" env:"LOGS_PATH, overwrite"`
	LogToStdout   bool   `toml:"log_to_stdout" env:"LOG_TO_STDOUT, overwrite"`
	LogFormatJSON bool   `toml:"log_format_json" env:"LOG_FORMAT_JSON, overwrite"`
	SentryEnabled bool   `toml:"sentry_enabled" env:"SENTRY_ENABLED, overwrite"`

	// storage: postgres | memory
	StorageType      string `toml:"storage_type" env:"STORAGE_TYPE, overwrite"`
	PostgresHost     string `toml:"postgres_host" env:"POSTGRES_HOST, overwrite"`
	PostgresPort     string `toml:"postgres_port" env:"POSTGRES_PORT, overwrite"`
	PostgresDBName   string `toml:"postgres_db_name" env:"POSTGRES_DB_NAME, overwrite"`
	PostgresUser     string `toml:"postgres_user" env:"POSTGRES_USER, overwrite"`
	PostgresMaxConns int32  `toml:"postgres_max_conns" env:"POSTGRES_MAX_CONNS, overwrite"`
	DayCacheSizeMB   int    `toml:"day_cache_size_mb" env:"DAY_CACHE_SIZE_MB, overwrite"`

	// redis backs the cross-process locks and the rate limiter; empty host
	// falls back to in-process locks and no rate limiting
	RedisHost string `toml:"redis_host" env:"REDIS_HOST, overwrite"`
	RedisPort string `toml:"redis_port" env:"REDIS_PORT, overwrite"`
	LockTTL   string `toml:"lock_ttl" env:"LOCK_TTL, overwrite"`

	MetricsHost        string   `toml:"metrics_host" env:"METRICS_HOST, overwrite"`
	MetricsPort        string   `toml:"metrics_port" env:"METRICS_PORT, overwrite"`
	TracingEnabled     bool     `toml:"tracing_enabled" env:"TRACING_ENABLED, overwrite"`
	ProgramsPath       string   `toml:"programs_path" env:"PROGRAMS_PATH, overwrite"`
	RateLimitPerMinute int      `toml:"rate_limit_per_minute" env:"RATE_LIMIT_PER_MINUTE, overwrite"`
	AllowedOrigins     []string `toml:"allowed_origins" env:"ALLOWED_ORIGINS, overwrite"`

	// secrets, never read from the file
	PostgresPassword string `toml:"-" env:"POSTGRES_PASSWORD"`
	RedisPassword    string `toml:"-" env:"REDIS_PASSWORD"`
	SentryDSN        string `toml:"-" env:"SENTRY_DSN"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("no [%s] section in config", env)
	}
	return cfg, nil
}

// Load reads the env section of the TOML file at path, then applies PT_*
// environment overrides.
func Load(env, path string) (*Config, error) {
	return load(env, path, envconfig.OsLookuper())
}

func load(env, path string, lookuper envconfig.Lookuper) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var t Toml
	if _, err := toml.Decode(string(data), &t); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}

	if err := envconfig.ProcessWith(context.Background(), &envconfig.Config{
		Target:   cfg,
		Lookuper: envconfig.PrefixLookuper(envPrefix, lookuper),
	}); err != nil {
		return nil, fmt.Errorf("apply env overrides: %w", err)
	}

	if cfg.Environment == "" {
		cfg.Environment = strings.ToLower(env)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Port <= 0 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	switch c.StorageType {
	case "memory", "postgres":
	default:
		return fmt.Errorf("unknown storage type: [%s]", c.StorageType)
	}
	if c.ProgramsPath == "" {
		return fmt.Errorf("programs path not set")
	}
	if c.LockTTL != "" {
		if _, err := time.ParseDuration(c.LockTTL); err != nil {
			return fmt.Errorf("invalid lock ttl: %w", err)
		}
	}
	return nil
}

// LockTTLDuration returns zero when unset, letting the locker pick its default.
func (c *Config) LockTTLDuration() time.Duration {
	d, _ := time.ParseDuration(c.LockTTL)
	return d
}
