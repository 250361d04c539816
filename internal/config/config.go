// Package config loads the application configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every externally supplied value the service needs.
type Config struct {
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
	ListenAddr string `env:"LISTEN_ADDR" envDefault:":8080"`
	GinMode    string `env:"GIN_MODE" envDefault:"release"`

	Postgres Postgres
	Redis    Redis
	JWT      JWT
	Cache    Cache

	RunMigrations bool `env:"RUN_MIGRATIONS" envDefault:"false"`
}

// Postgres describes the connection to the journal store. All fields are
// required: a missing store endpoint is a fatal initialization error.
type Postgres struct {
	Host     string `env:"PG_HOST"`
	Port     int    `env:"PG_PORT"`
	DBName   string `env:"PG_DB_NAME"`
	User     string `env:"PG_USER"`
	Password string `env:"PG_PASSWORD"`
}

// DSN returns the postgres connection string.
func (p Postgres) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		p.Host, p.Port, p.User, p.Password, p.DBName)
}

// Redis describes the optional session/cache store. An empty host means the
// service runs without Redis.
type Redis struct {
	Host     string `env:"REDIS_HOST" envDefault:""`
	Port     int    `env:"REDIS_PORT" envDefault:"6379"`
	Password string `env:"REDIS_PASSWORD" envDefault:""`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// Addr returns the host:port pair for the Redis client.
func (r Redis) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// JWT holds the token-signing configuration. The secret is the access key
// of the deployment: without it authentication cannot work at all.
type JWT struct {
	Secret     string        `env:"JWT_SECRET"`
	AccessTTL  time.Duration `env:"JWT_ACCESS_TTL" envDefault:"15m"`
	RefreshTTL time.Duration `env:"JWT_REFRESH_TTL" envDefault:"720h"`
}

// Cache holds the TTL for the cached per-user entry list.
type Cache struct {
	EntriesTTL time.Duration `env:"CACHE_ENTRIES_TTL" envDefault:"5m"`
}

// Load reads the configuration from a .env file (if present) and the
// environment. Missing required values are returned as an error rather than
// terminating the process, so the caller can surface the failure to users
// in place of the application.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := &Config{}
	opts := env.Options{RequiredIfNoDef: true}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
