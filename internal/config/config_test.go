package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setRequiredEnv fills in every value Load refuses to default.
func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PG_HOST", "localhost")
	t.Setenv("PG_PORT", "5432")
	t.Setenv("PG_DB_NAME", "journal")
	t.Setenv("PG_USER", "journal")
	t.Setenv("PG_PASSWORD", "secret")
	t.Setenv("JWT_SECRET", "test-secret")
}

func TestLoad(t *testing.T) {
	t.Run("defaults fall into place around the required values", func(t *testing.T) {
		setRequiredEnv(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, ":8080", cfg.ListenAddr)
		assert.Equal(t, "release", cfg.GinMode)
		assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTTL)
		assert.Equal(t, 720*time.Hour, cfg.JWT.RefreshTTL)
		assert.Equal(t, 5*time.Minute, cfg.Cache.EntriesTTL)
		assert.False(t, cfg.RunMigrations)
		assert.Empty(t, cfg.Redis.Host, "redis is optional")
	})

	t.Run("missing store endpoint is an error, not an exit", func(t *testing.T) {
		setRequiredEnv(t)
		os.Unsetenv("PG_HOST")

		_, err := Load()

		assert.Error(t, err)
	})

	t.Run("missing jwt secret is an error", func(t *testing.T) {
		setRequiredEnv(t)
		os.Unsetenv("JWT_SECRET")

		_, err := Load()

		assert.Error(t, err)
	})

	t.Run("explicit values override the defaults", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("LISTEN_ADDR", ":9090")
		t.Setenv("JWT_ACCESS_TTL", "5m")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, ":9090", cfg.ListenAddr)
		assert.Equal(t, 5*time.Minute, cfg.JWT.AccessTTL)
	})
}

func TestPostgres_DSN(t *testing.T) {
	p := Postgres{Host: "db", Port: 5432, DBName: "journal", User: "u", Password: "p"}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=journal sslmode=disable", p.DSN())
}

func TestRedis_Addr(t *testing.T) {
	r := Redis{Host: "cache", Port: 6379}

	assert.Equal(t, "cache:6379", r.Addr())
}
