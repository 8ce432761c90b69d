package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("reads the yaml file and applies defaults", func(t *testing.T) {
		path := writeConfigFile(t, `
postgres:
  dsn: postgres://localhost:5432/parklive
nats:
  url: nats://localhost:4222
`)
		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		require.Equal(t, "postgres://localhost:5432/parklive", cfg.Postgres.DSN)
		require.Equal(t, ":8080", cfg.HTTP.Address)
		require.Equal(t, ":9090", cfg.Observability.MetricsAddress)
		require.Equal(t, "development", cfg.Observability.Environment)
	})

	t.Run("environment variables override file values", func(t *testing.T) {
		path := writeConfigFile(t, `
postgres:
  dsn: postgres://file-value
nats:
  url: nats://file-value
http:
  address: ":3000"
`)
		t.Setenv("DATABASE_URL", "postgres://env-value")
		t.Setenv("ENV", "production")

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		require.Equal(t, "postgres://env-value", cfg.Postgres.DSN)
		require.Equal(t, "nats://file-value", cfg.NATS.URL)
		require.Equal(t, ":3000", cfg.HTTP.Address)
		require.Equal(t, "production", cfg.Observability.Environment)
	})

	t.Run("missing file falls back to environment", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://env-only")
		t.Setenv("NATS_URL", "nats://env-only")

		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		require.NoError(t, err)
		require.Equal(t, "postgres://env-only", cfg.Postgres.DSN)
	})

	t.Run("missing DSN is an error", func(t *testing.T) {
		path := writeConfigFile(t, `
nats:
  url: nats://localhost:4222
`)
		_, err := LoadConfig(path)
		require.Error(t, err)
	})

	t.Run("malformed yaml is an error", func(t *testing.T) {
		path := writeConfigFile(t, "postgres: [")
		_, err := LoadConfig(path)
		require.Error(t, err)
	})
}
