package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validYAML = `
server:
  host: "127.0.0.1"
  port: 9090
database:
  host: "db.local"
  port: 5432
  user: "app"
  password: "pw"
  database: "rakshak"
  ssl_mode: "disable"
jwt:
  secret: "0123456789abcdef0123456789abcdef"
log:
  level: "debug"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, validYAML))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.GetServerAddress())
	assert.Equal(t, "postgres://app:pw@db.local:5432/rakshak?sslmode=disable", cfg.GetDatabaseConnectionString())

	// Defaults filled by validation.
	assert.Equal(t, 60, cfg.JWT.AccessTokenExpiry)
	assert.Equal(t, "0 0 1 * * *", cfg.Scheduler.PurgeExpiredResetTokens)
	assert.Equal(t, "0 30 1 * * *", cfg.Scheduler.ExpireNotifications)
	assert.False(t, cfg.JWT.Enforce)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "override.local")
	t.Setenv("JWT_SECRET", "env-secret-env-secret-env-secret-env")

	cfg, err := Load(writeConfig(t, validYAML))
	require.NoError(t, err)
	assert.Equal(t, "override.local", cfg.Database.Host)
	assert.Equal(t, "env-secret-env-secret-env-secret-env", cfg.JWT.Secret)
}

func TestValidate(t *testing.T) {
	t.Run("ShortJWTSecret", func(t *testing.T) {
		_, err := Load(writeConfig(t, `
server:
  port: 8080
database:
  host: "db"
  user: "u"
  database: "d"
jwt:
  secret: "short"
`))
		assert.ErrorContains(t, err, "at least 32 characters")
	})

	t.Run("MissingDatabaseHost", func(t *testing.T) {
		_, err := Load(writeConfig(t, `
server:
  port: 8080
database:
  user: "u"
  database: "d"
jwt:
  secret: "0123456789abcdef0123456789abcdef"
`))
		assert.ErrorContains(t, err, "database host is required")
	})

	t.Run("BadPort", func(t *testing.T) {
		_, err := Load(writeConfig(t, `
server:
  port: 0
database:
  host: "db"
  user: "u"
  database: "d"
jwt:
  secret: "0123456789abcdef0123456789abcdef"
`))
		assert.ErrorContains(t, err, "invalid server port")
	})
}
