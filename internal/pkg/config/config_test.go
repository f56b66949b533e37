package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
server:
  name: climate-registry
  host: 127.0.0.1
  port: 9090
  mode: release

database:
  host: db.internal
  port: 3306
  database: climate_registry
  username: registry
  password: secret
  log_level: warn

auth:
  jwt:
    secret: unit-test-secret
    access_token_expire: 1800
    refresh_token_expire: 86400

log:
  level: debug
  format: json
  output: stdout

registry:
  purge_cron: "0 30 2 * * *"
  pending_retention_days: 90
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadParsesAllSections(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "climate-registry", cfg.Server.Name)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "warn", cfg.Database.LogLevel)

	assert.Equal(t, "unit-test-secret", cfg.Auth.JWT.Secret)
	assert.Equal(t, 1800, cfg.Auth.JWT.AccessTokenExpire)

	assert.Equal(t, "0 30 2 * * *", cfg.Registry.PurgeCron)
	assert.Equal(t, 90, cfg.Registry.PendingRetentionDays)

	// Load publishes the parsed config globally
	assert.Same(t, cfg, GlobalConfig)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestGetDSN(t *testing.T) {
	cfg := &DatabaseConfig{
		Host:     "localhost",
		Port:     3306,
		Database: "registry",
		Username: "app",
		Password: "pw",
	}
	assert.Equal(t,
		"app:pw@tcp(localhost:3306)/registry?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.GetDSN())
}
