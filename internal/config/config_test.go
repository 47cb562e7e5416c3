package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
app:
  name: mlb-pbp
  environment: development
  log_level: info

database:
  host: ${TEST_PBP_DB_HOST}
  port: 5432
  name: mlb_pbp
  user: pbp
  password: secret
  ssl_mode: disable
  max_connections: 10

stats_api:
  base_url: https://statsapi.mlb.com/api/v1
  timeout_seconds: 30
  max_retries: 5
  requests_per_second: 10
  metadata_cache_minutes: 60

sync:
  fetch_concurrency: 10
  batch_size: 500
  schedule: "0 6 * * *"

metrics:
  enabled: true
  port: 9090
  path: /metrics
`

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadExpandsEnvPlaceholders(t *testing.T) {
	t.Setenv("TEST_PBP_DB_HOST", "db.internal")

	cfg, err := Load(writeTestConfig(t, testConfigYAML))
	require.NoError(t, err)

	assert.Equal(t, "mlb-pbp", cfg.App.Name)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 10, cfg.Sync.FetchConcurrency)
	assert.Equal(t, "0 6 * * *", cfg.Sync.Schedule)
	assert.Equal(t, 30*time.Second, cfg.StatsAPI.Timeout())
	assert.Equal(t, time.Hour, cfg.StatsAPI.MetadataCacheTTL())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestValidateAcceptsCompleteConfig(t *testing.T) {
	t.Setenv("TEST_PBP_DB_HOST", "localhost")

	cfg, err := Load(writeTestConfig(t, testConfigYAML))
	require.NoError(t, err)
	assert.NoError(t, Validate(cfg))
}

func TestValidateRejectsBadEnvironment(t *testing.T) {
	t.Setenv("TEST_PBP_DB_HOST", "localhost")

	cfg, err := Load(writeTestConfig(t, testConfigYAML))
	require.NoError(t, err)

	cfg.App.Environment = "qa"
	err = Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "environment")
}

func TestValidateRejectsBadLogLevel(t *testing.T) {
	t.Setenv("TEST_PBP_DB_HOST", "localhost")

	cfg, err := Load(writeTestConfig(t, testConfigYAML))
	require.NoError(t, err)

	cfg.App.LogLevel = "verbose"
	assert.Error(t, Validate(cfg))
}

func TestValidateRejectsBadSSLMode(t *testing.T) {
	t.Setenv("TEST_PBP_DB_HOST", "localhost")

	cfg, err := Load(writeTestConfig(t, testConfigYAML))
	require.NoError(t, err)

	cfg.Database.SSLMode = "prefer"
	assert.Error(t, Validate(cfg))
}

func TestEnvironmentHelpers(t *testing.T) {
	cfg := &Config{}
	cfg.App.Environment = "development"
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())

	cfg.App.Environment = "production"
	assert.True(t, cfg.IsProduction())
}
