package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

const testToml = `
[development]
addr = ":9090"
log_level = "debug"
storage = "memory"

[development.nutrition]
strict_program = true

[development.snapshot_job]
enabled = true
interval = "6h"

[production]
storage = "postgres"
database_url = "postgres://fit@localhost/fit?sslmode=disable"
session_ttl = "12h"

[production.nutrition]
sodium_goal = 1500
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Development(t *testing.T) {
	t.Setenv("ADDR", "")
	t.Setenv("DATABASE_URL", "")
	cfg, err := Load("dev", writeConfig(t, testToml))
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, StorageMemory, cfg.Storage)
	assert.True(t, cfg.Nutrition.StrictProgram)
	assert.Equal(t, 2300.0, cfg.Nutrition.SodiumGoal)
	assert.True(t, cfg.SnapshotJob.Enabled)
	assert.Equal(t, 6*time.Hour, cfg.SnapshotJob.Interval.Duration)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL.Duration)
	assert.Equal(t, "fitcore", cfg.Metrics.Namespace)
}

func TestLoad_ProductionWithEnvOverride(t *testing.T) {
	t.Setenv("ADDR", ":7000")
	t.Setenv("DATABASE_URL", "postgres://override")
	cfg, err := Load("production", writeConfig(t, testToml))
	require.NoError(t, err)

	assert.Equal(t, ":7000", cfg.Addr)
	assert.Equal(t, "postgres://override", cfg.DatabaseURL)
	assert.Equal(t, 1500.0, cfg.Nutrition.SodiumGoal)
	assert.Equal(t, 12*time.Hour, cfg.SessionTTL.Duration)
}

func TestLoad_UnknownEnv(t *testing.T) {
	_, err := Load("staging", writeConfig(t, testToml))
	assert.Error(t, err)
}

func TestLoad_MissingSection(t *testing.T) {
	_, err := Load("production", writeConfig(t, "[development]\nstorage = \"memory\"\n"))
	assert.Error(t, err)
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := &Config{
		Storage:     StoragePostgres,
		Nutrition:   Nutrition{SodiumGoal: -1},
		SnapshotJob: SnapshotJob{Interval: Duration{time.Second}},
		OIDC:        OIDC{Enabled: true},
	}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 5)
}
