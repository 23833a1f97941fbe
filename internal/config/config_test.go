package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_NAME", "jobmatch")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("JWT_ACCESS_SECRET", "0123456789abcdef0123")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "jobmatch", cfg.App.AppName)
	assert.Equal(t, "disable", cfg.Database.DBSSLMode)
	assert.Equal(t, int32(10), cfg.Database.PoolMaxConns)
	assert.Equal(t, 5*time.Second, cfg.Database.ConnectTimeout)
	assert.False(t, cfg.Database.RunMigrations)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 6, cfg.Recommend.JobCount)
	assert.Equal(t, 10, cfg.Recommend.CandidateCount)
	assert.Equal(t, 50, cfg.Recommend.MaxCount)
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("APP_NAME", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("HTTP_PORT", "")
	t.Setenv("JWT_ACCESS_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errMissingRequiredEnv))
	assert.Contains(t, err.Error(), "APP_NAME")
	assert.Contains(t, err.Error(), "JWT_ACCESS_SECRET")
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FORMAT", "console")
	t.Setenv("RECOMMEND_JOB_COUNT", "4")
	t.Setenv("RUN_MIGRATIONS", "true")
	t.Setenv("DB_MAX_CONN_LIFETIME", "15m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 4, cfg.Recommend.JobCount)
	assert.True(t, cfg.Database.RunMigrations)
	assert.Equal(t, 15*time.Minute, cfg.Database.PoolMaxConnLifetime)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "non numeric port", key: "HTTP_PORT", val: "http"},
		{name: "short secret", key: "JWT_ACCESS_SECRET", val: "short"},
		{name: "unknown log level", key: "LOG_LEVEL", val: "loud"},
		{name: "count above max", key: "RECOMMEND_CANDIDATE_COUNT", val: "500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.key, tt.val)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadTooling_ServerSettingsOptional(t *testing.T) {
	t.Setenv("APP_NAME", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("HTTP_PORT", "")
	t.Setenv("JWT_ACCESS_SECRET", "")
	t.Setenv("DB_HOST", "db.internal")

	cfg, err := LoadTooling()
	require.NoError(t, err)
	assert.Equal(t, "db.internal", cfg.Database.DBHost)
	assert.Empty(t, cfg.JWT.AccessSecret)
	assert.Equal(t, 6, cfg.Recommend.JobCount)

	_, err = Load()
	assert.ErrorIs(t, err, errMissingRequiredEnv)
}

func TestLoadTooling_StillValidatesSections(t *testing.T) {
	t.Setenv("HTTP_PORT", "")
	t.Setenv("JWT_ACCESS_SECRET", "")
	t.Setenv("LOG_LEVEL", "loud")

	_, err := LoadTooling()
	assert.Error(t, err)
}
