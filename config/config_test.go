package config_test

import (
	"testing"

	"github.com/meghashyamc/gametools/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ReadsEnvironmentFile(t *testing.T) {
	cfg, err := config.Load("test")
	require.NoError(t, err)

	assert.Equal(t, 640, cfg.GetWindowWidth())
	assert.Equal(t, 480, cfg.GetWindowHeight())
	assert.Equal(t, "gametools test", cfg.GetWindowTitle())
	assert.Equal(t, "9.9.9", cfg.GetAppVersion())
	assert.Equal(t, "ci", cfg.GetAppBuild())
	assert.Equal(t, 0.5, cfg.GetSpawnIntervalSeconds())
	assert.Equal(t, 2.0, cfg.GetLifetimeSeconds())
	assert.Equal(t, 3.0, cfg.GetCountdownSeconds())
	assert.False(t, cfg.GetGizmosEnabled())
	assert.False(t, cfg.GetAudioEnabled())
	assert.Equal(t, "warn", cfg.GetLogLevel())
}

func TestLoad_EnvironmentVariablesOverrideFile(t *testing.T) {
	t.Setenv("WINDOW_WIDTH", "1024")
	t.Setenv("APP_VERSION", "2.0.1")
	t.Setenv("COUNTDOWN_SECONDS", "7.5")
	t.Setenv("GIZMOS_ENABLED", "true")

	cfg, err := config.Load("test")
	require.NoError(t, err)

	assert.Equal(t, 1024, cfg.GetWindowWidth())
	assert.Equal(t, "2.0.1", cfg.GetAppVersion())
	assert.Equal(t, 7.5, cfg.GetCountdownSeconds())
	assert.True(t, cfg.GetGizmosEnabled())
}

func TestLoad_MissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := config.Load("does-not-exist")
	require.NoError(t, err)

	assert.Equal(t, 1200, cfg.GetWindowWidth())
	assert.Equal(t, "0.0.0", cfg.GetAppVersion())
	assert.Equal(t, 10.0, cfg.GetCountdownSeconds())
	assert.Equal(t, "debug", cfg.GetLogLevel())
}
