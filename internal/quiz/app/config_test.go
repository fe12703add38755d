package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	base := Config{
		AccessSecret:  "access-secret",
		RefreshSecret: "refresh-secret",
	}
	require.NoError(t, base.Validate())

	missing := base
	missing.AccessSecret = ""
	require.Error(t, missing.Validate())

	missing = base
	missing.RefreshSecret = ""
	require.Error(t, missing.Validate())

	// the two token families must never share a secret
	same := base
	same.RefreshSecret = same.AccessSecret
	require.Error(t, same.Validate())
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	require.Equal(t, "quiz.db", cfg.DatabaseFile)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "json", cfg.LogFormat)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
	require.Equal(t, time.Hour, cfg.HousekeepingInterval)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("SHUTDOWN_GRACE_PERIOD", "30s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := LoadConfig()
	require.Equal(t, 9999, cfg.Port)
	require.Equal(t, 30*time.Second, cfg.ShutdownGracePeriod)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestGoogleEnabled(t *testing.T) {
	cfg := Config{}
	require.False(t, cfg.GoogleEnabled())

	cfg.GoogleClientID = "id"
	cfg.GoogleClientSecret = "secret"
	require.False(t, cfg.GoogleEnabled())

	cfg.GoogleRedirectURL = "http://localhost:8080/auth/google/callback"
	require.True(t, cfg.GoogleEnabled())
}
