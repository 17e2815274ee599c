package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("PORT", "")

	cfg, err := Load()

	require.Error(t, err)
	require.Equal(t, Config{}, cfg)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("PORT", "")
	t.Setenv("API_KEY", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")

	cfg, err := Load()

	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "postgres://example", cfg.DatabaseURL)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "json", cfg.LogFormat)
	require.False(t, cfg.AuthEnabled())
}

func TestLoad_CustomPort(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("PORT", "9090")

	cfg, err := Load()

	require.NoError(t, err)
	require.Equal(t, "9090", cfg.Port)
}

func TestLoad_PortWithColonPrefix(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("PORT", ":7070")

	cfg, err := Load()

	require.NoError(t, err)
	require.Equal(t, "7070", cfg.Port)
}

func TestLoad_APIKeyEnablesAuth(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("API_KEY", "  super-secret  ")

	cfg, err := Load()

	require.NoError(t, err)
	require.Equal(t, "super-secret", cfg.APIKey)
	require.True(t, cfg.AuthEnabled())
}
