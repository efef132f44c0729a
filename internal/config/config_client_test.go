package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetClientConfig_Defaults(t *testing.T) {
	t.Setenv("FLIGHTSEARCH_SERVER_URL", "")
	t.Setenv("FLIGHTSEARCH_CLIENT_TIMEOUT", "")

	cfg, err := GetClientConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "http://localhost:4000", cfg.Adapter.ServerURL)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
}

func TestGetClientConfig_FromEnv(t *testing.T) {
	t.Setenv("FLIGHTSEARCH_SERVER_URL", "https://flights.example.com")
	t.Setenv("FLIGHTSEARCH_CLIENT_TIMEOUT", "5s")

	cfg, err := GetClientConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://flights.example.com", cfg.Adapter.ServerURL)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
}

func TestGetClientConfig_InvalidTimeout(t *testing.T) {
	t.Setenv("FLIGHTSEARCH_CLIENT_TIMEOUT", "soon")

	cfg, err := GetClientConfig()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}

func TestGetClientConfig_NegativeTimeoutFallsBack(t *testing.T) {
	t.Setenv("FLIGHTSEARCH_CLIENT_TIMEOUT", "-1s")

	cfg, err := GetClientConfig()
	require.NoError(t, err)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
}
