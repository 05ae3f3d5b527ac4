// SPDX-License-Identifier: MIT

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/campusnav/route"
)

var keys = []string{
	"CAMPUSNAV_DATA", "CAMPUSNAV_SELECTION",
	"SERVER_HOST", "SERVER_PORT",
	"SERVER_READ_TIMEOUT", "SERVER_WRITE_TIMEOUT", "SERVER_IDLE_TIMEOUT", "SERVER_SHUTDOWN_TIMEOUT",
	"LOG_LEVEL", "LOG_FORMAT", "LOG_INCLUDE_CALLER",
}

// clearEnv blanks every key Load reads; t.Setenv restores them afterwards.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Campus.DataPath)
	assert.Equal(t, route.SelectLinear, cfg.Campus.Selection)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, 10*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, 15*time.Second, cfg.HTTP.WriteTimeout)
	assert.Equal(t, 60*time.Second, cfg.HTTP.IdleTimeout)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, LoggingConfig{Level: "info", Format: "text"}, cfg.Logging)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("CAMPUSNAV_DATA", "/srv/campus.osm")
	t.Setenv("CAMPUSNAV_SELECTION", "heap")
	t.Setenv("SERVER_HOST", "127.0.0.1")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVER_SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_INCLUDE_CALLER", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/srv/campus.osm", cfg.Campus.DataPath)
	assert.Equal(t, route.SelectHeap, cfg.Campus.Selection)
	assert.Equal(t, "127.0.0.1:9090", cfg.HTTP.Addr())
	assert.Equal(t, 3*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, LoggingConfig{Level: "debug", Format: "json", IncludeCaller: true}, cfg.Logging)
}

func TestLoadErrors(t *testing.T) {
	tests := map[string]string{
		"CAMPUSNAV_SELECTION": "fibonacci",
		"SERVER_PORT":         "http",
		"SERVER_READ_TIMEOUT": "soon",
		"SERVER_IDLE_TIMEOUT": "-1s",
	}
	for key, val := range tests {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, val)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}

	t.Run("PortRange", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("SERVER_PORT", "70000")
		_, err := Load()
		require.ErrorContains(t, err, "out of range")
	})
}

func TestBadBoolFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_INCLUDE_CALLER", "sometimes")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.Logging.IncludeCaller)
}
