package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")

	cfg, err := readConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, 4000, cfg.port)
	assert.Equal(t, "development", cfg.environment)
	assert.Equal(t, 2.0, cfg.limiter.rps)
	assert.Equal(t, 4, cfg.limiter.burst)
	assert.True(t, cfg.limiter.enabled)
}

func TestReadConfig_FlagsAndEnv(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENV", "staging")

	cfg, err := readConfig([]string{"-port", "8080", "-env", "production", "-limiter-enabled=false"})
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.port)
	assert.Equal(t, "staging", cfg.environment)
	assert.False(t, cfg.limiter.enabled)

	t.Setenv("PORT", "9090")
	cfg, err = readConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.port)

	t.Setenv("PORT", "not-a-port")
	_, err = readConfig(nil)
	assert.Error(t, err)
}
