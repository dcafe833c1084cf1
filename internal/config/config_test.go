package config

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse(env.Options{Environment: map[string]string{}})
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Gin.Port)
	assert.Equal(t, 8081, cfg.Echo.Port)
	assert.Equal(t, 8082, cfg.FastAPI.Port)
	assert.Equal(t, 8083, cfg.Flask.Port)
	assert.True(t, cfg.FastAPI.Enabled)
	assert.Equal(t, 15*time.Second, cfg.Flask.ReadTimeout)
	assert.Equal(t, "0.0.0.0:8082", cfg.FastAPI.Addr())
	assert.Equal(t, "0.0.0.0:9090", cfg.Metrics.Server().Addr())
	assert.False(t, cfg.Observability.Enabled)
	assert.Equal(t, "apidemo", cfg.Observability.ServiceName)
}

func TestParse_Overrides(t *testing.T) {
	cfg, err := Parse(env.Options{Environment: map[string]string{
		"FLASK_PORT":           "9001",
		"FLASK_HOST":           "127.0.0.1",
		"GIN_ENABLED":          "false",
		"ECHO_WRITE_TIMEOUT":   "2s",
		"LOG_LEVEL":            "debug",
		"OTEL_ENABLED":         "true",
		"OTEL_ENDPOINT":        "collector:4317",
		"PROBE_TIMEOUT":        "250ms",
		"METRICS_ENABLED":      "false",
		"APP_ENV":              "Staging",
		"FASTAPI_IDLE_TIMEOUT": "1m",
	}})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9001", cfg.Flask.Addr())
	assert.False(t, cfg.Gin.Enabled)
	assert.Equal(t, 2*time.Second, cfg.Echo.WriteTimeout)
	assert.Equal(t, time.Minute, cfg.FastAPI.IdleTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Observability.Enabled)
	assert.Equal(t, "collector:4317", cfg.Observability.OtelEndpoint)
	assert.Equal(t, 250*time.Millisecond, cfg.Probe.Timeout)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, "Staging", cfg.Environment)
}

func TestParse_InvalidValue(t *testing.T) {
	_, err := Parse(env.Options{Environment: map[string]string{
		"FASTAPI_PORT": "not-a-number",
	}})
	assert.Error(t, err)
}
