package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apidemo/internal/config"
	"apidemo/internal/logging"
)

func TestSetup_Disabled(t *testing.T) {
	shutdown, err := Setup(context.Background(), config.ObservabilityConfig{ServiceName: "apidemo"}, logging.NewNop())

	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
}

func TestResolveEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	assert.Equal(t, "localhost:4317", ResolveEndpoint(""))
	assert.Equal(t, "collector:4317", ResolveEndpoint("collector:4317"))

	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "otel:4317")
	assert.Equal(t, "otel:4317", ResolveEndpoint(""))
	assert.Equal(t, "collector:4317", ResolveEndpoint("collector:4317"))
}
