package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"github.com/rocketscienceinc/tictactoe-client/internal/config"
)

func TestInit_WithoutEndpoint(t *testing.T) {
	// Given: telemetry without an OTLP endpoint
	conf := config.Telemetry{ServiceName: "tictactoe-client"}

	// When: initializing telemetry
	shutdown, err := Init(context.Background(), conf)

	// Then: the propagator should be installed and shutdown should be a no-op
	require.NoError(t, err)
	assert.Contains(t, otel.GetTextMapPropagator().Fields(), "traceparent")
	assert.NoError(t, shutdown(context.Background()))
}

func TestEndpointHost(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		want     string
	}{
		{name: "Bare host and port", endpoint: "otel-collector:4317", want: "otel-collector:4317"},
		{name: "HTTP URL", endpoint: "http://otel-collector:4317", want: "otel-collector:4317"},
		{name: "HTTPS URL with path", endpoint: "https://collector.example.com:4317/", want: "collector.example.com:4317"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, endpointHost(tt.endpoint))
		})
	}
}
