package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"github.com/jhoicas/stockalerts-api/pkg/config"
	"github.com/jhoicas/stockalerts-api/pkg/telemetry"
)

func TestSetup_SinEndpoint(t *testing.T) {
	ctx := context.Background()
	shutdown, err := telemetry.Setup(ctx, config.TelemetryConfig{ServiceName: "stockalerts-test"}, "test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = shutdown(ctx) })

	_, span := otel.Tracer("test").Start(ctx, "op")
	defer span.End()
	assert.True(t, span.SpanContext().IsValid(), "el provider SDK debe generar span contexts válidos")
}
