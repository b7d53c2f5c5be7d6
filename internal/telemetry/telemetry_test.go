package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestSetup_DisabledWithoutEndpoint(t *testing.T) {
	t.Setenv(EndpointEnv, "")
	shutdown, enabled, err := Setup(context.Background())
	require.NoError(t, err)
	assert.False(t, enabled)
	assert.NoError(t, shutdown(context.Background()))
}

func TestSetup_EndpointForms(t *testing.T) {
	tests := []struct {
		endpoint string
		options  int
	}{
		{endpoint: "http://localhost:4318", options: 1},
		{endpoint: "localhost:4318", options: 2},
	}
	for _, tt := range tests {
		t.Run(tt.endpoint, func(t *testing.T) {
			prev := otel.GetTracerProvider()
			t.Cleanup(func() { otel.SetTracerProvider(prev) })

			assert.Len(t, endpointOptions(tt.endpoint), tt.options)

			t.Setenv(EndpointEnv, tt.endpoint)
			shutdown, enabled, err := Setup(context.Background())
			require.NoError(t, err)
			assert.True(t, enabled)
			assert.NoError(t, shutdown(context.Background()))
		})
	}
}

func TestRecordSpans(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(provider)
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	ctx := context.Background()
	RecordFilter(ctx, TableState{FilterKey: "John", Visible: 1})
	RecordToggle(ctx, 2, TableState{Visible: 3, Selected: 1, PaneOpen: true})

	spans := rec.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "datatable.filter", spans[0].Name())
	assert.Contains(t, spans[0].Attributes(), attribute.Int("datatable.filter_len", 4))
	assert.Contains(t, spans[0].Attributes(), attribute.Int("datatable.visible", 1))

	assert.Equal(t, "datatable.toggle", spans[1].Name())
	assert.Contains(t, spans[1].Attributes(), attribute.Int("datatable.row", 2))
	assert.Contains(t, spans[1].Attributes(), attribute.Bool("datatable.pane_open", true))
}
