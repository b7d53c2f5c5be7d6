// Package telemetry wires optional OpenTelemetry tracing. Tracing is
// disabled unless OTEL_EXPORTER_OTLP_ENDPOINT is set; spans recorded while
// disabled go to the global no-op provider.
package telemetry

import (
	"context"
	"os"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

const (
	EndpointEnv    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	ServiceNameEnv = "OTEL_SERVICE_NAME"

	defaultServiceName = "dealtable"
	instrumentation    = "dealtable/ui"
)

// Shutdown flushes and stops the tracer provider.
type Shutdown func(context.Context) error

// Setup installs a batching OTLP/HTTP tracer provider as the global provider
// when the endpoint env var is set. It returns enabled=false and a no-op
// shutdown otherwise.
func Setup(ctx context.Context) (shutdown Shutdown, enabled bool, err error) {
	noop := func(context.Context) error { return nil }

	endpoint := os.Getenv(EndpointEnv)
	if endpoint == "" {
		return noop, false, nil
	}

	exporter, err := otlptracehttp.New(ctx, endpointOptions(endpoint)...)
	if err != nil {
		return noop, false, err
	}

	serviceName := os.Getenv(ServiceNameEnv)
	if serviceName == "" {
		serviceName = defaultServiceName
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(provider)
	return provider.Shutdown, true, nil
}

// endpointOptions accepts the endpoint as a URL ("http://host:4318") or a
// bare host:port, which is sent over plain HTTP.
func endpointOptions(endpoint string) []otlptracehttp.Option {
	if strings.Contains(endpoint, "://") {
		return []otlptracehttp.Option{otlptracehttp.WithEndpointURL(endpoint)}
	}
	return []otlptracehttp.Option{
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	}
}

// Tracer returns the tracer used by the UI.
func Tracer() oteltrace.Tracer {
	return otel.Tracer(instrumentation)
}

// TableState describes the data table after a state change.
type TableState struct {
	FilterKey string
	Visible   int
	Selected  int
	PaneOpen  bool
}

func (s TableState) attributes() []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Int("datatable.visible", s.Visible),
		attribute.Int("datatable.selected", s.Selected),
		attribute.Bool("datatable.pane_open", s.PaneOpen),
	}
}

// RecordFilter records a datatable.filter span.
func RecordFilter(ctx context.Context, s TableState) {
	_, span := Tracer().Start(ctx, "datatable.filter")
	span.SetAttributes(append(s.attributes(), attribute.Int("datatable.filter_len", len(s.FilterKey)))...)
	span.End()
}

// RecordToggle records a datatable.toggle span for the row with identity id.
func RecordToggle(ctx context.Context, id int, s TableState) {
	_, span := Tracer().Start(ctx, "datatable.toggle")
	span.SetAttributes(append(s.attributes(), attribute.Int("datatable.row", id))...)
	span.End()
}
