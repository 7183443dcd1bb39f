package support

import (
	"context"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	"google.golang.org/grpc/credentials"
)

const ServiceName = "wee-counter"

const honeycombEndpoint = "api.honeycomb.io:443"

type exporterFactory func(ctx context.Context, config Config) (trace.SpanExporter, error)

var exporters = map[string]exporterFactory{
	NoExporter: func(context.Context, Config) (trace.SpanExporter, error) {
		return nil, nil
	},
	ConsoleExporter: func(context.Context, Config) (trace.SpanExporter, error) {
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	},
	HoneycombExporter: func(ctx context.Context, config Config) (trace.SpanExporter, error) {
		client := otlptracegrpc.NewClient(
			otlptracegrpc.WithEndpoint(honeycombEndpoint),
			otlptracegrpc.WithHeaders(map[string]string{
				"x-honeycomb-team":    config.HoneycombTeam,
				"x-honeycomb-dataset": config.HoneycombDataset,
			}),
			otlptracegrpc.WithTLSCredentials(credentials.NewClientTLSFromCert(nil, "")),
		)
		return otlptrace.New(ctx, client)
	},
	JaegerExporter: func(_ context.Context, config Config) (trace.SpanExporter, error) {
		return jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(config.JaegerEndpoint)))
	},
}

// Exporter builds the span exporter named by COUNTER_TRACE_EXPORTER, or nil
// when tracing is disabled.
func Exporter(ctx context.Context, config Config) (trace.SpanExporter, error) {
	name := config.TraceExporter
	if name == "" {
		name = NoExporter
	}

	factory, ok := exporters[name]
	if !ok {
		return nil, InvalidConfig("COUNTER_TRACE_EXPORTER", "unknown exporter "+name)
	}

	return factory(ctx, config)
}

// TracerProvider installs the global tracer provider for the counter service,
// batching to the configured exporter. The cleanup flushes and shuts it down.
func TracerProvider(ctx context.Context, config Config) (*trace.TracerProvider, func(), error) {
	exporter, err := Exporter(ctx, config)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to create %s span exporter", config.TraceExporter)
	}

	options := []trace.TracerProviderOption{
		trace.WithResource(resource.NewSchemaless(attribute.String("service.name", ServiceName))),
	}
	if exporter != nil {
		options = append(options, trace.WithBatcher(exporter))
	}

	provider := trace.NewTracerProvider(options...)
	otel.SetTracerProvider(provider)

	return provider, func() {
		_ = provider.Shutdown(context.Background())
	}, nil
}
