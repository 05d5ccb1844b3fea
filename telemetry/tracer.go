package telemetry

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// TracerConfig selects where chain round-trip spans are exported to.
// The zero value exports nowhere but still installs a recording provider,
// so span status and attributes are available to any reader added later.
type TracerConfig struct {
	// Exporter is one of "none", "console" or "otlp".
	Exporter string `json:"exporter" yaml:"exporter"`
	// Writer selects the console destination, "stdout" or "stderr".
	Writer string `json:"writer" yaml:"writer"`
}

// InitTracer installs the global tracer provider. The returned shutdown
// function flushes pending spans; call it once on process exit.
func InitTracer(ctx context.Context, config TracerConfig) (func(context.Context) error, error) {
	var opts []sdktrace.TracerProviderOption
	switch config.Exporter {
	case "", "none":
	case "console":
		writer, err := consoleWriter(config.Writer)
		if err != nil {
			return nil, err
		}
		exp, err := stdouttrace.New(stdouttrace.WithWriter(writer))
		if err != nil {
			return nil, err
		}
		opts = append(opts, sdktrace.WithBatcher(exp))
	case "otlp":
		exp, err := otlptracegrpc.New(ctx)
		if err != nil {
			return nil, err
		}
		opts = append(opts, sdktrace.WithBatcher(exp))
	default:
		return nil, fmt.Errorf("unsupported trace exporter: %q", config.Exporter)
	}

	tracerProvider := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return tracerProvider.Shutdown, nil
}

func consoleWriter(name string) (io.Writer, error) {
	switch name {
	case "", "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	default:
		return nil, fmt.Errorf("unknown console writer: %q", name)
	}
}
