// Package telemetry provides OpenTelemetry tracing for simulation runs.
package telemetry

import (
	"context"
	"os"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	serviceName    = "robotics"
	serviceVersion = "0.1.0"
)

// Config describes where spans are exported.
type Config struct {
	// Endpoint is the OTLP/HTTP collector URL. Empty disables export.
	Endpoint string
	Headers  map[string]string
	Insecure bool
}

// Enabled reports whether an exporter should be installed.
func (c Config) Enabled() bool {
	return c.Endpoint != ""
}

// ConfigFromEnv reads the exporter settings:
//   - ROBOTICS_OTEL_ENDPOINT: collector URL (e.g. https://api.honeycomb.io)
//   - ROBOTICS_OTEL_API_KEY: sent as x-honeycomb-team
//   - ROBOTICS_OTEL_DATASET: sent as x-honeycomb-dataset, defaults to "robotics"
//   - ROBOTICS_OTEL_INSECURE: "true" for plain HTTP collectors
func ConfigFromEnv() Config {
	cfg := Config{
		Endpoint: os.Getenv("ROBOTICS_OTEL_ENDPOINT"),
		Insecure: os.Getenv("ROBOTICS_OTEL_INSECURE") == "true",
	}
	if key := os.Getenv("ROBOTICS_OTEL_API_KEY"); key != "" {
		dataset := os.Getenv("ROBOTICS_OTEL_DATASET")
		if dataset == "" {
			dataset = serviceName
		}
		cfg.Headers = map[string]string{
			"x-honeycomb-team":    key,
			"x-honeycomb-dataset": dataset,
		}
	}
	return cfg
}

// Setup installs a global tracer provider exporting over OTLP HTTP.
// Returns a shutdown function that should be called on exit.
func Setup(ctx context.Context, cfg Config) (shutdown func(context.Context) error, err error) {
	opts := []otlptracehttp.Option{otlptracehttp.WithEndpointURL(cfg.Endpoint)}
	if len(cfg.Headers) > 0 {
		opts = append(opts, otlptracehttp.WithHeaders(cfg.Headers))
	}
	if cfg.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, err
	}

	// Own resource, not merged with resource.Default(), to avoid schema URL conflicts
	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
			attribute.String("host.name", hostname()),
			attribute.String("os.type", runtime.GOOS),
			attribute.String("process.runtime.name", "go"),
			attribute.String("process.runtime.version", runtime.Version()),
		),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// Tracer returns a named tracer for the given component.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(serviceName + "/" + name)
}

// NoopTracer returns a tracer that records nothing.
func NoopTracer() trace.Tracer {
	return noop.NewTracerProvider().Tracer(serviceName + "/noop")
}

func hostname() string {
	h, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return h
}
