package otel

import (
	"context"

	"libraryhub/config"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc/credentials/insecure"
)

// Otel opens spans. scopeName selects the tracer (handler, service, repository and
// so on) and spanName is usually "<scope>.<component>.<method>".
type Otel interface {
	NewScope(ctx context.Context, scopeName, spanName string) (context.Context, Scope)
}

type tracing struct {
	provider oteltrace.TracerProvider
}

func (t *tracing) NewScope(ctx context.Context, scopeName, spanName string) (context.Context, Scope) {
	ctx, span := t.provider.Tracer(scopeName).Start(ctx, spanName)

	return ctx, NewScope(span)
}

// NewWithProvider wraps an existing provider. Tests pass a noop or recording one.
func NewWithProvider(provider oteltrace.TracerProvider) Otel {
	return &tracing{provider: provider}
}

// New exports spans over OTLP/gRPC when an endpoint is configured. Without one the
// spans are still created, so trace ids reach the logs, but nothing is exported.
func New(cfg *config.Config) Otel {
	options := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(cfg.App.Name),
			semconv.DeploymentEnvironmentKey.String(cfg.Server.Env),
		)),
	}

	endpoint := cfg.External.Otel.Endpoint
	if endpoint == "" {
		log.Warn().Msg("No OTEL endpoint configured, spans will not be exported")

		return NewWithProvider(sdktrace.NewTracerProvider(options...))
	}

	exporter, err := otlptracegrpc.New(context.Background(),
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithTLSCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		log.Fatal().Err(err).Str("endpoint", endpoint).Msg("Failed to create OTLP exporter")
	}

	provider := sdktrace.NewTracerProvider(append(options, sdktrace.WithBatcher(exporter))...)
	otel.SetTracerProvider(provider)

	log.Info().Str("endpoint", endpoint).Msg("Exporting spans over OTLP")

	return NewWithProvider(provider)
}
