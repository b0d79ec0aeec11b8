package mocks

import (
	"libraryhub/infras/otel"

	"go.opentelemetry.io/otel/trace/noop"
)

// NewOtel returns a tracer whose spans record nothing.
func NewOtel() otel.Otel {
	return otel.NewWithProvider(noop.NewTracerProvider())
}
