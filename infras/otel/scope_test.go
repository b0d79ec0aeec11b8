package otel_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"libraryhub/infras/otel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newRecorder() (otel.Otel, *tracetest.SpanRecorder) {
	recorder := tracetest.NewSpanRecorder()

	return otel.NewWithProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))), recorder
}

func TestScope_Attributes(t *testing.T) {
	ot, recorder := newRecorder()

	_, scope := ot.NewScope(context.Background(), "service", "service.booking.Create")
	scope.SetAttribute("booking.id", "b-1")
	scope.SetAttributes(map[string]any{
		"booking.seats":    3,
		"booking.elapsed":  1500 * time.Millisecond,
		"booking.waitlist": false,
	})
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "service.booking.Create", spans[0].Name())

	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range spans[0].Attributes() {
		attrs[kv.Key] = kv.Value
	}

	assert.Equal(t, "b-1", attrs["booking.id"].AsString())
	assert.Equal(t, int64(3), attrs["booking.seats"].AsInt64())
	assert.Equal(t, int64(1500), attrs["booking.elapsed"].AsInt64())
	assert.False(t, attrs["booking.waitlist"].AsBool())
}

func TestScope_TraceIfError(t *testing.T) {
	ot, recorder := newRecorder()

	_, ok := ot.NewScope(context.Background(), "service", "ok")
	ok.TraceIfError(nil)
	ok.End()

	_, failed := ot.NewScope(context.Background(), "service", "failed")
	failed.TraceIfError(errors.New("seat taken"))
	failed.End()

	spans := recorder.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
	assert.Equal(t, codes.Error, spans[1].Status().Code)
	assert.Equal(t, "seat taken", spans[1].Status().Description)
}
