package tracing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestStartTracing(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	t.Run("disabled", func(t *testing.T) {
		// when
		ctx, span := StartTracing(context.Background(), "disabled", false)
		EndTracing(span, nil)

		// then
		require.Nil(t, span)
		require.NotNil(t, ctx)
	})

	t.Run("enabled with error", func(t *testing.T) {
		// when
		_, span := StartTracing(context.Background(), "stage", true, attribute.String("stage", "login"))
		EndTracing(span, errors.New("boom"))

		// then
		ended := recorder.Ended()
		require.Len(t, ended, 1)
		require.Equal(t, "stage", ended[0].Name())
		require.Equal(t, codes.Error, ended[0].Status().Code)
		require.Contains(t, ended[0].Attributes(), attribute.String("stage", "login"))
	})
}

func TestEnable(t *testing.T) {
	_, err := Enable(nil, "launcher", "", 100)
	require.ErrorIs(t, err, ErrTracingAddressEmpty)
}
