package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/bit/internal/adapters/telemetry"
	"go.trai.ch/bit/internal/core/domain"
	"go.trai.ch/bit/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func setupRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return sr
}

func TestOTelTracer_Span(t *testing.T) {
	sr := setupRecorder(t)
	tracer := telemetry.NewOTelTracer("test")

	_, span := tracer.Start(context.Background(), "scope.put")
	span.SetAttribute("bit", "utils/pad@1.0.0")
	span.SetAttribute("count", 2)
	span.SetAttribute("with_deps", true)
	span.SetAttribute("ids", []string{"a", "b"})
	span.SetAttribute("id", domain.MustParseBitID("utils/pad@1.0.0"))
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "scope.put", spans[0].Name())
	assert.ElementsMatch(t, []attribute.KeyValue{
		attribute.String("bit", "utils/pad@1.0.0"),
		attribute.Int("count", 2),
		attribute.Bool("with_deps", true),
		attribute.StringSlice("ids", []string{"a", "b"}),
		attribute.String("id", "utils/pad@1.0.0"),
	}, spans[0].Attributes())
}

func TestOTelSpan_RecordError(t *testing.T) {
	sr := setupRecorder(t)
	tracer := telemetry.NewOTelTracer("test")

	_, span := tracer.Start(context.Background(), "remote.fetch")
	span.RecordError(nil)
	span.RecordError(errors.New("connection refused"))
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "connection refused", spans[0].Status().Description)
	assert.Len(t, spans[0].Events(), 1)
}

func TestNoOpTracer(t *testing.T) {
	ctx := context.Background()
	got, span := telemetry.NewNoOpTracer().Start(ctx, "noop")

	assert.Equal(t, ctx, got)
	span.SetAttribute("k", "v")
	span.RecordError(errors.New("ignored"))
	span.End()
}

func TestBridge_ReportsEndedSpans(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)

	shutdown := telemetry.Install(logger)
	t.Cleanup(func() { _ = shutdown(context.Background()) })

	tracer := telemetry.NewOTelTracer("test")

	logger.EXPECT().Info(gomock.Any()).Do(func(msg string) {
		assert.Contains(t, msg, "scope.get")
		assert.Contains(t, msg, "bit=utils/pad")
	})
	_, ok := tracer.Start(context.Background(), "scope.get")
	ok.SetAttribute("bit", "utils/pad")
	ok.End()

	logger.EXPECT().Warn(gomock.Any()).Do(func(msg string) {
		assert.Contains(t, msg, "scope.push")
		assert.Contains(t, msg, "failed: remote rejected bit")
	})
	_, failed := tracer.Start(context.Background(), "scope.push")
	failed.RecordError(domain.ErrRemoteRejected)
	failed.End()
}
