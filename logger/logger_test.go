package logger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// newObservedLogger creates a LoggerClient backed by an in-memory observer
// so tests can assert on emitted log entries without writing to stderr.
func newObservedLogger(level zapcore.Level, tracingEnabled bool) (*LoggerClient, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return &LoggerClient{
		Zap:            zap.New(core),
		tracingEnabled: tracingEnabled,
	}, logs
}

func spanContext(t *testing.T) context.Context {
	t.Helper()
	traceID, err := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	require.NoError(t, err)
	spanID, err := trace.SpanIDFromHex("00f067aa0ba902b7")
	require.NoError(t, err)
	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	})
	return trace.ContextWithSpanContext(context.Background(), sc)
}

func TestParseLevel(t *testing.T) {
	t.Parallel()
	cases := map[string]zapcore.Level{
		Debug:     zapcore.DebugLevel,
		Info:      zapcore.InfoLevel,
		Warning:   zapcore.WarnLevel,
		Error:     zapcore.ErrorLevel,
		"verbose": zapcore.InfoLevel,
		"":        zapcore.InfoLevel,
	}
	for level, expected := range cases {
		assert.Equal(t, expected, parseLevel(level), "level %q", level)
	}
}

func TestNewLoggerClient(t *testing.T) {
	t.Parallel()
	l := NewLoggerClient(Config{Level: Debug, ServiceName: "test", EnableTracing: true})
	require.NotNil(t, l.Zap)
	assert.True(t, l.tracingEnabled)
	assert.True(t, l.Zap.Core().Enabled(zapcore.DebugLevel))
}

func TestNewNop(t *testing.T) {
	t.Parallel()
	l := NewNop()
	assert.NotPanics(t, func() {
		l.Error("discarded", errors.New("boom"))
		l.InfoWithContext(context.Background(), "discarded", nil)
	})
}

func TestConvertToZapFields(t *testing.T) {
	t.Parallel()
	l, _ := newObservedLogger(zapcore.DebugLevel, false)

	assert.Empty(t, l.convertToZapFields(nil))

	fields := l.convertToZapFields(errors.New("oops"),
		map[string]interface{}{"spans": 3},
		map[string]interface{}{"trace": "abc"},
	)
	require.Len(t, fields, 3)
	assert.Equal(t, "error", fields[0].Key)
}

func TestLevels(t *testing.T) {
	t.Parallel()
	l, logs := newObservedLogger(zapcore.InfoLevel, false)

	l.Debug("suppressed", nil)
	l.Info("exported", nil, map[string]interface{}{"spans": 2})
	l.Warn("send failed", errors.New("timeout"))
	l.Error("encode failed", errors.New("bad utf8"))

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, int64(2), entries[0].ContextMap()["spans"])
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "timeout", entries[1].ContextMap()["error"])
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
}

func TestWithContext_AddsTraceFields(t *testing.T) {
	t.Parallel()
	l, logs := newObservedLogger(zapcore.DebugLevel, true)
	ctx := spanContext(t)

	l.DebugWithContext(ctx, "debug", nil)
	l.InfoWithContext(ctx, "info", nil)
	l.WarnWithContext(ctx, "warn", nil)
	l.ErrorWithContext(ctx, "error", errors.New("boom"))

	entries := logs.All()
	require.Len(t, entries, 4)
	for _, entry := range entries {
		fields := entry.ContextMap()
		assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", fields["trace_id"])
		assert.Equal(t, "00f067aa0ba902b7", fields["span_id"])
		assert.Equal(t, true, fields["sampled"])
	}
}

func TestWithContext_NoSpanContext(t *testing.T) {
	t.Parallel()
	l, logs := newObservedLogger(zapcore.InfoLevel, true)
	l.InfoWithContext(context.Background(), "no span", nil)

	require.Equal(t, 1, logs.Len())
	assert.NotContains(t, logs.All()[0].ContextMap(), "trace_id")
}

func TestWithContext_TracingDisabled(t *testing.T) {
	t.Parallel()
	l, logs := newObservedLogger(zapcore.InfoLevel, false)
	l.InfoWithContext(spanContext(t), "tracing off", nil)

	require.Equal(t, 1, logs.Len())
	assert.NotContains(t, logs.All()[0].ContextMap(), "trace_id")
}

func TestExtractTracingFields_NilContext(t *testing.T) {
	t.Parallel()
	l, _ := newObservedLogger(zapcore.DebugLevel, true)
	//nolint:staticcheck // intentionally passing nil to test guard
	assert.Empty(t, l.extractTracingFields(nil))
}

func TestLoggerClient_ImplementsLogger(t *testing.T) {
	t.Parallel()
	var _ Logger = NewNop()
}
