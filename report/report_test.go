package report_test

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoobzio/clockz"

	"github.com/aalemi-dev/telemetry-lab/report"
	"github.com/aalemi-dev/telemetry-lab/sampler"
	"github.com/aalemi-dev/telemetry-lab/tracer"
)

var seen = time.Date(2026, 5, 4, 10, 30, 0, 0, time.UTC)

type quotaError struct {
	Limit int
}

func (e quotaError) Error() string { return fmt.Sprintf("quota of %d exceeded", e.Limit) }

func TestFromError_CauseChain(t *testing.T) {
	t.Parallel()
	b := report.NewBuilder(report.Config{}, report.WithClock(clockz.NewFakeClockAt(seen)))

	err := fmt.Errorf("sync orders: %w", errors.Join(
		&fs.PathError{Op: "open", Path: "/tmp/x", Err: fs.ErrNotExist},
		fmt.Errorf("retry: %w", io.EOF),
	))
	r := b.FromError(err)

	assert.Equal(t, "*fmt.wrapError", r.Class)
	assert.Equal(t, err.Error(), r.Message)
	assert.Equal(t, seen, r.SeenAt)
	assert.Equal(t, []report.Exception{
		{Class: "*fs.PathError", Message: "open /tmp/x: file does not exist"},
		{Class: "*errors.errorString", Message: "file does not exist"},
		{Class: "*fmt.wrapError", Message: "retry: EOF"},
		{Class: "*errors.errorString", Message: "EOF"},
	}, r.Previous)
}

func TestFromError_MaxPrevious(t *testing.T) {
	t.Parallel()
	b := report.NewBuilder(report.Config{MaxPrevious: 2})

	err := error(quotaError{Limit: 3})
	for i := 0; i < 5; i++ {
		err = fmt.Errorf("layer %d: %w", i, err)
	}
	r := b.FromError(err)

	require.Len(t, r.Previous, 2)
	assert.Equal(t, "layer 3: layer 2: layer 1: layer 0: quota of 3 exceeded", r.Previous[0].Message)
	assert.Equal(t, "layer 2: layer 1: layer 0: quota of 3 exceeded", r.Previous[1].Message)
}

func TestFromError_NoCauses(t *testing.T) {
	t.Parallel()
	r := report.NewBuilder(report.Config{}).FromError(quotaError{Limit: 1})

	assert.Equal(t, "report_test.quotaError", r.Class)
	assert.Empty(t, r.Previous)
	assert.Empty(t, r.TraceID)
}

func TestFromError_Options(t *testing.T) {
	t.Parallel()
	b := report.NewBuilder(report.Config{Attributes: map[string]any{
		"service.version": "1.4.0",
		"region":          "eu",
	}})

	at := seen.Add(time.Minute)
	r := b.FromError(errors.New("boom"),
		report.At(at),
		report.WithAttributes(map[string]any{"region": "us"}),
		report.WithContext(map[string]any{"job": "sync"}),
	)

	assert.Equal(t, at, r.SeenAt)
	assert.Equal(t, map[string]any{"service.version": "1.4.0", "region": "us"}, r.Attributes)
	assert.Equal(t, map[string]any{"job": "sync"}, r.Context)

	other := b.FromError(errors.New("boom"))
	assert.Equal(t, "eu", other.Attributes["region"], "per-report attributes must not leak into the builder")
}

func TestFromError_LinksCurrentSpan(t *testing.T) {
	t.Parallel()
	tr, err := tracer.NewClient(tracer.Config{}, sampler.Always(), nil)
	require.NoError(t, err)
	b := report.NewBuilder(report.Config{}, report.WithTracer(tr))

	assert.Empty(t, b.FromError(errors.New("before")).TraceID)

	require.Equal(t, tracer.Sampling, tr.StartTrace())
	span := tr.StartSpan("handler")
	r := b.FromError(errors.New("inside"))

	assert.Equal(t, span.TraceID, r.TraceID)
	assert.Equal(t, span.SpanID, r.SpanID)
}

func TestFromError_UnsampledTraceNotLinked(t *testing.T) {
	t.Parallel()
	tr, err := tracer.NewClient(tracer.Config{}, sampler.Never(), nil)
	require.NoError(t, err)
	b := report.NewBuilder(report.Config{}, report.WithTracer(tr))

	require.Equal(t, tracer.SamplingOff, tr.StartTrace())
	require.NotEmpty(t, tr.CurrentTraceID())

	r := b.FromError(errors.New("not exported"))
	assert.Empty(t, r.TraceID)
	assert.Empty(t, r.SpanID)
	assert.NotContains(t, r.Payload(), "trace")
}

func TestPayload(t *testing.T) {
	t.Parallel()
	r := report.Report{
		Exception:  report.Exception{Class: "*errors.errorString", Message: "boom"},
		SeenAt:     seen,
		Attributes: map[string]any{"k": "v"},
		Context:    map[string]any{},
		Previous:   []report.Exception{{Class: "*fs.PathError", Message: "open x"}},
		TraceID:    "4bf92f3577b34da6a3ce929d0e0e4736",
		SpanID:     "00f067aa0ba902b7",
	}

	want := map[string]any{
		"exceptionClass": "*errors.errorString",
		"message":        "boom",
		"seenAtUnixNano": seen.UnixNano(),
		"attributes":     map[string]any{"k": "v"},
		"context":        map[string]any{},
		"previous": []any{
			map[string]any{"exceptionClass": "*fs.PathError", "message": "open x"},
		},
		"trace": map[string]any{
			"traceId": "4bf92f3577b34da6a3ce929d0e0e4736",
			"spanId":  "00f067aa0ba902b7",
		},
	}
	if diff := cmp.Diff(want, r.Payload()); diff != "" {
		t.Errorf("Payload mismatch (-want +got):\n%s", diff)
	}

	r.TraceID = ""
	assert.NotContains(t, r.Payload(), "trace")
}
