package tracer

import (
	"context"
)

// Trace is a finished trace handed to an Exporter.
type Trace struct {
	ID string
	// Spans are in creation order and all ended.
	Spans []*Span
	// DroppedSpans counts spans refused by the per-trace cap.
	DroppedSpans int
}

// Exporter receives finished traces. Sending, retries and timeouts are its
// concern; the tracer never performs I/O itself.
type Exporter interface {
	ExportTrace(ctx context.Context, trace Trace) error
}

// ExporterFunc adapts a function to Exporter.
type ExporterFunc func(ctx context.Context, trace Trace) error

// ExportTrace calls f.
func (f ExporterFunc) ExportTrace(ctx context.Context, trace Trace) error {
	return f(ctx, trace)
}

// Tracer records sampled traces as trees of spans. It is implemented by
// *TracerClient.
//
// A Tracer belongs to one unit of work at a time and is not safe for
// concurrent use.
type Tracer interface {
	// StartTrace decides whether a new trace is recorded and returns the
	// resulting state. It is a no-op while a trace is already Sampling.
	StartTrace(opts ...TraceOption) SamplingState

	// StartSpan opens a child of the current span and makes it current.
	// It returns nil unless a trace is Sampling.
	StartSpan(name string, opts ...SpanOption) *Span

	// EndSpan ends span and makes its parent current. Ending an ended span
	// returns it unchanged; a nil span is ignored.
	EndSpan(span *Span, opts ...SpanOption) *Span

	// EndCurrentSpan ends the span on top of the stack, if any.
	EndCurrentSpan(opts ...SpanOption) *Span

	// SpanEvent attaches an event to the current span.
	SpanEvent(name string, opts ...SpanOption) *SpanEvent

	// EndTrace exports the current trace and resets to SamplingWaiting.
	EndTrace(ctx context.Context) error

	// TrashTrace drops the current trace and resets to SamplingWaiting.
	TrashTrace()

	SamplingState() SamplingState
	CurrentTraceID() string
	CurrentSpanID() string
	CurrentSpan() *Span
	Spans() []*Span
	OpenSpans() []*Span
	HasOpenSpans() bool
	TraceParent() string
	ContextWithSpan(ctx context.Context) context.Context
}
