package tracer

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/aalemi-dev/telemetry-lab/sampler"
	"github.com/aalemi-dev/telemetry-lab/traceparent"
)

// StartTrace makes the sampling decision for a new trace.
//
// While a trace is Sampling the call is a no-op. A valid traceparent is
// adopted as is: its trace id becomes the current trace, its span id the
// remote parent, and its flag the decision. Otherwise a random trace id is
// generated and the decision comes from ForceSampling or the sampler.
//
// An Off trace keeps its ids so that TraceParent and CurrentTraceID stay
// meaningful, but nothing is stored for it.
func (t *TracerClient) StartTrace(opts ...TraceOption) SamplingState {
	switch t.state {
	case SamplingDisabled, Sampling:
		return t.state
	}
	t.reset()

	o := newTraceOptions(opts)
	if o.traceParent != "" {
		if parent, ok := traceparent.Parse(o.traceParent); ok {
			t.traceID = parent.TraceID
			t.remoteParent = parent.ParentSpanID
			t.decide(parent.Sampled)
			return t.state
		}
		t.logger.Debug("ignoring malformed traceparent", nil, map[string]interface{}{
			"traceparent": o.traceParent,
		})
	}

	t.traceID = t.ids.NewTraceID().String()

	if o.forceSampling != nil {
		t.decide(*o.forceSampling)
		return t.state
	}
	t.decide(t.sampler.Sample(sampler.Context{TraceID: t.traceID, Attributes: o.samplerContext}))
	return t.state
}

func (t *TracerClient) decide(sampled bool) {
	if sampled {
		t.state = Sampling
		return
	}
	t.state = SamplingOff
}

// StartSpan opens a span named name as a child of the current span and
// pushes it on the stack.
//
// Nothing happens and nil is returned unless the trace is Sampling; with
// CanStartTrace a waiting tracer first starts a trace. Past Config.MaxSpans
// the span is counted as dropped and never stored: it is still returned and
// becomes the current span, so ending it pops the right entry, but it is
// not exported and takes no events.
//
// A start time earlier than the parent's start is moved up to it, so a
// parent never starts after its children.
func (t *TracerClient) StartSpan(name string, opts ...SpanOption) *Span {
	o := newSpanOptions(opts)

	if o.canStartTrace && t.state == SamplingWaiting {
		t.StartTrace(o.traceOptions...)
	}
	if t.state != Sampling {
		return nil
	}

	start := t.timestamp(o.at)
	parent := t.CurrentSpan()
	if parent != nil && start.Before(parent.Start) {
		start = parent.Start
	}

	span := &Span{
		TraceID:      t.traceID,
		SpanID:       t.ids.NewSpanID().String(),
		ParentSpanID: t.CurrentSpanID(),
		Name:         name,
		Start:        start,
		Attributes:   NewAttributes(t.cfg.MaxAttributesPerSpan),
	}
	span.SetAttributes(o.attributes)
	t.stack = append(t.stack, span)

	if t.store.len(t.traceID) >= t.cfg.MaxSpans {
		span.dropped = true
		t.store.trace(t.traceID).dropped++
		t.logger.Debug("span dropped, trace is full", nil, map[string]interface{}{
			"span":      name,
			"trace_id":  t.traceID,
			"max_spans": t.cfg.MaxSpans,
		})
		t.observeOperation("span.drop", t.traceID, 0, nil, nil)
		return span
	}

	t.store.add(span)
	return span
}

// EndSpan sets span's end time, merges the given attributes and pops the
// span, together with anything still open above it, off the stack.
//
// The end time is never earlier than the start. An ended span is returned
// unchanged and a nil span is ignored.
func (t *TracerClient) EndSpan(span *Span, opts ...SpanOption) *Span {
	if span == nil || span.Ended() {
		return span
	}
	o := newSpanOptions(opts)

	end := t.timestamp(o.at)
	if end.Before(span.Start) {
		end = span.Start
	}
	span.SetAttributes(o.attributes)
	span.End = end

	if span.TraceID == t.traceID {
		for i := len(t.stack) - 1; i >= 0; i-- {
			if t.stack[i] == span {
				t.stack = t.stack[:i]
				break
			}
		}
	}
	return span
}

// EndCurrentSpan ends the span on top of the stack, dropped or not. It
// returns nil when no local span is open.
func (t *TracerClient) EndCurrentSpan(opts ...SpanOption) *Span {
	span := t.CurrentSpan()
	if span == nil {
		return nil
	}
	return t.EndSpan(span, opts...)
}

// SpanEvent attaches an event to the current span.
//
// It returns nil when the trace is not Sampling, when there is no local
// current span, when the event filter drops the event, or when the span
// already holds Config.MaxSpanEventsPerSpan events (the latter is counted in
// DroppedEventsCount).
func (t *TracerClient) SpanEvent(name string, opts ...SpanOption) *SpanEvent {
	if t.state != Sampling {
		return nil
	}
	span := t.CurrentSpan()
	if span == nil || span.dropped {
		return nil
	}
	o := newSpanOptions(opts)

	event := &SpanEvent{
		Name:       name,
		Time:       t.timestamp(o.at),
		Attributes: NewAttributes(t.cfg.MaxAttributesPerSpanEvent),
	}
	event.DroppedAttributesCount = event.Attributes.Merge(o.attributes)

	if t.eventFilter != nil {
		if event = t.eventFilter(span, event); event == nil {
			return nil
		}
	}

	if len(span.Events) >= t.cfg.MaxSpanEventsPerSpan {
		span.DroppedEventsCount++
		t.observeOperation("event.drop", t.traceID, 0, nil, map[string]interface{}{
			"span": span.Name,
		})
		return nil
	}
	span.Events = append(span.Events, event)
	return event
}

// EndTrace exports the current trace and resets to SamplingWaiting.
//
// Spans still open are ended at the clock's now first, so an exported
// trace never contains an open span. Traces that are not Sampling are
// only reset. The exporter's error is returned; the reset happens anyway.
func (t *TracerClient) EndTrace(ctx context.Context) error {
	if t.state != Sampling {
		t.reset()
		return nil
	}
	defer t.reset()

	now := t.clock.Now()
	spans, dropped := t.store.evict(t.traceID)
	for _, span := range spans {
		if !span.Ended() {
			span.End = now
			if span.End.Before(span.Start) {
				span.End = span.Start
			}
		}
	}

	finished := Trace{ID: t.traceID, Spans: spans, DroppedSpans: dropped}

	var err error
	if t.exporter != nil {
		err = t.exporter.ExportTrace(ctx, finished)
	}
	if err != nil {
		t.logger.WarnWithContext(ctx, "trace export failed", err, map[string]interface{}{
			"trace_id": finished.ID,
			"spans":    len(spans),
		})
	}

	t.observeOperation("trace.end", finished.ID, int64(len(spans)), err, map[string]interface{}{
		"dropped_spans": dropped,
	})
	return err
}

// TrashTrace discards the current trace without exporting it and resets to
// SamplingWaiting.
func (t *TracerClient) TrashTrace() {
	if t.traceID != "" {
		spans, _ := t.store.evict(t.traceID)
		if t.state == Sampling {
			t.logger.Debug("trace trashed", nil, map[string]interface{}{
				"trace_id": t.traceID,
				"spans":    len(spans),
			})
			t.observeOperation("trace.trash", t.traceID, int64(len(spans)), nil, nil)
		}
	}
	t.reset()
}

// SamplingState returns the current state.
func (t *TracerClient) SamplingState() SamplingState {
	return t.state
}

// CurrentTraceID returns the id of the active trace, or "" while waiting.
func (t *TracerClient) CurrentTraceID() string {
	return t.traceID
}

// CurrentSpanID returns the id of the span on top of the stack, or the
// remote parent when no local span is open.
func (t *TracerClient) CurrentSpanID() string {
	if n := len(t.stack); n > 0 {
		return t.stack[n-1].SpanID
	}
	return t.remoteParent
}

// CurrentSpan returns the local span on top of the stack. It may be a span
// refused by the MaxSpans cap.
func (t *TracerClient) CurrentSpan() *Span {
	if n := len(t.stack); n > 0 {
		return t.stack[n-1]
	}
	return nil
}

// Spans returns the spans recorded for the active trace in creation order.
func (t *TracerClient) Spans() []*Span {
	return t.store.spans(t.traceID)
}

// OpenSpans returns the recorded spans on the stack, outermost first.
func (t *TracerClient) OpenSpans() []*Span {
	open := make([]*Span, 0, len(t.stack))
	for _, span := range t.stack {
		if !span.dropped {
			open = append(open, span)
		}
	}
	return open
}

// HasOpenSpans reports whether any span of the active trace has no end,
// including spans left open underneath an ended ancestor.
func (t *TracerClient) HasOpenSpans() bool {
	for _, span := range t.store.spans(t.traceID) {
		if !span.Ended() {
			return true
		}
	}
	return false
}

// DroppedSpans returns how many spans the active trace refused.
func (t *TracerClient) DroppedSpans() int {
	return t.store.dropped(t.traceID)
}

// TraceParent formats the current trace and span for an outgoing request.
// It returns "" when there is no trace or no span id to propagate.
func (t *TracerClient) TraceParent() string {
	spanID := t.CurrentSpanID()
	if t.traceID == "" || spanID == "" {
		return ""
	}
	return traceparent.Format(t.traceID, spanID, t.state == Sampling)
}

// ContextWithSpan returns ctx carrying the current trace and span ids as an
// OpenTelemetry span context, which the logger reads for correlation.
// ctx is returned unchanged when there is nothing to carry.
func (t *TracerClient) ContextWithSpan(ctx context.Context) context.Context {
	traceID, err := trace.TraceIDFromHex(t.traceID)
	if err != nil {
		return ctx
	}
	spanID, err := trace.SpanIDFromHex(t.CurrentSpanID())
	if err != nil {
		return ctx
	}

	var flags trace.TraceFlags
	if t.state == Sampling {
		flags = trace.FlagsSampled
	}
	return trace.ContextWithSpanContext(ctx, trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: flags,
		Remote:     len(t.stack) == 0,
	}))
}

func (t *TracerClient) timestamp(at time.Time) time.Time {
	if !at.IsZero() {
		return at
	}
	return t.clock.Now()
}
