package tracer

import (
	"time"

	"github.com/zoobzio/clockz"

	"github.com/aalemi-dev/telemetry-lab/logger"
	"github.com/aalemi-dev/telemetry-lab/observability"
)

// Option configures a TracerClient at construction.
type Option func(*TracerClient)

// WithClock sets the time source. Defaults to clockz.RealClock.
func WithClock(clock clockz.Clock) Option {
	return func(t *TracerClient) {
		if clock != nil {
			t.clock = clock
		}
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(log logger.Logger) Option {
	return func(t *TracerClient) {
		if log != nil {
			t.logger = log
		}
	}
}

// WithObserver sets the observer notified of trace ends, trashes and drops.
func WithObserver(observer observability.Observer) Option {
	return func(t *TracerClient) {
		t.observer = observer
	}
}

// WithIDGenerator replaces the crypto/rand id generator.
func WithIDGenerator(gen IDGenerator) Option {
	return func(t *TracerClient) {
		if gen != nil {
			t.ids = gen
		}
	}
}

// EventFilter inspects an event before it is attached to the current span.
// It may modify the event, return a replacement, or return nil to drop it.
type EventFilter func(span *Span, event *SpanEvent) *SpanEvent

// WithEventFilter installs an EventFilter.
func WithEventFilter(filter EventFilter) Option {
	return func(t *TracerClient) {
		t.eventFilter = filter
	}
}

// TraceOption configures StartTrace.
type TraceOption func(*traceOptions)

type traceOptions struct {
	traceParent    string
	forceSampling  *bool
	samplerContext map[string]any
}

// WithTraceParent continues the trace described by a traceparent string.
// An unparsable value is ignored and a fresh trace is started.
func WithTraceParent(traceParent string) TraceOption {
	return func(o *traceOptions) {
		o.traceParent = traceParent
	}
}

// ForceSampling bypasses the sampler with a fixed decision.
func ForceSampling(sample bool) TraceOption {
	return func(o *traceOptions) {
		o.forceSampling = &sample
	}
}

// WithSamplerContext passes request-scoped attributes to the sampler.
func WithSamplerContext(attrs map[string]any) TraceOption {
	return func(o *traceOptions) {
		o.samplerContext = attrs
	}
}

// SpanOption configures StartSpan, EndSpan and SpanEvent.
type SpanOption func(*spanOptions)

type spanOptions struct {
	at            time.Time
	attributes    map[string]any
	canStartTrace bool
	traceOptions  []TraceOption
}

// At sets an explicit timestamp instead of the clock's now, so work that
// already happened can be backfilled.
func At(t time.Time) SpanOption {
	return func(o *spanOptions) {
		o.at = t
	}
}

// WithAttributes adds attributes to the span or event.
func WithAttributes(attrs map[string]any) SpanOption {
	return func(o *spanOptions) {
		if o.attributes == nil {
			o.attributes = make(map[string]any, len(attrs))
		}
		for k, v := range attrs {
			o.attributes[k] = v
		}
	}
}

// CanStartTrace lets StartSpan open a trace when none is active, as
// request or job entry points do. The trace options are passed to
// StartTrace.
func CanStartTrace(opts ...TraceOption) SpanOption {
	return func(o *spanOptions) {
		o.canStartTrace = true
		o.traceOptions = opts
	}
}

func newSpanOptions(opts []SpanOption) spanOptions {
	var o spanOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func newTraceOptions(opts []TraceOption) traceOptions {
	var o traceOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
