package traceparent

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// Header is the carrier key of the W3C trace context.
const Header = "traceparent"

// Version is the only traceparent version produced and accepted.
const Version = "00"

var propagator = propagation.TraceContext{}

// Context is a parsed traceparent.
type Context struct {
	// TraceID is 32 lowercase hex chars.
	TraceID string
	// ParentSpanID is the 16 lowercase hex chars of the caller's span.
	ParentSpanID string
	// Sampled is the propagated sampling decision.
	Sampled bool
}

// Format renders "00-{traceID}-{spanID}-{01|00}". It returns "" when either
// id is not valid lowercase hex or is all zeros.
func Format(traceID, spanID string, sampled bool) string {
	tid, err := trace.TraceIDFromHex(traceID)
	if err != nil {
		return ""
	}
	sid, err := trace.SpanIDFromHex(spanID)
	if err != nil {
		return ""
	}

	var flags trace.TraceFlags
	if sampled {
		flags = trace.FlagsSampled
	}
	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    tid,
		SpanID:     sid,
		TraceFlags: flags,
	})

	carrier := propagation.MapCarrier{}
	propagator.Inject(trace.ContextWithSpanContext(context.Background(), sc), carrier)
	return carrier.Get(Header)
}

// Parse reads a traceparent header value. It reports false for anything but
// exactly four dash-separated fields with version "00", a non-zero lowercase
// 32-hex trace id, a non-zero lowercase 16-hex span id and flags the W3C
// propagator accepts. The sampled flag is bit 0 of flags.
func Parse(s string) (Context, bool) {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, "-")
	if len(parts) != 4 || parts[0] != Version {
		return Context{}, false
	}

	ctx := propagator.Extract(context.Background(), propagation.MapCarrier{Header: s})
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return Context{}, false
	}

	return Context{
		TraceID:      sc.TraceID().String(),
		ParentSpanID: sc.SpanID().String(),
		Sampled:      sc.IsSampled(),
	}, true
}

// SpanContext converts c into a remote OpenTelemetry span context, which is
// what the logger reads trace_id/span_id from.
func (c Context) SpanContext() trace.SpanContext {
	traceID, _ := trace.TraceIDFromHex(c.TraceID)
	spanID, _ := trace.SpanIDFromHex(c.ParentSpanID)

	var flags trace.TraceFlags
	if c.Sampled {
		flags = trace.FlagsSampled
	}
	return trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: flags,
		Remote:     true,
	})
}

// String formats c back into a traceparent.
func (c Context) String() string {
	return Format(c.TraceID, c.ParentSpanID, c.Sampled)
}
