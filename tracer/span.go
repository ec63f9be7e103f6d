package tracer

import (
	"fmt"
	"time"
)

// StatusCode is the outcome of a span. The numeric values match the OTLP
// status codes.
type StatusCode int

const (
	StatusUnset StatusCode = iota
	StatusOK
	StatusError
)

func (c StatusCode) String() string {
	switch c {
	case StatusOK:
		return "ok"
	case StatusError:
		return "error"
	default:
		return "unset"
	}
}

// Status is the outcome of a span. Message is only kept for StatusError.
type Status struct {
	Code    StatusCode
	Message string
}

// Span is a timed, named unit of work inside one trace.
//
// The tracer hands out *Span only for sampled traces; every method is safe
// to call on a nil *Span so that instrumentation never branches on the
// sampling state.
type Span struct {
	TraceID string
	SpanID  string
	// ParentSpanID is empty only for a root span without a remote parent.
	ParentSpanID string
	Name         string

	Start time.Time
	// End is the zero time while the span is open.
	End time.Time

	Attributes *Attributes
	Events     []*SpanEvent
	Status     Status

	DroppedAttributesCount int
	DroppedEventsCount     int

	// dropped marks a span refused by the MaxSpans cap.
	dropped bool
}

// Dropped reports whether the span was refused by the per-trace cap and will
// not be exported.
func (s *Span) Dropped() bool {
	return s != nil && s.dropped
}

// Ended reports whether the span has an end time.
func (s *Span) Ended() bool {
	return s != nil && !s.End.IsZero()
}

// Duration is End - Start, or zero while the span is open.
func (s *Span) Duration() time.Duration {
	if !s.Ended() {
		return 0
	}
	return s.End.Sub(s.Start)
}

// SetName renames the span. Ended spans keep their name.
func (s *Span) SetName(name string) {
	if s == nil || s.Ended() {
		return
	}
	s.Name = name
}

// SetAttribute stores one attribute; a new key beyond the per-span cap is
// counted in DroppedAttributesCount instead.
func (s *Span) SetAttribute(key string, value any) {
	if s == nil {
		return
	}
	if !s.Attributes.Set(key, value) {
		s.DroppedAttributesCount++
	}
}

// SetAttributes stores every entry of attrs in key order.
func (s *Span) SetAttributes(attrs map[string]any) {
	if s == nil || len(attrs) == 0 {
		return
	}
	s.DroppedAttributesCount += s.Attributes.Merge(attrs)
}

// SetStatus sets the status. The message is discarded unless code is
// StatusError.
func (s *Span) SetStatus(code StatusCode, message string) {
	if s == nil {
		return
	}
	if code != StatusError {
		message = ""
	}
	s.Status = Status{Code: code, Message: message}
}

// RecordError marks the span as failed with err's message.
func (s *Span) RecordError(err error) {
	if s == nil || err == nil {
		return
	}
	s.SetStatus(StatusError, err.Error())
}

// SpanEvent is a zero-duration annotation owned by one span.
type SpanEvent struct {
	Name       string
	Time       time.Time
	Attributes *Attributes

	DroppedAttributesCount int
}

// SetAttribute stores one attribute, counting keys refused by the cap.
func (e *SpanEvent) SetAttribute(key string, value any) {
	if e == nil {
		return
	}
	if !e.Attributes.Set(key, value) {
		e.DroppedAttributesCount++
	}
}

// panicMessage renders a recovered panic value as a status message.
func panicMessage(r any) string {
	return fmt.Sprint(r)
}
