// Package traceparent encodes and decodes the trace context string that
// carries a trace id, the caller's span id and the sampling decision across
// process boundaries:
//
//	00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01
//
// Parse never panics. Any input it cannot read is reported with false, and
// the tracer then starts a fresh trace as if nothing had been propagated.
package traceparent
