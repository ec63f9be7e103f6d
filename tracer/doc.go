// Package tracer records sampled traces as trees of spans.
//
// A TracerClient holds the sampling state of the current unit of work, the
// id of the current trace, an explicit stack of open spans and a store of
// the spans recorded so far. It performs no I/O: finished traces are handed
// to an Exporter at EndTrace.
//
// # Sampling
//
// StartTrace makes the decision once per trace. It either adopts a
// propagated traceparent (trace id, remote parent span id and decision) or
// generates a trace id and asks the sampler. The state is one of
// SamplingWaiting, Sampling, SamplingOff and SamplingDisabled. Every span
// operation is a cheap no-op unless the state is Sampling, and methods on a
// nil *Span do nothing, so call sites never branch on the decision:
//
//	tr.StartTrace(tracer.WithTraceParent(r.Header.Get("traceparent")))
//	span := tr.StartSpan("GET /orders", tracer.WithAttributes(map[string]any{
//	    "http.request.method": "GET",
//	}))
//	defer tr.EndSpan(span)
//
// # Nesting
//
// StartSpan pushes the new span and EndSpan pops it, so the parent of a
// span is whatever was current when it started. Run and RunValue wrap a
// callback in a span, record a returned error or a panic as StatusError and
// always end the span before handing the failure back.
//
// # Limits
//
// Config caps spans per trace, attributes per span, events per span and
// attributes per event. Anything beyond a cap is dropped and counted, never
// reported as an error.
//
// # Concurrency
//
// A TracerClient is confined to one unit of work at a time and does no
// locking. Use one instance per request or job.
package tracer
