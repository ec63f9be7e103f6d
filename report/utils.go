package report

import (
	"fmt"

	"github.com/aalemi-dev/telemetry-lab/tracer"
)

// FromError builds a report for err. A nil err yields an empty report.
func (b *BuilderClient) FromError(err error, opts ...Option) Report {
	r := Report{
		SeenAt:     b.clock.Now(),
		Attributes: make(map[string]any, len(b.cfg.Attributes)),
		Context:    map[string]any{},
	}
	for k, v := range b.cfg.Attributes {
		r.Attributes[k] = v
	}
	if err != nil {
		r.Exception = exception(err)
		r.Previous = b.causes(err)
	}
	if b.tracer != nil && b.tracer.SamplingState() == tracer.Sampling {
		r.TraceID = b.tracer.CurrentTraceID()
		r.SpanID = b.tracer.CurrentSpanID()
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// causes lists what err wraps, depth first. Branches of a multi-error such
// as errors.Join are flattened in place of the multi-error itself.
func (b *BuilderClient) causes(err error) []Exception {
	var out []Exception
	var visit func(err error)
	visit = func(err error) {
		if len(out) >= b.cfg.MaxPrevious {
			return
		}
		switch e := err.(type) {
		case interface{ Unwrap() []error }:
			for _, branch := range e.Unwrap() {
				if branch == nil {
					continue
				}
				if _, multi := branch.(interface{ Unwrap() []error }); !multi && len(out) < b.cfg.MaxPrevious {
					out = append(out, exception(branch))
				}
				visit(branch)
			}
		case interface{ Unwrap() error }:
			next := e.Unwrap()
			if next == nil {
				return
			}
			if _, multi := next.(interface{ Unwrap() []error }); !multi {
				out = append(out, exception(next))
			}
			visit(next)
		}
	}
	visit(err)
	return out
}

func exception(err error) Exception {
	return Exception{
		Class:   fmt.Sprintf("%T", err),
		Message: err.Error(),
	}
}

// Payload returns the report as the nested map the truncation engine and
// the exporter work on.
func (r Report) Payload() map[string]any {
	previous := make([]any, len(r.Previous))
	for i, e := range r.Previous {
		previous[i] = e.payload()
	}

	payload := r.Exception.payload()
	payload["seenAtUnixNano"] = r.SeenAt.UnixNano()
	payload["attributes"] = r.Attributes
	payload["context"] = r.Context
	payload["previous"] = previous
	if r.TraceID != "" {
		payload["trace"] = map[string]any{
			"traceId": r.TraceID,
			"spanId":  r.SpanID,
		}
	}
	return payload
}

func (e Exception) payload() map[string]any {
	return map[string]any{
		"exceptionClass": e.Class,
		"message":        e.Message,
	}
}
