package report

import (
	"time"

	"github.com/zoobzio/clockz"

	"github.com/aalemi-dev/telemetry-lab/tracer"
)

// BuilderOption configures a BuilderClient.
type BuilderOption func(*BuilderClient)

// WithClock sets the time source for Report.SeenAt.
func WithClock(clock clockz.Clock) BuilderOption {
	return func(b *BuilderClient) {
		if clock != nil {
			b.clock = clock
		}
	}
}

// WithTracer links reports to the span that is current when they are built.
func WithTracer(tr tracer.Tracer) BuilderOption {
	return func(b *BuilderClient) {
		b.tracer = tr
	}
}

// Option configures a single FromError call.
type Option func(*Report)

// At overrides the time the error was seen.
func At(t time.Time) Option {
	return func(r *Report) {
		r.SeenAt = t
	}
}

// WithAttributes adds attributes to the report. Later values win.
func WithAttributes(attrs map[string]any) Option {
	return func(r *Report) {
		for k, v := range attrs {
			r.Attributes[k] = v
		}
	}
}

// WithContext adds free-form context, such as request data or recent log
// lines.
func WithContext(ctx map[string]any) Option {
	return func(r *Report) {
		for k, v := range ctx {
			r.Context[k] = v
		}
	}
}
