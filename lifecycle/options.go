package lifecycle

import (
	"time"

	"github.com/aalemi-dev/telemetry-lab/logger"
	"github.com/aalemi-dev/telemetry-lab/observability"
	"github.com/aalemi-dev/telemetry-lab/tracer"
)

// Option configures a LifecycleClient at construction.
type Option func(*LifecycleClient)

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(log logger.Logger) Option {
	return func(l *LifecycleClient) {
		if log != nil {
			l.logger = log
		}
	}
}

// WithObserver sets the observer notified of protocol violations and exits.
func WithObserver(observer observability.Observer) Option {
	return func(l *LifecycleClient) {
		l.observer = observer
	}
}

// WithExitRegistrar registers the exit hook with r once, at construction.
func WithExitRegistrar(r ExitRegistrar) Option {
	return func(l *LifecycleClient) {
		l.registrar = r
	}
}

// StageOption configures a single stage call.
type StageOption func(*stageOptions)

type stageOptions struct {
	at         time.Time
	attributes map[string]any
	name       string
	trace      []tracer.TraceOption
}

// At backfills the transition at t instead of now.
func At(t time.Time) StageOption {
	return func(o *stageOptions) {
		o.at = t
	}
}

// WithAttributes adds attributes to the span opened or closed by the call.
func WithAttributes(attrs map[string]any) StageOption {
	return func(o *stageOptions) {
		o.attributes = attrs
	}
}

// WithName names the root span of StartSubtask.
func WithName(name string) StageOption {
	return func(o *stageOptions) {
		o.name = name
	}
}

// WithTraceParent continues a propagated trace in Start or StartSubtask.
func WithTraceParent(traceParent string) StageOption {
	return func(o *stageOptions) {
		o.trace = append(o.trace, tracer.WithTraceParent(traceParent))
	}
}

// WithSamplerContext passes attributes to the sampler in Start or StartSubtask.
func WithSamplerContext(attrs map[string]any) StageOption {
	return func(o *stageOptions) {
		o.trace = append(o.trace, tracer.WithSamplerContext(attrs))
	}
}

// ForceSampling bypasses the sampler in Start or StartSubtask.
func ForceSampling(sample bool) StageOption {
	return func(o *stageOptions) {
		o.trace = append(o.trace, tracer.ForceSampling(sample))
	}
}

func newStageOptions(opts []StageOption) stageOptions {
	var o stageOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// spanOptions translates the call options for the tracer.
func (o stageOptions) spanOptions(stage Stage) []tracer.SpanOption {
	attrs := make(map[string]any, len(o.attributes)+1)
	for k, v := range o.attributes {
		attrs[k] = v
	}
	if stage != Idle {
		attrs[StageAttribute] = stage.String()
	}

	opts := []tracer.SpanOption{tracer.WithAttributes(attrs)}
	if !o.at.IsZero() {
		opts = append(opts, tracer.At(o.at))
	}
	return opts
}

// endOptions translates the call options for EndSpan.
func (o stageOptions) endOptions() []tracer.SpanOption {
	var opts []tracer.SpanOption
	if len(o.attributes) > 0 {
		opts = append(opts, tracer.WithAttributes(o.attributes))
	}
	if !o.at.IsZero() {
		opts = append(opts, tracer.At(o.at))
	}
	return opts
}

// closeOptions ends an intermediate stage at the same instant as the call
// that closes it, without the caller's attributes.
func (o stageOptions) closeOptions() []tracer.SpanOption {
	if o.at.IsZero() {
		return nil
	}
	return []tracer.SpanOption{tracer.At(o.at)}
}
