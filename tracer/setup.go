package tracer

import (
	"github.com/zoobzio/clockz"

	"github.com/aalemi-dev/telemetry-lab/logger"
	"github.com/aalemi-dev/telemetry-lab/observability"
	"github.com/aalemi-dev/telemetry-lab/sampler"
)

// TracerClient is the stack-based trace recorder. It implements Tracer.
//
// Spans are pushed on an explicit stack when started and popped when ended;
// the top of the stack is the current span and the parent of the next one.
// A span id received through a traceparent is kept apart from the stack as
// the remote parent of the first local span.
type TracerClient struct {
	cfg      Config
	sampler  sampler.Sampler
	exporter Exporter

	clock       clockz.Clock
	logger      logger.Logger
	observer    observability.Observer
	ids         IDGenerator
	eventFilter EventFilter

	state        SamplingState
	traceID      string
	remoteParent string
	stack        []*Span
	store        *spanStore
}

// NewClient creates a TracerClient.
//
// A nil sampler keeps every trace and a nil exporter discards finished
// traces. Limits left at zero in cfg take their defaults.
//
// Example:
//
//	tr, err := tracer.NewClient(tracer.Config{}, sampler.Rate(0.1), exp,
//	    tracer.WithLogger(log),
//	)
//	if err != nil {
//	    return err
//	}
//	tr.StartTrace(tracer.WithTraceParent(r.Header.Get("traceparent")))
//	span := tr.StartSpan("GET /orders")
//	defer tr.EndSpan(span)
func NewClient(cfg Config, s sampler.Sampler, exporter Exporter, opts ...Option) (*TracerClient, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, err
	}
	if s == nil {
		s = sampler.Always()
	}

	t := &TracerClient{
		cfg:      cfg,
		sampler:  s,
		exporter: exporter,
		clock:    clockz.RealClock,
		logger:   logger.NewNop(),
		ids:      NewRandomIDGenerator(),
		store:    newSpanStore(),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.reset()

	return t, nil
}

// Config returns the effective configuration, defaults applied.
func (t *TracerClient) Config() Config {
	return t.cfg
}

// Disable turns tracing off, dropping the current trace.
func (t *TracerClient) Disable() {
	t.TrashTrace()
	t.cfg.Disabled = true
	t.state = SamplingDisabled
}

// Enable turns tracing back on after Disable.
func (t *TracerClient) Enable() {
	t.cfg.Disabled = false
	t.reset()
}

// reset forgets the current trace and returns to waiting (or disabled).
func (t *TracerClient) reset() {
	t.traceID = ""
	t.remoteParent = ""
	t.stack = nil
	if t.cfg.Disabled {
		t.state = SamplingDisabled
		return
	}
	t.state = SamplingWaiting
}
