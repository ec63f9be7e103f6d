package lifecycle

import (
	"github.com/aalemi-dev/telemetry-lab/logger"
	"github.com/aalemi-dev/telemetry-lab/observability"
	"github.com/aalemi-dev/telemetry-lab/tracer"
)

// LifecycleClient drives a tracer through the stages of an application
// or a subtask. It implements Lifecycle and, like the tracer, belongs to
// one unit of work at a time.
type LifecycleClient struct {
	cfg    Config
	tracer tracer.Tracer

	logger    logger.Logger
	observer  observability.Observer
	registrar ExitRegistrar

	stage Stage
	root  *tracer.Span
	// open is the span of the current Registering, Booting or Terminating
	// stage.
	open *tracer.Span
}

// NewClient creates a LifecycleClient on top of tr. When an ExitRegistrar
// is given the exit hook is registered with it here, once.
//
// Example:
//
//	lc := lifecycle.NewClient(tr, lifecycle.Config{AppName: "checkout"})
//	lc.Start(lifecycle.WithTraceParent(r.Header.Get("traceparent")))
//	lc.Boot()
//	lc.Booted()
//	defer lc.Terminated(ctx)
func NewClient(tr tracer.Tracer, cfg Config, opts ...Option) *LifecycleClient {
	l := &LifecycleClient{
		cfg:    cfg.withDefaults(),
		tracer: tr,
		logger: logger.NewNop(),
		stage:  Idle,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.registrar != nil {
		l.registrar.RegisterExitHook(l.Shutdown)
	}
	return l
}

// Stage returns the current stage.
func (l *LifecycleClient) Stage() Stage {
	return l.stage
}
