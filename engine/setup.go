package engine

import (
	"context"
	"errors"
	"net/http"

	"github.com/aalemi-dev/telemetry-lab/config"
	"github.com/aalemi-dev/telemetry-lab/exporter"
	"github.com/aalemi-dev/telemetry-lab/lifecycle"
	"github.com/aalemi-dev/telemetry-lab/logger"
	"github.com/aalemi-dev/telemetry-lab/metrics"
	"github.com/aalemi-dev/telemetry-lab/observability"
	"github.com/aalemi-dev/telemetry-lab/report"
	"github.com/aalemi-dev/telemetry-lab/sampler"
	"github.com/aalemi-dev/telemetry-lab/sender"
	"github.com/aalemi-dev/telemetry-lab/tracer"
	"github.com/aalemi-dev/telemetry-lab/truncation"
)

// Engine bundles every component of the telemetry engine, wired together.
type Engine struct {
	Logger    logger.Logger
	Metrics   *metrics.Metrics
	Observer  observability.Observer
	Sampler   sampler.Sampler
	Trimmer   truncation.Trimmer
	Sender    sender.Sender
	Exporter  exporter.Exporter
	Tracer    tracer.Tracer
	Reports   report.Builder
	Lifecycle lifecycle.Lifecycle

	exitHooks []func(ctx context.Context) error
}

// New builds an Engine from cfg by constructor injection. Use FXModule
// instead when the host application runs on fx.
//
// Example:
//
//	cfg, err := config.Load("telemetry.yaml")
//	if err != nil {
//	    return err
//	}
//	eng, err := engine.New(cfg)
//	if err != nil {
//	    return err
//	}
//	defer eng.Shutdown(context.Background())
//
//	eng.Lifecycle.Start()
//	eng.Lifecycle.Boot()
func New(cfg config.Config, opts ...Option) (*Engine, error) {
	cfg.ApplyServiceName()
	if err := config.Validate(&cfg); err != nil {
		return nil, err
	}
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	e := &Engine{Logger: o.logger}
	if e.Logger == nil {
		e.Logger = logger.NewLoggerClient(cfg.Logger)
	}

	e.Metrics = metrics.NewMetrics(cfg.Metrics)
	e.Observer = observability.Multi(append([]observability.Observer{metrics.NewObserver(e.Metrics)}, o.observers...)...)

	smp, err := sampler.New(cfg.Sampler)
	if err != nil {
		return nil, err
	}
	e.Sampler = smp

	e.Trimmer = truncation.NewTrimmer(cfg.Truncation,
		truncation.WithLogger(e.Logger),
		truncation.WithObserver(e.Observer),
	)

	e.Sender = o.sender
	if e.Sender == nil {
		if cfg.Sender.Endpoint == "" {
			e.Logger.Warn("sender endpoint is not configured, telemetry is discarded", nil)
		}
		if e.Sender, err = sender.New(cfg.Sender,
			sender.WithLogger(e.Logger),
			sender.WithObserver(e.Observer),
		); err != nil {
			return nil, err
		}
	}

	exp := exporter.NewExporter(cfg.Exporter, e.Trimmer, e.Sender,
		exporter.WithLogger(e.Logger),
		exporter.WithObserver(e.Observer),
	)
	e.Exporter = exp

	tr, err := tracer.NewClient(cfg.Tracer, e.Sampler, exp,
		tracer.WithLogger(e.Logger),
		tracer.WithObserver(e.Observer),
		tracer.WithClock(o.clock),
		tracer.WithIDGenerator(o.ids),
	)
	if err != nil {
		return nil, err
	}
	e.Tracer = tr

	e.Reports = report.NewBuilder(cfg.Report, report.WithTracer(tr), report.WithClock(o.clock))

	e.Lifecycle = lifecycle.NewClient(tr, cfg.Lifecycle,
		lifecycle.WithLogger(e.Logger),
		lifecycle.WithObserver(e.Observer),
		lifecycle.WithExitRegistrar(e),
	)

	return e, nil
}

// RegisterExitHook queues hook for Shutdown. It makes the Engine the
// lifecycle.ExitRegistrar of engines built by New.
func (e *Engine) RegisterExitHook(hook func(ctx context.Context) error) {
	e.exitHooks = append(e.exitHooks, hook)
}

// Start serves the metrics registry when metrics.address is set.
func (e *Engine) Start(ctx context.Context) error {
	if e.Metrics.Server == nil {
		return nil
	}
	go func() {
		e.Logger.Info("Starting metrics server", nil, map[string]interface{}{
			"address": e.Metrics.Server.Addr,
		})
		if err := e.Metrics.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Error("Metrics server stopped", err)
		}
	}()
	return nil
}

// Shutdown runs the exit hooks, which end or drop the trace in flight, then
// releases the sender and the metrics server. Every step runs; their errors
// are joined.
func (e *Engine) Shutdown(ctx context.Context) error {
	var errs []error
	for i := len(e.exitHooks) - 1; i >= 0; i-- {
		errs = append(errs, e.exitHooks[i](ctx))
	}
	if closer, ok := e.Sender.(interface{ Close() }); ok {
		closer.Close()
	}
	if e.Metrics.Server != nil {
		errs = append(errs, e.Metrics.Server.Shutdown(ctx))
	}
	return errors.Join(errs...)
}
