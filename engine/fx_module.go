package engine

import (
	"go.uber.org/fx"

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

// FXModule wires every package module together and provides an *Engine.
// The host supplies a config.Config.
//
// Usage:
//
//	cfg, err := config.Load(os.Getenv("TELEMETRY_CONFIG"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	app := fx.New(
//	    fx.Supply(cfg),
//	    engine.FXModule,
//	    fx.Invoke(func(lc lifecycle.Lifecycle) {
//	        lc.Start()
//	    }),
//	)
//	app.Run()
var FXModule = fx.Module("engine",
	config.FXModule,
	logger.FXModule,
	metrics.FXModule,
	sampler.FXModule,
	truncation.FXModule,
	sender.FXModule,
	exporter.FXModule,
	tracer.FXModule,
	report.FXModule,
	lifecycle.FXModule,
	fx.Provide(
		fx.Annotate(
			func(o observability.Observer) observability.Observer { return o },
			fx.ParamTags(`name:"metrics"`),
		),
		newFXEngine,
	),
)

// Params are the components an fx-built Engine exposes.
type Params struct {
	fx.In

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
}

// newFXEngine collects the components. Exit hooks, the metrics server and
// the sender are managed by the fx lifecycle, so Start and Shutdown of the
// returned Engine only matter for the metrics server when the host calls
// them itself.
func newFXEngine(p Params) *Engine {
	return &Engine{
		Logger:    p.Logger,
		Metrics:   p.Metrics,
		Observer:  p.Observer,
		Sampler:   p.Sampler,
		Trimmer:   p.Trimmer,
		Sender:    p.Sender,
		Exporter:  p.Exporter,
		Tracer:    p.Tracer,
		Reports:   p.Reports,
		Lifecycle: p.Lifecycle,
	}
}
