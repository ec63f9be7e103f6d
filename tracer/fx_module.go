package tracer

import (
	"context"

	"github.com/zoobzio/clockz"
	"go.uber.org/fx"

	"github.com/aalemi-dev/telemetry-lab/logger"
	"github.com/aalemi-dev/telemetry-lab/observability"
	"github.com/aalemi-dev/telemetry-lab/sampler"
)

// FXModule provides a *TracerClient and the Tracer interface built from
// tracer.Config, a sampler.Sampler and an Exporter. The clock and the
// observer are optional. On stop the active trace is ended, so whatever
// was recorded is still exported.
var FXModule = fx.Module("tracer",
	fx.Provide(
		newFXClient,
		fx.Annotate(
			func(t *TracerClient) Tracer { return t },
			fx.As(new(Tracer)),
		),
	),
	fx.Invoke(RegisterTracerLifecycle),
)

// Params are the dependencies of FXModule.
type Params struct {
	fx.In

	Config   Config
	Sampler  sampler.Sampler
	Exporter Exporter
	Logger   logger.Logger
	Clock    clockz.Clock           `optional:"true"`
	Observer observability.Observer `optional:"true"`
}

func newFXClient(p Params) (*TracerClient, error) {
	return NewClient(p.Config, p.Sampler, p.Exporter,
		WithLogger(p.Logger),
		WithClock(p.Clock),
		WithObserver(p.Observer),
	)
}

// RegisterTracerLifecycle ends the active trace when the application stops.
func RegisterTracerLifecycle(lc fx.Lifecycle, t *TracerClient, log logger.Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if t.SamplingState() != Sampling {
				return nil
			}
			log.Info("flushing active trace on shutdown", nil, map[string]interface{}{
				"trace_id": t.CurrentTraceID(),
			})
			return t.EndTrace(ctx)
		},
	})
}
