package lifecycle

import (
	"context"

	"go.uber.org/fx"

	"github.com/aalemi-dev/telemetry-lab/logger"
	"github.com/aalemi-dev/telemetry-lab/observability"
	"github.com/aalemi-dev/telemetry-lab/tracer"
)

// FXModule provides a *LifecycleClient and the Lifecycle interface on top
// of the container's tracer.Tracer. Its exit hook runs in the application's
// OnStop, so a process stopped mid-trace still exports a consistent trace
// or none at all.
var FXModule = fx.Module("lifecycle",
	fx.Provide(
		newFXClient,
		fx.Annotate(
			func(l *LifecycleClient) Lifecycle { return l },
			fx.As(new(Lifecycle)),
		),
	),
	fx.Invoke(func(*LifecycleClient) {}),
)

// Params are the dependencies of FXModule.
type Params struct {
	fx.In

	Lifecycle fx.Lifecycle
	Tracer    tracer.Tracer
	Config    Config
	Logger    logger.Logger
	Observer  observability.Observer `optional:"true"`
}

func newFXClient(p Params) *LifecycleClient {
	return NewClient(p.Tracer, p.Config,
		WithLogger(p.Logger),
		WithObserver(p.Observer),
		WithExitRegistrar(FXExitRegistrar(p.Lifecycle)),
	)
}

// FXExitRegistrar runs exit hooks in the OnStop phase of lc.
func FXExitRegistrar(lc fx.Lifecycle) ExitRegistrar {
	return ExitRegistrarFunc(func(hook func(ctx context.Context) error) {
		lc.Append(fx.Hook{OnStop: hook})
	})
}
