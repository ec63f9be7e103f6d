package report

import (
	"github.com/zoobzio/clockz"
	"go.uber.org/fx"

	"github.com/aalemi-dev/telemetry-lab/tracer"
)

// FXModule provides a *BuilderClient and the Builder interface. Reports are
// linked to the application's Tracer when one is provided.
var FXModule = fx.Module("report",
	fx.Provide(
		newFXBuilder,
		fx.Annotate(
			func(b *BuilderClient) Builder { return b },
			fx.As(new(Builder)),
		),
	),
)

// Params are the dependencies of FXModule.
type Params struct {
	fx.In

	Config Config
	Tracer tracer.Tracer `optional:"true"`
	Clock  clockz.Clock  `optional:"true"`
}

func newFXBuilder(p Params) *BuilderClient {
	return NewBuilder(p.Config, WithTracer(p.Tracer), WithClock(p.Clock))
}
