package truncation

import (
	"go.uber.org/fx"

	"github.com/aalemi-dev/telemetry-lab/logger"
	"github.com/aalemi-dev/telemetry-lab/observability"
)

// FXModule provides a *TrimmerClient and the Trimmer interface built from
// truncation.Config.
var FXModule = fx.Module("truncation",
	fx.Provide(
		newFXTrimmer,
		fx.Annotate(
			func(t *TrimmerClient) Trimmer { return t },
			fx.As(new(Trimmer)),
		),
	),
)

// Params are the dependencies of FXModule.
type Params struct {
	fx.In

	Config   Config
	Logger   logger.Logger
	Observer observability.Observer `optional:"true"`
}

func newFXTrimmer(p Params) *TrimmerClient {
	return NewTrimmer(p.Config, WithLogger(p.Logger), WithObserver(p.Observer))
}
