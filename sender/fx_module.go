package sender

import (
	"context"

	"go.uber.org/fx"

	"github.com/aalemi-dev/telemetry-lab/logger"
	"github.com/aalemi-dev/telemetry-lab/observability"
)

// FXModule provides the Sender built by New from sender.Config. An HTTP
// sender closes its idle connections on stop.
var FXModule = fx.Module("sender",
	fx.Provide(newFXSender),
	fx.Invoke(RegisterSenderLifecycle),
)

// Params are the dependencies of FXModule.
type Params struct {
	fx.In

	Config   Config
	Logger   logger.Logger
	Observer observability.Observer `optional:"true"`
}

func newFXSender(p Params) (Sender, error) {
	if p.Config.Endpoint == "" {
		p.Logger.Warn("sender endpoint is not configured, telemetry is discarded", nil)
	}
	return New(p.Config, WithLogger(p.Logger), WithObserver(p.Observer))
}

// RegisterSenderLifecycle closes idle connections when the application stops.
func RegisterSenderLifecycle(lc fx.Lifecycle, s Sender) {
	closer, ok := s.(interface{ Close() })
	if !ok {
		return
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			closer.Close()
			return nil
		},
	})
}
