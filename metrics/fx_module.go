package metrics

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/fx"

	"github.com/aalemi-dev/telemetry-lab/logger"
	"github.com/aalemi-dev/telemetry-lab/observability"
)

// FXModule provides *Metrics, the MetricsCollector interface and an
// observability.Observer named "metrics" backed by NewObserver. It starts and
// stops the /metrics server with the application.
//
// Dependencies: metrics.Config and logger.Logger.
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule,
//	    metrics.FXModule,
//	    fx.Supply(logger.Config{Level: logger.Info}, metrics.Config{ServiceName: "checkout"}),
//	)
var FXModule = fx.Module("metrics",
	fx.Provide(
		NewMetrics,
		fx.Annotate(
			func(m *Metrics) MetricsCollector { return m },
			fx.As(new(MetricsCollector)),
		),
		fx.Annotate(
			func(m *Metrics) observability.Observer { return NewObserver(m) },
			fx.ResultTags(`name:"metrics"`),
		),
	),
	fx.Invoke(RegisterMetricsLifecycle),
)

// RegisterMetricsLifecycle runs the /metrics server between OnStart and
// OnStop. It does nothing when the server is disabled.
func RegisterMetricsLifecycle(lc fx.Lifecycle, m *Metrics, log logger.Logger) {
	if m.Server == nil {
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("Starting metrics server", nil, map[string]interface{}{
					"address": m.Server.Addr,
				})
				if err := m.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("Metrics server stopped", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down metrics server", nil)
			return m.Server.Shutdown(ctx)
		},
	})
}
