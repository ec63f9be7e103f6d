package exporter

import (
	"go.uber.org/fx"

	"github.com/aalemi-dev/telemetry-lab/logger"
	"github.com/aalemi-dev/telemetry-lab/observability"
	"github.com/aalemi-dev/telemetry-lab/sender"
	"github.com/aalemi-dev/telemetry-lab/truncation"
	"github.com/aalemi-dev/telemetry-lab/tracer"
)

// FXModule provides an *ExporterClient as Exporter and as tracer.Exporter,
// so that tracer.FXModule picks it up.
//
// Dependencies: exporter.Config, truncation.Trimmer, sender.Sender and
// logger.Logger.
var FXModule = fx.Module("exporter",
	fx.Provide(
		newFXExporter,
		fx.Annotate(
			func(e *ExporterClient) Exporter { return e },
			fx.As(new(Exporter)),
		),
		fx.Annotate(
			func(e *ExporterClient) tracer.Exporter { return e },
			fx.As(new(tracer.Exporter)),
		),
	),
)

// Params are the dependencies of FXModule.
type Params struct {
	fx.In

	Config   Config
	Trimmer  truncation.Trimmer
	Sender   sender.Sender
	Logger   logger.Logger
	Observer observability.Observer `optional:"true"`
}

func newFXExporter(p Params) *ExporterClient {
	return NewExporter(p.Config, p.Trimmer, p.Sender, WithLogger(p.Logger), WithObserver(p.Observer))
}
