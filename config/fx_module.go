package config

import (
	"go.uber.org/fx"

	"github.com/aalemi-dev/telemetry-lab/exporter"
	"github.com/aalemi-dev/telemetry-lab/lifecycle"
	"github.com/aalemi-dev/telemetry-lab/logger"
	"github.com/aalemi-dev/telemetry-lab/metrics"
	"github.com/aalemi-dev/telemetry-lab/report"
	"github.com/aalemi-dev/telemetry-lab/sampler"
	"github.com/aalemi-dev/telemetry-lab/sender"
	"github.com/aalemi-dev/telemetry-lab/tracer"
	"github.com/aalemi-dev/telemetry-lab/truncation"
)

// FXModule splits a Config supplied by the host into the per-package
// configs the other modules depend on.
//
// Usage:
//
//	cfg, err := config.Load(os.Getenv("TELEMETRY_CONFIG"))
//	app := fx.New(fx.Supply(cfg), config.FXModule, ...)
var FXModule = fx.Module("config",
	fx.Provide(provideSections),
)

// Sections are the per-package configs provided by FXModule.
type Sections struct {
	fx.Out

	Logger     logger.Config
	Metrics    metrics.Config
	Sampler    sampler.Config
	Tracer     tracer.Config
	Lifecycle  lifecycle.Config
	Truncation truncation.Config
	Report     report.Config
	Exporter   exporter.Config
	Sender     sender.Config
}

func provideSections(c Config) Sections {
	c.ApplyServiceName()
	return Sections{
		Logger:     c.Logger,
		Metrics:    c.Metrics,
		Sampler:    c.Sampler,
		Tracer:     c.Tracer,
		Lifecycle:  c.Lifecycle,
		Truncation: c.Truncation,
		Report:     c.Report,
		Exporter:   c.Exporter,
		Sender:     c.Sender,
	}
}
