package config

import (
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

// EnvPrefix prefixes every environment override, e.g.
// TELEMETRY_SAMPLER_RATE or TELEMETRY_SENDER_ENDPOINT.
const EnvPrefix = "TELEMETRY"

// Config is the complete configuration of the telemetry engine. Each
// section is the Config of the package of the same name.
type Config struct {
	// ServiceName fills the service name of the logger, metrics and
	// exporter sections that leave it empty.
	ServiceName string `yaml:"service_name" envconfig:"SERVICE_NAME"`

	Logger     logger.Config     `yaml:"logger" ignored:"true"`
	Metrics    metrics.Config    `yaml:"metrics" ignored:"true"`
	Sampler    sampler.Config    `yaml:"sampler" ignored:"true"`
	Tracer     tracer.Config     `yaml:"tracer" ignored:"true"`
	Lifecycle  lifecycle.Config  `yaml:"lifecycle" ignored:"true"`
	Truncation truncation.Config `yaml:"truncation" ignored:"true"`
	Report     report.Config     `yaml:"report" ignored:"true"`
	Exporter   exporter.Config   `yaml:"exporter" ignored:"true"`
	Sender     sender.Config     `yaml:"sender" ignored:"true"`
}

// sections returns pointers to every section, for environment overrides.
func (c *Config) sections() []any {
	return []any{
		c,
		&c.Logger,
		&c.Metrics,
		&c.Sampler,
		&c.Tracer,
		&c.Lifecycle,
		&c.Truncation,
		&c.Report,
		&c.Exporter,
		&c.Sender,
	}
}

// ApplyServiceName copies ServiceName into the logger, metrics and exporter
// sections that leave it empty. Load calls it after the environment is read.
func (c *Config) ApplyServiceName() {
	if c.ServiceName == "" {
		return
	}
	for _, name := range []*string{&c.Logger.ServiceName, &c.Metrics.ServiceName, &c.Exporter.ServiceName} {
		if *name == "" {
			*name = c.ServiceName
		}
	}
}
