package exporter

// SDK identity reported in the telemetry.sdk.* resource attributes.
const (
	SDKName    = "telemetry-lab"
	SDKVersion = "0.3.0"
)

// Defaults applied by NewExporter to zero Config fields.
const (
	DefaultServiceName = "unknown_service"
	DefaultTracesPath  = "/v1/traces"
	DefaultReportsPath = "/v1/reports"
)

// Config describes the resource that produced the telemetry and where each
// kind of payload is sent.
type Config struct {
	ServiceName    string `yaml:"service_name" envconfig:"EXPORTER_SERVICE_NAME"`
	ServiceVersion string `yaml:"service_version" envconfig:"EXPORTER_SERVICE_VERSION"`
	Environment    string `yaml:"environment" envconfig:"EXPORTER_ENVIRONMENT"`

	TracesPath  string `yaml:"traces_path" envconfig:"EXPORTER_TRACES_PATH"`
	ReportsPath string `yaml:"reports_path" envconfig:"EXPORTER_REPORTS_PATH"`
}

func (c Config) withDefaults() Config {
	if c.ServiceName == "" {
		c.ServiceName = DefaultServiceName
	}
	if c.TracesPath == "" {
		c.TracesPath = DefaultTracesPath
	}
	if c.ReportsPath == "" {
		c.ReportsPath = DefaultReportsPath
	}
	return c
}
