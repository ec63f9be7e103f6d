package exporter

import (
	"github.com/aalemi-dev/telemetry-lab/logger"
	"github.com/aalemi-dev/telemetry-lab/observability"
	"github.com/aalemi-dev/telemetry-lab/sender"
	"github.com/aalemi-dev/telemetry-lab/truncation"
)

// ExporterClient builds OTLP-shaped trace payloads and report payloads.
type ExporterClient struct {
	cfg      Config
	resource []any
	trimmer  truncation.Trimmer
	sender   sender.Sender
	logger   logger.Logger
	observer observability.Observer
}

// Option configures an ExporterClient.
type Option func(*ExporterClient)

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(log logger.Logger) Option {
	return func(e *ExporterClient) {
		if log != nil {
			e.logger = log
		}
	}
}

// WithObserver sets the observer notified after every export.
func WithObserver(observer observability.Observer) Option {
	return func(e *ExporterClient) {
		e.observer = observer
	}
}

// NewExporter creates an ExporterClient. A nil trimmer means
// truncation.NewTrimmer with its defaults.
//
// Example:
//
//	exp := exporter.NewExporter(exporter.Config{ServiceName: "checkout"}, trimmer, httpSender)
//	tr, err := tracer.NewClient(tracer.Config{}, smp, exp)
func NewExporter(cfg Config, trimmer truncation.Trimmer, s sender.Sender, opts ...Option) *ExporterClient {
	cfg = cfg.withDefaults()
	if trimmer == nil {
		trimmer = truncation.NewTrimmer(truncation.Config{})
	}

	e := &ExporterClient{
		cfg:      cfg,
		resource: resourceAttributes(cfg),
		trimmer:  trimmer,
		sender:   s,
		logger:   logger.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
