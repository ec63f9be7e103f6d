package report

import (
	"github.com/zoobzio/clockz"

	"github.com/aalemi-dev/telemetry-lab/tracer"
)

// BuilderClient builds reports from errors.
type BuilderClient struct {
	cfg    Config
	clock  clockz.Clock
	tracer tracer.Tracer
}

// NewBuilder creates a BuilderClient.
//
// Example:
//
//	b := report.NewBuilder(report.Config{}, report.WithTracer(tr))
//	r := b.FromError(err, report.WithContext(map[string]any{"job": "sync"}))
func NewBuilder(cfg Config, opts ...BuilderOption) *BuilderClient {
	b := &BuilderClient{
		cfg:   cfg.withDefaults(),
		clock: clockz.RealClock,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}
