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

// Default returns the configuration used when nothing is set. The metrics
// server is disabled; hosts opt in by setting metrics.address.
func Default() Config {
	return Config{
		Logger: logger.Config{
			Level:      logger.Info,
			CallerSkip: 1,
		},
		Metrics: metrics.Config{
			Address: metrics.Ptr(""),
		},
		Sampler: sampler.Config{
			Strategy: sampler.StrategyRate,
			Rate:     sampler.DefaultRate,
		},
		Tracer: tracer.Config{
			MaxSpans:                  tracer.DefaultMaxSpans,
			MaxAttributesPerSpan:      tracer.DefaultMaxAttributesPerSpan,
			MaxSpanEventsPerSpan:      tracer.DefaultMaxSpanEventsPerSpan,
			MaxAttributesPerSpanEvent: tracer.DefaultMaxAttributesPerSpanEvent,
		},
		Lifecycle: lifecycle.Config{
			AppName:     lifecycle.DefaultAppName,
			SubtaskName: lifecycle.DefaultSubtaskName,
		},
		Truncation: truncation.Config{
			MaxBytes:       truncation.DefaultMaxBytes,
			AlwaysKeepKeys: append([]string(nil), truncation.DefaultAlwaysKeepKeys...),
		},
		Report: report.Config{
			MaxPrevious: report.DefaultMaxPrevious,
		},
		Exporter: exporter.Config{
			TracesPath:  exporter.DefaultTracesPath,
			ReportsPath: exporter.DefaultReportsPath,
		},
		Sender: sender.Config{
			APIKeyHeader: sender.DefaultAPIKeyHeader,
			Timeout:      sender.DefaultTimeout,
			RetryMax:     sender.DefaultRetryMax,
			RetryWaitMin: sender.DefaultRetryWaitMin,
			RetryWaitMax: sender.DefaultRetryWaitMax,
			Gzip:         true,
		},
	}
}
