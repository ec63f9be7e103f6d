package exporter

import (
	"context"

	"github.com/aalemi-dev/telemetry-lab/report"
	"github.com/aalemi-dev/telemetry-lab/tracer"
)

// Exporter turns finished traces and error reports into payloads, fits them
// to the byte budget and hands them to a sender. It is implemented by
// *ExporterClient and satisfies tracer.Exporter.
type Exporter interface {
	tracer.Exporter

	ExportReport(ctx context.Context, r report.Report) error
}
