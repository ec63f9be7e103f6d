package engine

import (
	"context"

	"github.com/aalemi-dev/telemetry-lab/report"
)

// ReportError builds a report for err, linked to the current span, and
// exports it. A nil err is ignored.
func (e *Engine) ReportError(ctx context.Context, err error, opts ...report.Option) error {
	if err == nil {
		return nil
	}
	r := e.Reports.FromError(err, opts...)
	e.Logger.DebugWithContext(ctx, "reporting error", err, map[string]interface{}{
		"exception_class": r.Class,
		"previous":        len(r.Previous),
	})
	return e.Exporter.ExportReport(ctx, r)
}
