package exporter

import (
	"context"
	"fmt"
	"time"

	"github.com/bytedance/sonic"

	"github.com/aalemi-dev/telemetry-lab/observability"
	"github.com/aalemi-dev/telemetry-lab/report"
	"github.com/aalemi-dev/telemetry-lab/tracer"
)

// ExportTrace sends trace to Config.TracesPath. Traces without spans are
// skipped.
func (e *ExporterClient) ExportTrace(ctx context.Context, trace tracer.Trace) error {
	if len(trace.Spans) == 0 {
		return nil
	}
	return e.export(ctx, "export.trace", trace.ID, e.cfg.TracesPath, e.tracePayload(trace), map[string]interface{}{
		"spans":         len(trace.Spans),
		"dropped_spans": trace.DroppedSpans,
	})
}

// ExportReport sends r to Config.ReportsPath along with the resource
// attributes.
func (e *ExporterClient) ExportReport(ctx context.Context, r report.Report) error {
	payload := r.Payload()
	payload["resource"] = map[string]any{"attributes": e.resource}
	return e.export(ctx, "export.report", r.TraceID, e.cfg.ReportsPath, payload, map[string]interface{}{
		"exception_class": r.Class,
		"previous":        len(r.Previous),
	})
}

func (e *ExporterClient) export(ctx context.Context, operation, resource, path string, payload map[string]any, metadata map[string]interface{}) error {
	start := time.Now()
	body, err := sonic.ConfigStd.Marshal(e.trimmer.Fit(payload))
	if err != nil {
		err = fmt.Errorf("exporter: encode payload: %w", err)
	} else if e.sender != nil {
		err = e.sender.Send(ctx, path, body)
	}

	if err != nil {
		e.logger.WarnWithContext(ctx, "export failed", err, map[string]interface{}{
			"operation": operation,
			"path":      path,
			"bytes":     len(body),
		})
	}
	if e.observer != nil {
		e.observer.ObserveOperation(observability.OperationContext{
			Component: "exporter",
			Operation: operation,
			Resource:  resource,
			Duration:  time.Since(start),
			Error:     err,
			Size:      int64(len(body)),
			Metadata:  metadata,
		})
	}
	return err
}
