package metrics

import (
	"github.com/aalemi-dev/telemetry-lab/observability"
)

// droppedKinds maps the operations that lose telemetry to the "kind" label
// of telemetry_dropped_total.
var droppedKinds = map[string]string{
	"span.drop":   "span",
	"event.drop":  "event",
	"trace.trash": "trace",
	"trim":        "payload_bytes",
}

// byteOperations report a payload size in bytes in OperationContext.Size.
var byteOperations = map[string]bool{
	"export.trace":  true,
	"export.report": true,
	"send":          true,
	"trim":          true,
}

// engineObserver turns observability operations into Prometheus metrics.
type engineObserver struct {
	operations Counter
	bytes      Histogram
	duration   Histogram
	dropped    Counter
}

// NewObserver registers the engine metrics on m and returns an Observer that
// updates them:
//
//   - telemetry_operations_total{component,operation,status}
//   - telemetry_operation_bytes{component,operation}
//   - telemetry_operation_duration_seconds{component,operation}
//   - telemetry_dropped_total{component,kind}
//
// Call it once per MetricsCollector; a second call panics on duplicate
// registration.
func NewObserver(m MetricsCollector) observability.Observer {
	return &engineObserver{
		operations: m.CreateCounter(
			"telemetry_operations_total",
			"Telemetry engine operations by outcome.",
			[]string{"component", "operation", "status"},
		),
		bytes: m.CreateHistogram(
			"telemetry_operation_bytes",
			"Payload size handled by telemetry engine operations.",
			[]string{"component", "operation"},
			[]float64{256, 1024, 4096, 16384, 52428, 262144, 1048576},
		),
		duration: m.CreateHistogram(
			"telemetry_operation_duration_seconds",
			"Duration of telemetry engine operations.",
			[]string{"component", "operation"},
			nil,
		),
		dropped: m.CreateCounter(
			"telemetry_dropped_total",
			"Telemetry dropped by caps, trashing or trimming.",
			[]string{"component", "kind"},
		),
	}
}

func (o *engineObserver) ObserveOperation(ctx observability.OperationContext) {
	status := "ok"
	if ctx.Error != nil {
		status = "error"
	}
	o.operations.WithLabelValues(ctx.Component, ctx.Operation, status).Inc()

	if ctx.Size > 0 && byteOperations[ctx.Operation] {
		o.bytes.WithLabelValues(ctx.Component, ctx.Operation).Observe(float64(ctx.Size))
	}
	if ctx.Duration > 0 {
		o.duration.WithLabelValues(ctx.Component, ctx.Operation).Observe(ctx.Duration.Seconds())
	}

	kind, ok := droppedKinds[ctx.Operation]
	if !ok {
		return
	}
	amount := 1.0
	if n, ok := ctx.Metadata["dropped"].(int); ok {
		amount = float64(n)
	}
	if amount > 0 {
		o.dropped.WithLabelValues(ctx.Component, kind).Add(amount)
	}
}
