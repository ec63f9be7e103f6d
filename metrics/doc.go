// Package metrics exposes Prometheus metrics for the telemetry engine.
//
// NewMetrics creates a registry whose metrics all carry a constant "service"
// label and, unless Config.Address is an empty string, an HTTP server that
// serves it on /metrics. CreateCounter, CreateHistogram and CreateGauge hide
// the Prometheus vector types behind small interfaces.
//
// NewObserver adapts a MetricsCollector to observability.Observer so that
// tracer, lifecycle, truncation, exporter and sender operations are counted
// without those packages importing Prometheus:
//
//	m := metrics.NewMetrics(metrics.Config{ServiceName: "checkout"})
//	eng, err := engine.New(cfg, engine.WithObserver(metrics.NewObserver(m)))
//
// Exposed series:
//
//	telemetry_operations_total{component,operation,status}
//	telemetry_operation_bytes{component,operation}
//	telemetry_operation_duration_seconds{component,operation}
//	telemetry_dropped_total{component,kind}
package metrics
