// Package observability provides the hook every telemetry-lab package uses to
// report what it did.
//
// # Overview
//
// The engines in this module (tracer, lifecycle, truncation, exporter, sender)
// never talk to a metrics backend directly. Instead they accept an optional
// Observer and call it once per completed operation with an OperationContext.
// Applications decide what to do with those events: count them, log them, or
// ignore them.
//
// # Usage in Packages
//
// Packages keep the observer as an unexported field and guard the call:
//
//	func (e *ExporterClient) observeOperation(operation string, size int64, err error) {
//	    if e.observer != nil {
//	        e.observer.ObserveOperation(observability.OperationContext{
//	            Component: "exporter",
//	            Operation: operation,
//	            Size:      size,
//	            Error:     err,
//	        })
//	    }
//	}
//
// # Usage in Applications
//
// The metrics package ships a Prometheus-backed implementation:
//
//	m := metrics.NewMetrics(metrics.Config{ServiceName: "checkout"})
//	obs := metrics.NewObserver(m)
//
// Several observers can be combined with Multi, and plain functions can be
// adapted with ObserverFunc:
//
//	obs := observability.Multi(
//	    metrics.NewObserver(m),
//	    observability.ObserverFunc(func(op observability.OperationContext) {
//	        if op.Error != nil {
//	            log.Warn("telemetry operation failed", op.Error, nil)
//	        }
//	    }),
//	)
//
// # Components and Operations
//
//	tracer:     trace.end, trace.trash, span.drop, event.drop
//	lifecycle:  protocol.violation, exit
//	truncation: trim
//	exporter:   export.trace, export.report
//	sender:     send
//
// # Thread Safety
//
// Observer implementations may be shared between several tracers running on
// different goroutines and must be safe for concurrent use.
package observability
