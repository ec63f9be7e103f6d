package observability

import "time"

// Observer receives one call per completed engine operation.
//
// The interface is optional: every package works without an observer.
type Observer interface {
	// ObserveOperation is called when an operation completes.
	ObserveOperation(ctx OperationContext)
}

// OperationContext describes a completed operation.
type OperationContext struct {
	// Component identifies which package performed the operation.
	// Examples: "tracer", "lifecycle", "truncation", "exporter", "sender"
	Component string

	// Operation describes what was done.
	// Examples: "trace.end", "trace.trash", "span.drop", "trim", "send"
	Operation string

	// Resource identifies the primary object of the operation, such as a
	// trace id or a request path.
	Resource string

	// SubResource adds optional detail, such as the span name that was
	// dropped or the lifecycle stage a violation happened in.
	SubResource string

	// Duration is how long the operation took, when measured.
	Duration time.Duration

	// Error is the error the operation ended with; nil on success.
	Error error

	// Size is the amount of data involved: spans for tracer operations,
	// payload bytes for trim, export and send.
	Size int64

	// Metadata holds operation specific extras.
	Metadata map[string]interface{}
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(ctx OperationContext)

// ObserveOperation calls f(ctx).
func (f ObserverFunc) ObserveOperation(ctx OperationContext) {
	f(ctx)
}
