package tracer

import (
	"github.com/aalemi-dev/telemetry-lab/observability"
)

func (t *TracerClient) observeOperation(operation, traceID string, size int64, err error, metadata map[string]interface{}) {
	if t.observer == nil {
		return
	}
	t.observer.ObserveOperation(observability.OperationContext{
		Component: "tracer",
		Operation: operation,
		Resource:  traceID,
		Size:      size,
		Error:     err,
		Metadata:  metadata,
	})
}
