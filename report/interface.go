package report

import (
	"time"
)

// Exception is one error of a cause chain.
type Exception struct {
	Class   string
	Message string
}

// Report is an error report ready for truncation and export.
type Report struct {
	Exception

	SeenAt     time.Time
	Attributes map[string]any
	Context    map[string]any

	// Previous holds the causes of the error, most recent first and the
	// root cause last.
	Previous []Exception

	// TraceID and SpanID are set when the error happened inside a sampled
	// trace.
	TraceID string
	SpanID  string
}

// Builder turns errors into reports. It is implemented by *BuilderClient.
type Builder interface {
	FromError(err error, opts ...Option) Report
}
