package sampler

// Context is the request-scoped input of a sampling decision.
type Context struct {
	// TraceID is the id of the trace being decided, 32 lowercase hex chars.
	TraceID string

	// Attributes carries whatever the caller passed as sampler context,
	// for example the route or the queue name.
	Attributes map[string]any
}

// Sampler decides whether a trace is recorded.
type Sampler interface {
	Sample(ctx Context) bool
}

// Func adapts a function to Sampler.
type Func func(ctx Context) bool

// Sample calls f.
func (f Func) Sample(ctx Context) bool {
	return f(ctx)
}
