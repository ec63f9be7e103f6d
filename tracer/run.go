package tracer

// Run executes fn inside a span named name.
//
// If fn returns an error the span gets StatusError with the error's message
// and the error is returned unchanged. If fn panics the span gets
// StatusError with the panic value, is ended, and the panic continues.
// The span is ended in every case.
//
// Example:
//
//	err := tr.Run("charge card", func() error {
//	    return gateway.Charge(ctx, order)
//	}, tracer.WithAttributes(map[string]any{"order.id": order.ID}))
func (t *TracerClient) Run(name string, fn func() error, opts ...SpanOption) error {
	_, err := RunValue(t, name, func() (struct{}, error) {
		return struct{}{}, fn()
	}, opts...)
	return err
}

// RunValue is Run for callbacks returning a value.
func RunValue[T any](tr Tracer, name string, fn func() (T, error), opts ...SpanOption) (T, error) {
	span := tr.StartSpan(name, opts...)

	ended := false
	defer func() {
		if ended {
			return
		}
		if r := recover(); r != nil {
			span.SetStatus(StatusError, panicMessage(r))
			tr.EndSpan(span)
			panic(r)
		}
	}()

	value, err := fn()
	if err != nil {
		span.RecordError(err)
	}
	tr.EndSpan(span)
	ended = true

	return value, err
}
