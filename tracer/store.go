package tracer

// traceSpans holds the spans of one trace in creation order.
type traceSpans struct {
	order   []*Span
	dropped int
}

// spanStore maps trace ids to their spans.
type spanStore struct {
	traces map[string]*traceSpans
}

func newSpanStore() *spanStore {
	return &spanStore{traces: make(map[string]*traceSpans)}
}

func (s *spanStore) trace(traceID string) *traceSpans {
	t, ok := s.traces[traceID]
	if !ok {
		t = &traceSpans{}
		s.traces[traceID] = t
	}
	return t
}

func (s *spanStore) add(span *Span) {
	t := s.trace(span.TraceID)
	t.order = append(t.order, span)
}

func (s *spanStore) len(traceID string) int {
	if t, ok := s.traces[traceID]; ok {
		return len(t.order)
	}
	return 0
}

// spans returns a copy of the trace's spans in creation order.
func (s *spanStore) spans(traceID string) []*Span {
	t, ok := s.traces[traceID]
	if !ok {
		return nil
	}
	return append([]*Span(nil), t.order...)
}

func (s *spanStore) dropped(traceID string) int {
	if t, ok := s.traces[traceID]; ok {
		return t.dropped
	}
	return 0
}

// evict removes the trace and returns what it held.
func (s *spanStore) evict(traceID string) ([]*Span, int) {
	t, ok := s.traces[traceID]
	if !ok {
		return nil, 0
	}
	delete(s.traces, traceID)
	return t.order, t.dropped
}
