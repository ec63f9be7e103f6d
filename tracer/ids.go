package tracer

import (
	"crypto/rand"
	"encoding/binary"
	"time"

	"go.opentelemetry.io/otel/trace"
)

// IDGenerator creates trace and span ids. Both must be non-zero.
type IDGenerator interface {
	NewTraceID() trace.TraceID
	NewSpanID() trace.SpanID
}

type randomIDGenerator struct{}

// NewRandomIDGenerator returns the default generator backed by crypto/rand.
// If the system source fails it falls back to the wall clock so that ids
// stay non-zero.
func NewRandomIDGenerator() IDGenerator {
	return randomIDGenerator{}
}

func (randomIDGenerator) NewTraceID() trace.TraceID {
	var id trace.TraceID
	for !id.IsValid() {
		if _, err := rand.Read(id[:]); err != nil {
			binary.BigEndian.PutUint64(id[8:], uint64(time.Now().UnixNano()))
		}
	}
	return id
}

func (randomIDGenerator) NewSpanID() trace.SpanID {
	var id trace.SpanID
	for !id.IsValid() {
		if _, err := rand.Read(id[:]); err != nil {
			binary.BigEndian.PutUint64(id[:], uint64(time.Now().UnixNano()))
		}
	}
	return id
}
