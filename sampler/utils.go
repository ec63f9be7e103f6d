package sampler

import (
	"encoding/binary"
	"encoding/hex"
	"math"
	"math/rand/v2"
)

type constSampler bool

func (c constSampler) Sample(Context) bool { return bool(c) }

// Always keeps every trace.
func Always() Sampler { return constSampler(true) }

// Never drops every trace.
func Never() Sampler { return constSampler(false) }

type rateSampler struct {
	rate float64
	// bound is rate scaled to the uint64 range; a trace is kept when the
	// first 8 bytes of its id are below it.
	bound uint64
}

// Rate keeps roughly rate of all traces. The decision is derived from the
// trace id, so every service seeing the same trace id decides the same way.
// Trace ids that are not hex fall back to a random draw.
// Rates outside [0, 1] are clamped.
func Rate(rate float64) Sampler {
	switch {
	case rate <= 0 || math.IsNaN(rate):
		return Never()
	case rate >= 1:
		return Always()
	}

	scaled := rate * math.Exp2(64)
	if scaled >= math.Exp2(64) {
		return Always()
	}
	return &rateSampler{rate: rate, bound: uint64(scaled)}
}

func (r *rateSampler) Sample(ctx Context) bool {
	if len(ctx.TraceID) < 16 {
		return rand.Float64() < r.rate
	}
	raw, err := hex.DecodeString(ctx.TraceID[:16])
	if err != nil {
		return rand.Float64() < r.rate
	}
	return binary.BigEndian.Uint64(raw) < r.bound
}
