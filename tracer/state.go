package tracer

// SamplingState is the recording state of a TracerClient. Exactly one state
// is active at a time.
type SamplingState int

const (
	// SamplingWaiting means no decision has been made; no trace is active.
	SamplingWaiting SamplingState = iota
	// Sampling means the current trace is being recorded.
	Sampling
	// SamplingOff means the current trace was decided against. Ids are
	// tracked but nothing is stored.
	SamplingOff
	// SamplingDisabled means tracing is turned off by configuration.
	SamplingDisabled
)

func (s SamplingState) String() string {
	switch s {
	case SamplingWaiting:
		return "waiting"
	case Sampling:
		return "sampling"
	case SamplingOff:
		return "off"
	case SamplingDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}
