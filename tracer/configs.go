package tracer

// Default limits applied when the corresponding Config field is zero.
const (
	DefaultMaxSpans                  = 500
	DefaultMaxAttributesPerSpan      = 128
	DefaultMaxSpanEventsPerSpan      = 128
	DefaultMaxAttributesPerSpanEvent = 128
)

// Config defines the limits of a TracerClient.
//
// Zero values use the defaults above; negative values are rejected by
// NewClient with ErrInvalidLimit.
type Config struct {
	// MaxSpans caps the number of spans stored per trace. Spans started
	// beyond the cap are not recorded and only counted.
	MaxSpans int `yaml:"max_spans" envconfig:"TRACER_MAX_SPANS"`

	// MaxAttributesPerSpan caps the number of distinct attribute keys per span.
	MaxAttributesPerSpan int `yaml:"max_attributes_per_span" envconfig:"TRACER_MAX_ATTRIBUTES_PER_SPAN"`

	// MaxSpanEventsPerSpan caps the number of events attached to one span.
	MaxSpanEventsPerSpan int `yaml:"max_span_events_per_span" envconfig:"TRACER_MAX_SPAN_EVENTS_PER_SPAN"`

	// MaxAttributesPerSpanEvent caps the number of attribute keys per event.
	MaxAttributesPerSpanEvent int `yaml:"max_attributes_per_span_event" envconfig:"TRACER_MAX_ATTRIBUTES_PER_SPAN_EVENT"`

	// Disabled turns tracing off entirely: the sampler is never consulted
	// and every trace reports SamplingDisabled.
	Disabled bool `yaml:"disabled" envconfig:"TRACER_DISABLED"`
}

func (c Config) withDefaults() (Config, error) {
	limits := []*int{&c.MaxSpans, &c.MaxAttributesPerSpan, &c.MaxSpanEventsPerSpan, &c.MaxAttributesPerSpanEvent}
	defaults := []int{DefaultMaxSpans, DefaultMaxAttributesPerSpan, DefaultMaxSpanEventsPerSpan, DefaultMaxAttributesPerSpanEvent}

	for i, limit := range limits {
		switch {
		case *limit < 0:
			return c, ErrInvalidLimit
		case *limit == 0:
			*limit = defaults[i]
		}
	}
	return c, nil
}
