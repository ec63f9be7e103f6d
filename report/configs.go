package report

// DefaultMaxPrevious bounds the cause chain when Config.MaxPrevious is zero.
const DefaultMaxPrevious = 32

// Config defines how reports are built.
type Config struct {
	// MaxPrevious is the largest number of causes kept in Report.Previous.
	// Deeper chains are cut at the oldest end.
	MaxPrevious int `yaml:"max_previous" envconfig:"REPORT_MAX_PREVIOUS"`

	// Attributes are copied into every report, under any per-report ones.
	Attributes map[string]any `yaml:"attributes" ignored:"true"`
}

func (c Config) withDefaults() Config {
	if c.MaxPrevious <= 0 {
		c.MaxPrevious = DefaultMaxPrevious
	}
	return c
}
