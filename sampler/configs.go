package sampler

// Strategy names accepted in Config.Strategy.
const (
	StrategyAlways = "always"
	StrategyNever  = "never"
	StrategyRate   = "rate"
)

// DefaultRate is the fraction of traces kept when Config.Strategy is empty.
const DefaultRate = 0.1

// Config selects the sampling strategy.
type Config struct {
	// Strategy is one of "always", "never" or "rate". An empty strategy
	// means "rate" with DefaultRate unless Rate is set.
	Strategy string `yaml:"strategy" envconfig:"SAMPLER_STRATEGY"`

	// Rate is the fraction of traces kept by the "rate" strategy, in [0, 1].
	Rate float64 `yaml:"rate" envconfig:"SAMPLER_RATE"`
}
