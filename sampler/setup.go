package sampler

import (
	"fmt"
)

// New returns the Sampler described by cfg.
func New(cfg Config) (Sampler, error) {
	switch cfg.Strategy {
	case StrategyAlways:
		return Always(), nil
	case StrategyNever:
		return Never(), nil
	case "", StrategyRate:
		rate := cfg.Rate
		if cfg.Strategy == "" && rate == 0 {
			rate = DefaultRate
		}
		if rate < 0 || rate > 1 {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRate, rate)
		}
		return Rate(rate), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, cfg.Strategy)
	}
}
