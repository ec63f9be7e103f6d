package truncation

import (
	"github.com/aalemi-dev/telemetry-lab/logger"
	"github.com/aalemi-dev/telemetry-lab/observability"
)

// TrimmerClient applies an ordered list of strategies until a payload fits.
// It holds no per-payload state and is safe for concurrent use.
type TrimmerClient struct {
	cfg        Config
	strategies []Strategy
	logger     logger.Logger
	observer   observability.Observer
}

// Option configures a TrimmerClient.
type Option func(*TrimmerClient)

// WithStrategies replaces the default strategies. They run in the given order.
func WithStrategies(strategies ...Strategy) Option {
	return func(t *TrimmerClient) {
		t.strategies = strategies
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(log logger.Logger) Option {
	return func(t *TrimmerClient) {
		if log != nil {
			t.logger = log
		}
	}
}

// WithObserver sets the observer notified after every trim.
func WithObserver(observer observability.Observer) Option {
	return func(t *TrimmerClient) {
		t.observer = observer
	}
}

// NewTrimmer creates a TrimmerClient with the default strategies, cheapest
// first: long strings, attribute collections, context items, then the
// previous-exception chain.
//
// Example:
//
//	trimmer := truncation.NewTrimmer(truncation.Config{MaxBytes: 64 << 10})
//	payload = trimmer.Fit(report.Payload())
func NewTrimmer(cfg Config, opts ...Option) *TrimmerClient {
	cfg = cfg.withDefaults()
	t := &TrimmerClient{
		cfg: cfg,
		strategies: []Strategy{
			TrimStrings(DefaultStringThresholds...),
			TrimAttributes(cfg.AlwaysKeepKeys, DefaultCollectionThresholds...),
			TrimContextItems(cfg.AlwaysKeepKeys, DefaultCollectionThresholds...),
			TrimPreviousExceptions(),
		},
		logger: logger.NewNop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// MaxBytes returns the budget used by Fit.
func (t *TrimmerClient) MaxBytes() int {
	return t.cfg.MaxBytes
}
