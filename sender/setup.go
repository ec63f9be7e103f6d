package sender

import (
	"strings"

	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/time/rate"

	"github.com/aalemi-dev/telemetry-lab/logger"
	"github.com/aalemi-dev/telemetry-lab/observability"
)

// HTTPSender posts payloads with retries, optional gzip and an idempotency
// key that stays the same across the retries of one payload. It is safe for
// concurrent use.
type HTTPSender struct {
	cfg      Config
	endpoint string
	client   *retryablehttp.Client
	limiter  *rate.Limiter
	logger   logger.Logger
	observer observability.Observer
}

// Option configures an HTTPSender.
type Option func(*HTTPSender)

// WithLogger sets the logger used for retries and failures.
func WithLogger(log logger.Logger) Option {
	return func(s *HTTPSender) {
		if log != nil {
			s.logger = log
		}
	}
}

// WithObserver sets the observer notified after every Send.
func WithObserver(observer observability.Observer) Option {
	return func(s *HTTPSender) {
		s.observer = observer
	}
}

// New returns an *HTTPSender, or Discard when cfg.Endpoint is empty.
func New(cfg Config, opts ...Option) (Sender, error) {
	if strings.TrimSpace(cfg.Endpoint) == "" {
		return Discard, nil
	}
	s, err := NewHTTPSender(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// NewHTTPSender creates an HTTPSender.
//
// Example:
//
//	s, err := sender.NewHTTPSender(sender.Config{
//	    Endpoint: "https://collector.example.com",
//	    APIKey:   os.Getenv("COLLECTOR_API_KEY"),
//	    Gzip:     true,
//	})
func NewHTTPSender(cfg Config, opts ...Option) (*HTTPSender, error) {
	if strings.TrimSpace(cfg.Endpoint) == "" {
		return nil, ErrEmptyEndpoint
	}
	cfg = cfg.withDefaults()

	s := &HTTPSender{
		cfg:      cfg,
		endpoint: strings.TrimRight(cfg.Endpoint, "/"),
		limiter:  rate.NewLimiter(rate.Inf, 0),
		logger:   logger.NewNop(),
	}
	if cfg.RateLimit > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), max(1, int(cfg.RateLimit)))
	}
	for _, opt := range opts {
		opt(s)
	}

	client := retryablehttp.NewClient()
	client.RetryMax = cfg.RetryMax
	client.RetryWaitMin = cfg.RetryWaitMin
	client.RetryWaitMax = cfg.RetryWaitMax
	client.HTTPClient.Timeout = cfg.Timeout
	client.Logger = leveledLogger{log: s.logger}
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler
	s.client = client

	return s, nil
}

// Close releases idle connections.
func (s *HTTPSender) Close() {
	s.client.HTTPClient.CloseIdleConnections()
}
