package sender

import "time"

// Defaults applied by NewHTTPSender to zero Config fields.
const (
	DefaultTimeout      = 10 * time.Second
	DefaultRetryMax     = 3
	DefaultRetryWaitMin = 500 * time.Millisecond
	DefaultRetryWaitMax = 5 * time.Second
	DefaultAPIKeyHeader = "X-API-Key"
)

// Config defines where and how payloads are delivered.
type Config struct {
	// Endpoint is the base URL payload paths are appended to,
	// e.g. "https://collector.example.com".
	Endpoint string `yaml:"endpoint" envconfig:"SENDER_ENDPOINT"`

	// APIKey is sent in APIKeyHeader when set.
	APIKey       string `yaml:"api_key" envconfig:"SENDER_API_KEY"`
	APIKeyHeader string `yaml:"api_key_header" envconfig:"SENDER_API_KEY_HEADER"`

	// Timeout bounds a single attempt.
	Timeout time.Duration `yaml:"timeout" envconfig:"SENDER_TIMEOUT"`

	// RetryMax is the number of retries after the first attempt. Negative
	// disables retries.
	RetryMax     int           `yaml:"retry_max" envconfig:"SENDER_RETRY_MAX"`
	RetryWaitMin time.Duration `yaml:"retry_wait_min" envconfig:"SENDER_RETRY_WAIT_MIN"`
	RetryWaitMax time.Duration `yaml:"retry_wait_max" envconfig:"SENDER_RETRY_WAIT_MAX"`

	// Gzip compresses request bodies.
	Gzip bool `yaml:"gzip" envconfig:"SENDER_GZIP"`

	// RateLimit caps requests per second. Zero means unlimited.
	RateLimit float64 `yaml:"rate_limit" envconfig:"SENDER_RATE_LIMIT"`
}

func (c Config) withDefaults() Config {
	if c.APIKeyHeader == "" {
		c.APIKeyHeader = DefaultAPIKeyHeader
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.RetryMax == 0 {
		c.RetryMax = DefaultRetryMax
	} else if c.RetryMax < 0 {
		c.RetryMax = 0
	}
	if c.RetryWaitMin <= 0 {
		c.RetryWaitMin = DefaultRetryWaitMin
	}
	if c.RetryWaitMax <= 0 {
		c.RetryWaitMax = DefaultRetryWaitMax
	}
	return c
}
