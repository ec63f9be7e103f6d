package truncation

// DefaultMaxBytes is the payload budget used by Fit when Config.MaxBytes is zero.
const DefaultMaxBytes = 52428

// DefaultAlwaysKeepKeys are never shortened by the collection strategies.
var DefaultAlwaysKeepKeys = []string{"http.request.method", "http.method"}

// Default thresholds of the built-in strategies, most permissive first.
var (
	DefaultStringThresholds     = []int{1024, 512, 256}
	DefaultCollectionThresholds = []int{100, 50, 25, 10}
)

// Config defines the budget and the keys protected from trimming.
type Config struct {
	// MaxBytes is the serialized size Fit trims payloads to.
	MaxBytes int `yaml:"max_bytes" envconfig:"TRUNCATION_MAX_BYTES"`

	// AlwaysKeepKeys lists attribute and context keys whose values are
	// never sliced. nil means DefaultAlwaysKeepKeys; an empty non-nil slice
	// protects nothing.
	AlwaysKeepKeys []string `yaml:"always_keep_keys" envconfig:"TRUNCATION_ALWAYS_KEEP_KEYS"`
}

func (c Config) withDefaults() Config {
	if c.MaxBytes <= 0 {
		c.MaxBytes = DefaultMaxBytes
	}
	if c.AlwaysKeepKeys == nil {
		c.AlwaysKeepKeys = DefaultAlwaysKeepKeys
	}
	return c
}
