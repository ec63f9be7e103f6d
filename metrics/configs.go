package metrics

// DefaultAddress is where the metrics server listens if Config.Address is nil.
const DefaultAddress = ":9464"

// Config defines the configuration of the Prometheus registry and the
// optional /metrics server.
type Config struct {
	// Address is the listen address of the /metrics server.
	//
	//   - nil uses DefaultAddress
	//   - Ptr("") disables the server; metrics are still collected in
	//     Registry and can be served by the host
	Address *string `yaml:"address" envconfig:"METRICS_ADDRESS"`

	// ServiceName is attached as a constant "service" label to every metric.
	ServiceName string `yaml:"service_name" envconfig:"METRICS_SERVICE_NAME"`

	// RuntimeCollectors registers the Go runtime and process collectors on
	// the same registry.
	RuntimeCollectors bool `yaml:"runtime_collectors" envconfig:"METRICS_RUNTIME_COLLECTORS"`
}

// Ptr returns a pointer to the given string value.
//
// Example:
//
//	cfg := metrics.Config{Address: metrics.Ptr(""), ServiceName: "checkout"}
func Ptr(s string) *string {
	return &s
}
