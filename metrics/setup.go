package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a Prometheus registry and, unless disabled, the HTTP server
// exposing it on /metrics.
type Metrics struct {
	// Server serves the registry. It is nil when Config.Address is empty.
	Server *http.Server

	// Registry holds every metric created through this instance.
	Registry *prometheus.Registry

	// registerer wraps Registry with the constant service label.
	registerer prometheus.Registerer
}

// NewMetrics creates the registry and the server described by cfg.
//
// Example:
//
//	m := metrics.NewMetrics(metrics.Config{ServiceName: "checkout"})
//	obs := metrics.NewObserver(m)
func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()
	registerer := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	if cfg.RuntimeCollectors {
		registerer.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	m := &Metrics{
		Registry:   registry,
		registerer: registerer,
	}

	addr := DefaultAddress
	if cfg.Address != nil {
		addr = *cfg.Address
	}
	if addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		m.Server = &http.Server{
			Addr:    addr,
			Handler: mux,
		}
	}

	return m
}
