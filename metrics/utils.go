package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// CreateCounter creates a counter and registers it with the service label.
// Registering the same name twice panics, as with prometheus.MustRegister.
func (m *Metrics) CreateCounter(name, help string, labels []string) Counter {
	vec := prometheus.NewCounterVec(prometheus.CounterOpts{Name: name, Help: help}, labels)
	m.registerer.MustRegister(vec)
	return &counterVec{vec: vec}
}

// CreateHistogram creates a histogram and registers it with the service label.
func (m *Metrics) CreateHistogram(name, help string, labels []string, buckets []float64) Histogram {
	vec := prometheus.NewHistogramVec(prometheus.HistogramOpts{Name: name, Help: help, Buckets: buckets}, labels)
	m.registerer.MustRegister(vec)
	return &histogramVec{vec: vec}
}

// CreateGauge creates a gauge and registers it with the service label.
func (m *Metrics) CreateGauge(name, help string, labels []string) Gauge {
	vec := prometheus.NewGaugeVec(prometheus.GaugeOpts{Name: name, Help: help}, labels)
	m.registerer.MustRegister(vec)
	return &gaugeVec{vec: vec}
}
