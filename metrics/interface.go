package metrics

// MetricsCollector creates metrics registered on the instance registry.
// It is implemented by *Metrics and hides the Prometheus types.
type MetricsCollector interface {
	// CreateCounter creates and registers a counter.
	//
	// Example:
	//   c := m.CreateCounter("reports_total", "Reports built", []string{"class"})
	//   c.WithLabelValues("*errors.errorString").Inc()
	CreateCounter(name, help string, labels []string) Counter

	// CreateHistogram creates and registers a histogram with the given buckets.
	// nil buckets use the Prometheus defaults.
	CreateHistogram(name, help string, labels []string, buckets []float64) Histogram

	// CreateGauge creates and registers a gauge.
	CreateGauge(name, help string, labels []string) Gauge
}
