package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/aalemi-dev/telemetry-lab/sampler"
)

// FieldError is a validation failure of one configuration field.
type FieldError struct {
	// Field is the dotted YAML path, e.g. "sampler.rate".
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError collects every FieldError of a configuration.
type ValidationError struct {
	Errors []FieldError
}

func (e ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("configuration validation failed: %s", e.Errors[0].Error())
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "configuration validation failed with %d errors:", len(e.Errors))
	for _, err := range e.Errors {
		sb.WriteString("\n  - ")
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// Validate checks the values the constructors would reject, so that a bad
// file fails at load time. It returns a ValidationError or nil.
func Validate(cfg *Config) error {
	var errs []FieldError
	add := func(field, format string, args ...any) {
		errs = append(errs, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	switch cfg.Sampler.Strategy {
	case "", sampler.StrategyAlways, sampler.StrategyNever, sampler.StrategyRate:
	default:
		add("sampler.strategy", "unknown strategy %q", cfg.Sampler.Strategy)
	}
	if cfg.Sampler.Rate < 0 || cfg.Sampler.Rate > 1 {
		add("sampler.rate", "must be within [0, 1], got %v", cfg.Sampler.Rate)
	}

	limits := map[string]int{
		"tracer.max_spans":                     cfg.Tracer.MaxSpans,
		"tracer.max_attributes_per_span":       cfg.Tracer.MaxAttributesPerSpan,
		"tracer.max_span_events_per_span":      cfg.Tracer.MaxSpanEventsPerSpan,
		"tracer.max_attributes_per_span_event": cfg.Tracer.MaxAttributesPerSpanEvent,
		"truncation.max_bytes":                 cfg.Truncation.MaxBytes,
	}
	for _, field := range sortedFields(limits) {
		if limits[field] < 0 {
			add(field, "must not be negative, got %d", limits[field])
		}
	}

	if cfg.Sender.Endpoint != "" {
		u, err := url.Parse(cfg.Sender.Endpoint)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			add("sender.endpoint", "must be an http or https URL, got %q", cfg.Sender.Endpoint)
		}
	}
	if cfg.Sender.RetryWaitMax > 0 && cfg.Sender.RetryWaitMin > cfg.Sender.RetryWaitMax {
		add("sender.retry_wait_min", "must not exceed retry_wait_max")
	}
	if cfg.Sender.RateLimit < 0 {
		add("sender.rate_limit", "must not be negative, got %v", cfg.Sender.RateLimit)
	}

	if p := cfg.Exporter.TracesPath; p != "" && !strings.HasPrefix(p, "/") {
		add("exporter.traces_path", "must start with '/', got %q", p)
	}
	if p := cfg.Exporter.ReportsPath; p != "" && !strings.HasPrefix(p, "/") {
		add("exporter.reports_path", "must start with '/', got %q", p)
	}

	if len(errs) == 0 {
		return nil
	}
	return ValidationError{Errors: errs}
}
