// Package logger provides the structured logger used across the telemetry
// engine. It wraps Uber's Zap with a small map-based field API and, when
// tracing is enabled, stamps entries with the trace and span ids of the
// span context carried in a context.Context.
package logger
