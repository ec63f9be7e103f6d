// Package config loads the configuration of the whole telemetry engine.
//
// Values are layered: Default, then an optional YAML file, then environment
// variables prefixed with TELEMETRY (TELEMETRY_SAMPLER_RATE,
// TELEMETRY_SENDER_ENDPOINT, ...). Load validates the result and reports
// every invalid field at once in a ValidationError.
//
// FXModule hands each section to the module that consumes it.
package config
