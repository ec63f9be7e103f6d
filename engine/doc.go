// Package engine is the composition root of the telemetry engine.
//
// It wires logger, metrics, sampler, truncation, sender, exporter, tracer,
// report builder and lifecycle from one config.Config. New does it by plain
// constructor injection; FXModule does it through fx, with each package's
// own FXModule.
//
// All engine operations are reported to a single observer: the metrics
// observer, plus any added with WithObserver.
package engine
