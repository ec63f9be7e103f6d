// Package report builds error reports.
//
// A report carries the error's dynamic type and message, the time it was
// seen, attributes, free-form context and the chain of causes found by
// unwrapping the error. Multi-errors such as those from errors.Join are
// flattened into the chain depth first. When a tracer is attached, the
// report also records the trace and span that were current.
//
// Report.Payload returns the nested map that the truncation package trims
// and the exporter sends.
package report
