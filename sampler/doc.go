// Package sampler decides whether a trace is recorded.
//
// Always, Never and Rate cover the common strategies, Func adapts any
// function. New builds one of the built-in strategies from Config so the
// choice can come from YAML or the environment:
//
//	s, err := sampler.New(sampler.Config{Strategy: sampler.StrategyRate, Rate: 0.25})
//	if err != nil {
//	    return err
//	}
//	keep := s.Sample(sampler.Context{TraceID: traceID})
package sampler
