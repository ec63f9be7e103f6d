package engine

import (
	"github.com/zoobzio/clockz"

	"github.com/aalemi-dev/telemetry-lab/logger"
	"github.com/aalemi-dev/telemetry-lab/observability"
	"github.com/aalemi-dev/telemetry-lab/sender"
	"github.com/aalemi-dev/telemetry-lab/tracer"
)

type options struct {
	logger    logger.Logger
	observers []observability.Observer
	clock     clockz.Clock
	sender    sender.Sender
	ids       tracer.IDGenerator
}

// Option configures New.
type Option func(*options)

// WithLogger replaces the logger built from config.Config.Logger.
func WithLogger(log logger.Logger) Option {
	return func(o *options) {
		o.logger = log
	}
}

// WithObserver adds an observer next to the metrics observer.
func WithObserver(observer observability.Observer) Option {
	return func(o *options) {
		if observer != nil {
			o.observers = append(o.observers, observer)
		}
	}
}

// WithClock sets the time source of the tracer and the report builder.
func WithClock(clock clockz.Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithSender replaces the sender built from config.Config.Sender.
func WithSender(s sender.Sender) Option {
	return func(o *options) {
		o.sender = s
	}
}

// WithIDGenerator replaces the tracer's random id generator.
func WithIDGenerator(ids tracer.IDGenerator) Option {
	return func(o *options) {
		o.ids = ids
	}
}
