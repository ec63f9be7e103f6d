package sampler

import "errors"

var (
	// ErrUnknownStrategy is returned by New for a strategy name it does not know.
	ErrUnknownStrategy = errors.New("sampler: unknown strategy")

	// ErrInvalidRate is returned by New for a rate outside [0, 1].
	ErrInvalidRate = errors.New("sampler: rate must be within [0, 1]")
)
