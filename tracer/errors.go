package tracer

import "errors"

// ErrInvalidLimit is returned by NewClient when a limit in Config is negative.
var ErrInvalidLimit = errors.New("tracer: limits must not be negative")
