package sender

import "errors"

var (
	// ErrEmptyEndpoint is returned by NewHTTPSender when Config.Endpoint is empty.
	ErrEmptyEndpoint = errors.New("sender: endpoint is empty")

	// ErrPayloadTooLarge is returned for HTTP 413.
	ErrPayloadTooLarge = errors.New("sender: payload too large")

	// ErrUnauthorized is returned for HTTP 401 and 403.
	ErrUnauthorized = errors.New("sender: unauthorized")

	// ErrRateLimited is returned for HTTP 429 once retries are exhausted.
	ErrRateLimited = errors.New("sender: rate limited")

	// ErrUnexpectedStatus wraps any other non-2xx status.
	ErrUnexpectedStatus = errors.New("sender: unexpected status")
)
