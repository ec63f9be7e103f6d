package sender

import (
	"context"
)

// Sender delivers an encoded JSON payload to path under the collector
// endpoint. It is implemented by *HTTPSender.
type Sender interface {
	Send(ctx context.Context, path string, body []byte) error
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(ctx context.Context, path string, body []byte) error

// Send calls f.
func (f SenderFunc) Send(ctx context.Context, path string, body []byte) error {
	return f(ctx, path, body)
}

// Discard accepts every payload and sends nothing.
var Discard Sender = SenderFunc(func(context.Context, string, []byte) error { return nil })
