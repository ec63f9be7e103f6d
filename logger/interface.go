package logger

import (
	"context"
)

// Logger is the structured logging contract used by every package in this
// module. It is implemented by *LoggerClient.
type Logger interface {
	// Debug logs a debug-level message.
	Debug(msg string, err error, fields ...map[string]interface{})

	// Info logs an informational message.
	Info(msg string, err error, fields ...map[string]interface{})

	// Warn logs a warning message.
	Warn(msg string, err error, fields ...map[string]interface{})

	// Error logs an error message.
	Error(msg string, err error, fields ...map[string]interface{})

	// DebugWithContext logs a debug-level message with trace context.
	DebugWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})

	// InfoWithContext logs an informational message with trace context.
	InfoWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})

	// WarnWithContext logs a warning message with trace context.
	WarnWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})

	// ErrorWithContext logs an error message with trace context.
	ErrorWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
}
