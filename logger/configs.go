package logger

// Log level constants accepted in Config.Level.
const (
	// Debug is the most verbose level. The engines log dropped spans, trimmed
	// payloads and lifecycle violations at this level.
	Debug = "debug"

	// Info logs general progress such as exported traces.
	Info = "info"

	// Warning logs conditions that lose telemetry, such as a failed send.
	Warning = "warning"

	// Error logs failures of the telemetry layer itself.
	Error = "error"
)

// Config defines the configuration of the logger.
type Config struct {
	// Level is the minimum level that is written: "debug", "info",
	// "warning" or "error". Anything else falls back to "info".
	Level string `yaml:"level" envconfig:"LOGGER_LEVEL"`

	// EnableTracing makes the *WithContext methods attach trace_id and
	// span_id from the span context stored in ctx.
	EnableTracing bool `yaml:"enable_tracing" envconfig:"LOGGER_ENABLE_TRACING"`

	// ServiceName populates the "service" field of every entry.
	ServiceName string `yaml:"service_name" envconfig:"LOGGER_SERVICE_NAME"`

	// CallerSkip is the number of stack frames skipped when reporting the
	// caller. 1 (the default) reports the code calling LoggerClient.
	CallerSkip int `yaml:"caller_skip" envconfig:"LOGGER_CALLER_SKIP"`
}
