package logger_test

import (
	"errors"

	"github.com/aalemi-dev/telemetry-lab/logger"
)

func ExampleNewLoggerClient() {
	log := logger.NewLoggerClient(logger.Config{
		Level:       logger.Info,
		ServiceName: "checkout",
	})

	log.Info("telemetry engine ready", nil)
}

func ExampleLoggerClient_Warn() {
	log := logger.NewLoggerClient(logger.Config{
		Level:       logger.Warning,
		ServiceName: "checkout",
	})

	log.Warn("report dropped", errors.New("payload too large"), map[string]interface{}{
		"bytes": 91230,
		"limit": 52428,
	})
}
