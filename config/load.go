package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Load builds a Config from Default, the YAML file at path and the
// environment, in that order of increasing precedence. An empty path skips
// the file. The result is validated.
//
// Example file:
//
//	service_name: checkout
//	sampler:
//	  strategy: rate
//	  rate: 0.25
//	sender:
//	  endpoint: https://collector.example.com
//	  timeout: 5s
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read configuration file %q: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
		}
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return Config{}, err
	}
	cfg.ApplyServiceName()

	if err := Validate(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnvOverrides processes each section with EnvPrefix, so that
// logger.Config's LOGGER_LEVEL is read from TELEMETRY_LOGGER_LEVEL, falling
// back to LOGGER_LEVEL.
func applyEnvOverrides(cfg *Config) error {
	for _, section := range cfg.sections() {
		if err := envconfig.Process(EnvPrefix, section); err != nil {
			return fmt.Errorf("failed to apply environment overrides: %w", err)
		}
	}
	return nil
}
