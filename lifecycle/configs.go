package lifecycle

const (
	// DefaultAppName names the root span of an application trace.
	DefaultAppName = "App"

	// DefaultSubtaskName names the root span of a subtask trace.
	DefaultSubtaskName = "Subtask"

	// StageAttribute is set on every span the lifecycle opens.
	StageAttribute = "lifecycle.stage"
)

// Config defines the span names used by LifecycleClient.
type Config struct {
	// AppName names the root span. Stage spans are named
	// "<AppName> - Registering", "<AppName> - Booting" and
	// "<AppName> - Terminating".
	AppName string `yaml:"app_name" envconfig:"LIFECYCLE_APP_NAME"`

	// SubtaskName names the root span of StartSubtask unless WithName is given.
	SubtaskName string `yaml:"subtask_name" envconfig:"LIFECYCLE_SUBTASK_NAME"`
}

func (c Config) withDefaults() Config {
	if c.AppName == "" {
		c.AppName = DefaultAppName
	}
	if c.SubtaskName == "" {
		c.SubtaskName = DefaultSubtaskName
	}
	return c
}
