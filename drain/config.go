package drain

import "github.com/drainkit/drainkit/validation"

// Config controls one drain operation.
type Config struct {
	// MaxConcurrency is the number of workers draining the source.
	MaxConcurrency int `yaml:"max_concurrency" mapstructure:"max_concurrency" validate:"min=1"`
	// CompleteOnFinish completes the sink once draining finishes,
	// regardless of outcome, so downstream readers are released.
	CompleteOnFinish bool `yaml:"complete_on_finish" mapstructure:"complete_on_finish"`
}

// ApplyDefaults applies default values for configs loaded from files or
// the environment. All does not call it: a zero MaxConcurrency passed
// directly is an invalid argument, not a request for the default.
func (c *Config) ApplyDefaults() {
	if c.MaxConcurrency == 0 {
		c.MaxConcurrency = 1
	}
}

// Validate validates the configuration.
func (c Config) Validate() error {
	return validation.Validate(c)
}
