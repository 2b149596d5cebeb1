package logger

import "fmt"

// Config contains logging configuration.
type Config struct {
	Level     string `yaml:"level" mapstructure:"level"`
	Format    string `yaml:"format" mapstructure:"format"`
	Output    string `yaml:"output" mapstructure:"output"`
	NoColor   bool   `yaml:"no_color" mapstructure:"no_color"`
	Timestamp bool   `yaml:"timestamp" mapstructure:"timestamp"`
	Caller    bool   `yaml:"caller" mapstructure:"caller"`
}

// ApplyDefaults applies default values to logging configuration.
func (c *Config) ApplyDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = "console"
	}
	if c.Output == "" {
		c.Output = "stdout"
	}
}

// Validate validates logging configuration.
func (c *Config) Validate() error {
	validLevels := []string{"trace", "debug", "info", "warn", "error", "fatal", "panic"}
	levelOK := false
	for _, l := range validLevels {
		if c.Level == l {
			levelOK = true
			break
		}
	}
	if !levelOK {
		return fmt.Errorf("logger.level must be one of %v (got: %s)", validLevels, c.Level)
	}
	if c.Format != "console" && c.Format != "json" {
		return fmt.Errorf("logger.format must be console or json (got: %s)", c.Format)
	}
	return nil
}
