// Package config loads configuration for services embedding drain
// operations. It resolves a config.yml and an optional .env file,
// binds environment variables through viper, and unmarshals the result
// into a caller-provided struct.
package config
