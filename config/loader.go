package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// FileSystem interface for file operations (useful for testing).
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
}

// RealFileSystem implements FileSystem using actual file operations.
type RealFileSystem struct{}

func (rfs *RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (rfs *RealFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

// LoaderConfig holds dependencies and optional file overrides.
type LoaderConfig struct {
	FileSystem FileSystem
	ConfigFile string // Direct config file path (optional)
	EnvFile    string // Direct .env file path (optional)
}

// LoaderOption is a functional option for Load.
type LoaderOption func(*LoaderConfig)

// WithFileSystem sets a custom filesystem for the loader.
func WithFileSystem(fs FileSystem) LoaderOption {
	return func(lc *LoaderConfig) { lc.FileSystem = fs }
}

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// Load loads configuration for a service into the provided cfg struct.
// It searches for config.yml and .env files in standard locations, binds
// environment variables, and unmarshals the result into cfg.
func Load(serviceName string, cfg interface{}, opts ...LoaderOption) error {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}
	if lc.FileSystem == nil {
		lc.FileSystem = &RealFileSystem{}
	}

	configFile := lc.ConfigFile
	if configFile == "" {
		configFile = findFirst(lc.FileSystem, []string{
			fmt.Sprintf("./config/%s.yml", serviceName),
			"./config/config.yml",
			"./config.yml",
		})
	}
	envFile := lc.EnvFile
	if envFile == "" {
		envFile = findFirst(lc.FileSystem, []string{
			fmt.Sprintf(".env.%s", serviceName),
			".env",
		})
	}

	v := viper.New()

	// 1. Load YAML config first (base configuration)
	if configFile != "" && lc.FileSystem.Exists(configFile) {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			fmt.Printf("[config] warning: failed to load config file %s: %v\n", configFile, err)
		}
	}

	// 2. Enable automatic environment variable reading
	v.AutomaticEnv()
	autoBindEnvVars(v)

	// 3. Load .env file
	if envFile != "" && lc.FileSystem.Exists(envFile) {
		if err := lc.FileSystem.LoadEnv(envFile); err != nil {
			fmt.Printf("[config] warning: failed to load .env file %s: %v\n", envFile, err)
		} else {
			// Re-bind env vars after loading .env to pick up new variables
			autoBindEnvVars(v)
		}
	}

	// 4. Unmarshal into config struct
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config for service %s: %w", serviceName, err)
	}

	return nil
}

func findFirst(fs FileSystem, paths []string) string {
	for _, path := range paths {
		if fs.Exists(path) {
			return path
		}
	}
	return ""
}

// autoBindEnvVars binds environment variables to viper, converting
// UPPER_CASE_WITH_UNDERSCORES keys to nested dotted keys.
// DRAIN_MAX_CONCURRENCY becomes both drain_max_concurrency and
// drain.max_concurrency, so either flat or nested config structs bind.
func autoBindEnvVars(v *viper.Viper) {
	for _, env := range os.Environ() {
		pair := strings.SplitN(env, "=", 2)
		if len(pair) != 2 {
			continue
		}

		key := strings.ToLower(pair[0])
		value := pair[1]

		v.Set(key, value)
		parts := strings.Split(key, "_")
		if len(parts) > 1 {
			v.Set(strings.ReplaceAll(key, "_", "."), value)
			// First segment as section, remainder joined: drain.max_concurrency
			v.Set(parts[0]+"."+strings.Join(parts[1:], "_"), value)
		}
	}
}
