package config

import (
	"os"
	"strconv"

	"statviz/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig
	Demo   DemoConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// DemoConfig holds defaults for the demo panels. Every value is a starting
// point the UI can override per request within the documented ranges.
type DemoConfig struct {
	SampleCount   int     // samples per Gaussian cloud
	Separation    float64 // distance between cloud centers
	Spread        float64 // cloud standard deviation
	ConfusionSum  int     // pinned total for inverse-mode counts
	MaxDegree     int     // polynomial degree ceiling
	FFTSize       int     // samples per composite signal
	SamplingRate  float64 // Hz
	NoiseStdDev   float64 // additive Gaussian noise for signals
	DemoPanelSeed int64   // seed for reproducible demo datasets
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "debug"),
		},
		Demo: DemoConfig{
			SampleCount:   getEnvIntOrDefault("DEMO_SAMPLE_COUNT", 100),
			Separation:    getEnvFloatOrDefault("DEMO_SEPARATION", 4.0),
			Spread:        getEnvFloatOrDefault("DEMO_SPREAD", 1.5),
			ConfusionSum:  getEnvIntOrDefault("DEMO_CONFUSION_SUM", 200),
			MaxDegree:     getEnvIntOrDefault("DEMO_MAX_DEGREE", 10),
			FFTSize:       getEnvIntOrDefault("DEMO_FFT_SIZE", 256),
			SamplingRate:  getEnvFloatOrDefault("DEMO_SAMPLING_RATE", 256),
			NoiseStdDev:   getEnvFloatOrDefault("DEMO_NOISE_STDDEV", 0),
			DemoPanelSeed: int64(getEnvIntOrDefault("DEMO_SEED", 42)),
		},
	}

	if err := validate(cfg); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.ConfigInvalid("server port is required")
	}
	if cfg.Demo.SampleCount < 2 {
		return errors.ConfigInvalid("DEMO_SAMPLE_COUNT must be at least 2")
	}
	if cfg.Demo.MaxDegree < 1 || cfg.Demo.MaxDegree > 10 {
		return errors.ConfigInvalid("DEMO_MAX_DEGREE must be in 1..10")
	}
	if cfg.Demo.FFTSize < 8 || cfg.Demo.FFTSize > 4096 {
		return errors.ConfigInvalid("DEMO_FFT_SIZE must be in 8..4096")
	}
	if cfg.Demo.SamplingRate <= 0 {
		return errors.ConfigInvalid("DEMO_SAMPLING_RATE must be positive")
	}
	if cfg.Demo.ConfusionSum < 4 {
		return errors.ConfigInvalid("DEMO_CONFUSION_SUM must be at least 4")
	}
	return nil
}

// Helper functions for environment variable parsing

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
