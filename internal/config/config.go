package config

import (
	"os"
	"strconv"

	"github.com/AdmcCarthy/Stroop-Effect/internal/distribution"
	"github.com/AdmcCarthy/Stroop-Effect/internal/errors"
	"github.com/AdmcCarthy/Stroop-Effect/internal/style"
	"github.com/AdmcCarthy/Stroop-Effect/internal/summary"

	"github.com/joho/godotenv"
)

// Config represents the complete application configuration
type Config struct {
	Server  ServerConfig
	Summary SummaryConfig
	Plot    PlotConfig
	Data    DataConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// SummaryConfig holds descriptive statistics settings
type SummaryConfig struct {
	Precision int
}

// PlotConfig holds distribution plot settings
type PlotConfig struct {
	Scheme string
	Bins   string
}

// DataConfig holds the default input file
type DataConfig struct {
	File  string
	Sheet string
}

// LoadEnv reads a .env file when one is present; a missing file is not an error
func LoadEnv(filenames ...string) bool {
	return godotenv.Load(filenames...) == nil
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "release"),
		},
		Summary: SummaryConfig{
			Precision: getEnvIntOrDefault("SUMMARY_PRECISION", summary.DefaultPrecision),
		},
		Plot: PlotConfig{
			Scheme: getEnvOrDefault("COLOR_SCHEME", style.DefaultScheme),
			Bins:   getEnvOrDefault("HIST_BINS", distribution.BinsAllValues),
		},
		Data: DataConfig{
			File:  getEnvOrDefault("DATA_FILE", ""),
			Sheet: getEnvOrDefault("DATA_SHEET", "Sheet1"),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("PORT is required")
	}
	if config.Summary.Precision < 0 {
		return errors.ConfigInvalid("SUMMARY_PRECISION must be >= 0")
	}
	if _, err := style.Lookup(config.Plot.Scheme); err != nil {
		return errors.ConfigInvalid(err.Error())
	}
	switch config.Plot.Bins {
	case distribution.BinsAllValues, distribution.BinsAuto:
	default:
		if n, err := strconv.Atoi(config.Plot.Bins); err != nil || n <= 0 {
			return errors.ConfigInvalid("HIST_BINS must be all_values, auto or a positive integer")
		}
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
