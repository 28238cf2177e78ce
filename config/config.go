package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load loads the configuration from file and environment. The config
// file is optional: with a .env file or YTDATA_YOUTUBE_API_KEY exported,
// the tool runs on defaults alone.
func Load(configPath string) (*Config, error) {
	// Pick up a local .env before viper reads the environment.
	_ = godotenv.Load()

	v := viper.New()

	// Set default values
	setDefaults(v)

	// Environment overrides, e.g. YTDATA_YOUTUBE_API_KEY
	v.SetEnvPrefix("YTDATA")
	_ = v.BindEnv("youtube.api_key", "YTDATA_YOUTUBE_API_KEY", "YOUTUBE_API_KEY")
	_ = v.BindEnv("youtube.base_url", "YTDATA_YOUTUBE_BASE_URL")
	_ = v.BindEnv("logging.level", "YTDATA_LOG_LEVEL")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".ytdata"))
		}

		// Check /etc
		v.AddConfigPath("/etc/ytdata/")
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
		// Missing file is fine when an explicit path was not given.
		if configPath != "" {
			return nil, fmt.Errorf("config file not found: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// YouTube defaults
	v.SetDefault("youtube.timeout", 30)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.YouTube.APIKey == "" || cfg.YouTube.APIKey == "your-api-key-here" {
		return fmt.Errorf("youtube.api_key must be set to a valid API key")
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
