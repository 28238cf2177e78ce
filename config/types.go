package config

// Config represents the complete configuration structure
type Config struct {
	YouTube YouTubeConfig `mapstructure:"youtube"`
	Filter  FilterConfig  `mapstructure:"filter"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// YouTubeConfig holds YouTube Data API connection details
type YouTubeConfig struct {
	APIKey    string `mapstructure:"api_key"`
	BaseURL   string `mapstructure:"base_url"`
	UserAgent string `mapstructure:"user_agent"`
	// Timeout is the HTTP timeout in seconds.
	Timeout int `mapstructure:"timeout"`
}

// FilterConfig contains named filter presets and the default expression
type FilterConfig struct {
	Presets map[string]string `mapstructure:"presets"`
	Default string            `mapstructure:"default"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
