package config

// Config represents the complete configuration structure
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ServerConfig holds CCHub API connection details
type ServerConfig struct {
	Address     string `mapstructure:"address"`
	APIVersion  string `mapstructure:"api_version"`
	AccessToken string `mapstructure:"access_token"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
