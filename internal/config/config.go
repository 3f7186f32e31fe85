package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the complete leadsweep configuration
type Config struct {
	Version int `json:"version" mapstructure:"version"`

	// DefaultOutput is the output path used when the dedupe command is
	// given no explicit destination.
	DefaultOutput string `json:"defaultOutput" mapstructure:"defaultOutput"`

	Logging LoggingConfig `json:"logging" mapstructure:"logging"`
	History HistoryConfig `json:"history" mapstructure:"history"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Format string `json:"format" mapstructure:"format"`
	Level  string `json:"level" mapstructure:"level"`
}

// HistoryConfig contains run-history ledger configuration
type HistoryConfig struct {
	Enabled bool `json:"enabled" mapstructure:"enabled"`
}

// DefaultConfig returns the configuration used when no config file exists
func DefaultConfig() *Config {
	return &Config{
		Version:       1,
		DefaultOutput: "deduplicated_leads.json",
		Logging: LoggingConfig{
			Format: "human",
			Level:  "info",
		},
		History: HistoryConfig{
			Enabled: true,
		},
	}
}

// LoadConfig loads configuration from .leadsweep/config.json under workDir
func LoadConfig(workDir string) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("version", 1)
	v.SetDefault("defaultOutput", "deduplicated_leads.json")
	v.SetDefault("logging.format", "human")
	v.SetDefault("logging.level", "info")
	v.SetDefault("history.enabled", true)

	// Configure viper
	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(workDir, ".leadsweep"))

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// If config doesn't exist, return default config
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	// Unmarshal into config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the configuration to .leadsweep/config.json under workDir
func (c *Config) Save(workDir string) error {
	dir := filepath.Join(workDir, ".leadsweep")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(dir, "config.json"), data, 0644)
}
