package config

import (
	"golang-stock-advisor/pkg/config"
)

// Cache holds settings for the latest-market-data cache.
type Cache struct {
	MarketDataTTL string `mapstructure:"market_data_ttl"`
}

// Config holds the full configuration for the API service.
type Config struct {
	App      config.App      `mapstructure:"app"`
	Logger   config.Logger   `mapstructure:"logger"`
	Database config.Database `mapstructure:"database"`
	Redis    config.Redis    `mapstructure:"redis"`
	API      config.API      `mapstructure:"api"`
	JWT      config.JWT      `mapstructure:"jwt"`
	Ollama   config.Ollama   `mapstructure:"ollama"`
	Weaviate config.Weaviate `mapstructure:"weaviate"`
	Cache    Cache           `mapstructure:"cache"`
}

// Load loads the API configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
