package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application configuration loaded from the environment.
// The API request timeout is deliberately not here: it is fixed inside the
// client and not operator-tunable.
type Config struct {
	AppName  string `mapstructure:"app_name"`
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`

	APIBaseURL string `mapstructure:"pressgraph_base_url"`
	APIKey     string `mapstructure:"pressgraph_api_key"`
}

// Load reads configuration from environment variables, with an optional
// configs/.env file for local development.
func Load() (*Config, error) {
	_ = godotenv.Load("configs/.env")

	v := viper.New()

	v.SetDefault("app_name", "pressgraph-mcp")
	v.SetDefault("app_env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("pressgraph_base_url", "https://api.pressgraph.io/v1")
	v.SetDefault("pressgraph_api_key", "")

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if strings.TrimSpace(cfg.APIBaseURL) == "" {
		return nil, fmt.Errorf("invalid pressgraph_base_url (must be non-empty)")
	}

	return &cfg, nil
}
