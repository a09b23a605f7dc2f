package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the ambient application settings loaded from environment
// variables. Measurement inputs (method, url, passes) come from the CLI, and
// the checksum table is compiled in; only operational knobs live here.
type Config struct {
	AppName  string `mapstructure:"app_name"`
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`

	// UserAgent is sent by the raw-socket strategies.
	UserAgent string `mapstructure:"user_agent"`

	// DisabledCapabilities lists collaborator facilities to treat as
	// unavailable, dropping the strategies that require them.
	DisabledCapabilities []string `mapstructure:"disabled_capabilities"`
}

// Load reads configuration from environment variables with sane defaults.
func Load() (*Config, error) {
	_ = godotenv.Load("configs/.env")

	v := viper.New()

	v.SetDefault("app_name", "httpbench")
	v.SetDefault("app_env", "development")
	v.SetDefault("log_level", "warn")
	v.SetDefault("user_agent", "httpbench-go")
	v.SetDefault("disabled_capabilities", []string{})

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.UserAgent == "" {
		return nil, fmt.Errorf("user_agent must not be empty")
	}

	return &cfg, nil
}
