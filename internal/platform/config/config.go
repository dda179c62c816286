package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port               string
	IsProduction       bool
	RosterCSVPath      string
	RateLimit          string // ulule/limiter format, e.g. "100-M"
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ROSTER_CSV_PATH", "consultores_base.csv")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.AutomaticEnv()

	cfg := &Config{
		Port:          viper.GetString("PORT"),
		IsProduction:  viper.GetBool("IS_PRODUCTION"),
		RosterCSVPath: viper.GetString("ROSTER_CSV_PATH"),
		RateLimit:     viper.GetString("RATE_LIMIT"),
	}

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, trimmed)
		}
	}

	return cfg, nil
}
