package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// Rate cache (Redis)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// External rate provider
	RatesAPIBaseURL   string
	RatesAPIAccessKey string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("RATES_API_BASE_URL", "")
	viper.SetDefault("RATES_API_ACCESS_KEY", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.RedisAddr = viper.GetString("REDIS_ADDR")
	cfg.RedisPassword = viper.GetString("REDIS_PASSWORD")
	cfg.RedisDB = viper.GetInt("REDIS_DB")

	cfg.RatesAPIBaseURL = viper.GetString("RATES_API_BASE_URL")
	if cfg.RatesAPIBaseURL == "" {
		log.Println("Warning: RATES_API_BASE_URL not set. Provider fallback will not function.")
	}
	cfg.RatesAPIAccessKey = viper.GetString("RATES_API_ACCESS_KEY")
	if cfg.RatesAPIAccessKey == "" {
		log.Println("Warning: RATES_API_ACCESS_KEY not set. Provider fallback will not function.")
	}

	return cfg, nil
}
