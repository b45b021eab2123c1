package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool
	JWTSecret    string

	// Upload / import pipeline
	UploadDir       string
	ImportWorkers   int
	ImportQueueSize int
	ImportBatchSize int
	ProgressTTL     time.Duration

	// External registry lookups
	RegistryBaseURL       string
	RegistryTimeout       time.Duration
	RegistryMaxRetries    int
	RegistryRetryBackoff  time.Duration
	RegistryRetryThrottle time.Duration

	// Upload rate limiting, e.g. "60-M" for 60 requests per minute
	UploadRateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("UPLOAD_DIR", "uploads")
	viper.SetDefault("IMPORT_WORKERS", 4)
	viper.SetDefault("IMPORT_QUEUE_SIZE", 32)
	viper.SetDefault("IMPORT_BATCH_SIZE", 50)
	viper.SetDefault("PROGRESS_TTL", "30s")
	viper.SetDefault("REGISTRY_API_BASE_URL", "https://brasilapi.com.br/api/cnpj/v1")
	viper.SetDefault("REGISTRY_TIMEOUT", "5s")
	viper.SetDefault("REGISTRY_MAX_RETRIES", 3)
	viper.SetDefault("REGISTRY_RETRY_BACKOFF", "500ms")
	viper.SetDefault("REGISTRY_RETRY_THROTTLE", "500ms")
	viper.SetDefault("UPLOAD_RATE_LIMIT", "60-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}

	cfg.UploadDir = viper.GetString("UPLOAD_DIR")
	cfg.ImportWorkers = viper.GetInt("IMPORT_WORKERS")
	cfg.ImportQueueSize = viper.GetInt("IMPORT_QUEUE_SIZE")
	cfg.ImportBatchSize = viper.GetInt("IMPORT_BATCH_SIZE")
	cfg.ProgressTTL = durationOrDefault("PROGRESS_TTL", 30*time.Second)

	cfg.RegistryBaseURL = viper.GetString("REGISTRY_API_BASE_URL")
	cfg.RegistryTimeout = durationOrDefault("REGISTRY_TIMEOUT", 5*time.Second)
	cfg.RegistryMaxRetries = viper.GetInt("REGISTRY_MAX_RETRIES")
	cfg.RegistryRetryBackoff = durationOrDefault("REGISTRY_RETRY_BACKOFF", 500*time.Millisecond)
	cfg.RegistryRetryThrottle = durationOrDefault("REGISTRY_RETRY_THROTTLE", 500*time.Millisecond)

	cfg.UploadRateLimit = viper.GetString("UPLOAD_RATE_LIMIT")

	return cfg, nil
}

func durationOrDefault(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback)
		}
		return fallback
	}
	return d
}
