package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/Yashavanth-L/tambola-next-lvl/internal/common/logger"
)

// Config holds runtime configuration for the host runner
type Config struct {
	// RedisAddr is the address of the Redis instance backing room state
	RedisAddr string

	// RedisPassword is the Redis password, empty for none
	RedisPassword string

	// CallInterval is how often the host runner calls the next number
	CallInterval time.Duration
}

// Load reads configuration from a .env file if present, falling back to
// process environment variables and defaults.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, reading environment variables")
	}

	return &Config{
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		CallInterval:  getDuration("CALL_INTERVAL", 2*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		logger.Warnf("invalid %s %q, using default %s", key, value, fallback)
		return fallback
	}
	return d
}
