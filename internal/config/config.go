package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration parsed from environment variables.
type Config struct {
	HTTPAddr        string
	StoreKind       string
	DataDir         string
	CatalogPath     string
	ShutdownTimeout time.Duration
}

// FromEnv builds Config with defaults, overridden by a .env file (when
// present) and the process environment.
func FromEnv() Config {
	_ = godotenv.Load()

	return Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		StoreKind:       envOrDefault("STORE", "file"),
		DataDir:         envOrDefault("DATA_DIR", "data"),
		CatalogPath:     envOrDefault("CATALOG_PATH", ""),
		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		seconds, err := strconv.Atoi(v)
		if err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return def
}
