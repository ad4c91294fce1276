package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Server
	Port int
	Env  string

	// CORS
	AllowedOrigins []string

	// Dataset
	DataFile string

	// Optional backing stores
	PostgresURL string
	RedisURL    string

	// Badge scanning
	ScanWorkers     int
	RescanQueueSize int
	CacheTTL        time.Duration
}

// Load loads configuration from environment variables. Postgres and Redis
// are optional: without them the service runs purely in memory with no
// snapshot persistence and no scan cache.
func Load() *Config {
	cfg := &Config{
		Port: getEnvInt("PORT", 8080),
		Env:  getEnv("ENV", "development"),

		DataFile: getEnv("DATA_FILE", "data.json"),

		PostgresURL: os.Getenv("POSTGRES_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),

		ScanWorkers:     getEnvInt("SCAN_WORKERS", 4),
		RescanQueueSize: getEnvInt("RESCAN_QUEUE_SIZE", 16),
		CacheTTL:        getEnvDuration("SCAN_CACHE_TTL", 5*time.Minute),
	}

	// CORS
	origins := getEnv("ALLOWED_ORIGINS", "http://localhost:3000")
	for _, o := range strings.Split(origins, ",") {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
