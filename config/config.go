package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Server configuration
	Port        string
	Environment string

	// Storage configuration
	StorageBackend string // "redis" or "memory"
	RedisURL       string
	RedisPassword  string
	RedisDB        int

	// Auth configuration
	AuthBackend    string // "mock" or "firebase"
	FirebaseAPIKey string
	AdminEmail     string

	// Login rate limiting
	LoginMaxAttempts   int
	LoginAttemptWindow time.Duration

	// Dashboard configuration
	DashboardPollInterval time.Duration

	// Monitoring
	EnableMetrics bool
	MetricsPort   string
}

func LoadConfig() *Config {
	return &Config{
		// Server
		Port:        getEnv("PORT", "8090"),
		Environment: getEnv("ENVIRONMENT", "development"),

		// Storage
		StorageBackend: getEnv("STORAGE_BACKEND", "redis"),
		RedisURL:       getEnv("REDIS_URL", "localhost:6379"),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		RedisDB:        getEnvAsInt("REDIS_DB", 0),

		// Auth
		AuthBackend:    getEnv("AUTH_BACKEND", "mock"),
		FirebaseAPIKey: getEnv("FIREBASE_API_KEY", ""),
		AdminEmail:     getEnv("ADMIN_EMAIL", "admin@munasabatkom.com"),

		// Login rate limiting
		LoginMaxAttempts:   getEnvAsInt("LOGIN_MAX_ATTEMPTS", 5),
		LoginAttemptWindow: getEnvAsDuration("LOGIN_ATTEMPT_WINDOW", "1m"),

		// Dashboard
		DashboardPollInterval: getEnvAsDuration("DASHBOARD_POLL_INTERVAL", "2s"),

		// Monitoring
		EnableMetrics: getEnvAsBool("ENABLE_METRICS", true),
		MetricsPort:   getEnv("METRICS_PORT", "9090"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	// If parsing fails, try to parse default value
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
