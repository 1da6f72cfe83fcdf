package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Env        string
	Port       string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	RedisURL   string

	SearchBudget     time.Duration
	PopularCacheTTL  time.Duration
	MaxCandidates    int
	QueryLogRetained time.Duration
}

func Load() *Config {
	return &Config{
		Env:        getEnv("ENV", "development"),
		Port:       getEnv("PORT", "9400"),
		DBHost:     getEnv("DB_HOST", "search-db"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "search_user"),
		DBPassword: getSecret("DB_PASSWORD", "DB_PASSWORD_FILE", "search_password"),
		DBName:     getEnv("DB_NAME", "platform_db"),
		RedisURL:   getEnv("REDIS_URL", ""),

		SearchBudget:     time.Duration(getEnvInt("SEARCH_BUDGET_MS", 500)) * time.Millisecond,
		PopularCacheTTL:  time.Duration(getEnvInt("POPULAR_CACHE_TTL_SEC", 60)) * time.Second,
		MaxCandidates:    getEnvInt("SEARCH_MAX_CANDIDATES", 500),
		QueryLogRetained: time.Duration(getEnvInt("QUERY_LOG_RETENTION_DAYS", 90)) * 24 * time.Hour,
	}
}

// DSN builds the Postgres connection string for the shared read replica.
func (c *Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getSecret(envKey, fileEnvKey, fallback string) string {
	if value, ok := os.LookupEnv(envKey); ok {
		return value
	}
	if filePath, ok := os.LookupEnv(fileEnvKey); ok {
		content, err := os.ReadFile(filePath)
		if err == nil {
			return strings.TrimSpace(string(content))
		}
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}
