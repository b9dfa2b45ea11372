package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port         string
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// Logging
	LogMode string

	// Content
	ContentDir string

	// Redis
	RedisURL string
	CacheTTL time.Duration

	// HTTP edge
	FrontendURLs    []string
	RateLimitPerMin int
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	env := getEnvOrDefault("ENV", "development")

	cfg := &Config{
		Port:            getEnvOrDefault("PORT", "5000"),
		Env:             env,
		ReadTimeout:     getEnvAsDurationOrDefault("READ_TIMEOUT", 15*time.Second),
		WriteTimeout:    getEnvAsDurationOrDefault("WRITE_TIMEOUT", 15*time.Second),
		LogMode:         getEnvOrDefault("LOG_MODE", env),
		ContentDir:      getEnvOrDefault("CONTENT_DIR", ""),
		RedisURL:        getEnvOrDefault("REDIS_URL", ""),
		CacheTTL:        getEnvAsDurationOrDefault("CACHE_TTL", 10*time.Minute),
		FrontendURLs:    getEnvAsListOrDefault("FRONTEND_URLS", []string{"http://localhost:3000"}),
		RateLimitPerMin: getEnvAsIntOrDefault("RATE_LIMIT_PER_MINUTE", 120),
	}

	if cfg.IsProduction() {
		cfg.FrontendURLs = splitList(mustGetEnv("FRONTEND_URLS"))
	}

	return cfg
}

func (c *Config) IsProduction() bool {
	switch strings.ToLower(c.Env) {
	case "prod", "production":
		return true
	}
	return false
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return val
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}

func getEnvAsDurationOrDefault(key string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(val)
	if err != nil || d < 0 {
		return defaultVal
	}
	return d
}

func getEnvAsListOrDefault(key string, defaultVal []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	out := splitList(val)
	if len(out) == 0 {
		return defaultVal
	}
	return out
}

func splitList(val string) []string {
	parts := strings.Split(val, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
