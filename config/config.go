package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Anthropic configuration
	AnthropicAPIKey string
	AnthropicModel  string
	MaxTokens       int
	Temperature     float64
	RequestTimeout  time.Duration

	// MongoDB configuration (optional; empty URI disables exchange logging)
	MongoURI     string
	DatabaseName string

	// Cache configuration
	CacheExpiration    time.Duration
	CacheSweepInterval time.Duration
	CacheMaxEntries    int

	// Response shaping
	MaxSentences     int
	MaxResponseChars int

	// Server configuration
	Port               string
	AllowedOrigins     string
	RateLimitPerMinute int
}

func LoadConfig() *Config {
	cfg := &Config{
		AnthropicAPIKey:    os.Getenv("ANTHROPIC_API_KEY"),
		AnthropicModel:     getEnv("ANTHROPIC_MODEL", "claude-3-5-haiku-latest"),
		MaxTokens:          getEnvInt("MAX_TOKENS", 300),
		Temperature:        getEnvFloat("TEMPERATURE", 0.4),
		RequestTimeout:     time.Duration(getEnvInt("REQUEST_TIMEOUT_SECONDS", 15)) * time.Second,
		MongoURI:           os.Getenv("MONGO_URI"),
		DatabaseName:       getEnv("MONGO_DB_NAME", "wiskoro"),
		CacheExpiration:    time.Duration(getEnvInt("CACHE_EXPIRATION_SECONDS", 3600)) * time.Second,
		CacheSweepInterval: time.Duration(getEnvInt("CACHE_SWEEP_SECONDS", 300)) * time.Second,
		CacheMaxEntries:    getEnvInt("CACHE_MAX_ENTRIES", 10000),
		MaxSentences:       getEnvInt("MAX_SENTENCES", 2),
		MaxResponseChars:   getEnvInt("MAX_RESPONSE_CHARS", 280),
		Port:               getEnv("PORT", "8080"),
		AllowedOrigins:     getEnv("ALLOWED_ORIGINS", "https://wiskoro.nl, https://www.wiskoro.nl"),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 30),
	}

	// Validate required configuration
	if cfg.AnthropicAPIKey == "" {
		slog.Error("ANTHROPIC_API_KEY not set")
		os.Exit(1)
	}

	if cfg.MongoURI == "" {
		slog.Info("MONGO_URI not set, exchange logging disabled")
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
		slog.Warn("Invalid integer in environment, using default", "key", key, "value", value)
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
		slog.Warn("Invalid float in environment, using default", "key", key, "value", value)
	}
	return defaultValue
}
