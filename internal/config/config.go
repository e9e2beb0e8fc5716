package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Server
	Port        string
	Environment string

	// Redis (snapshot persistence)
	RedisURL string

	// Ingestion
	MarkupPercent float64
	CacheDuration time.Duration
	FetchTimeout  time.Duration

	// Storefront
	WhatsAppPhone string
}

func Load() *Config {
	markup, err := strconv.ParseFloat(getEnv("PRICE_MARKUP_PERCENTAGE", "20"), 64)
	if err != nil {
		markup = 20
	}

	cacheDuration, err := time.ParseDuration(getEnv("CACHE_DURATION", "1h"))
	if err != nil {
		cacheDuration = time.Hour
	}

	fetchTimeout, err := time.ParseDuration(getEnv("FETCH_TIMEOUT", "60s"))
	if err != nil {
		fetchTimeout = 60 * time.Second
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		RedisURL: getEnv("REDIS_URL", "redis://localhost:6379/0"),

		MarkupPercent: markup,
		CacheDuration: cacheDuration,
		FetchTimeout:  fetchTimeout,

		WhatsAppPhone: getEnv("WHATSAPP_PHONE", "+541158340743"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
