package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	Env      string
	LogLevel string

	// Remote storefront API
	APIBaseURL   string
	APITimeout   time.Duration
	APIRetryMax  int
	APIRateLimit float64 // outbound requests per second
	APIRateBurst int

	AllowedOrigin string

	// Local store (the persistence substrate for cart/wishlist/session)
	StorePath string

	// Cache TTLs for proxied catalog reads
	CacheCategoryTTL time.Duration
	CacheProductTTL  time.Duration
	CacheReviewTTL   time.Duration
}

func LoadConfig() *Config {
	// 1. Check if a specific config file is requested via env var
	configFile := os.Getenv("CONFIG_FILE")
	if configFile != "" {
		if err := godotenv.Load(configFile); err != nil {
			log.Printf("Warning: Failed to load config file '%s': %v", configFile, err)
		} else {
			log.Printf("Loaded configuration from %s", configFile)
		}
	} else {
		// 2. Default fallback: Try loading .env (standard local dev)
		// We don't error here because in docker/prod envs, .env might not exist,
		// and we rely on system env vars.
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found or error loading it, relying on system env vars")
		}
	}

	cfg := &Config{
		Port:     getEnv("PORT", "8080"),
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		APIBaseURL:   getEnv("API_BASE_URL", ""),
		APITimeout:   getDurationEnv("API_TIMEOUT", 10*time.Second),
		APIRetryMax:  getIntEnv("API_RETRY_MAX", 3),
		APIRateLimit: getFloat64Env("API_RATE_LIMIT", 20),
		APIRateBurst: getIntEnv("API_RATE_BURST", 40),

		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "http://localhost:3000"),

		StorePath: getEnv("STORE_PATH", defaultStorePath()),

		// Cache defaults: 30m Category, 10m Product, 5m Reviews
		CacheCategoryTTL: getDurationEnv("CACHE_CATEGORY_TTL", 30*time.Minute),
		CacheProductTTL:  getDurationEnv("CACHE_PRODUCT_TTL", 10*time.Minute),
		CacheReviewTTL:   getDurationEnv("CACHE_REVIEW_TTL", 5*time.Minute),
	}

	cfg.Validate()
	return cfg
}

func (c *Config) Validate() {
	if c.APIBaseURL == "" {
		log.Fatal("CRITICAL: API_BASE_URL environment variable is required")
	}
	if c.StorePath == "" {
		log.Fatal("CRITICAL: STORE_PATH could not be resolved")
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		log.Printf("Invalid duration for %s, using fallback", key)
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
		log.Printf("Invalid int for %s, using fallback", key)
	}
	return fallback
}
