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
	MongoURI    string
	DBName      string
	Port        string
	GinMode     string
	CORSOrigins []string

	// Redis Configuration
	RedisURL      string
	RedisPassword string
	RedisDB       int

	// Retrieval tuning
	MaxContextChunks int

	// Knowledge base snapshot cache
	KBCacheTTL        time.Duration
	KBRefreshInterval time.Duration

	// Catalog store
	CatalogFetchTimeout time.Duration
	SeedCatalog         bool

	// Rate limiting
	RateLimitReqs   int
	RateLimitWindow int

	// Admin API
	AdminTokenSecret string
	AdminTokenTTL    time.Duration

	// Telemetry
	OTLPEndpoint     string
	TracingEnabled   bool
	TraceSampleRatio float64
}

func LoadConfig() (*Config, error) {
	// Load .env file if exists
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("error loading .env file: %v", err)
		}
	}

	cfg := &Config{
		MongoURI:    getEnv("MONGO_URI", "mongodb://localhost:27017/solar_storefront"),
		DBName:      getEnv("DB_NAME", "solar_storefront"),
		Port:        getEnv("PORT", "8080"),
		GinMode:     getEnv("GIN_MODE", "debug"),
		CORSOrigins: strings.Split(getEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:8080"), ","),

		RedisURL:      getEnv("REDIS_URL", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		MaxContextChunks: getEnvInt("MAX_CONTEXT_CHUNKS", 5),

		KBCacheTTL:        getEnvDuration("KB_CACHE_TTL", 5*time.Minute),
		KBRefreshInterval: getEnvDuration("KB_REFRESH_INTERVAL", 15*time.Minute),

		CatalogFetchTimeout: getEnvDuration("CATALOG_FETCH_TIMEOUT", 5*time.Second),
		SeedCatalog:         getEnvBool("SEED_CATALOG", true),

		RateLimitReqs:   getEnvInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow: getEnvInt("RATE_LIMIT_WINDOW", 60),

		AdminTokenSecret: getEnv("ADMIN_TOKEN_SECRET", ""),
		AdminTokenTTL:    getEnvDuration("ADMIN_TOKEN_TTL", 24*time.Hour),

		OTLPEndpoint:     getEnv("OTLP_ENDPOINT", "localhost:4317"),
		TracingEnabled:   getEnvBool("TRACING_ENABLED", false),
		TraceSampleRatio: getEnvFloat64("TRACE_SAMPLE_RATIO", 0.1),
	}

	// Validate required fields
	if cfg.AdminTokenSecret == "" {
		return nil, fmt.Errorf("ADMIN_TOKEN_SECRET is required - set it in .env file")
	}

	if cfg.MaxContextChunks <= 0 {
		cfg.MaxContextChunks = 5
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
