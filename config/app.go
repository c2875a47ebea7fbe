package config

import (
	"log"
	"strconv"
	"strings"
	"time"
)

// AppConfig holds the storefront service settings read from the environment.
type AppConfig struct {
	Port              string
	StoreKind         string
	CatalogFile       string
	DefaultPageSize   int
	MaxPageSize       int
	QueryTimeout      time.Duration
	CacheTTL          time.Duration
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration
	AllowedOrigins    []string
	RabbitMQURL       string
	CatalogExchange   string
	CatalogQueue      string
}

func LoadAppConfig() *AppConfig {
	return &AppConfig{
		Port:              getEnv("PORT", "8081"),
		StoreKind:         strings.ToLower(getEnv("CATALOG_STORE", "postgres")),
		CatalogFile:       getEnv("CATALOG_FILE", "data/products.json"),
		DefaultPageSize:   getEnvInt("DEFAULT_PAGE_SIZE", 18),
		MaxPageSize:       getEnvInt("MAX_PAGE_SIZE", 100),
		QueryTimeout:      getEnvDuration("QUERY_TIMEOUT", 10*time.Second),
		CacheTTL:          getEnvDuration("CATALOG_CACHE_TTL", 5*time.Minute),
		RateLimitEnabled:  getEnvBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequests: getEnvInt("RATE_LIMIT_REQUESTS", 300),
		RateLimitWindow:   getEnvDuration("RATE_LIMIT_WINDOW", time.Minute),
		AllowedOrigins:    splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")),
		RabbitMQURL:       getEnv("RABBITMQ_URL", ""),
		CatalogExchange:   getEnv("CATALOG_EXCHANGE", "catalog_exchange"),
		CatalogQueue:      getEnv("CATALOG_QUEUE", "storefront_catalog_events"),
	}
}

func getEnvInt(key string, defaultValue int) int {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		log.Printf("⚠️ invalid %s=%q, using %d", key, raw, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(raw)
	if err != nil || value <= 0 {
		log.Printf("⚠️ invalid %s=%q, using %s", key, raw, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		log.Printf("⚠️ invalid %s=%q, using %t", key, raw, defaultValue)
		return defaultValue
	}
	return value
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
