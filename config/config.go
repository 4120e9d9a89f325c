// Package config provides configuration management for the cart service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Session  SessionConfig
	Registry RegistryConfig
	Storage  StorageConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port              string
	RateLimit         int
	RateWindow        time.Duration
	CORSOrigins       []string
	SwaggerUser       string
	SwaggerPass       string
	EnableIdempotency bool
	// APIKeys restricts the API to known service-to-service callers
	// when non-empty.
	APIKeys map[string]bool
}

// SessionConfig holds owner resolution configuration.
type SessionConfig struct {
	// JWTSecret is the HMAC key used to verify bearer tokens. Tokens are
	// issued by an external identity service; this service only verifies.
	JWTSecret string
}

// RegistryConfig holds in-memory cart registry configuration.
type RegistryConfig struct {
	// IdleTTL is how long an untouched cart stays resident before the
	// janitor evicts it. Evicted carts rehydrate from storage on access.
	IdleTTL time.Duration
	// MaxQuantity caps the units a single line can hold; zero means no cap.
	MaxQuantity int
}

// StorageConfig holds cart persistence configuration.
type StorageConfig struct {
	// Backend selects the persistence layer: memory, mongo, redis, badger.
	Backend string

	MongoURI      string
	MongoDatabase string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	BadgerPath string

	// CartTTL is how long an untouched persisted cart survives, for
	// backends with native expiry.
	CartTTL time.Duration

	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:              getEnv("PORT", "8080"),
			RateLimit:         getEnvInt("RATE_LIMIT", 100),
			RateWindow:        getEnvDuration("RATE_WINDOW", time.Minute),
			CORSOrigins:       parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser:       getEnv("SWAGGER_USER", ""),
			SwaggerPass:       getEnv("SWAGGER_PASS", ""),
			EnableIdempotency: getEnvBool("ENABLE_IDEMPOTENCY", true),
			APIKeys:           parseAPIKeys(os.Getenv("API_KEYS")),
		},
		Session: SessionConfig{
			JWTSecret: getEnv("JWT_SECRET_KEY", "your-secret-key-change-in-production"),
		},
		Registry: RegistryConfig{
			IdleTTL:     getEnvDuration("CART_IDLE_TTL", 30*time.Minute),
			MaxQuantity: getEnvInt("CART_MAX_QUANTITY", 0),
		},
		Storage: StorageConfig{
			Backend:                        getEnv("STORAGE_BACKEND", "memory"),
			MongoURI:                       getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			MongoDatabase:                  getEnv("MONGODB_DATABASE", "cart_service"),
			RedisAddr:                      getEnv("REDIS_ADDR", "localhost:6379"),
			RedisPassword:                  getEnv("REDIS_PASSWORD", ""),
			RedisDB:                        getEnvInt("REDIS_DB", 0),
			BadgerPath:                     getEnv("BADGER_PATH", "/var/lib/cart-service/badger"),
			CartTTL:                        getEnvDuration("CART_TTL", 30*24*time.Hour),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseAPIKeys(s string) map[string]bool {
	if s == "" {
		return nil
	}
	keys := strings.Split(s, ",")
	result := make(map[string]bool, len(keys))
	for _, k := range keys {
		if k = strings.TrimSpace(k); k != "" {
			result[k] = true
		}
	}
	return result
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
