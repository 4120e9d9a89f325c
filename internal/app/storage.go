// Package app provides storage initialization and setup.
package app

import (
	"github.com/guttosm/cart-service/config"
	"github.com/guttosm/cart-service/internal/circuitbreaker"
	"github.com/guttosm/cart-service/internal/storage"
	"github.com/rs/zerolog/log"
)

// StorageComponents holds the persistence layer and its circuit breaker.
type StorageComponents struct {
	Storage        storage.CartStorage
	CircuitBreaker *circuitbreaker.CircuitBreaker
	Backend        string
}

// InitializeStorage builds the cart persistence backend selected by
// configuration and wraps it with a circuit breaker and metrics. A backend
// that fails to connect degrades to in-memory storage so the service keeps
// serving carts, just without durability.
func InitializeStorage(cfg config.StorageConfig) *StorageComponents {
	backend, err := newBackend(cfg)
	if err != nil {
		log.Error().Err(err).
			Str("backend", cfg.Backend).
			Msg("Failed to initialize storage backend - falling back to in-memory")
		return &StorageComponents{
			Storage: storage.WithMetrics(storage.NewMemoryStorage(), storage.BackendMemory),
			Backend: storage.BackendMemory,
		}
	}

	name := cfg.Backend
	switch name {
	case storage.BackendMongo, storage.BackendRedis, storage.BackendBadger:
	default:
		name = storage.BackendMemory
	}
	log.Info().Str("backend", name).Msg("Cart storage initialized")

	// Memory needs no breaker; it cannot fail.
	if name == storage.BackendMemory {
		return &StorageComponents{
			Storage: storage.WithMetrics(backend, name),
			Backend: name,
		}
	}

	cb := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             name + "-cart-storage",
	})

	wrapped := storage.WithMetrics(storage.WithCircuitBreaker(backend, cb), name)

	return &StorageComponents{
		Storage:        wrapped,
		CircuitBreaker: cb,
		Backend:        name,
	}
}

// newBackend constructs the raw backend for the configured name.
func newBackend(cfg config.StorageConfig) (storage.CartStorage, error) {
	switch cfg.Backend {
	case storage.BackendMongo:
		mongoCfg := storage.DefaultMongoConfig()
		mongoCfg.CartTTL = cfg.CartTTL
		return storage.NewMongoStorageWithConfig(cfg.MongoURI, cfg.MongoDatabase, mongoCfg)

	case storage.BackendRedis:
		redisCfg := storage.DefaultRedisConfig(cfg.RedisAddr)
		redisCfg.Password = cfg.RedisPassword
		redisCfg.DB = cfg.RedisDB
		redisCfg.CartTTL = cfg.CartTTL
		return storage.NewRedisStorage(redisCfg)

	case storage.BackendBadger:
		return storage.NewBadgerStorage(storage.DefaultBadgerConfig(cfg.BadgerPath))

	default:
		return storage.NewMemoryStorage(), nil
	}
}
