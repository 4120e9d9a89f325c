package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/guttosm/cart-service/internal/cart"
	"github.com/redis/go-redis/v9"
)

// RedisConfig holds Redis backend configuration.
type RedisConfig struct {
	// Addr is the host:port of the Redis server.
	Addr string
	// Password authenticates the connection; empty means none.
	Password string
	// DB selects the logical Redis database.
	DB int
	// CartTTL expires abandoned carts; zero keeps them forever.
	CartTTL time.Duration
	// DialTimeout bounds connection establishment.
	DialTimeout time.Duration
}

// DefaultRedisConfig returns production defaults.
func DefaultRedisConfig(addr string) RedisConfig {
	return RedisConfig{
		Addr:        addr,
		CartTTL:     30 * 24 * time.Hour,
		DialTimeout: 5 * time.Second,
	}
}

// RedisStorage persists carts as JSON strings under namespaced keys.
type RedisStorage struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStorage connects to Redis and verifies the connection.
func NewRedisStorage(cfg RedisConfig) (*RedisStorage, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: cfg.DialTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), cfg.DialTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &RedisStorage{client: client, ttl: cfg.CartTTL}, nil
}

// Load returns the owner's saved items; a missing key is an empty cart.
func (s *RedisStorage) Load(ctx context.Context, ownerID string) ([]cart.Item, error) {
	data, err := s.client.Get(ctx, cartKey(ownerID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return decodeItems(data), nil
}

// Save replaces the stored payload, refreshing the abandoned-cart TTL.
func (s *RedisStorage) Save(ctx context.Context, ownerID string, items []cart.Item) error {
	data, err := encodeItems(items)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, cartKey(ownerID), data, s.ttl).Err()
}

// Clear deletes the owner's key entirely.
func (s *RedisStorage) Clear(ctx context.Context, ownerID string) error {
	return s.client.Del(ctx, cartKey(ownerID)).Err()
}

// Ping verifies the Redis connection is healthy.
func (s *RedisStorage) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.client.Ping(ctx).Err()
}

// Close closes the Redis client.
func (s *RedisStorage) Close(_ context.Context) error {
	return s.client.Close()
}
