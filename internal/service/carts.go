// Package service provides the business services of the cart service.
package service

import (
	"context"
	"hash/fnv"
	"sync"
	"time"

	"github.com/guttosm/cart-service/internal/cart"
	"github.com/guttosm/cart-service/internal/metrics"
)

const (
	// defaultNumShards is the default shard count for the store registry.
	defaultNumShards = 16
	// defaultIdleTTL is how long an untouched store stays resident.
	defaultIdleTTL = 30 * time.Minute
)

// CartService hands out the single live cart store for each owner. One
// store instance per durable key within the process keeps the
// single-writer assumption of the engine; separate processes sharing a
// backend remain unsynchronized by design.
type CartService interface {
	// StoreFor returns the owner's store, hydrating it from storage on
	// first access.
	StoreFor(ctx context.Context, ownerID string) *cart.Store
	// ActiveStores reports the number of resident stores.
	ActiveStores() int
	// Shutdown stops the eviction janitor.
	Shutdown()
}

// registryEntry tracks one resident store and its last access time.
type registryEntry struct {
	store      *cart.Store
	lastAccess time.Time
}

// registryShard is a single shard of the store registry.
type registryShard struct {
	mu      sync.Mutex
	entries map[string]*registryEntry
}

// cartRegistry is a sharded registry of per-owner stores with idle
// eviction. Sharding keeps lock contention low when many shoppers hit the
// service at once.
type cartRegistry struct {
	shards    []*registryShard
	numShards int
	storage   cart.Storage
	storeOpts []cart.Option
	idleTTL   time.Duration
	stopCh    chan struct{}
	stopOnce  sync.Once
}

// Option configures a cartRegistry.
type Option func(*cartRegistry)

// WithIdleTTL sets how long an untouched store stays resident before the
// janitor evicts it. Evicted carts are not lost; the next access hydrates
// a fresh store from storage.
func WithIdleTTL(ttl time.Duration) Option {
	return func(r *cartRegistry) {
		if ttl > 0 {
			r.idleTTL = ttl
		}
	}
}

// WithShardCount sets the registry shard count.
func WithShardCount(n int) Option {
	return func(r *cartRegistry) {
		if n > 0 {
			r.numShards = n
		}
	}
}

// WithStoreOptions passes options through to every store the registry
// creates.
func WithStoreOptions(opts ...cart.Option) Option {
	return func(r *cartRegistry) {
		r.storeOpts = opts
	}
}

// NewCartService creates a registry backed by the given storage.
func NewCartService(storage cart.Storage, opts ...Option) CartService {
	r := &cartRegistry{
		numShards: defaultNumShards,
		storage:   storage,
		idleTTL:   defaultIdleTTL,
		stopCh:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}

	r.shards = make([]*registryShard, r.numShards)
	for i := range r.shards {
		r.shards[i] = &registryShard{entries: make(map[string]*registryEntry)}
	}

	go r.janitor()
	return r
}

// getShard returns the shard for the given owner using FNV hash.
func (r *cartRegistry) getShard(ownerID string) *registryShard {
	h := fnv.New32a()
	h.Write([]byte(ownerID))
	return r.shards[h.Sum32()%uint32(r.numShards)]
}

// StoreFor returns the owner's store, creating and hydrating it on first
// access. Creation happens under the shard lock so two concurrent
// requests for the same owner can never race two stores into existence.
func (r *cartRegistry) StoreFor(ctx context.Context, ownerID string) *cart.Store {
	shard := r.getShard(ownerID)

	shard.mu.Lock()
	if entry, ok := shard.entries[ownerID]; ok {
		entry.lastAccess = time.Now()
		shard.mu.Unlock()
		return entry.store
	}

	store := cart.NewStore(ctx, ownerID, r.storage, r.storeOpts...)
	shard.entries[ownerID] = &registryEntry{
		store:      store,
		lastAccess: time.Now(),
	}
	shard.mu.Unlock()

	// Gauge update must happen outside the shard lock: ActiveStores locks
	// every shard, including this one.
	metrics.SetActiveCarts(r.ActiveStores())
	return store
}

// ActiveStores reports the number of resident stores across all shards.
func (r *cartRegistry) ActiveStores() int {
	total := 0
	for _, shard := range r.shards {
		shard.mu.Lock()
		total += len(shard.entries)
		shard.mu.Unlock()
	}
	return total
}

// Shutdown stops the eviction janitor.
func (r *cartRegistry) Shutdown() {
	r.stopOnce.Do(func() {
		close(r.stopCh)
	})
}

// janitor periodically evicts stores idle longer than the TTL.
func (r *cartRegistry) janitor() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.evictIdle()
		case <-r.stopCh:
			return
		}
	}
}

// evictIdle drops entries whose last access is older than the idle TTL.
func (r *cartRegistry) evictIdle() {
	cutoff := time.Now().Add(-r.idleTTL)
	for _, shard := range r.shards {
		shard.mu.Lock()
		for ownerID, entry := range shard.entries {
			if entry.lastAccess.Before(cutoff) {
				delete(shard.entries, ownerID)
			}
		}
		shard.mu.Unlock()
	}
	metrics.SetActiveCarts(r.ActiveStores())
}
