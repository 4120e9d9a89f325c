package storage

import (
	"context"
	"sync"

	"github.com/guttosm/cart-service/internal/cart"
)

// MemoryStorage is the in-process backend. It is the default for local
// development and the test double for everything that needs a CartStorage.
// Payloads go through the same JSON codec as the durable backends so
// round-trip fidelity is exercised everywhere.
type MemoryStorage struct {
	mu    sync.RWMutex
	carts map[string][]byte
}

// NewMemoryStorage creates an empty in-memory storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{carts: make(map[string][]byte)}
}

// Load returns the saved items for the owner, or nil when none exist.
func (m *MemoryStorage) Load(_ context.Context, ownerID string) ([]cart.Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return decodeItems(m.carts[cartKey(ownerID)]), nil
}

// Save replaces the stored copy with the full item list.
func (m *MemoryStorage) Save(_ context.Context, ownerID string, items []cart.Item) error {
	data, err := encodeItems(items)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.carts[cartKey(ownerID)] = data
	return nil
}

// Clear removes the owner's entry entirely.
func (m *MemoryStorage) Clear(_ context.Context, ownerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, cartKey(ownerID))
	return nil
}

// Ping always succeeds for the in-process backend.
func (m *MemoryStorage) Ping(_ context.Context) error {
	return nil
}

// Close is a no-op for the in-process backend.
func (m *MemoryStorage) Close(_ context.Context) error {
	return nil
}

// Seed stores a raw payload under the owner's key, bypassing the codec.
// Test hook for exercising tolerant decoding of malformed payloads.
func (m *MemoryStorage) Seed(ownerID string, payload []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.carts[cartKey(ownerID)] = payload
}

// Len reports the number of stored carts.
func (m *MemoryStorage) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.carts)
}
