package storage

import (
	"context"

	"github.com/guttosm/cart-service/internal/cart"
	"github.com/guttosm/cart-service/internal/circuitbreaker"
)

// StorageWithCircuitBreaker wraps a CartStorage with circuit breaker
// protection so a dead backend degrades to "nothing persisted" instead of
// stalling every cart action on connection timeouts.
type StorageWithCircuitBreaker struct {
	inner          CartStorage
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// WithCircuitBreaker wraps inner with the given circuit breaker.
func WithCircuitBreaker(inner CartStorage, cb *circuitbreaker.CircuitBreaker) *StorageWithCircuitBreaker {
	return &StorageWithCircuitBreaker{
		inner:          inner,
		circuitBreaker: cb,
	}
}

// Load hydrates through the breaker. An open circuit degrades to an empty
// cart rather than an error; the shopper starts fresh instead of seeing a
// failure.
func (s *StorageWithCircuitBreaker) Load(ctx context.Context, ownerID string) ([]cart.Item, error) {
	var items []cart.Item
	err := s.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		items, cbErr = s.inner.Load(ctx, ownerID)
		return cbErr
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil, nil
	}
	return items, err
}

// Save writes through the breaker.
func (s *StorageWithCircuitBreaker) Save(ctx context.Context, ownerID string, items []cart.Item) error {
	return s.circuitBreaker.Execute(ctx, func() error {
		return s.inner.Save(ctx, ownerID, items)
	})
}

// Clear deletes through the breaker.
func (s *StorageWithCircuitBreaker) Clear(ctx context.Context, ownerID string) error {
	return s.circuitBreaker.Execute(ctx, func() error {
		return s.inner.Clear(ctx, ownerID)
	})
}

// Ping bypasses the breaker so readiness probes observe the true backend
// state while the circuit is open.
func (s *StorageWithCircuitBreaker) Ping(ctx context.Context) error {
	return s.inner.Ping(ctx)
}

// Close releases the wrapped backend.
func (s *StorageWithCircuitBreaker) Close(ctx context.Context) error {
	return s.inner.Close(ctx)
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (s *StorageWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return s.circuitBreaker
}
