package storage

import (
	"context"

	"github.com/guttosm/cart-service/internal/cart"
	"github.com/guttosm/cart-service/internal/metrics"
)

// StorageWithMetrics wraps a CartStorage and records an operation counter
// per call, labeled by backend and outcome.
type StorageWithMetrics struct {
	inner   CartStorage
	backend string
}

// WithMetrics wraps inner, reporting operations under the given backend name.
func WithMetrics(inner CartStorage, backend string) *StorageWithMetrics {
	return &StorageWithMetrics{inner: inner, backend: backend}
}

func (s *StorageWithMetrics) record(operation string, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	metrics.RecordStorageOperation(s.backend, operation, result)
}

// Load delegates and records the outcome.
func (s *StorageWithMetrics) Load(ctx context.Context, ownerID string) ([]cart.Item, error) {
	items, err := s.inner.Load(ctx, ownerID)
	s.record("load", err)
	return items, err
}

// Save delegates and records the outcome.
func (s *StorageWithMetrics) Save(ctx context.Context, ownerID string, items []cart.Item) error {
	err := s.inner.Save(ctx, ownerID, items)
	s.record("save", err)
	return err
}

// Clear delegates and records the outcome.
func (s *StorageWithMetrics) Clear(ctx context.Context, ownerID string) error {
	err := s.inner.Clear(ctx, ownerID)
	s.record("clear", err)
	return err
}

// Ping delegates without recording; probes would drown the counters.
func (s *StorageWithMetrics) Ping(ctx context.Context) error {
	return s.inner.Ping(ctx)
}

// Close releases the wrapped backend.
func (s *StorageWithMetrics) Close(ctx context.Context) error {
	return s.inner.Close(ctx)
}
