package storage

import (
	"context"
	"errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/guttosm/cart-service/internal/cart"
)

// BadgerConfig holds configuration for the embedded BadgerDB backend,
// used for single-node deployments with no external store.
type BadgerConfig struct {
	// Path is the directory for the database files.
	Path string
	// InMemory disables disk persistence; useful for tests.
	InMemory bool
	// SyncWrites flushes every write to disk before acknowledging it.
	SyncWrites bool
}

// DefaultBadgerConfig returns defaults with durability enabled.
func DefaultBadgerConfig(path string) BadgerConfig {
	return BadgerConfig{Path: path, SyncWrites: true}
}

// BadgerStorage persists carts in an embedded BadgerDB key/value store.
type BadgerStorage struct {
	db *badger.DB
}

// NewBadgerStorage opens (or creates) the database at the configured path.
func NewBadgerStorage(cfg BadgerConfig) (*BadgerStorage, error) {
	opts := badger.DefaultOptions(cfg.Path).
		WithInMemory(cfg.InMemory).
		WithSyncWrites(cfg.SyncWrites).
		WithLogger(nil)
	if cfg.InMemory {
		opts = opts.WithDir("").WithValueDir("")
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &BadgerStorage{db: db}, nil
}

// Load returns the owner's saved items; a missing key is an empty cart.
func (s *BadgerStorage) Load(_ context.Context, ownerID string) ([]cart.Item, error) {
	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(cartKey(ownerID)))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return decodeItems(data), nil
}

// Save replaces the stored payload.
func (s *BadgerStorage) Save(_ context.Context, ownerID string, items []cart.Item) error {
	data, err := encodeItems(items)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(cartKey(ownerID)), data)
	})
}

// Clear deletes the owner's key entirely.
func (s *BadgerStorage) Clear(_ context.Context, ownerID string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(cartKey(ownerID)))
	})
}

// Ping reports whether the database is still open.
func (s *BadgerStorage) Ping(_ context.Context) error {
	if s.db.IsClosed() {
		return errors.New("badger: database is closed")
	}
	return nil
}

// Close closes the database.
func (s *BadgerStorage) Close(_ context.Context) error {
	return s.db.Close()
}
