// Package storage provides the durable key/value persistence layer for
// cart item lists. Every backend stores one JSON-encoded item array under
// a single namespaced key per owner, with tolerant decoding: an absent key
// or a malformed payload is an empty cart, never an error.
package storage

import (
	"context"
	"encoding/json"

	"github.com/guttosm/cart-service/internal/cart"
	"github.com/rs/zerolog/log"
)

// Backend names accepted by the factory in internal/app.
const (
	BackendMemory = "memory"
	BackendMongo  = "mongo"
	BackendRedis  = "redis"
	BackendBadger = "badger"
)

// CartStorage is the persistence adapter contract. It extends the engine's
// cart.Storage with the lifecycle and health operations the service layer
// needs; the engine itself only ever sees Load/Save/Clear.
type CartStorage interface {
	cart.Storage
	// Ping verifies the storage medium is reachable.
	Ping(ctx context.Context) error
	// Close releases the backend's resources.
	Close(ctx context.Context) error
}

// keyPrefix namespaces cart keys in shared stores like Redis.
const keyPrefix = "cart:"

// cartKey returns the namespaced durable key for an owner.
func cartKey(ownerID string) string {
	return keyPrefix + ownerID
}

// encodeItems serializes the full item list for storage.
func encodeItems(items []cart.Item) ([]byte, error) {
	return json.Marshal(items)
}

// decodeItems deserializes a stored payload. A malformed payload is
// discarded and treated as an empty cart so a bad write can never wedge a
// shopper's session.
func decodeItems(data []byte) []cart.Item {
	if len(data) == 0 {
		return nil
	}
	var items []cart.Item
	if err := json.Unmarshal(data, &items); err != nil {
		log.Warn().Err(err).Msg("Discarding undecodable cart payload")
		return nil
	}
	return items
}
