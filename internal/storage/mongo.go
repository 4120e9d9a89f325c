package storage

import (
	"context"
	"errors"
	"time"

	"github.com/guttosm/cart-service/internal/cart"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoConfig holds MongoDB connection pool configuration.
type MongoConfig struct {
	// MaxPoolSize is the maximum number of connections in the pool.
	MaxPoolSize uint64
	// MinPoolSize is the minimum number of connections to keep in the pool.
	MinPoolSize uint64
	// MaxConnIdleTime is how long a connection can remain idle before being closed.
	MaxConnIdleTime time.Duration
	// ConnectTimeout is the timeout for establishing a connection.
	ConnectTimeout time.Duration
	// ServerSelectionTimeout is how long to wait for server selection.
	ServerSelectionTimeout time.Duration
	// CartTTL expires abandoned carts; zero disables the TTL index.
	CartTTL time.Duration
}

// DefaultMongoConfig returns production defaults.
func DefaultMongoConfig() MongoConfig {
	return MongoConfig{
		MaxPoolSize:            50,
		MinPoolSize:            10,
		MaxConnIdleTime:        10 * time.Minute,
		ConnectTimeout:         10 * time.Second,
		ServerSelectionTimeout: 5 * time.Second,
		CartTTL:                30 * 24 * time.Hour,
	}
}

// cartDocument is the persisted shape: one document per owner, keyed by
// the owner id, holding the full item list.
type cartDocument struct {
	OwnerID   string      `bson:"_id"`
	Items     []cart.Item `bson:"items"`
	UpdatedAt time.Time   `bson:"updated_at"`
}

// MongoStorage persists carts in a MongoDB collection.
type MongoStorage struct {
	client *mongo.Client
	carts  *mongo.Collection
}

// NewMongoStorage connects to MongoDB with default configuration.
func NewMongoStorage(uri, databaseName string) (*MongoStorage, error) {
	return NewMongoStorageWithConfig(uri, databaseName, DefaultMongoConfig())
}

// NewMongoStorageWithConfig connects to MongoDB with custom configuration.
func NewMongoStorageWithConfig(uri, databaseName string, cfg MongoConfig) (*MongoStorage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout).
		SetRetryWrites(true).
		SetRetryReads(true)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	s := &MongoStorage{
		client: client,
		carts:  client.Database(databaseName).Collection("carts"),
	}

	if cfg.CartTTL > 0 {
		if err := s.ensureTTLIndex(ctx, cfg.CartTTL); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// ensureTTLIndex creates the abandoned-cart expiry index on updated_at.
func (s *MongoStorage) ensureTTLIndex(ctx context.Context, ttl time.Duration) error {
	index := mongo.IndexModel{
		Keys:    bson.M{"updated_at": 1},
		Options: options.Index().SetExpireAfterSeconds(int32(ttl.Seconds())),
	}
	_, err := s.carts.Indexes().CreateOne(ctx, index)
	// An existing index with different options is fine; carts written
	// before a TTL change just expire on the old schedule.
	if err != nil && isIndexConflict(err) {
		return nil
	}
	return err
}

func isIndexConflict(err error) bool {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Name == "IndexOptionsConflict" || cmdErr.Name == "IndexKeySpecsConflict"
	}
	return false
}

// Load returns the owner's saved items. A missing document is an empty
// cart; a document that fails to decode is discarded the same way.
func (s *MongoStorage) Load(ctx context.Context, ownerID string) ([]cart.Item, error) {
	var doc cartDocument
	err := s.carts.FindOne(ctx, bson.M{"_id": ownerID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc.Items, nil
}

// Save upserts the owner's document with the full item list.
func (s *MongoStorage) Save(ctx context.Context, ownerID string, items []cart.Item) error {
	doc := cartDocument{
		OwnerID:   ownerID,
		Items:     items,
		UpdatedAt: time.Now().UTC(),
	}
	_, err := s.carts.ReplaceOne(ctx, bson.M{"_id": ownerID}, doc, options.Replace().SetUpsert(true))
	return err
}

// Clear deletes the owner's document entirely.
func (s *MongoStorage) Clear(ctx context.Context, ownerID string) error {
	_, err := s.carts.DeleteOne(ctx, bson.M{"_id": ownerID})
	return err
}

// Ping verifies the MongoDB connection is healthy.
func (s *MongoStorage) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.client.Ping(ctx, nil)
}

// Close disconnects from MongoDB.
func (s *MongoStorage) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
