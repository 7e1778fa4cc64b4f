// Package repository provides the MongoDB data access layer for the shipment service.
package repository

import (
	"context"
	"time"

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
	// SocketTimeout is the timeout for socket read/write operations.
	SocketTimeout time.Duration
	// EnableCompression enables wire protocol compression.
	EnableCompression bool
}

// DefaultMongoConfig returns production-oriented MongoDB configuration.
func DefaultMongoConfig() MongoConfig {
	return MongoConfig{
		MaxPoolSize:            50,
		MinPoolSize:            10,
		MaxConnIdleTime:        10 * time.Minute,
		ConnectTimeout:         10 * time.Second,
		ServerSelectionTimeout: 5 * time.Second,
		SocketTimeout:          30 * time.Second,
		EnableCompression:      true,
	}
}

// MongoDB provides MongoDB client and collection access.
type MongoDB struct {
	Client      *mongo.Client
	Database    *mongo.Database
	BoxCatalogs *mongo.Collection
	Logs        *mongo.Collection
}

// NewMongoDB creates a new MongoDB connection with default configuration.
func NewMongoDB(uri, databaseName string) (*MongoDB, error) {
	return NewMongoDBWithConfig(uri, databaseName, DefaultMongoConfig())
}

// NewMongoDBWithConfig creates a new MongoDB connection with custom configuration.
func NewMongoDBWithConfig(uri, databaseName string, cfg MongoConfig) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout).
		SetSocketTimeout(cfg.SocketTimeout).
		SetRetryWrites(true).
		SetRetryReads(true)

	if cfg.EnableCompression {
		clientOptions.SetCompressors([]string{"zstd", "snappy", "zlib"})
	}

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	db := client.Database(databaseName)
	mongoDB := &MongoDB{
		Client:      client,
		Database:    db,
		BoxCatalogs: db.Collection("box_catalogs"),
		Logs:        db.Collection("logs"),
	}

	if err := mongoDB.createIndexes(ctx); err != nil {
		return nil, err
	}

	return mongoDB, nil
}

// createIndexes creates the indexes the repositories rely on.
func (m *MongoDB) createIndexes(ctx context.Context) error {
	activeIndex := mongo.IndexModel{
		Keys:    map[string]interface{}{"active": 1},
		Options: options.Index().SetUnique(false),
	}
	if _, err := m.BoxCatalogs.Indexes().CreateOne(ctx, activeIndex); err != nil {
		return err
	}

	// Logs request_id index; creation errors are ignored when the index
	// already exists. The TTL index is managed separately by SetLogsTTL.
	requestIDIndex := mongo.IndexModel{
		Keys:    map[string]interface{}{"request_id": 1},
		Options: options.Index().SetUnique(false),
	}
	_, _ = m.Logs.Indexes().CreateOne(ctx, requestIDIndex)

	return nil
}

// SetLogsTTL replaces the TTL index on the logs collection.
func (m *MongoDB) SetLogsTTL(ctx context.Context, ttlDays int) error {
	_, _ = m.Logs.Indexes().DropOne(ctx, "timestamp_1")

	ttlSeconds := int32(ttlDays * 24 * 60 * 60)
	ttlIndex := mongo.IndexModel{
		Keys:    map[string]interface{}{"timestamp": 1},
		Options: options.Index().SetExpireAfterSeconds(ttlSeconds),
	}
	_, err := m.Logs.Indexes().CreateOne(ctx, ttlIndex)
	return err
}

// Close closes the MongoDB connection.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

// HealthCheck verifies the MongoDB connection is healthy.
func (m *MongoDB) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return m.Client.Ping(ctx, nil)
}
