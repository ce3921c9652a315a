package db

import (
	"context"
	"fmt"
	"time"

	"github.com/yigit/collegehub/internal/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoDB wraps the client and the catalog database handle
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// BSONOptions makes nested documents decode into plain maps and object ids
// into hex strings (the v1 default string codec), the form the catalog models use for ids
func BSONOptions() *options.BSONOptions {
	return &options.BSONOptions{DefaultDocumentM: true}
}

// NewMongoDB connects to MongoDB and verifies the connection
func NewMongoDB(cfg *config.Config) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.Database.URI).
		SetMaxPoolSize(uint64(cfg.Database.MaxOpenConns)).
		SetMinPoolSize(uint64(cfg.Database.MaxIdleConns)).
		SetBSONOptions(BSONOptions())

	if lifetime, err := time.ParseDuration(cfg.Database.ConnMaxLifetime); err == nil {
		opts.SetMaxConnIdleTime(lifetime)
	}
	// Client-side operation timeout, applied when the request context has no deadline
	if timeout, err := time.ParseDuration(cfg.Database.QueryTimeout); err == nil && timeout > 0 {
		opts.SetTimeout(timeout)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to establish mongo connection: %w", err)
	}

	return &MongoDB{
		Client:   client,
		Database: client.Database(cfg.Database.Name),
	}, nil
}

// Close disconnects the client
func (db *MongoDB) Close(ctx context.Context) error {
	if db.Client == nil {
		return nil
	}
	return db.Client.Disconnect(ctx)
}
