package app

import (
	"context"
	"fmt"

	"github.com/guttosm/hotelboard/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// InitMongo connects to MongoDB using the provided configuration.
//
// Behavior:
//   - Connects with cfg.Mongo.URI, bounded by cfg.Mongo.Timeout.
//   - Immediately pings the primary to validate connectivity.
//   - Disconnects again when the ping fails.
//
// Returns:
//   - *mongo.Client: a connected client (safe for concurrent use).
//   - error: if connecting or pinging fails.
//
// Example usage:
//
//	client, err := app.InitMongo(ctx, config.AppConfig)
//	if err != nil {
//	    log.Fatalf("❌ failed to connect: %v", err)
//	}
//	defer client.Disconnect(ctx)
func InitMongo(ctx context.Context, cfg config.Config) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.Mongo.Timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(cfg.Mongo.URI).
		SetServerSelectionTimeout(cfg.Mongo.Timeout).
		SetAppName("hotelboard"))
	if err != nil {
		return nil, fmt.Errorf("failed to connect mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	return client, nil
}

// mongoOpener is an indirection used by InitializeApp; overridden in tests to avoid real connections.
var mongoOpener = InitMongo
