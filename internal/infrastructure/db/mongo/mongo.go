package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultTimeout = 10 * time.Second

// Config captures the settings required to establish the MongoDB connection.
// Two logical databases share one client: AppDatabase holds users, sessions
// and config; StaticDatabase holds the imported region reference data.
type Config struct {
	URI            string
	AppDatabase    string
	StaticDatabase string
	Timeout        time.Duration
}

// Databases bundles the two logical database handles.
type Databases struct {
	App    *mongo.Database
	Static *mongo.Database
}

// Connect establishes the MongoDB client once at startup, verifies
// connectivity with a ping, and returns the client plus both database
// handles. A default timeout is applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, Databases, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, Databases{}, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, Databases{}, fmt.Errorf("mongo ping: %w", err)
	}

	dbs := Databases{
		App:    client.Database(cfg.AppDatabase),
		Static: client.Database(cfg.StaticDatabase),
	}
	return client, dbs, nil
}
