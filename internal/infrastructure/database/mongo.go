package database

import (
	"context"
	"fmt"
	"time"

	"realestate-backend/internal/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoDB wraps the driver client and the application database handle.
type MongoDB struct {
	client *mongo.Client
	db     *mongo.Database
	cfg    config.MongoConfig
}

func NewMongoDB(cfg config.MongoConfig) *MongoDB {
	return &MongoDB{cfg: cfg}
}

// Connect establishes the connection pool and selects the database.
func (m *MongoDB) Connect(ctx context.Context) error {
	opts := options.Client().
		ApplyURI(m.cfg.URI).
		SetConnectTimeout(time.Duration(m.cfg.ConnTimeout) * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	m.client = client
	m.db = client.Database(m.cfg.Database)
	return nil
}

// HealthCheck pings the primary
func (m *MongoDB) HealthCheck(ctx context.Context) error {
	if m.client == nil {
		return fmt.Errorf("mongodb not connected")
	}
	if err := m.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongodb ping failed: %w", err)
	}
	return nil
}

// Collection returns a handle to a named collection.
func (m *MongoDB) Collection(name string) *mongo.Collection {
	return m.db.Collection(name)
}

// Client exposes the underlying client for session/transaction use.
func (m *MongoDB) Client() *mongo.Client {
	return m.client
}

func (m *MongoDB) Close(ctx context.Context) error {
	if m.client == nil {
		return nil
	}
	return m.client.Disconnect(ctx)
}
