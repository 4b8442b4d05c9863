package database

import (
	"context"
	"fmt"
	"time"

	"finalprojectapi/config"
	"finalprojectapi/database/store"
	"finalprojectapi/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// OpenStore connects the document store selected by STORE_DRIVER.
func OpenStore(ctx context.Context, cfg config.Config) (store.DocumentStore, error) {
	logger := utils.GetLogger()

	switch cfg.StoreDriver {
	case config.DriverFirestore:
		client, err := utils.NewFirestoreClient(ctx, cfg)
		if err != nil {
			return nil, err
		}
		logger.Info("Firebase Admin SDK initialized, Firestore connected")
		return store.NewFirestoreStore(client), nil

	case config.DriverMongo:
		client, err := connectMongo(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		logger.Info("Connected to MongoDB", zap.String("database", cfg.DatabaseName))
		return store.NewMongoStore(client, cfg.DatabaseName), nil

	case config.DriverMemory:
		logger.Warn("Using the in-memory store; data is lost on restart")
		return store.NewMemoryStore(), nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}

func connectMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return client, nil
}

// WithStoreTimeout bounds each store call by STORE_TIMEOUT.
func WithStoreTimeout(ds store.DocumentStore, timeout time.Duration) store.DocumentStore {
	return store.WithTimeout(ds, timeout)
}
