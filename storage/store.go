package storage

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Rahul77977/gagan-server/config"
)

// Store owns the document collections. One Store is created at startup and
// injected into every handler; handlers depend on the narrow interfaces it
// satisfies rather than on the struct.
type Store struct {
	client *mongo.Client

	users      *mongo.Collection
	products   *mongo.Collection
	categories *mongo.Collection
	orders     *mongo.Collection
	carousels  *mongo.Collection
}

func Connect(ctx context.Context, cfg config.MongoConfig) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("storage: connecting to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("storage: pinging mongodb: %w", err)
	}

	db := client.Database(cfg.Database)
	return &Store{
		client:     client,
		users:      db.Collection("users"),
		products:   db.Collection("products"),
		categories: db.Collection("categories"),
		orders:     db.Collection("orders"),
		carousels:  db.Collection("carouselimages"),
	}, nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
