package storage

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mickey-panda/caffeine-club-online/internal/config"
	"github.com/mickey-panda/caffeine-club-online/internal/logger"
	"github.com/mickey-panda/caffeine-club-online/internal/models"
)

// Collection names kept from the hosted deployment this service
// replaced, so existing data keeps working.
const (
	menuCollection   = "menu"
	ordersCollection = "online-orders"
)

// MongoStore keeps the catalog and orders in a document database.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
	logger *logger.Logger
}

// NewMongoStore connects to MongoDB and verifies the connection.
func NewMongoStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (*MongoStore, error) {
	clientOpts := options.Client().
		ApplyURI(cfg.Storage.Mongo.URI).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetMaxPoolSize(100).
		SetMinPoolSize(10)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return &MongoStore{
		client: client,
		db:     client.Database(cfg.Storage.Mongo.Database),
		logger: log,
	}, nil
}

// FetchCatalog returns all menu items sorted by identifier.
func (s *MongoStore) FetchCatalog(ctx context.Context) ([]models.CatalogItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "id", Value: 1}})
	cur, err := s.db.Collection(menuCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, storageErr("fetch catalog", err)
	}
	defer cur.Close(ctx)

	var items []models.CatalogItem
	if err := cur.All(ctx, &items); err != nil {
		return nil, storageErr("decode catalog", err)
	}
	return items, nil
}

// UpsertCatalogItem inserts or replaces a menu item keyed by its
// numeric identifier. Administrative use only.
func (s *MongoStore) UpsertCatalogItem(ctx context.Context, item models.CatalogItem) error {
	filter := bson.M{"id": item.ID}
	update := bson.M{"$set": item}
	opts := options.Update().SetUpsert(true)

	if _, err := s.db.Collection(menuCollection).UpdateOne(ctx, filter, update, opts); err != nil {
		return storageErr("upsert catalog item", err)
	}
	return nil
}

// PersistOrder stores the order, stamps CreatedAt and returns the
// generated document identifier.
func (s *MongoStore) PersistOrder(ctx context.Context, order *models.Order) (string, error) {
	order.CreatedAt = time.Now().UTC()

	res, err := s.db.Collection(ordersCollection).InsertOne(ctx, order)
	if err != nil {
		return "", storageErr("persist order", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", storageErr("persist order", fmt.Errorf("unexpected inserted id type %T", res.InsertedID))
	}
	return oid.Hex(), nil
}

// Ping tests the database connection.
func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
