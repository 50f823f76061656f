// Package storage persists the menu catalog and confirmed orders.
package storage

import (
	"context"
	"fmt"

	"github.com/mickey-panda/caffeine-club-online/internal/config"
	"github.com/mickey-panda/caffeine-club-online/internal/logger"
	"github.com/mickey-panda/caffeine-club-online/internal/models"
)

// Store is the contract the core holds with its storage collaborator.
// PersistOrder assigns the record identifier and stamps CreatedAt
// server-side; the core submits once and never retries.
type Store interface {
	FetchCatalog(ctx context.Context) ([]models.CatalogItem, error)
	UpsertCatalogItem(ctx context.Context, item models.CatalogItem) error
	PersistOrder(ctx context.Context, order *models.Order) (string, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// Open connects the store selected by storage.driver.
func Open(ctx context.Context, cfg *config.Config, log *logger.Logger) (Store, error) {
	switch cfg.Storage.Driver {
	case "mongo":
		return NewMongoStore(ctx, cfg, log)
	case "postgres":
		return NewPostgresStore(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unknown storage driver: %s", cfg.Storage.Driver)
	}
}

func storageErr(op string, err error) error {
	return &models.StorageError{Op: op, Err: err}
}
