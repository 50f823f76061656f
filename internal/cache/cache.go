// Package cache provides the menu catalog cache. The menu changes
// rarely, so reads are served from redis between refreshes.
package cache

import (
	"context"
	"errors"

	"github.com/mickey-panda/caffeine-club-online/internal/models"
)

// ErrCacheMiss is returned when the catalog is not cached.
var ErrCacheMiss = errors.New("cache miss")

// CatalogCache caches the full, sorted menu catalog.
type CatalogCache interface {
	Get(ctx context.Context) ([]models.CatalogItem, error)
	Set(ctx context.Context, items []models.CatalogItem) error
	Invalidate(ctx context.Context) error
}
