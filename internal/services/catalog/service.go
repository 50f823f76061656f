// Package catalog serves the menu. Reads go through the redis cache;
// misses collapse onto a single storage fetch.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/singleflight"

	"github.com/mickey-panda/caffeine-club-online/internal/cache"
	"github.com/mickey-panda/caffeine-club-online/internal/logger"
	"github.com/mickey-panda/caffeine-club-online/internal/models"
	"github.com/mickey-panda/caffeine-club-online/internal/storage"
)

// Service reads and administers the menu catalog.
type Service struct {
	store  storage.Store
	cache  cache.CatalogCache
	logger *logger.Logger
	sfg    singleflight.Group
}

func NewService(store storage.Store, catalogCache cache.CatalogCache, log *logger.Logger) *Service {
	return &Service{
		store:  store,
		cache:  catalogCache,
		logger: log,
	}
}

// Menu returns the full catalog sorted by identifier. Cache errors
// other than a miss are logged and the storage fetch proceeds anyway.
func (s *Service) Menu(ctx context.Context) ([]models.CatalogItem, error) {
	v, err, _ := s.sfg.Do("menu", func() (any, error) {
		items, err := s.cache.Get(ctx)
		if err == nil {
			return items, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.Error("catalog_cache_get_failed", "", "Catalog cache read failed", err)
		}

		items, err = s.store.FetchCatalog(ctx)
		if err != nil {
			return nil, err
		}

		go func() {
			if err := s.cache.Set(context.Background(), items); err != nil {
				s.logger.Error("catalog_cache_set_failed", "", "Catalog cache write failed", err)
			}
		}()

		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.CatalogItem), nil
}

// Upsert validates and writes the given items, then drops the cached
// catalog so the next read sees them. Administrative use only.
func (s *Service) Upsert(ctx context.Context, items []models.CatalogItem) error {
	for i, item := range items {
		if err := validateItem(item, i); err != nil {
			return err
		}
	}

	for _, item := range items {
		if err := s.store.UpsertCatalogItem(ctx, item); err != nil {
			return err
		}
	}

	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Error("catalog_cache_invalidate_failed", "", "Catalog cache invalidation failed", err)
	}

	s.logger.Info("catalog_upserted", "", fmt.Sprintf("Upserted %d catalog items", len(items)))
	return nil
}

// SeedMenu uploads the built-in menu. Used by the seed-menu mode.
func (s *Service) SeedMenu(ctx context.Context) error {
	return s.Upsert(ctx, DefaultMenu)
}

func validateItem(item models.CatalogItem, index int) error {
	prefix := fmt.Sprintf("items[%d]", index)
	if item.ID < 0 {
		return models.ValidationError{Field: prefix + ".id", Message: "identifier must not be negative"}
	}
	if item.Name == "" {
		return models.ValidationError{Field: prefix + ".name", Message: "name is required"}
	}
	if len(item.Name) > 100 {
		return models.ValidationError{Field: prefix + ".name", Message: "name must not exceed 100 characters"}
	}
	if item.Category == "" {
		return models.ValidationError{Field: prefix + ".category", Message: "category is required"}
	}
	if item.Price < 0 {
		return models.ValidationError{Field: prefix + ".price", Message: "price must not be negative"}
	}
	return nil
}
