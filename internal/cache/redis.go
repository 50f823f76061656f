package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mickey-panda/caffeine-club-online/internal/models"
)

const catalogKey = "menu:catalog"

// RedisCatalogCache stores the serialized catalog under a single key
// with a jittered TTL so concurrent instances don't expire in lockstep.
type RedisCatalogCache struct {
	client  *redis.Client
	baseTTL time.Duration
}

func NewRedisCatalogCache(client *redis.Client, ttl time.Duration) *RedisCatalogCache {
	return &RedisCatalogCache{client: client, baseTTL: ttl}
}

func (r *RedisCatalogCache) Get(ctx context.Context) ([]models.CatalogItem, error) {
	data, err := r.client.Get(ctx, catalogKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var items []models.CatalogItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("unmarshal catalog failed: %w", err)
	}
	return items, nil
}

func (r *RedisCatalogCache) Set(ctx context.Context, items []models.CatalogItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal catalog failed: %w", err)
	}

	jitter := time.Duration(rand.Intn(60)) * time.Second
	if err := r.client.Set(ctx, catalogKey, data, r.baseTTL+jitter).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (r *RedisCatalogCache) Invalidate(ctx context.Context) error {
	if err := r.client.Del(ctx, catalogKey).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}
