// Package cartsession holds the live cart for each browsing session.
// Redis is the cart's sole durability mechanism: one key per session,
// expired after the configured idle TTL.
package cartsession

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mickey-panda/caffeine-club-online/internal/cart"
	"github.com/mickey-panda/caffeine-club-online/internal/logger"
)

// Store persists session carts. Load never fails on a missing or
// corrupt record; both degrade to an empty ledger so the session can
// continue.
type Store interface {
	Load(ctx context.Context, sessionID string) (*cart.Ledger, error)
	Save(ctx context.Context, sessionID string, ledger *cart.Ledger) error
	Clear(ctx context.Context, sessionID string) error
}

// RedisStore keeps each session's cart under cart:<session>.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	logger *logger.Logger
}

func NewRedisStore(client *redis.Client, ttl time.Duration, log *logger.Logger) *RedisStore {
	return &RedisStore{client: client, ttl: ttl, logger: log}
}

func cartKey(sessionID string) string {
	return "cart:" + sessionID
}

// Load restores the session's ledger. A missing key or an unparsable
// payload yields an empty ledger rather than an error.
func (s *RedisStore) Load(ctx context.Context, sessionID string) (*cart.Ledger, error) {
	data, err := s.client.Get(ctx, cartKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return cart.NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	ledger := cart.NewLedger()
	if err := json.Unmarshal(data, ledger); err != nil {
		s.logger.Error("cart_restore_failed", "", "Stored cart is unparsable, starting empty", err,
			"session_id", sessionID)
		return cart.NewLedger(), nil
	}
	return ledger, nil
}

// Save writes the ledger back and refreshes the idle TTL.
func (s *RedisStore) Save(ctx context.Context, sessionID string, ledger *cart.Ledger) error {
	data, err := json.Marshal(ledger)
	if err != nil {
		return fmt.Errorf("marshal cart failed: %w", err)
	}
	if err := s.client.Set(ctx, cartKey(sessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

// Clear removes the session's cart.
func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}
