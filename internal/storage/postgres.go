package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mickey-panda/caffeine-club-online/internal/config"
	"github.com/mickey-panda/caffeine-club-online/internal/logger"
	"github.com/mickey-panda/caffeine-club-online/internal/models"
)

// PostgresStore keeps the catalog and orders in PostgreSQL for
// self-hosted deployments.
type PostgresStore struct {
	pool   *pgxpool.Pool
	logger *logger.Logger
}

const postgresSchema = `
CREATE TABLE IF NOT EXISTS menu_items (
	id INTEGER PRIMARY KEY,
	name VARCHAR(100) NOT NULL,
	category VARCHAR(100) NOT NULL,
	price BIGINT NOT NULL,
	is_available BOOLEAN NOT NULL DEFAULT TRUE
);

CREATE TABLE IF NOT EXISTS orders (
	id SERIAL PRIMARY KEY,
	number VARCHAR(32) NOT NULL UNIQUE,
	total BIGINT NOT NULL,
	slot TIMESTAMPTZ NOT NULL,
	status VARCHAR(16) NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS order_items (
	id SERIAL PRIMARY KEY,
	order_id INTEGER NOT NULL REFERENCES orders(id),
	item_id INTEGER NOT NULL,
	name VARCHAR(100) NOT NULL,
	category VARCHAR(100) NOT NULL,
	price BIGINT NOT NULL,
	quantity INTEGER NOT NULL
);
`

const (
	selectCatalogSQL = `
		SELECT id, name, category, price, is_available
		FROM menu_items ORDER BY id ASC`

	upsertCatalogItemSQL = `
		INSERT INTO menu_items (id, name, category, price, is_available)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			category = EXCLUDED.category,
			price = EXCLUDED.price,
			is_available = EXCLUDED.is_available`

	insertOrderSQL = `
		INSERT INTO orders (number, total, slot, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	insertOrderItemSQL = `
		INSERT INTO order_items (order_id, item_id, name, category, price, quantity)
		VALUES ($1, $2, $3, $4, $5, $6)`

	nextOrderSequenceSQL = `
		SELECT COALESCE(MAX(CAST(SUBSTRING(number FROM 'ORD_[0-9]{8}_([0-9]{3})') AS INTEGER)), 0) + 1
		FROM orders
		WHERE number LIKE $1`
)

// NewPostgresStore connects to PostgreSQL with retries and bootstraps
// the schema.
func NewPostgresStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (*PostgresStore, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MaxConns = 25
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = time.Minute * 30

	var pool *pgxpool.Pool
	maxRetries := 5
	for i := 0; i < maxRetries; i++ {
		pool, err = pgxpool.NewWithConfig(ctx, poolConfig)
		if err == nil {
			pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			err = pool.Ping(pingCtx)
			cancel()
			if err == nil {
				break
			}
			pool.Close()
		}

		if i < maxRetries-1 {
			waitTime := time.Duration(i+1) * 2 * time.Second
			log.Error("db_connection_failed",
				"startup", fmt.Sprintf("Failed to connect to database, retrying in %v", waitTime), err)
			time.Sleep(waitTime)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
	}

	s := &PostgresStore{pool: pool, logger: log}
	if err := s.bootstrap(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

func (s *PostgresStore) bootstrap(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, postgresSchema); err != nil {
		return fmt.Errorf("failed to bootstrap schema: %w", err)
	}
	s.logger.Info("schema_ready", "startup", "Database schema is up to date")
	return nil
}

// FetchCatalog returns all menu items sorted by identifier.
func (s *PostgresStore) FetchCatalog(ctx context.Context) ([]models.CatalogItem, error) {
	rows, err := s.pool.Query(ctx, selectCatalogSQL)
	if err != nil {
		return nil, storageErr("fetch catalog", err)
	}
	defer rows.Close()

	var items []models.CatalogItem
	for rows.Next() {
		var item models.CatalogItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Category, &item.Price, &item.IsAvailable); err != nil {
			return nil, storageErr("scan catalog item", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("fetch catalog", err)
	}
	return items, nil
}

// UpsertCatalogItem inserts or replaces a menu item.
func (s *PostgresStore) UpsertCatalogItem(ctx context.Context, item models.CatalogItem) error {
	_, err := s.pool.Exec(ctx, upsertCatalogItemSQL,
		item.ID, item.Name, item.Category, item.Price, item.IsAvailable)
	if err != nil {
		return storageErr("upsert catalog item", err)
	}
	return nil
}

// PersistOrder stores the order and its lines in one transaction and
// returns the generated order number (ORD_YYYYMMDD_NNN).
func (s *PostgresStore) PersistOrder(ctx context.Context, order *models.Order) (string, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return "", storageErr("begin order transaction", err)
	}
	defer tx.Rollback(ctx)

	today := time.Now().UTC().Format("20060102")
	var sequence int
	if err := tx.QueryRow(ctx, nextOrderSequenceSQL, "ORD_"+today+"_%").Scan(&sequence); err != nil {
		return "", storageErr("next order sequence", err)
	}
	number := fmt.Sprintf("ORD_%s_%03d", today, sequence)

	var orderID int
	if err := tx.QueryRow(ctx, insertOrderSQL, number, order.Total, order.Slot, order.Status).
		Scan(&orderID, &order.CreatedAt); err != nil {
		return "", storageErr("insert order", err)
	}

	for _, line := range order.Items {
		if _, err := tx.Exec(ctx, insertOrderItemSQL,
			orderID, line.Item.ID, line.Item.Name, line.Item.Category, line.Item.Price, line.Quantity); err != nil {
			return "", storageErr("insert order item", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return "", storageErr("commit order", err)
	}
	return number, nil
}

// Ping tests the database connection.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close closes the connection pool.
func (s *PostgresStore) Close(ctx context.Context) error {
	s.pool.Close()
	return nil
}
