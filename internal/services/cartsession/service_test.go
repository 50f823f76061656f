package cartsession

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mickey-panda/caffeine-club-online/internal/cart"
	"github.com/mickey-panda/caffeine-club-online/internal/logger"
	"github.com/mickey-panda/caffeine-club-online/internal/models"
)

type memoryStore struct {
	carts   map[string]*cart.Ledger
	loadErr error
	saveErr error
	saves   int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{carts: make(map[string]*cart.Ledger)}
}

func (m *memoryStore) Load(_ context.Context, sessionID string) (*cart.Ledger, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if l, ok := m.carts[sessionID]; ok {
		return cart.FromLines(l.Lines()), nil
	}
	return cart.NewLedger(), nil
}

func (m *memoryStore) Save(_ context.Context, sessionID string, ledger *cart.Ledger) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.carts[sessionID] = cart.FromLines(ledger.Lines())
	return nil
}

func (m *memoryStore) Clear(_ context.Context, sessionID string) error {
	delete(m.carts, sessionID)
	return nil
}

type staticCatalog struct {
	items []models.CatalogItem
	err   error
}

func (c *staticCatalog) Menu(context.Context) ([]models.CatalogItem, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.items, nil
}

var testPromo = cart.PromoRules{Code: "WELCOME50", MinSubtotal: 200, Discount: 50}

func newTestService(store Store, catalog Catalog) *Service {
	return NewService(store, catalog, testPromo, logger.New("test"))
}

func menuFixture() *staticCatalog {
	return &staticCatalog{items: []models.CatalogItem{
		{ID: 1, Name: "Veggie Delight", Category: "Pizza", Price: 109, IsAvailable: true},
		{ID: 67, Name: "Ginger Tea", Category: "Hot Beverages", Price: 20, IsAvailable: true},
		{ID: 5, Name: "Tandoori Chicken", Category: "Pizza", Price: 159, IsAvailable: false},
	}}
}

func TestAddItem(t *testing.T) {
	store := newMemoryStore()
	svc := newTestService(store, menuFixture())
	ctx := context.Background()

	view, err := svc.AddItem(ctx, "s1", 1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(109), view.Total)

	view, err = svc.AddItem(ctx, "s1", 67, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(149), view.Total)
	assert.Equal(t, 3, view.ItemCount)
	assert.Len(t, view.Lines, 2)
	assert.Equal(t, 2, store.saves, "each mutation is persisted")
}

func TestAddItem_ZeroDelta(t *testing.T) {
	svc := newTestService(newMemoryStore(), menuFixture())

	_, err := svc.AddItem(context.Background(), "s1", 1, 0)

	var validationErr models.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "delta", validationErr.Field)
}

func TestAddItem_UnknownItem(t *testing.T) {
	store := newMemoryStore()
	svc := newTestService(store, menuFixture())

	_, err := svc.AddItem(context.Background(), "s1", 404, 1)

	var validationErr models.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "item_id", validationErr.Field)
	assert.Zero(t, store.saves)
}

func TestAddItem_UnavailableItemIsNoop(t *testing.T) {
	svc := newTestService(newMemoryStore(), menuFixture())

	view, err := svc.AddItem(context.Background(), "s1", 5, 1)
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
}

func TestAddItem_CatalogFailureSurfaces(t *testing.T) {
	catalog := &staticCatalog{err: &models.StorageError{Op: "fetch catalog", Err: errors.New("down")}}
	svc := newTestService(newMemoryStore(), catalog)

	_, err := svc.AddItem(context.Background(), "s1", 1, 1)
	var storageErr *models.StorageError
	assert.ErrorAs(t, err, &storageErr)
}

func TestAddItem_NegativeDeltaRemovesLine(t *testing.T) {
	svc := newTestService(newMemoryStore(), menuFixture())
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s1", 1, 2)
	require.NoError(t, err)

	view, err := svc.AddItem(ctx, "s1", 1, -2)
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
	assert.Zero(t, view.Total)
}

func TestRemoveItem(t *testing.T) {
	svc := newTestService(newMemoryStore(), menuFixture())
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s1", 1, 1)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "s1", 67, 3)
	require.NoError(t, err)

	view, err := svc.RemoveItem(ctx, "s1", 1)
	require.NoError(t, err)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, 67, view.Lines[0].Item.ID)
}

func TestGetAndClear(t *testing.T) {
	store := newMemoryStore()
	svc := newTestService(store, menuFixture())
	ctx := context.Background()

	view, err := svc.Get(ctx, "fresh")
	require.NoError(t, err)
	assert.Empty(t, view.Lines)

	_, err = svc.AddItem(ctx, "s1", 1, 1)
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx, "s1"))
	view, err = svc.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
}

func TestSessionsAreIsolated(t *testing.T) {
	svc := newTestService(newMemoryStore(), menuFixture())
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "alice", 1, 1)
	require.NoError(t, err)

	view, err := svc.Get(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
}

func TestApplyPromo(t *testing.T) {
	svc := newTestService(newMemoryStore(), menuFixture())
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s1", 1, 2) // 218
	require.NoError(t, err)

	discount, err := svc.ApplyPromo(ctx, "s1", "welcome50")
	require.NoError(t, err)
	assert.Equal(t, int64(50), discount)

	_, err = svc.ApplyPromo(ctx, "s1", "NOPE")
	var promoErr *cart.PromoError
	require.ErrorAs(t, err, &promoErr)
	assert.Equal(t, cart.ReasonCodeMismatch, promoErr.Reason)
}
