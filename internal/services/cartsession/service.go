package cartsession

import (
	"context"
	"fmt"

	"github.com/mickey-panda/caffeine-club-online/internal/cart"
	"github.com/mickey-panda/caffeine-club-online/internal/logger"
	"github.com/mickey-panda/caffeine-club-online/internal/models"
)

// Catalog is the read surface cartsession needs from the menu service.
type Catalog interface {
	Menu(ctx context.Context) ([]models.CatalogItem, error)
}

// Service exposes the cart operations behind the storefront's cart
// endpoints. The ledger holds the rules; this layer adds catalog
// lookups and durability.
type Service struct {
	store   Store
	catalog Catalog
	promo   cart.PromoRules
	logger  *logger.Logger
}

func NewService(store Store, catalog Catalog, promo cart.PromoRules, log *logger.Logger) *Service {
	return &Service{
		store:   store,
		catalog: catalog,
		promo:   promo,
		logger:  log,
	}
}

// View is the cart as presented to the client.
type View struct {
	Lines     []models.CartLine `json:"lines"`
	ItemCount int               `json:"item_count"`
	Total     int64             `json:"total"`
}

func viewOf(ledger *cart.Ledger) View {
	return View{
		Lines:     ledger.Lines(),
		ItemCount: ledger.ItemCount(),
		Total:     ledger.Total(),
	}
}

// Get returns the session's current cart.
func (s *Service) Get(ctx context.Context, sessionID string) (View, error) {
	ledger, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return View{}, err
	}
	return viewOf(ledger), nil
}

// AddItem merges delta units of the identified catalog item into the
// session cart. An unknown item is a validation error; inserting an
// unavailable item is a silent no-op per the ledger rules.
func (s *Service) AddItem(ctx context.Context, sessionID string, itemID, delta int) (View, error) {
	if delta == 0 {
		return View{}, models.ValidationError{Field: "delta", Message: "delta must not be zero"}
	}

	item, err := s.lookupItem(ctx, itemID)
	if err != nil {
		return View{}, err
	}

	ledger, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return View{}, err
	}

	ledger.AddOrIncrement(item, delta)
	if err := s.store.Save(ctx, sessionID, ledger); err != nil {
		return View{}, err
	}
	return viewOf(ledger), nil
}

// RemoveItem deletes the line for itemID unconditionally.
func (s *Service) RemoveItem(ctx context.Context, sessionID string, itemID int) (View, error) {
	ledger, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return View{}, err
	}

	ledger.Remove(itemID)
	if err := s.store.Save(ctx, sessionID, ledger); err != nil {
		return View{}, err
	}
	return viewOf(ledger), nil
}

// Clear empties the session cart.
func (s *Service) Clear(ctx context.Context, sessionID string) error {
	return s.store.Clear(ctx, sessionID)
}

// ApplyPromo checks code against the configured rules and the live
// cart, returning the discount that would apply at checkout.
func (s *Service) ApplyPromo(ctx context.Context, sessionID, code string) (int64, error) {
	ledger, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	return ledger.ApplyPromo(code, s.promo)
}

func (s *Service) lookupItem(ctx context.Context, itemID int) (models.CatalogItem, error) {
	items, err := s.catalog.Menu(ctx)
	if err != nil {
		return models.CatalogItem{}, err
	}
	for _, item := range items {
		if item.ID == itemID {
			return item, nil
		}
	}
	return models.CatalogItem{}, models.ValidationError{
		Field:   "item_id",
		Message: fmt.Sprintf("unknown catalog item %d", itemID),
	}
}
