// Package server wires the storefront API onto chi. Handlers stay
// thin: decode, call the service, encode.
package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mickey-panda/caffeine-club-online/internal/logger"
	"github.com/mickey-panda/caffeine-club-online/internal/models"
	"github.com/mickey-panda/caffeine-club-online/internal/services/cartsession"
	"github.com/mickey-panda/caffeine-club-online/internal/services/checkout"
	"github.com/mickey-panda/caffeine-club-online/internal/slots"
)

// CatalogService is the menu surface the API exposes.
type CatalogService interface {
	Menu(ctx context.Context) ([]models.CatalogItem, error)
	Upsert(ctx context.Context, items []models.CatalogItem) error
}

// CartService is the session cart surface.
type CartService interface {
	Get(ctx context.Context, sessionID string) (cartsession.View, error)
	AddItem(ctx context.Context, sessionID string, itemID, delta int) (cartsession.View, error)
	RemoveItem(ctx context.Context, sessionID string, itemID int) (cartsession.View, error)
	Clear(ctx context.Context, sessionID string) error
	ApplyPromo(ctx context.Context, sessionID, code string) (int64, error)
}

// CheckoutService is the slot listing and confirmation surface.
type CheckoutService interface {
	AvailableSlots() []slots.DayGroup
	Checkout(ctx context.Context, req checkout.Request) (*checkout.Result, error)
}

// Pinger is anything whose liveness the health endpoint reports.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server holds the API dependencies.
type Server struct {
	catalog  CatalogService
	carts    CartService
	checkout CheckoutService
	storage  Pinger
	logger   *logger.Logger
}

func New(catalog CatalogService, carts CartService, co CheckoutService, storage Pinger, log *logger.Logger) *Server {
	return &Server{
		catalog:  catalog,
		carts:    carts,
		checkout: co,
		storage:  storage,
		logger:   log,
	}
}

// Router builds the HTTP routing table.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/menu", s.handleMenu)
		r.Post("/admin/menu", s.handleUpsertMenu)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", s.handleGetCart)
			r.Delete("/", s.handleClearCart)
			r.Post("/items", s.handleAddCartItem)
			r.Delete("/items/{itemID}", s.handleRemoveCartItem)
			r.Post("/promo", s.handleApplyPromo)
		})

		r.Get("/slots", s.handleSlots)
		r.Post("/orders", s.handleCheckout)
	})

	return r
}
