package checkout

import (
	"context"
	"time"

	"github.com/mickey-panda/caffeine-club-online/internal/cart"
	"github.com/mickey-panda/caffeine-club-online/internal/logger"
	"github.com/mickey-panda/caffeine-club-online/internal/messaging"
	"github.com/mickey-panda/caffeine-club-online/internal/models"
	"github.com/mickey-panda/caffeine-club-online/internal/slots"
)

// CartAccess is what checkout needs from the session cart store.
type CartAccess interface {
	Load(ctx context.Context, sessionID string) (*cart.Ledger, error)
	Clear(ctx context.Context, sessionID string) error
}

// OrderStore is the order-write surface of the storage collaborator.
type OrderStore interface {
	PersistOrder(ctx context.Context, order *models.Order) (string, error)
}

// EventPublisher emits order lifecycle events. May be absent.
type EventPublisher interface {
	PublishOrderPlaced(ctx context.Context, event messaging.OrderPlacedEvent) error
}

// Service runs the confirmation flow: validate, assemble, persist,
// announce, and hand the customer off to WhatsApp.
type Service struct {
	carts     CartAccess
	store     OrderStore
	generator slots.Generator
	promo     cart.PromoRules
	publisher EventPublisher // nil when messaging is disabled
	phone     string
	currency  string
	logger    *logger.Logger
	now       func() time.Time
}

func NewService(carts CartAccess, store OrderStore, generator slots.Generator, promo cart.PromoRules,
	publisher EventPublisher, phone, currency string, log *logger.Logger) *Service {
	return &Service{
		carts:     carts,
		store:     store,
		generator: generator,
		promo:     promo,
		publisher: publisher,
		phone:     phone,
		currency:  currency,
		logger:    log,
		now:       time.Now,
	}
}

// Request is one confirmation attempt for a session's cart.
type Request struct {
	SessionID string
	Slot      time.Time
	PromoCode string
}

// Result reports the persisted order and the handoff link.
type Result struct {
	OrderID  string    `json:"order_id"`
	Total    int64     `json:"total"`
	Discount int64     `json:"discount"`
	Payable  int64     `json:"payable"`
	Slot     time.Time `json:"slot"`
	Handoff  string    `json:"whatsapp_url"`
}

// AvailableSlots returns the delivery slots currently on offer, grouped
// by calendar day. Empty means no deliveries are available.
func (s *Service) AvailableSlots() []slots.DayGroup {
	return slots.GroupByDay(s.generator.Generate(s.now()))
}

// Checkout validates the request, persists the order once and builds
// the handoff link. All validation happens before the storage write; a
// storage failure is surfaced verbatim with no retry, leaving the cart
// intact for a manual re-attempt.
func (s *Service) Checkout(ctx context.Context, req Request) (*Result, error) {
	requestID := logger.GenerateRequestID()

	ledger, err := s.carts.Load(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}

	if ledger.Len() == 0 {
		return nil, ErrEmptyCart
	}
	if req.Slot.IsZero() {
		return nil, ErrNoSlotSelected
	}
	if !s.generator.Contains(s.now(), req.Slot) {
		return nil, models.ValidationError{Field: "slot", Message: "slot is not available"}
	}

	total := ledger.Total()
	var discount int64
	if req.PromoCode != "" {
		discount, err = ledger.ApplyPromo(req.PromoCode, s.promo)
		if err != nil {
			return nil, err
		}
	}
	payable := cart.Payable(total, discount)

	order, err := Assemble(ledger.Lines(), payable, req.Slot, models.StatusPlaced)
	if err != nil {
		return nil, err
	}

	orderID, err := s.store.PersistOrder(ctx, order)
	if err != nil {
		s.logger.Error("order_persist_failed", requestID, "Failed to persist order", err)
		return nil, err
	}
	order.ID = orderID

	s.logger.Info("order_placed", requestID, "Order persisted",
		"order_id", orderID, "total", total, "payable", payable, "slot", req.Slot)

	if s.publisher != nil {
		event := messaging.OrderPlacedEvent{
			OrderID:   orderID,
			Total:     payable,
			ItemCount: ledger.ItemCount(),
			Slot:      order.Slot,
			Status:    string(order.Status),
			PlacedAt:  order.CreatedAt,
		}
		if err := s.publisher.PublishOrderPlaced(ctx, event); err != nil {
			// The order is saved and the handoff carries the ID; a lost
			// event must not fail the checkout.
			s.logger.Error("order_event_failed", requestID, "Failed to publish order.placed", err,
				"order_id", orderID)
		}
	}

	if err := s.carts.Clear(ctx, req.SessionID); err != nil {
		s.logger.Error("cart_clear_failed", requestID, "Failed to clear session cart", err,
			"session_id", req.SessionID)
	}

	message := FormatHandoffMessage(order, orderID, s.currency)
	return &Result{
		OrderID:  orderID,
		Total:    total,
		Discount: discount,
		Payable:  payable,
		Slot:     order.Slot,
		Handoff:  HandoffLink(s.phone, message),
	}, nil
}
