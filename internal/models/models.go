package models

import "time"

// CatalogItem is a single menu entry. Items are owned by the storage
// layer and treated as read-only once fetched.
type CatalogItem struct {
	ID          int    `json:"id" bson:"id"`
	Name        string `json:"name" bson:"name"`
	Category    string `json:"category" bson:"category"`
	Price       int64  `json:"price" bson:"price"`
	IsAvailable bool   `json:"isAvailable" bson:"isAvailable"`
}

// CartLine pairs a catalog item with a quantity. A line with quantity
// <= 0 must never exist; the ledger removes the line instead.
type CartLine struct {
	Item     CatalogItem `json:"item" bson:"item"`
	Quantity int         `json:"quantity" bson:"quantity"`
}

// LineTotal returns the line's price contribution in the smallest
// currency unit.
func (l CartLine) LineTotal() int64 {
	return l.Item.Price * int64(l.Quantity)
}

// OrderStatus represents the status of a persisted order.
type OrderStatus string

const (
	StatusPlaced    OrderStatus = "placed"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPaid      OrderStatus = "paid"
	StatusDelivered OrderStatus = "delivered"
	StatusCanceled  OrderStatus = "canceled"
	StatusRefunded  OrderStatus = "refunded"
)

// Valid reports whether s is one of the known order statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPlaced, StatusConfirmed, StatusPaid, StatusDelivered, StatusCanceled, StatusRefunded:
		return true
	}
	return false
}

// Order is the record persisted at confirmation. Items are a snapshot
// with a lifetime independent from the live cart. CreatedAt is zero
// until the store stamps it on persist.
type Order struct {
	ID        string      `json:"id,omitempty" bson:"-"`
	Items     []CartLine  `json:"items" bson:"items"`
	Total     int64       `json:"total" bson:"total"`
	Slot      time.Time   `json:"slot" bson:"slot"`
	CreatedAt time.Time   `json:"created_at,omitempty" bson:"createdAt"`
	Status    OrderStatus `json:"status" bson:"status"`
}
