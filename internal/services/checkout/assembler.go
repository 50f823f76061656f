// Package checkout turns a session cart and a chosen delivery slot into
// a persisted order and the WhatsApp handoff the customer finalizes
// with.
package checkout

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/mickey-panda/caffeine-club-online/internal/models"
)

// Validation failures detected before any storage interaction.
var (
	ErrEmptyCart      = models.ValidationError{Field: "cart", Message: "cart is empty"}
	ErrNoSlotSelected = models.ValidationError{Field: "slot", Message: "no delivery slot selected"}
)

// slotLayout is the fixed human-readable style used in the handoff
// message, e.g. "15 Sep 2025, 1:00 PM".
const slotLayout = "2 Jan 2006, 3:04 PM"

// Assemble snapshots the cart lines into an order record. The snapshot
// has a lifetime independent from the live cart. CreatedAt is left
// zero; the store stamps it on persist.
func Assemble(lines []models.CartLine, payable int64, slot time.Time, status models.OrderStatus) (*models.Order, error) {
	if slot.IsZero() {
		return nil, ErrNoSlotSelected
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	if !status.Valid() {
		return nil, models.ValidationError{Field: "status", Message: fmt.Sprintf("unknown order status %q", status)}
	}

	snapshot := make([]models.CartLine, len(lines))
	copy(snapshot, lines)

	return &models.Order{
		Items:  snapshot,
		Total:  payable,
		Slot:   slot,
		Status: status,
	}, nil
}

// FormatHandoffMessage renders the order summary forwarded over the
// messaging channel: one line per cart line, then the order identifier,
// the total and the slot.
func FormatHandoffMessage(order *models.Order, orderID, currency string) string {
	var b strings.Builder
	b.WriteString("Hi, I placed an order:\n")
	for _, line := range order.Items {
		fmt.Fprintf(&b, "%s(%s) x%d = %s%d\n", line.Item.Name, line.Item.Category, line.Quantity, currency, line.LineTotal())
	}
	fmt.Fprintf(&b, "Order ID: %s\n", orderID)
	fmt.Fprintf(&b, "Total: %s%d\n", currency, order.Total)
	fmt.Fprintf(&b, "Slot: %s", order.Slot.Format(slotLayout))
	return b.String()
}

// HandoffLink builds the wa.me deep link for the handoff message. The
// message is URL-escaped here, at the link boundary.
func HandoffLink(phone, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", phone, url.QueryEscape(message))
}
