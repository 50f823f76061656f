// Package cart owns the quantity-indexed set of selected catalog items
// for one session and computes derived totals. The ledger is pure state
// with no lifecycle beyond existing or being empty; durability lives in
// the session store.
package cart

import (
	"encoding/json"

	"github.com/mickey-panda/caffeine-club-online/internal/models"
)

// Ledger maps selected catalog items to quantities. At most one line
// exists per item ID and insertion order is preserved. Not safe for
// concurrent use; each session has its own ledger.
type Ledger struct {
	lines []models.CartLine
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// FromLines restores a ledger from a stored snapshot. Lines with a
// non-positive quantity are dropped rather than restored.
func FromLines(lines []models.CartLine) *Ledger {
	l := &Ledger{}
	for _, line := range lines {
		if line.Quantity > 0 {
			l.lines = append(l.lines, line)
		}
	}
	return l
}

// AddOrIncrement merges delta into the line for item. A resulting
// quantity <= 0 removes the line entirely. Inserting a new line
// requires delta > 0 and an available item; an insert of an
// unavailable item is a silent no-op. Decrementing a line that already
// exists is always permitted, even after an availability flip.
func (l *Ledger) AddOrIncrement(item models.CatalogItem, delta int) {
	for i := range l.lines {
		if l.lines[i].Item.ID != item.ID {
			continue
		}
		q := l.lines[i].Quantity + delta
		if q <= 0 {
			l.lines = append(l.lines[:i], l.lines[i+1:]...)
			return
		}
		l.lines[i].Quantity = q
		return
	}
	if delta <= 0 || !item.IsAvailable {
		return
	}
	l.lines = append(l.lines, models.CartLine{Item: item, Quantity: delta})
}

// Remove deletes the line for itemID if present.
func (l *Ledger) Remove(itemID int) {
	for i := range l.lines {
		if l.lines[i].Item.ID == itemID {
			l.lines = append(l.lines[:i], l.lines[i+1:]...)
			return
		}
	}
}

// Total returns the cart subtotal: sum of price x quantity over all
// lines.
func (l *Ledger) Total() int64 {
	var total int64
	for _, line := range l.lines {
		total += line.LineTotal()
	}
	return total
}

// ItemCount returns the sum of quantities over all lines.
func (l *Ledger) ItemCount() int {
	var count int
	for _, line := range l.lines {
		count += line.Quantity
	}
	return count
}

// Len returns the number of distinct lines.
func (l *Ledger) Len() int {
	return len(l.lines)
}

// Lines returns a snapshot copy with a lifetime independent from the
// live ledger.
func (l *Ledger) Lines() []models.CartLine {
	out := make([]models.CartLine, len(l.lines))
	copy(out, l.lines)
	return out
}

// Clear empties the ledger.
func (l *Ledger) Clear() {
	l.lines = nil
}

// MarshalJSON serializes the ledger as its line slice, matching the
// shape the session store persists.
func (l *Ledger) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.lines)
}

// UnmarshalJSON restores the ledger from a stored line slice, dropping
// invalid lines the way FromLines does.
func (l *Ledger) UnmarshalJSON(data []byte) error {
	var lines []models.CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		return err
	}
	l.lines = FromLines(lines).lines
	return nil
}
