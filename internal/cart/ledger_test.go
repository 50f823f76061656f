package cart

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mickey-panda/caffeine-club-online/internal/models"
)

var (
	veggiePizza = models.CatalogItem{ID: 1, Name: "Veggie Delight", Category: "Pizza", Price: 109, IsAvailable: true}
	gingerTea   = models.CatalogItem{ID: 67, Name: "Ginger Tea", Category: "Hot Beverages", Price: 20, IsAvailable: true}
	soldOut     = models.CatalogItem{ID: 5, Name: "Tandoori Chicken", Category: "Pizza", Price: 159, IsAvailable: false}
)

func TestAddOrIncrement_InsertAndMerge(t *testing.T) {
	l := NewLedger()

	l.AddOrIncrement(veggiePizza, 1)
	l.AddOrIncrement(gingerTea, 2)
	l.AddOrIncrement(veggiePizza, 1)

	require.Equal(t, 2, l.Len(), "one line per distinct item")
	lines := l.Lines()
	assert.Equal(t, 1, lines[0].Item.ID)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 67, lines[1].Item.ID)
	assert.Equal(t, 2, lines[1].Quantity)
}

func TestAddOrIncrement_InverseDeltaRoundTrip(t *testing.T) {
	l := NewLedger()
	l.AddOrIncrement(veggiePizza, 3)

	l.AddOrIncrement(gingerTea, 2)
	l.AddOrIncrement(gingerTea, -2)

	require.Equal(t, 1, l.Len())
	assert.Equal(t, 3, l.Lines()[0].Quantity)
}

func TestAddOrIncrement_RemovesOnZeroCross(t *testing.T) {
	l := NewLedger()
	l.AddOrIncrement(veggiePizza, 2)

	// Crossing zero removes the line; it must not linger at quantity 0.
	l.AddOrIncrement(veggiePizza, -5)

	assert.Equal(t, 0, l.Len())
	assert.Zero(t, l.Total())
}

func TestAddOrIncrement_NegativeDeltaOnAbsentItemIsNoop(t *testing.T) {
	l := NewLedger()
	l.AddOrIncrement(veggiePizza, -1)
	assert.Equal(t, 0, l.Len())
}

func TestAddOrIncrement_UnavailableItem(t *testing.T) {
	l := NewLedger()

	// Inserting an unavailable item is silently ignored.
	l.AddOrIncrement(soldOut, 1)
	assert.Equal(t, 0, l.Len())

	// A line that predates an availability flip can still be
	// decremented.
	available := soldOut
	available.IsAvailable = true
	l.AddOrIncrement(available, 2)
	l.AddOrIncrement(soldOut, -1)
	require.Equal(t, 1, l.Len())
	assert.Equal(t, 1, l.Lines()[0].Quantity)
}

func TestRemove(t *testing.T) {
	l := NewLedger()
	l.AddOrIncrement(veggiePizza, 1)
	l.AddOrIncrement(gingerTea, 1)

	l.Remove(veggiePizza.ID)
	require.Equal(t, 1, l.Len())
	assert.Equal(t, gingerTea.ID, l.Lines()[0].Item.ID)

	l.Remove(999) // unknown id is a no-op
	assert.Equal(t, 1, l.Len())
}

func TestTotalAndItemCount_Randomized(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 100; trial++ {
		l := NewLedger()
		var wantTotal int64
		var wantCount int

		n := rng.Intn(12)
		for i := 0; i < n; i++ {
			item := models.CatalogItem{
				ID:          i,
				Name:        "Item",
				Category:    "Cat",
				Price:       int64(rng.Intn(500)),
				IsAvailable: true,
			}
			qty := 1 + rng.Intn(9)
			l.AddOrIncrement(item, qty)
			wantTotal += item.Price * int64(qty)
			wantCount += qty
		}

		assert.Equal(t, wantTotal, l.Total())
		assert.Equal(t, wantCount, l.ItemCount())
	}
}

func TestLines_ReturnsIndependentSnapshot(t *testing.T) {
	l := NewLedger()
	l.AddOrIncrement(veggiePizza, 1)

	snapshot := l.Lines()
	l.AddOrIncrement(veggiePizza, 4)

	assert.Equal(t, 1, snapshot[0].Quantity)
	assert.Equal(t, 5, l.Lines()[0].Quantity)
}

func TestFromLines_DropsInvalidQuantities(t *testing.T) {
	l := FromLines([]models.CartLine{
		{Item: veggiePizza, Quantity: 2},
		{Item: gingerTea, Quantity: 0},
		{Item: soldOut, Quantity: -3},
	})

	require.Equal(t, 1, l.Len())
	assert.Equal(t, veggiePizza.ID, l.Lines()[0].Item.ID)
}

func TestLedgerJSONRoundTrip(t *testing.T) {
	l := NewLedger()
	l.AddOrIncrement(veggiePizza, 1)
	l.AddOrIncrement(gingerTea, 2)

	data, err := json.Marshal(l)
	require.NoError(t, err)

	restored := NewLedger()
	require.NoError(t, json.Unmarshal(data, restored))
	assert.Equal(t, l.Lines(), restored.Lines())
	assert.Equal(t, l.Total(), restored.Total())
}

func TestLedgerUnmarshal_CorruptPayload(t *testing.T) {
	restored := NewLedger()
	err := json.Unmarshal([]byte("{not json"), restored)
	assert.Error(t, err)
}

func TestApplyPromo(t *testing.T) {
	rules := PromoRules{Code: "WELCOME50", MinSubtotal: 200, Discount: 50}

	t.Run("success at minimum subtotal", func(t *testing.T) {
		l := NewLedger()
		l.AddOrIncrement(models.CatalogItem{ID: 1, Name: "A", Category: "C", Price: 200, IsAvailable: true}, 1)

		discount, err := l.ApplyPromo("welcome50", rules)
		require.NoError(t, err)
		assert.Equal(t, int64(50), discount)
	})

	t.Run("input is trimmed and case-insensitive", func(t *testing.T) {
		l := NewLedger()
		l.AddOrIncrement(models.CatalogItem{ID: 1, Name: "A", Category: "C", Price: 300, IsAvailable: true}, 1)

		discount, err := l.ApplyPromo("  Welcome50  ", rules)
		require.NoError(t, err)
		assert.Equal(t, int64(50), discount)
	})

	t.Run("minimum not met", func(t *testing.T) {
		l := NewLedger()
		l.AddOrIncrement(models.CatalogItem{ID: 1, Name: "A", Category: "C", Price: 150, IsAvailable: true}, 1)

		_, err := l.ApplyPromo("WELCOME50", rules)
		var promoErr *PromoError
		require.ErrorAs(t, err, &promoErr)
		assert.Equal(t, ReasonMinimumNotMet, promoErr.Reason)
	})

	t.Run("code mismatch", func(t *testing.T) {
		l := NewLedger()
		l.AddOrIncrement(models.CatalogItem{ID: 1, Name: "A", Category: "C", Price: 500, IsAvailable: true}, 1)

		_, err := l.ApplyPromo("DIWALI20", rules)
		var promoErr *PromoError
		require.ErrorAs(t, err, &promoErr)
		assert.Equal(t, ReasonCodeMismatch, promoErr.Reason)
	})

	t.Run("storefront scenario: 149 cart misses the minimum", func(t *testing.T) {
		l := NewLedger()
		l.AddOrIncrement(models.CatalogItem{ID: 1, Name: "Veggie Delight", Category: "Pizza", Price: 109, IsAvailable: true}, 1)
		l.AddOrIncrement(models.CatalogItem{ID: 67, Name: "Ginger Tea", Category: "Hot Beverages", Price: 20, IsAvailable: true}, 2)

		require.Equal(t, int64(149), l.Total())
		_, err := l.ApplyPromo("WELCOME50", rules)
		var promoErr *PromoError
		require.ErrorAs(t, err, &promoErr)
		assert.Equal(t, ReasonMinimumNotMet, promoErr.Reason)
		assert.Equal(t, int64(149), Payable(l.Total(), 0))
	})
}

func TestPayable_FloorsAtZero(t *testing.T) {
	assert.Equal(t, int64(99), Payable(149, 50))
	assert.Equal(t, int64(0), Payable(30, 50))
	assert.Equal(t, int64(0), Payable(50, 50))
}
