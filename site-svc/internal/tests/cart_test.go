package tests

import (
	"math"
	"testing"

	"sabor-autentico/site-svc/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	carpaccio = domain.MenuItem{ID: "entrada-1", Name: "Carpaccio de Salmón", Price: 18}
	tiramisu  = domain.MenuItem{ID: "postre-1", Name: "Tiramisú Clásico", Price: 12}
	agua      = domain.MenuItem{ID: "bebida-2", Name: "Agua Infusionada", Price: 6}
)

func TestCart_AddMergesLinesPerItem(t *testing.T) {
	cart := domain.NewCart()

	cart.Add(carpaccio)
	cart.Add(tiramisu)
	cart.Add(carpaccio)
	cart.Add(agua)
	cart.Add(carpaccio)

	lines := cart.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, "entrada-1", lines[0].Item.ID)
	assert.Equal(t, "postre-1", lines[1].Item.ID)
	assert.Equal(t, "bebida-2", lines[2].Item.ID)
	assert.Equal(t, 3, cart.Quantity("entrada-1"))
	assert.Equal(t, 1, cart.Quantity("postre-1"))
	assert.Equal(t, 5, cart.ItemCount())
}

func TestCart_UpdateQuantity(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		quantity  int
		wantLines int
		wantQty   int
	}{
		{name: "set_quantity", id: "entrada-1", quantity: 4, wantLines: 2, wantQty: 4},
		{name: "zero_removes", id: "entrada-1", quantity: 0, wantLines: 1, wantQty: 0},
		{name: "negative_removes", id: "entrada-1", quantity: -3, wantLines: 1, wantQty: 0},
		{name: "unknown_id_is_noop", id: "principal-9", quantity: 2, wantLines: 2, wantQty: 1},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			cart := domain.NewCart()
			cart.Add(carpaccio)
			cart.Add(tiramisu)

			cart.UpdateQuantity(testCase.id, testCase.quantity)

			assert.Equal(t, testCase.wantLines, cart.Len())
			if testCase.id == "entrada-1" {
				assert.Equal(t, testCase.wantQty, cart.Quantity("entrada-1"))
			} else {
				assert.Equal(t, 1, cart.Quantity("entrada-1"))
			}
		})
	}
}

func TestCart_UpdateToZeroEqualsRemove(t *testing.T) {
	updated := domain.NewCart()
	removed := domain.NewCart()
	for _, c := range []*domain.Cart{updated, removed} {
		c.Add(carpaccio)
		c.Add(tiramisu)
		c.Add(agua)
	}

	updated.UpdateQuantity("postre-1", 0)
	removed.Remove("postre-1")

	assert.Equal(t, removed.Lines(), updated.Lines())
	assert.Equal(t, removed.Totals(), updated.Totals())
}

func TestCart_Totals(t *testing.T) {
	cart := domain.NewCart()
	cart.Add(carpaccio)
	cart.Add(carpaccio)

	totals := cart.Totals()
	assert.Equal(t, 36.0, totals.Subtotal)
	assert.Equal(t, 2.88, totals.Tax)
	assert.Equal(t, 5.0, totals.DeliveryFee)
	assert.Equal(t, 43.88, totals.Total)
	assert.Equal(t, 2, totals.ItemCount)
}

func TestCart_TotalsRoundTax(t *testing.T) {
	cart := domain.NewCart()
	cart.Add(domain.MenuItem{ID: "x", Price: 14})
	cart.Add(agua)
	cart.Add(agua)

	totals := cart.Totals()
	assert.Equal(t, 26.0, totals.Subtotal)
	assert.Equal(t, 2.08, totals.Tax)
	assert.Equal(t, 33.08, totals.Total)
}

func TestCart_ClearYieldsZeroTotals(t *testing.T) {
	cart := domain.NewCart()
	cart.Add(carpaccio)
	cart.Add(tiramisu)

	cart.Clear()

	assert.Empty(t, cart.Lines())
	assert.Equal(t, domain.CartTotals{}, cart.Totals())
}

func TestCart_LinesReturnsCopy(t *testing.T) {
	cart := domain.NewCart()
	cart.Add(carpaccio)

	lines := cart.Lines()
	lines[0].Quantity = 99

	assert.Equal(t, 1, cart.Quantity("entrada-1"))
}

func TestCart_ItemCountSaturates(t *testing.T) {
	cart := domain.NewCart()
	cart.Add(carpaccio)
	cart.Add(tiramisu)

	cart.UpdateQuantity(carpaccio.ID, math.MaxInt)
	cart.UpdateQuantity(tiramisu.ID, math.MaxInt)

	assert.Equal(t, math.MaxInt, cart.ItemCount())
	assert.Equal(t, math.MaxInt, cart.Totals().ItemCount)

	cart.UpdateQuantity(tiramisu.ID, 1)
	assert.Equal(t, math.MaxInt, cart.ItemCount())

	cart.UpdateQuantity(carpaccio.ID, 2)
	assert.Equal(t, 3, cart.ItemCount())
}
