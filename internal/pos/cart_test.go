package pos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kiloanItem() Item {
	return Item{CatalogItemID: 1, Kind: LineService, Name: "Cuci Setrika Kiloan", UnitPrice: 5000}
}

func detergentItem() Item {
	return Item{CatalogItemID: 2, Kind: LineProduct, Name: "Deterjen Botol", UnitPrice: 25000}
}

func TestCartSubtotalMatchesLines(t *testing.T) {
	cart := NewCart()

	service, err := cart.AddLine(kiloanItem(), 2)
	require.NoError(t, err)
	product, err := cart.AddLine(detergentItem(), 1)
	require.NoError(t, err)
	assert.Equal(t, 35000.0, cart.Subtotal())

	require.NoError(t, cart.UpdateLine(service.ID, 3.5))
	assert.Equal(t, 5000*3.5+25000, cart.Subtotal())

	require.True(t, cart.RemoveLine(product.ID))
	assert.Equal(t, 17500.0, cart.Subtotal())

	// subtotal is always the sum over remaining lines
	var sum float64
	for _, l := range cart.Lines() {
		sum += l.Subtotal()
	}
	assert.Equal(t, sum, cart.Subtotal())
}

func TestAddLineQuantityRules(t *testing.T) {
	cart := NewCart()

	for _, qty := range []float64{0, -1, 1.5} {
		_, err := cart.AddLine(detergentItem(), qty)
		assert.ErrorIs(t, err, ErrInvalidQuantity, "product qty %v", qty)
	}
	for _, weight := range []float64{0, 0.3, 0.75, -0.5} {
		_, err := cart.AddLine(kiloanItem(), weight)
		assert.ErrorIs(t, err, ErrInvalidQuantity, "service weight %v", weight)
	}
	assert.True(t, cart.Empty())

	_, err := cart.AddLine(kiloanItem(), 0.5)
	assert.NoError(t, err)
	_, err = cart.AddLine(kiloanItem(), 2.5)
	assert.NoError(t, err)
}

func TestUpdateLineFailuresLeaveCartUnchanged(t *testing.T) {
	cart := NewCart()
	line, err := cart.AddLine(detergentItem(), 2)
	require.NoError(t, err)

	err = cart.UpdateLine(line.ID, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
	assert.Equal(t, 2.0, cart.Lines()[0].Quantity)
	assert.Equal(t, 50000.0, cart.Subtotal())

	err = cart.UpdateLine("no-such-line", 3)
	assert.ErrorIs(t, err, ErrLineNotFound)
	assert.Equal(t, 50000.0, cart.Subtotal())
}

func TestRemoveLineIsIdempotent(t *testing.T) {
	cart := NewCart()
	line, err := cart.AddLine(detergentItem(), 1)
	require.NoError(t, err)

	assert.True(t, cart.RemoveLine(line.ID))
	assert.False(t, cart.RemoveLine(line.ID))
	assert.True(t, cart.Empty())
}

func TestClearDropsLinesAndPromos(t *testing.T) {
	cart := NewCart()
	_, err := cart.AddLine(kiloanItem(), 2)
	require.NoError(t, err)
	require.NoError(t, cart.ApplyPromo(Promo{Code: "DISKON10", DiscountValue: 10, IsPercentage: true}))

	cart.Clear()
	assert.True(t, cart.Empty())
	assert.Empty(t, cart.Promos())
	assert.Equal(t, 0.0, cart.Subtotal())
	assert.Equal(t, 0.0, cart.Totals().Total)
}

func TestApplyPromoRejectsDuplicateCaseInsensitive(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.ApplyPromo(Promo{Code: "DISKON10", DiscountValue: 10, IsPercentage: true}))

	err := cart.ApplyPromo(Promo{Code: "diskon10", DiscountValue: 10, IsPercentage: true})
	assert.ErrorIs(t, err, ErrDuplicateCode)
	assert.Len(t, cart.Promos(), 1)
}
