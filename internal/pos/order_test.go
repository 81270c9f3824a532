package pos

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expressItem() Item {
	return Item{CatalogItemID: 3, Kind: LineService, Name: "Cuci Express", UnitPrice: 8000, Express: true}
}

func walkIn() CustomerRef {
	return CustomerRef{Name: "Budi", Phone: "081234567890"}
}

func TestAssembleOrderEmptyCart(t *testing.T) {
	_, err := AssembleOrder(NewCart(), OrderInput{Customer: walkIn()})
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestAssembleOrderMissingCustomer(t *testing.T) {
	cart := NewCart()
	_, err := cart.AddLine(kiloanItem(), 2)
	require.NoError(t, err)

	_, err = AssembleOrder(cart, OrderInput{})
	assert.ErrorIs(t, err, ErrMissingCustomer)

	// quick purchase waives the customer requirement
	order, err := AssembleOrder(cart, OrderInput{QuickPurchase: true})
	require.NoError(t, err)
	assert.True(t, order.QuickPurchase)
	assert.Nil(t, order.Customer.ID)
}

func TestAssembleOrderSnapshotsCart(t *testing.T) {
	cart := NewCart()
	line, err := cart.AddLine(kiloanItem(), 2)
	require.NoError(t, err)
	_, err = cart.AddLine(detergentItem(), 1)
	require.NoError(t, err)
	require.NoError(t, cart.ApplyPromo(Promo{Code: "DISKON10", DiscountValue: 10, IsPercentage: true}))

	order, err := AssembleOrder(cart, OrderInput{
		Customer:      walkIn(),
		PaymentMethod: "CASH",
		PaymentStatus: "PAID",
		OrderStatusID: 1,
		Notes:         "jangan pakai pewangi",
	})
	require.NoError(t, err)

	assert.Len(t, order.Lines, 2)
	assert.Equal(t, 35000.0, order.Totals.Subtotal)
	assert.Equal(t, 3500.0, order.Totals.Discount)
	assert.Equal(t, 31500.0, order.Totals.Total)
	assert.Equal(t, "jangan pakai pewangi", order.Notes)

	// the assembler does not mutate the cart; clearing is the caller's job
	assert.Len(t, cart.Lines(), 2)

	// later cart edits never leak into the snapshot
	require.NoError(t, cart.UpdateLine(line.ID, 10))
	assert.Equal(t, 2.0, order.Lines[0].Quantity)
}

func TestEstimatedDoneLeadTimes(t *testing.T) {
	// only express services: next day
	cart := NewCart()
	_, err := cart.AddLine(expressItem(), 1.5)
	require.NoError(t, err)
	order, err := AssembleOrder(cart, OrderInput{QuickPurchase: true})
	require.NoError(t, err)
	assert.Equal(t, order.DateIn.AddDate(0, 0, 1), order.EstimatedDone)

	// express plus regular service: the slowest line wins
	_, err = cart.AddLine(kiloanItem(), 2)
	require.NoError(t, err)
	order, err = AssembleOrder(cart, OrderInput{QuickPurchase: true})
	require.NoError(t, err)
	assert.Equal(t, order.DateIn.AddDate(0, 0, 3), order.EstimatedDone)

	// products only: regular batch
	cart.Clear()
	_, err = cart.AddLine(detergentItem(), 2)
	require.NoError(t, err)
	order, err = AssembleOrder(cart, OrderInput{QuickPurchase: true})
	require.NoError(t, err)
	assert.Equal(t, order.DateIn.AddDate(0, 0, 3), order.EstimatedDone)
}

func TestNextInvoiceUniqueUnderConcurrency(t *testing.T) {
	now := time.Now()
	const n = 200

	var mu sync.Mutex
	seen := make(map[string]bool, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			inv := NextInvoice(now)
			mu.Lock()
			seen[inv] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, seen, n)
	for inv := range seen {
		assert.Regexp(t, `^INV\d+$`, inv)
	}
}
