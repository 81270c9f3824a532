package pos

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotalsSinglePercentage(t *testing.T) {
	// one service line 5000/kg x 2kg plus one product 25000 x 1
	totals := ComputeTotals(35000, []Promo{
		{Code: "DISKON10", DiscountValue: 10, IsPercentage: true},
	})
	assert.Equal(t, 35000.0, totals.Subtotal)
	assert.Equal(t, 3500.0, totals.Discount)
	assert.Equal(t, 31500.0, totals.Total)
}

func TestComputeTotalsStacksAdditively(t *testing.T) {
	// both percentages taken on the pre-discount subtotal
	totals := ComputeTotals(35000, []Promo{
		{Code: "DISKON10", DiscountValue: 10, IsPercentage: true},
		{Code: "DISKON20", DiscountValue: 20, IsPercentage: true},
	})
	assert.Equal(t, 10500.0, totals.Discount)
	assert.Equal(t, 24500.0, totals.Total)
}

func TestComputeTotalsMixedFixedAndPercentage(t *testing.T) {
	totals := ComputeTotals(50000, []Promo{
		{Code: "DISKON10", DiscountValue: 10, IsPercentage: true},
		{Code: "POTONGAN10K", DiscountValue: 10000},
	})
	assert.Equal(t, 15000.0, totals.Discount)
	assert.Equal(t, 35000.0, totals.Total)
}

func TestComputeTotalsClampsAtZero(t *testing.T) {
	totals := ComputeTotals(5000, []Promo{
		{Code: "POTONGAN10K", DiscountValue: 10000},
	})
	assert.Equal(t, 10000.0, totals.Discount)
	assert.Equal(t, 0.0, totals.Total)
}

func TestComputeTotalsNoPromos(t *testing.T) {
	totals := ComputeTotals(12000, nil)
	assert.Equal(t, 0.0, totals.Discount)
	assert.Equal(t, 12000.0, totals.Total)
}
