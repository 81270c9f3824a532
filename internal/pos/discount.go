package pos

// Totals is the deterministic result of applying promos to a subtotal.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
}

// ComputeTotals stacks promos additively: each percentage promo is taken
// on the pre-discount subtotal, fixed promos are absolute IDR amounts.
// The total is clamped at zero; the Discount field keeps the unclamped
// sum so the operator can see how far past zero the stacking went.
func ComputeTotals(subtotal float64, promos []Promo) Totals {
	var discount float64
	for _, p := range promos {
		if p.IsPercentage {
			discount += subtotal * p.DiscountValue / 100
		} else {
			discount += p.DiscountValue
		}
	}
	total := subtotal - discount
	if total < 0 {
		total = 0
	}
	return Totals{Subtotal: subtotal, Discount: discount, Total: total}
}
