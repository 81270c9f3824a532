package pos

import (
	"fmt"
	"sync/atomic"
	"time"
)

const (
	expressLeadDays = 1
	regularLeadDays = 3
)

// CustomerRef points at an existing customer or carries the details of a
// walk-in to be created alongside the order.
type CustomerRef struct {
	ID    *uint
	Name  string
	Phone string
}

func (r CustomerRef) empty() bool {
	return r.ID == nil && r.Name == ""
}

// OrderInput carries the cashier's choices at submission time.
type OrderInput struct {
	Customer      CustomerRef
	QuickPurchase bool // anonymous order, no customer record
	PaymentMethod string
	PaymentStatus string
	OrderStatusID uint
	Notes         string
}

// Order is the immutable snapshot produced at submission. The assembler
// never mutates the cart; the caller clears it after persisting.
type Order struct {
	Invoice       string
	Customer      CustomerRef
	QuickPurchase bool
	DateIn        time.Time
	EstimatedDone time.Time
	Lines         []CartLine
	Promos        []Promo
	Totals        Totals
	PaymentMethod string
	PaymentStatus string
	OrderStatusID uint
	Notes         string
}

// AssembleOrder turns a finalized cart plus the cashier's choices into an
// order value ready for persistence.
func AssembleOrder(cart *Cart, in OrderInput) (Order, error) {
	if cart.Empty() {
		return Order{}, ErrEmptyCart
	}
	if !in.QuickPurchase && in.Customer.empty() {
		return Order{}, ErrMissingCustomer
	}

	now := time.Now()
	lines := cart.Lines()
	return Order{
		Invoice:       NextInvoice(now),
		Customer:      in.Customer,
		QuickPurchase: in.QuickPurchase,
		DateIn:        now,
		EstimatedDone: now.AddDate(0, 0, leadDays(lines)),
		Lines:         lines,
		Promos:        cart.Promos(),
		Totals:        cart.Totals(),
		PaymentMethod: in.PaymentMethod,
		PaymentStatus: in.PaymentStatus,
		OrderStatusID: in.OrderStatusID,
		Notes:         in.Notes,
	}, nil
}

// leadDays is the longest turnaround required by any line: express
// services take 1 day, regular services 3. A cart whose services are all
// express finishes in a day; anything else, products included, rides the
// regular 3-day batch.
func leadDays(lines []CartLine) int {
	hasService := false
	allExpress := true
	for _, l := range lines {
		if l.Kind == LineService {
			hasService = true
			if !l.Express {
				allExpress = false
			}
		}
	}
	if hasService && allExpress {
		return expressLeadDays
	}
	return regularLeadDays
}

var invoiceSeq uint64

// NextInvoice builds an INV<timestamp> number with a process-wide atomic
// sequence suffix so near-simultaneous submissions from two terminals
// never collide.
func NextInvoice(now time.Time) string {
	seq := atomic.AddUint64(&invoiceSeq, 1)
	return fmt.Sprintf("INV%d%03d", now.UnixMilli(), seq%1000)
}
