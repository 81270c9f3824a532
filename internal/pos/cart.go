// Package pos implements the cashier transaction core: cart composition,
// promo validation, discount stacking and order assembly. It performs no
// I/O of its own; catalog and promo lookups come in through ports and the
// assembled order is handed back to the caller for persistence.
package pos

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

type LineKind string

const (
	LineProduct LineKind = "PRODUCT"
	LineService LineKind = "SERVICE"
)

// Item identifies a sellable catalog entry at the moment it is added to a
// cart. The price is snapshotted here; later catalog edits never reprice
// lines already in the cart.
type Item struct {
	CatalogItemID uint
	VariationID   *uint
	Kind          LineKind
	Name          string
	UnitPrice     float64
	Express       bool // services only: 1-day turnaround
}

// CartLine is one entry of an in-progress order. Quantity is a piece
// count for product lines and a weight in kg for service lines.
type CartLine struct {
	ID            string
	CatalogItemID uint
	VariationID   *uint
	Kind          LineKind
	Name          string
	UnitPrice     float64
	Quantity      float64
	Express       bool
}

// Subtotal is always recomputed, never stored.
func (l CartLine) Subtotal() float64 {
	return l.UnitPrice * l.Quantity
}

// Promo is a validated discount rule attached to a cart.
type Promo struct {
	Code          string
	Name          string
	DiscountValue float64
	IsPercentage  bool
	MinOrder      float64
	StartDate     *time.Time
	EndDate       *time.Time
	MaxUsage      int // 0 means unlimited
	UsageCount    int
}

// Cart is the working set of line items for one not-yet-submitted order.
// It is owned by a single cashier session; callers must not share one
// cart across goroutines.
type Cart struct {
	lines  []CartLine
	promos []Promo
}

func NewCart() *Cart {
	return &Cart{}
}

// AddLine appends a new line for item. Returns the created line so the
// caller can reference it in later updates.
func (c *Cart) AddLine(item Item, quantity float64) (CartLine, error) {
	if err := checkQuantity(item.Kind, quantity); err != nil {
		return CartLine{}, err
	}
	line := CartLine{
		ID:            uuid.NewString(),
		CatalogItemID: item.CatalogItemID,
		VariationID:   item.VariationID,
		Kind:          item.Kind,
		Name:          item.Name,
		UnitPrice:     item.UnitPrice,
		Quantity:      quantity,
		Express:       item.Express,
	}
	c.lines = append(c.lines, line)
	return line, nil
}

// UpdateLine replaces the quantity/weight of an existing line. On any
// error the line keeps its previous value.
func (c *Cart) UpdateLine(lineID string, quantity float64) error {
	for i := range c.lines {
		if c.lines[i].ID != lineID {
			continue
		}
		if err := checkQuantity(c.lines[i].Kind, quantity); err != nil {
			return err
		}
		c.lines[i].Quantity = quantity
		return nil
	}
	return ErrLineNotFound
}

// RemoveLine deletes the line if present. Removing an absent id is a
// no-op; the return value tells the UI whether anything was removed.
func (c *Cart) RemoveLine(lineID string) bool {
	for i := range c.lines {
		if c.lines[i].ID == lineID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return true
		}
	}
	return false
}

// ApplyPromo attaches an already-validated promo to the cart.
func (c *Cart) ApplyPromo(p Promo) error {
	for _, applied := range c.promos {
		if strings.EqualFold(applied.Code, p.Code) {
			return ErrDuplicateCode
		}
	}
	c.promos = append(c.promos, p)
	return nil
}

// Clear empties lines and applied promos together: discount eligibility
// is tied to cart contents, so promos never survive a cleared cart.
func (c *Cart) Clear() {
	c.lines = nil
	c.promos = nil
}

func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

func (c *Cart) Subtotal() float64 {
	var sum float64
	for _, l := range c.lines {
		sum += l.Subtotal()
	}
	return sum
}

// Lines returns a copy in insertion order.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Promos returns a copy in application order.
func (c *Cart) Promos() []Promo {
	out := make([]Promo, len(c.promos))
	copy(out, c.promos)
	return out
}

// Totals computes the payable amounts for the cart's current state.
func (c *Cart) Totals() Totals {
	return ComputeTotals(c.Subtotal(), c.promos)
}

const weightStep = 0.5

func checkQuantity(kind LineKind, quantity float64) error {
	switch kind {
	case LineProduct:
		if quantity < 1 || quantity != math.Trunc(quantity) {
			return ErrInvalidQuantity
		}
	case LineService:
		if quantity < weightStep {
			return ErrInvalidQuantity
		}
		steps := quantity / weightStep
		if math.Abs(steps-math.Round(steps)) > 1e-9 {
			return ErrInvalidQuantity
		}
	default:
		return ErrInvalidQuantity
	}
	return nil
}
