package pos

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// PromoFinder looks up a promo rule by its code. Implementations must
// return ErrUnknownCode when no active record matches; any other error is
// treated as a lookup transport failure.
type PromoFinder interface {
	FindByCode(ctx context.Context, code string) (Promo, error)
}

// Validator decides whether a submitted code is currently usable against
// a given cart subtotal.
type Validator struct {
	finder PromoFinder
	now    func() time.Time
}

func NewValidator(finder PromoFinder) *Validator {
	return &Validator{finder: finder, now: time.Now}
}

// Validate returns the matched promo on success. The match key is
// case-insensitive. Lookup failures other than a missing record surface
// as ErrPromoLookupUnavailable so callers can distinguish a bad code
// from a broken promo service.
func (v *Validator) Validate(ctx context.Context, code string, cartSubtotal float64, applied []Promo) (Promo, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return Promo{}, ErrUnknownCode
	}
	for _, p := range applied {
		if strings.EqualFold(p.Code, code) {
			return Promo{}, ErrDuplicateCode
		}
	}

	promo, err := v.finder.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, ErrUnknownCode) {
			return Promo{}, ErrUnknownCode
		}
		return Promo{}, fmt.Errorf("%w: %v", ErrPromoLookupUnavailable, err)
	}

	now := v.now()
	if promo.StartDate != nil && now.Before(*promo.StartDate) {
		return Promo{}, ErrPromoInactive
	}
	if promo.EndDate != nil && now.After(*promo.EndDate) {
		return Promo{}, ErrPromoInactive
	}
	if promo.MaxUsage > 0 && promo.UsageCount >= promo.MaxUsage {
		return Promo{}, ErrPromoInactive
	}
	if promo.MinOrder > 0 && cartSubtotal < promo.MinOrder {
		return Promo{}, ErrPromoMinOrder
	}
	return promo, nil
}
