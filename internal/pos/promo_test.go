package pos

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFinder struct {
	promos map[string]Promo
	err    error
}

func (f *fakeFinder) FindByCode(_ context.Context, code string) (Promo, error) {
	if f.err != nil {
		return Promo{}, f.err
	}
	p, ok := f.promos[strings.ToUpper(code)]
	if !ok {
		return Promo{}, ErrUnknownCode
	}
	return p, nil
}

func newTestValidator(promos ...Promo) *Validator {
	byCode := make(map[string]Promo)
	for _, p := range promos {
		byCode[strings.ToUpper(p.Code)] = p
	}
	return NewValidator(&fakeFinder{promos: byCode})
}

func TestValidateReturnsMatchedPromo(t *testing.T) {
	v := newTestValidator(Promo{Code: "DISKON10", DiscountValue: 10, IsPercentage: true})

	promo, err := v.Validate(context.Background(), "diskon10", 35000, nil)
	require.NoError(t, err)
	assert.Equal(t, "DISKON10", promo.Code)
	assert.True(t, promo.IsPercentage)
}

func TestValidateRejectsDuplicate(t *testing.T) {
	v := newTestValidator(Promo{Code: "DISKON10", DiscountValue: 10, IsPercentage: true})
	applied := []Promo{{Code: "DISKON10", DiscountValue: 10, IsPercentage: true}}

	_, err := v.Validate(context.Background(), "Diskon10", 35000, applied)
	assert.ErrorIs(t, err, ErrDuplicateCode)
}

func TestValidateRejectsUnknownCode(t *testing.T) {
	v := newTestValidator()

	_, err := v.Validate(context.Background(), "TIDAKADA", 35000, nil)
	assert.ErrorIs(t, err, ErrUnknownCode)

	_, err = v.Validate(context.Background(), "   ", 35000, nil)
	assert.ErrorIs(t, err, ErrUnknownCode)
}

func TestValidateMapsLookupFailure(t *testing.T) {
	v := NewValidator(&fakeFinder{err: errors.New("connection refused")})

	_, err := v.Validate(context.Background(), "DISKON10", 35000, nil)
	assert.ErrorIs(t, err, ErrPromoLookupUnavailable)
	assert.NotErrorIs(t, err, ErrUnknownCode)
}

func TestValidateEnforcesMinOrder(t *testing.T) {
	v := newTestValidator(Promo{Code: "HEMAT50", DiscountValue: 50, IsPercentage: true, MinOrder: 100000})

	_, err := v.Validate(context.Background(), "HEMAT50", 35000, nil)
	assert.ErrorIs(t, err, ErrPromoMinOrder)

	_, err = v.Validate(context.Background(), "HEMAT50", 100000, nil)
	assert.NoError(t, err)
}

func TestValidateEnforcesDateWindow(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	past := now.AddDate(0, -1, 0)
	future := now.AddDate(0, 1, 0)

	v := newTestValidator(
		Promo{Code: "BELUMMULAI", DiscountValue: 10, IsPercentage: true, StartDate: &future},
		Promo{Code: "KADALUARSA", DiscountValue: 10, IsPercentage: true, EndDate: &past},
		Promo{Code: "AKTIF", DiscountValue: 10, IsPercentage: true, StartDate: &past, EndDate: &future},
	)
	v.now = func() time.Time { return now }

	_, err := v.Validate(context.Background(), "BELUMMULAI", 35000, nil)
	assert.ErrorIs(t, err, ErrPromoInactive)

	_, err = v.Validate(context.Background(), "KADALUARSA", 35000, nil)
	assert.ErrorIs(t, err, ErrPromoInactive)

	_, err = v.Validate(context.Background(), "AKTIF", 35000, nil)
	assert.NoError(t, err)
}

func TestValidateEnforcesUsageCap(t *testing.T) {
	v := newTestValidator(
		Promo{Code: "HABIS", DiscountValue: 10, IsPercentage: true, MaxUsage: 5, UsageCount: 5},
		Promo{Code: "SISA", DiscountValue: 10, IsPercentage: true, MaxUsage: 5, UsageCount: 4},
	)

	_, err := v.Validate(context.Background(), "HABIS", 35000, nil)
	assert.ErrorIs(t, err, ErrPromoInactive)

	_, err = v.Validate(context.Background(), "SISA", 35000, nil)
	assert.NoError(t, err)
}

func TestValidateLeavesCartUntouched(t *testing.T) {
	cart := NewCart()
	_, err := cart.AddLine(kiloanItem(), 2)
	require.NoError(t, err)
	require.NoError(t, cart.ApplyPromo(Promo{Code: "DISKON10", DiscountValue: 10, IsPercentage: true}))

	v := newTestValidator(Promo{Code: "DISKON10", DiscountValue: 10, IsPercentage: true})
	_, err = v.Validate(context.Background(), "DISKON10", cart.Subtotal(), cart.Promos())
	assert.ErrorIs(t, err, ErrDuplicateCode)

	// rejected application changed nothing
	assert.Len(t, cart.Lines(), 1)
	assert.Len(t, cart.Promos(), 1)
	assert.Equal(t, 10000.0, cart.Subtotal())
}
