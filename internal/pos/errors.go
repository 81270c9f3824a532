package pos

import "errors"

var (
	// ErrInvalidQuantity rejects a product quantity below 1 (or fractional)
	// and a service weight below 0.5 kg or off the 0.5 kg step.
	ErrInvalidQuantity = errors.New("invalid quantity or weight")

	// ErrLineNotFound means the referenced cart line id does not exist.
	ErrLineNotFound = errors.New("cart line not found")

	// ErrDuplicateCode means the promo code is already applied to the cart.
	ErrDuplicateCode = errors.New("promo code already applied")

	// ErrUnknownCode means no promo record matches the submitted code.
	ErrUnknownCode = errors.New("unknown promo code")

	// ErrPromoLookupUnavailable means the promo lookup itself failed, so
	// the code could not be checked at all. Distinct from ErrUnknownCode so
	// the cashier screen can tell "invalid code" from "service down".
	ErrPromoLookupUnavailable = errors.New("promo lookup unavailable")

	// ErrPromoMinOrder means the cart subtotal is below the promo's
	// minimum order value.
	ErrPromoMinOrder = errors.New("cart subtotal below promo minimum order")

	// ErrPromoInactive means the promo exists but is outside its active
	// date window or has been disabled.
	ErrPromoInactive = errors.New("promo code is not currently active")

	// ErrEmptyCart rejects order assembly from a cart with no lines.
	ErrEmptyCart = errors.New("cart has no lines")

	// ErrMissingCustomer rejects order assembly without a customer unless
	// the caller opted into quick purchase.
	ErrMissingCustomer = errors.New("order requires a customer")
)
