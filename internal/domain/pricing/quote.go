package pricing

import (
	"time"

	"checkout-engine/internal/domain/cart"
	"checkout-engine/internal/domain/coupon"
	"checkout-engine/internal/domain/shipping"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Quote is the computed price breakdown for a cart at a point in time.
// Derived, never stored: callers recompute it from the current
// (cart, coupon, zone) tuple on every change.
type Quote struct {
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	ShippingCharge decimal.Decimal
	FreeShipping   bool
	Total          decimal.Decimal
	AppliedCode    coupon.Code
}

// ShippingInputs bundles the resolved shipping data for one store.
type ShippingInputs struct {
	Zone      shipping.ZoneLabel
	Overrides map[uuid.UUID]shipping.ProductRates
	Config    shipping.Config
}

// BuildQuote composes subtotal, coupon discount and shipping charge into a
// single quote. A rejected coupon does not abort pricing: the returned quote
// is the couponless one and the coupon error rides alongside so the caller
// decides whether to block checkout.
func BuildQuote(
	crt cart.Cart,
	coup *coupon.Coupon,
	now time.Time,
	categories coupon.CategoryResolver,
	ship ShippingInputs,
) (Quote, error) {
	subtotal := crt.Subtotal()

	discount := decimal.Zero
	freeShipping := false
	var appliedCode coupon.Code
	var couponErr error

	if coup != nil {
		outcome, err := coup.Resolve(crt, now, categories)
		if err != nil {
			couponErr = err
		} else {
			discount = outcome.DiscountAmount
			freeShipping = outcome.FreeShipping
			appliedCode = outcome.AppliedCode
		}
	}

	shippingCharge := decimal.Zero
	if !freeShipping {
		shippingCharge = shipping.Compute(crt, ship.Zone, ship.Overrides, ship.Config)
	}

	total := subtotal.Sub(discount).Add(shippingCharge)
	// The resolver caps the discount at the subtotal, so this should never
	// trigger; kept as a hard floor because a negative total must not escape.
	if total.IsNegative() {
		total = decimal.Zero
	}

	return Quote{
		Subtotal:       subtotal,
		DiscountAmount: discount,
		ShippingCharge: shippingCharge,
		FreeShipping:   freeShipping,
		Total:          total,
		AppliedCode:    appliedCode,
	}, couponErr
}
