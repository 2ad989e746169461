package coupon

import "errors"

type DiscountType string

const (
	DiscountPercentage   DiscountType = "percentage"
	DiscountFixed        DiscountType = "fixed"
	DiscountFreeShipping DiscountType = "free_shipping"
	DiscountBogo         DiscountType = "bogo"
	DiscountTiered       DiscountType = "tiered"
)

func (d DiscountType) IsValid() bool {
	switch d {
	case DiscountPercentage, DiscountFixed, DiscountFreeShipping, DiscountBogo, DiscountTiered:
		return true
	}
	return false
}

type AppliesTo string

const (
	AppliesToAll        AppliesTo = "all"
	AppliesToProducts   AppliesTo = "specific_products"
	AppliesToCategories AppliesTo = "categories"
)

func (a AppliesTo) IsValid() bool {
	switch a {
	case AppliesToAll, AppliesToProducts, AppliesToCategories:
		return true
	}
	return false
}

// Construction errors: misconfigured coupon data, surfaced loudly.
var (
	ErrInvalidDiscountType     = errors.New("invalid discount type")
	ErrInvalidAppliesTo        = errors.New("invalid applies-to scope")
	ErrInvalidDiscountValue    = errors.New("discount value out of range")
	ErrInvalidBogoQuantity     = errors.New("bogo quantities must be positive")
	ErrInvalidTier             = errors.New("invalid discount tier")
	ErrNegativeMinimumPurchase = errors.New("minimum purchase cannot be negative")
)

// Resolution errors: expected, user-facing business outcomes. Propagated as
// values, never panics; an invalid coupon is a normal checkout event.
var (
	ErrInactive             = errors.New("coupon is not active")
	ErrNotYetValid          = errors.New("coupon is not yet valid")
	ErrExpired              = errors.New("coupon has expired")
	ErrUsageLimitReached    = errors.New("coupon usage limit reached")
	ErrBelowMinimumPurchase = errors.New("cart subtotal is below the minimum purchase")
	ErrNotApplicableToCart  = errors.New("coupon does not apply to any cart item")
)
