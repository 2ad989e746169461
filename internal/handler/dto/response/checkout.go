package response

import (
	"errors"

	"checkout-engine/internal/domain/coupon"
	"checkout-engine/internal/domain/pricing"
	"checkout-engine/internal/usecase/commands"
	"checkout-engine/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type QuoteResponse struct {
	Subtotal       decimal.Decimal      `json:"subtotal"`
	DiscountAmount decimal.Decimal      `json:"discount_amount"`
	ShippingCharge decimal.Decimal      `json:"shipping_charge"`
	FreeShipping   bool                 `json:"free_shipping"`
	Total          decimal.Decimal      `json:"total"`
	AppliedCode    *string              `json:"applied_code,omitempty"`
	CouponError    *CouponErrorResponse `json:"coupon_error,omitempty"`
}

// CouponErrorResponse is the machine-readable rejection riding on a quote.
// The reason is stable for callers; the message is for humans.
type CouponErrorResponse struct {
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

func FromQuoteResult(r *commands.QuoteResult) QuoteResponse {
	return QuoteResponse{
		Subtotal:       r.Quote.Subtotal,
		DiscountAmount: r.Quote.DiscountAmount,
		ShippingCharge: r.Quote.ShippingCharge,
		FreeShipping:   r.Quote.FreeShipping,
		Total:          r.Quote.Total,
		AppliedCode:    appliedCodePtr(r.Quote),
		CouponError:    FromCouponError(r.CouponError),
	}
}

func appliedCodePtr(q pricing.Quote) *string {
	if q.AppliedCode == "" {
		return nil
	}
	code := q.AppliedCode.String()
	return &code
}

var couponReasons = []struct {
	sentinel error
	reason   string
}{
	{commands.ErrCouponNotFound, "not_found"},
	{coupon.ErrInactive, "inactive"},
	{coupon.ErrNotYetValid, "not_yet_valid"},
	{coupon.ErrExpired, "expired"},
	{coupon.ErrUsageLimitReached, "usage_limit_reached"},
	{coupon.ErrBelowMinimumPurchase, "below_minimum_purchase"},
	{coupon.ErrNotApplicableToCart, "not_applicable"},
	{coupon.ErrInvalidCouponCode, "invalid_code"},
}

func FromCouponError(err error) *CouponErrorResponse {
	if err == nil {
		return nil
	}
	for _, m := range couponReasons {
		if errors.Is(err, m.sentinel) {
			return &CouponErrorResponse{Reason: m.reason, Message: m.sentinel.Error()}
		}
	}
	return &CouponErrorResponse{Reason: "rejected", Message: "coupon cannot be applied"}
}

type DiscountOutcomeResponse struct {
	AppliedCode    string          `json:"applied_code"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	FreeShipping   bool            `json:"free_shipping"`
}

func FromDiscountOutcome(o *coupon.DiscountOutcome) DiscountOutcomeResponse {
	return DiscountOutcomeResponse{
		AppliedCode:    o.AppliedCode.String(),
		DiscountAmount: o.DiscountAmount,
		FreeShipping:   o.FreeShipping,
	}
}

type DeliveryCheckResponse struct {
	Status string `json:"status"`
}

func FromDeliveryStatus(s queries.DeliveryStatus) DeliveryCheckResponse {
	return DeliveryCheckResponse{Status: string(s)}
}

// CouponResponse mirrors the read model; defined here so the swagger schema
// lives with the other response types.
type CouponResponse = queries.CouponView
