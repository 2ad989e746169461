package coupon

import (
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidCouponCode = errors.New("invalid coupon code format")

var couponCodeRegex = regexp.MustCompile(`^[A-Z0-9]{3,20}$`)

// Code is case-insensitive; the store normalizes to uppercase.
type Code string

func NewCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !couponCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidCouponCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

// Tier is one {minAmount, discount} rule of a tiered coupon. Only percentage
// and fixed discounts are meaningful inside a tier.
type Tier struct {
	MinAmount     decimal.Decimal
	DiscountType  DiscountType
	DiscountValue decimal.Decimal
}

func (t Tier) validate() error {
	if t.MinAmount.IsNegative() {
		return ErrInvalidTier
	}
	switch t.DiscountType {
	case DiscountPercentage:
		if t.DiscountValue.IsNegative() || t.DiscountValue.GreaterThan(hundred) {
			return ErrInvalidTier
		}
	case DiscountFixed:
		if t.DiscountValue.IsNegative() {
			return ErrInvalidTier
		}
	default:
		return ErrInvalidTier
	}
	return nil
}
