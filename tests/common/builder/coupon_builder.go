//go:build unit

package builder

import (
	"time"

	domcoupon "checkout-engine/internal/domain/coupon"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CouponBuilder struct {
	Spec domcoupon.Spec
}

func NewCouponBuilder() *CouponBuilder {
	// Fixed instant matching the `now` pinned by the coupon and pricing
	// tests, so the default validity window is deterministic.
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	return &CouponBuilder{
		Spec: domcoupon.Spec{
			ID:            uuid.New(),
			StoreID:       uuid.New(),
			Code:          "SAVE10",
			Active:        true,
			DiscountType:  domcoupon.DiscountPercentage,
			DiscountValue: decimal.NewFromInt(10),
			AppliesTo:     domcoupon.AppliesToAll,
			ValidFrom:     now.Add(-24 * time.Hour),
			CreatedAt:     now,
			UpdatedAt:     now,
		},
	}
}

func (b *CouponBuilder) With(mutate func(*domcoupon.Spec)) *CouponBuilder {
	mutate(&b.Spec)
	return b
}

func (b *CouponBuilder) WithDiscount(dt domcoupon.DiscountType, value string) *CouponBuilder {
	b.Spec.DiscountType = dt
	b.Spec.DiscountValue = decimal.RequireFromString(value)
	return b
}

func (b *CouponBuilder) WithMinimumPurchase(amount string) *CouponBuilder {
	min := decimal.RequireFromString(amount)
	b.Spec.MinimumPurchase = &min
	return b
}

func (b *CouponBuilder) WithMaxUses(maxUses, usesCount int32) *CouponBuilder {
	b.Spec.MaxUses = &maxUses
	b.Spec.UsesCount = usesCount
	return b
}

func (b *CouponBuilder) WithWindow(from time.Time, until *time.Time) *CouponBuilder {
	b.Spec.ValidFrom = from
	b.Spec.ValidUntil = until
	return b
}

func (b *CouponBuilder) WithProductScope(productIDs ...uuid.UUID) *CouponBuilder {
	b.Spec.AppliesTo = domcoupon.AppliesToProducts
	b.Spec.ProductIDs = productIDs
	return b
}

func (b *CouponBuilder) WithCategoryScope(categoryIDs ...uuid.UUID) *CouponBuilder {
	b.Spec.AppliesTo = domcoupon.AppliesToCategories
	b.Spec.CategoryIDs = categoryIDs
	return b
}

func (b *CouponBuilder) WithBogo(buy, get int32, getDiscountPct string) *CouponBuilder {
	b.Spec.DiscountType = domcoupon.DiscountBogo
	b.Spec.BogoBuyQuantity = buy
	b.Spec.BogoGetQuantity = get
	b.Spec.BogoGetDiscountPercentage = decimal.RequireFromString(getDiscountPct)
	return b
}

func (b *CouponBuilder) WithTiers(tiers ...domcoupon.Tier) *CouponBuilder {
	b.Spec.DiscountType = domcoupon.DiscountTiered
	b.Spec.Tiers = tiers
	return b
}

func (b *CouponBuilder) BuildDomain() (*domcoupon.Coupon, error) {
	return domcoupon.New(b.Spec)
}

// MustBuild is for tests where coupon construction is not what is under test.
func (b *CouponBuilder) MustBuild() *domcoupon.Coupon {
	c, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return c
}

func Tier(minAmount string, dt domcoupon.DiscountType, value string) domcoupon.Tier {
	return domcoupon.Tier{
		MinAmount:     decimal.RequireFromString(minAmount),
		DiscountType:  dt,
		DiscountValue: decimal.RequireFromString(value),
	}
}
