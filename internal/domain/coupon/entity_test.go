//go:build unit

package coupon_test

import (
	"testing"

	"checkout-engine/internal/domain/coupon"
	"checkout-engine/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type constructionCase struct {
	name   string
	mutate func(*coupon.Spec)
	errIs  error
}

func TestNewCoupon(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		c, err := builder.NewCouponBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, c)

		assert.Equal(t, coupon.Code("SAVE10"), c.Code())
		assert.True(t, c.Active())
		assert.Equal(t, coupon.DiscountPercentage, c.DiscountType())
		assert.Equal(t, coupon.AppliesToAll, c.AppliesTo())
	})

	t.Run("code normalization", func(t *testing.T) {
		c, err := builder.NewCouponBuilder().
			With(func(s *coupon.Spec) { s.Code = "  save10  " }).
			BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "SAVE10", c.Code().String())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []constructionCase{
			{
				name:   "malformed code",
				mutate: func(s *coupon.Spec) { s.Code = "no spaces allowed" },
				errIs:  coupon.ErrInvalidCouponCode,
			},
			{
				name:   "unknown discount type",
				mutate: func(s *coupon.Spec) { s.DiscountType = "raffle" },
				errIs:  coupon.ErrInvalidDiscountType,
			},
			{
				name:   "unknown applies-to scope",
				mutate: func(s *coupon.Spec) { s.AppliesTo = "everything" },
				errIs:  coupon.ErrInvalidAppliesTo,
			},
			{
				name:   "percentage above 100",
				mutate: func(s *coupon.Spec) { s.DiscountValue = decimal.NewFromInt(101) },
				errIs:  coupon.ErrInvalidDiscountValue,
			},
			{
				name: "negative fixed value",
				mutate: func(s *coupon.Spec) {
					s.DiscountType = coupon.DiscountFixed
					s.DiscountValue = decimal.NewFromInt(-5)
				},
				errIs: coupon.ErrInvalidDiscountValue,
			},
			{
				name: "negative minimum purchase",
				mutate: func(s *coupon.Spec) {
					min := decimal.NewFromInt(-1)
					s.MinimumPurchase = &min
				},
				errIs: coupon.ErrNegativeMinimumPurchase,
			},
			{
				name: "bogo without quantities",
				mutate: func(s *coupon.Spec) {
					s.DiscountType = coupon.DiscountBogo
					s.BogoBuyQuantity = 0
					s.BogoGetQuantity = 1
				},
				errIs: coupon.ErrInvalidBogoQuantity,
			},
			{
				name: "tier with unknown discount type",
				mutate: func(s *coupon.Spec) {
					s.DiscountType = coupon.DiscountTiered
					s.Tiers = []coupon.Tier{{
						MinAmount:     decimal.NewFromInt(50),
						DiscountType:  coupon.DiscountBogo,
						DiscountValue: decimal.NewFromInt(5),
					}}
				},
				errIs: coupon.ErrInvalidTier,
			},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := builder.NewCouponBuilder().With(tc.mutate).BuildDomain()
				assert.ErrorIs(t, err, tc.errIs)
			})
		}
	})

	t.Run("bogo get discount defaults to 100 percent", func(t *testing.T) {
		crt := builder.NewCartBuilder().
			WithLine(uuid.New(), "10", 2).
			Build()
		c, err := builder.NewCouponBuilder().
			With(func(s *coupon.Spec) {
				s.DiscountType = coupon.DiscountBogo
				s.BogoBuyQuantity = 1
				s.BogoGetQuantity = 1
				s.BogoGetDiscountPercentage = decimal.Zero
			}).
			BuildDomain()
		require.NoError(t, err)

		outcome, err := c.Resolve(crt, now, nil)
		require.NoError(t, err)
		// One full set at the default 100%: one unit free
		assert.True(t, decimal.NewFromInt(10).Equal(outcome.DiscountAmount), "got %s", outcome.DiscountAmount)
	})
}
