//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"checkout-engine/internal/domain/coupon"
	"checkout-engine/internal/domain/pricing"
	"checkout-engine/internal/domain/shipping"
	"checkout-engine/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// decimals compare by value, not by internal representation
var decimalComparer = cmp.Comparer(func(a, b decimal.Decimal) bool {
	return a.Equal(b)
})

func flatRate(rate string) pricing.ShippingInputs {
	return pricing.ShippingInputs{
		Zone: shipping.ZoneOutside,
		Config: shipping.Config{
			Method:         shipping.MethodFlatRate,
			DefaultInside:  dec("0"),
			DefaultOutside: dec(rate),
		},
	}
}

func TestBuildQuote(t *testing.T) {
	productA := uuid.New()

	t.Run("checkout scenario: 10 percent off 500 plus outside shipping", func(t *testing.T) {
		crt := builder.NewCartBuilder().WithLine(productA, "100", 5).Build()
		coup := builder.NewCouponBuilder().
			WithDiscount(coupon.DiscountPercentage, "10").
			WithMinimumPurchase("200").
			MustBuild()

		quote, err := pricing.BuildQuote(crt, coup, now, nil, flatRate("60"))
		require.NoError(t, err)

		want := pricing.Quote{
			Subtotal:       dec("500"),
			DiscountAmount: dec("50"),
			ShippingCharge: dec("60"),
			FreeShipping:   false,
			Total:          dec("510"),
			AppliedCode:    coupon.Code("SAVE10"),
		}
		assert.Empty(t, cmp.Diff(want, quote, decimalComparer))
	})

	t.Run("no coupon", func(t *testing.T) {
		crt := builder.NewCartBuilder().WithLine(productA, "100", 1).Build()
		quote, err := pricing.BuildQuote(crt, nil, now, nil, flatRate("20"))
		require.NoError(t, err)

		assert.True(t, dec("100").Equal(quote.Subtotal))
		assert.True(t, quote.DiscountAmount.IsZero())
		assert.True(t, dec("120").Equal(quote.Total))
	})

	t.Run("rejected coupon still yields the couponless quote", func(t *testing.T) {
		crt := builder.NewCartBuilder().WithLine(productA, "100", 1).Build()
		coup := builder.NewCouponBuilder().
			WithDiscount(coupon.DiscountPercentage, "10").
			WithMinimumPurchase("200").
			MustBuild()

		quote, err := pricing.BuildQuote(crt, coup, now, nil, flatRate("20"))
		assert.ErrorIs(t, err, coupon.ErrBelowMinimumPurchase)

		baseline, baseErr := pricing.BuildQuote(crt, nil, now, nil, flatRate("20"))
		require.NoError(t, baseErr)
		assert.Empty(t, cmp.Diff(baseline, quote, decimalComparer))
	})

	t.Run("free shipping coupon zeroes the shipping charge", func(t *testing.T) {
		crt := builder.NewCartBuilder().WithLine(productA, "100", 1).Build()
		coup := builder.NewCouponBuilder().
			WithDiscount(coupon.DiscountFreeShipping, "0").
			With(func(s *coupon.Spec) { s.Code = "SHIPFREE" }).
			MustBuild()

		quote, err := pricing.BuildQuote(crt, coup, now, nil, flatRate("60"))
		require.NoError(t, err)

		assert.True(t, quote.FreeShipping)
		assert.True(t, quote.ShippingCharge.IsZero())
		assert.True(t, dec("100").Equal(quote.Total))
		assert.Equal(t, coupon.Code("SHIPFREE"), quote.AppliedCode)
	})

	t.Run("empty cart quotes to zero", func(t *testing.T) {
		crt := builder.NewCartBuilder().Build()
		quote, err := pricing.BuildQuote(crt, nil, now, nil, flatRate("60"))
		require.NoError(t, err)
		assert.True(t, quote.Subtotal.IsZero())
		assert.True(t, quote.ShippingCharge.IsZero())
		assert.True(t, quote.Total.IsZero())
	})

	t.Run("total is never negative", func(t *testing.T) {
		prices := []string{"0.01", "1", "49.99", "50", "500"}
		coup := builder.NewCouponBuilder().
			WithDiscount(coupon.DiscountFixed, "50").
			MustBuild()
		for _, price := range prices {
			crt := builder.NewCartBuilder().WithLine(productA, price, 1).Build()
			quote, err := pricing.BuildQuote(crt, coup, now, nil, flatRate("0"))
			require.NoError(t, err)
			assert.False(t, quote.Total.IsNegative(), "price %s yielded total %s", price, quote.Total)
			assert.True(t, quote.DiscountAmount.LessThanOrEqual(quote.Subtotal))
		}
	})

	t.Run("category scope uses the injected resolver", func(t *testing.T) {
		catID := uuid.New()
		crt := builder.NewCartBuilder().WithLine(productA, "200", 1).Build()
		coup := builder.NewCouponBuilder().
			WithCategoryScope(catID).
			WithDiscount(coupon.DiscountPercentage, "25").
			MustBuild()
		resolver := func(uuid.UUID) (uuid.UUID, bool) { return catID, true }

		quote, err := pricing.BuildQuote(crt, coup, now, resolver, flatRate("10"))
		require.NoError(t, err)
		assert.True(t, dec("50").Equal(quote.DiscountAmount), "got %s", quote.DiscountAmount)
	})
}
