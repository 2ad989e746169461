//go:build unit

package shipping_test

import (
	"testing"

	"checkout-engine/internal/domain/cart"
	"checkout-engine/internal/domain/shipping"
	"checkout-engine/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCompute(t *testing.T) {
	productA := uuid.New()
	productB := uuid.New()

	// Product A overrides to 60 outside, product B falls back to the store
	// default of 120.
	rateA := dec("60")
	overrides := map[uuid.UUID]shipping.ProductRates{
		productA: {Outside: &rateA},
	}
	cfg := shipping.Config{
		DefaultInside:  dec("30"),
		DefaultOutside: dec("120"),
	}

	twoLines := builder.NewCartBuilder().
		WithLine(productA, "100", 2).
		WithLine(productB, "200", 3).
		Build()

	t.Run("flat_rate takes the maximum effective rate", func(t *testing.T) {
		cfg := cfg
		cfg.Method = shipping.MethodFlatRate
		got := shipping.Compute(twoLines, shipping.ZoneOutside, overrides, cfg)
		assert.True(t, dec("120").Equal(got), "got %s", got)
	})

	t.Run("per_product sums each distinct product once", func(t *testing.T) {
		cfg := cfg
		cfg.Method = shipping.MethodPerProduct
		got := shipping.Compute(twoLines, shipping.ZoneOutside, overrides, cfg)
		assert.True(t, dec("180").Equal(got), "got %s", got)
	})

	t.Run("per_item multiplies by quantity", func(t *testing.T) {
		cfg := cfg
		cfg.Method = shipping.MethodPerItem
		got := shipping.Compute(twoLines, shipping.ZoneOutside, overrides, cfg)
		// 60×2 + 120×3
		assert.True(t, dec("480").Equal(got), "got %s", got)
	})

	t.Run("inside zone resolves inside rates", func(t *testing.T) {
		cfg := cfg
		cfg.Method = shipping.MethodFlatRate
		got := shipping.Compute(twoLines, shipping.ZoneInside, overrides, cfg)
		// A has no inside override, both lines use the store default
		assert.True(t, dec("30").Equal(got), "got %s", got)
	})

	t.Run("empty cart ships for free", func(t *testing.T) {
		cfg := cfg
		cfg.Method = shipping.MethodPerItem
		got := shipping.Compute(cart.New(nil), shipping.ZoneOutside, overrides, cfg)
		assert.True(t, got.IsZero())
	})

	t.Run("per_product counts a repeated product once", func(t *testing.T) {
		cfg := cfg
		cfg.Method = shipping.MethodPerProduct
		repeated := builder.NewCartBuilder().
			WithLine(productA, "100", 1).
			WithLine(productA, "100", 4).
			Build()
		got := shipping.Compute(repeated, shipping.ZoneOutside, overrides, cfg)
		assert.True(t, dec("60").Equal(got), "got %s", got)
	})

	t.Run("unknown calculation method panics", func(t *testing.T) {
		cfg := cfg
		cfg.Method = shipping.Method("carrier_pigeon")
		assert.Panics(t, func() {
			shipping.Compute(twoLines, shipping.ZoneOutside, overrides, cfg)
		})
	})

	t.Run("unknown zone label panics", func(t *testing.T) {
		cfg := cfg
		cfg.Method = shipping.MethodFlatRate
		assert.Panics(t, func() {
			shipping.Compute(twoLines, shipping.ZoneLabel("orbit"), overrides, cfg)
		})
	})
}
