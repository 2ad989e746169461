package shipping

import (
	"checkout-engine/internal/domain/cart"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Compute resolves an effective per-unit rate for every cart line and
// aggregates by the store's calculation method. Total function: an empty
// cart ships for free, and there is no error path. Unknown methods and zone
// labels are configuration bugs and panic.
func Compute(c cart.Cart, zone ZoneLabel, overrides map[uuid.UUID]ProductRates, cfg Config) decimal.Decimal {
	if c.IsEmpty() {
		return decimal.Zero
	}
	if !cfg.Method.IsValid() {
		panic("shipping: unknown calculation method " + string(cfg.Method))
	}

	switch cfg.Method {
	case MethodFlatRate:
		// A single shipment is bounded by its most expensive-to-ship line,
		// not the sum of all lines.
		max := decimal.Zero
		for _, l := range c.Lines() {
			if rate := effectiveRate(l.ProductID(), zone, overrides, cfg); rate.GreaterThan(max) {
				max = rate
			}
		}
		return max

	case MethodPerProduct:
		// Each distinct product charged once, quantity-independent.
		seen := make(map[uuid.UUID]struct{})
		sum := decimal.Zero
		for _, l := range c.Lines() {
			if _, ok := seen[l.ProductID()]; ok {
				continue
			}
			seen[l.ProductID()] = struct{}{}
			sum = sum.Add(effectiveRate(l.ProductID(), zone, overrides, cfg))
		}
		return sum

	case MethodPerItem:
		sum := decimal.Zero
		for _, l := range c.Lines() {
			rate := effectiveRate(l.ProductID(), zone, overrides, cfg)
			sum = sum.Add(rate.Mul(decimal.NewFromInt32(l.Quantity())))
		}
		return sum
	}
	panic("shipping: unreachable")
}

func effectiveRate(productID uuid.UUID, zone ZoneLabel, overrides map[uuid.UUID]ProductRates, cfg Config) decimal.Decimal {
	if o, ok := overrides[productID]; ok {
		if r := o.rate(zone); r != nil {
			return *r
		}
	}
	return cfg.defaultRate(zone)
}
