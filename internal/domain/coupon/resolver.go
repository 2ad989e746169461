package coupon

import (
	"sort"
	"time"

	"checkout-engine/internal/domain/cart"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryResolver maps a product to its category when the cart line does
// not already carry one. Callers resolve catalog data before invoking the
// engine; the resolver must not block.
type CategoryResolver func(productID uuid.UUID) (uuid.UUID, bool)

// DiscountOutcome is the result of a successful resolution. The resolver
// never mutates UsesCount; incrementing belongs to the order-creation step
// so an abandoned quote cannot burn a use.
type DiscountOutcome struct {
	AppliedCode    Code
	DiscountAmount decimal.Decimal
	FreeShipping   bool
}

// Resolve validates the coupon against the cart at `now` and computes the
// discount. Validation short-circuits in a fixed order because the first
// failure becomes the user-facing error message.
func (c *Coupon) Resolve(crt cart.Cart, now time.Time, categories CategoryResolver) (*DiscountOutcome, error) {
	if !c.active {
		return nil, ErrInactive
	}
	if now.Before(c.validFrom) {
		return nil, ErrNotYetValid
	}
	if c.validUntil != nil && now.After(*c.validUntil) {
		return nil, ErrExpired
	}
	if c.maxUses != nil && c.usesCount >= *c.maxUses {
		return nil, ErrUsageLimitReached
	}

	subtotal := crt.Subtotal()
	if c.minimumPurchase != nil && subtotal.LessThan(*c.minimumPurchase) {
		return nil, ErrBelowMinimumPurchase
	}

	// Free shipping skips scope selection entirely: it discounts nothing and
	// applies to the shipment, not to any particular line.
	if c.discountType == DiscountFreeShipping {
		return &DiscountOutcome{
			AppliedCode:    c.code,
			DiscountAmount: decimal.Zero,
			FreeShipping:   true,
		}, nil
	}

	eligible := c.eligibleLines(crt, categories)
	if len(eligible) == 0 {
		return nil, ErrNotApplicableToCart
	}

	discount := c.computeDiscount(eligible)

	// Never exceed the cart subtotal, never go negative.
	if discount.GreaterThan(subtotal) {
		discount = subtotal
	}
	if discount.IsNegative() {
		discount = decimal.Zero
	}

	return &DiscountOutcome{
		AppliedCode:    c.code,
		DiscountAmount: discount,
	}, nil
}

func (c *Coupon) eligibleLines(crt cart.Cart, categories CategoryResolver) []cart.Line {
	lines := crt.Lines()
	switch c.appliesTo {
	case AppliesToAll:
		return lines

	case AppliesToProducts:
		eligible := make([]cart.Line, 0, len(lines))
		for _, l := range lines {
			if _, ok := c.productIDs[l.ProductID()]; ok {
				eligible = append(eligible, l)
			}
		}
		return eligible

	case AppliesToCategories:
		eligible := make([]cart.Line, 0, len(lines))
		for _, l := range lines {
			catID, ok := lineCategory(l, categories)
			if !ok {
				continue
			}
			if _, ok := c.categoryIDs[catID]; ok {
				eligible = append(eligible, l)
			}
		}
		return eligible
	}
	panic("coupon: unknown applies-to scope " + string(c.appliesTo))
}

func lineCategory(l cart.Line, categories CategoryResolver) (uuid.UUID, bool) {
	if id := l.CategoryID(); id != nil {
		return *id, true
	}
	if categories == nil {
		return uuid.Nil, false
	}
	return categories(l.ProductID())
}

func (c *Coupon) computeDiscount(eligible []cart.Line) decimal.Decimal {
	eligibleSubtotal := decimal.Zero
	for _, l := range eligible {
		eligibleSubtotal = eligibleSubtotal.Add(l.Total())
	}

	switch c.discountType {
	case DiscountPercentage:
		return eligibleSubtotal.Mul(c.discountValue).Div(hundred)

	case DiscountFixed:
		return c.discountValue

	case DiscountBogo:
		return c.bogoDiscount(eligible)

	case DiscountTiered:
		return c.tieredDiscount(eligibleSubtotal)
	}
	panic("coupon: unknown discount type " + string(c.discountType))
}

// bogoDiscount partitions each eligible line into complete buy+get sets and
// discounts the "get" units by the configured percentage.
func (c *Coupon) bogoDiscount(eligible []cart.Line) decimal.Decimal {
	setSize := c.bogoBuyQuantity + c.bogoGetQuantity
	discount := decimal.Zero
	for _, l := range eligible {
		freeSets := l.Quantity() / setSize
		freeUnits := freeSets * c.bogoGetQuantity
		if freeUnits == 0 {
			continue
		}
		lineDiscount := l.UnitPrice().
			Mul(decimal.NewFromInt32(freeUnits)).
			Mul(c.bogoGetPercent).
			Div(hundred)
		discount = discount.Add(lineDiscount)
	}
	return discount
}

// tieredDiscount picks the highest qualifying threshold, not the tier that
// maximizes the customer's discount. Preserved as observed merchant-facing
// behavior; see DESIGN.md.
func (c *Coupon) tieredDiscount(eligibleSubtotal decimal.Decimal) decimal.Decimal {
	tiers := append([]Tier(nil), c.tiers...)
	sort.SliceStable(tiers, func(i, j int) bool {
		return tiers[i].MinAmount.GreaterThan(tiers[j].MinAmount)
	})

	for _, t := range tiers {
		if t.MinAmount.LessThanOrEqual(eligibleSubtotal) {
			switch t.DiscountType {
			case DiscountPercentage:
				return eligibleSubtotal.Mul(t.DiscountValue).Div(hundred)
			case DiscountFixed:
				return t.DiscountValue
			}
		}
	}
	// No qualifying tier is not an error; the coupon simply discounts nothing.
	return decimal.Zero
}
