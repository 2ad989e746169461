package commands

import (
	"context"

	"checkout-engine/internal/domain/coupon"
	"checkout-engine/internal/domain/geo"
	"checkout-engine/internal/domain/shipping"

	"github.com/google/uuid"
)

// ProductProfile is the catalog data the engine needs per product: the
// category for coupon scoping and the shipping overrides for rate
// resolution.
type ProductProfile struct {
	CategoryID *uuid.UUID
	Shipping   shipping.ProductRates
}

type CouponRepository interface {
	FindByCode(ctx context.Context, storeID uuid.UUID, code string) (*coupon.Coupon, error)
	// IncrementUses is the authoritative usage-limit enforcement: a guarded
	// UPDATE that fails with coupon.ErrUsageLimitReached once max_uses is
	// exhausted. Called at order commit, never during quoting.
	IncrementUses(ctx context.Context, storeID uuid.UUID, code string) error
}

type CatalogRepository interface {
	// FindProfiles returns profiles for the products it knows; unknown IDs
	// are simply absent from the result map.
	FindProfiles(ctx context.Context, storeID uuid.UUID, productIDs []uuid.UUID) (map[uuid.UUID]ProductProfile, error)
}

type StoreConfigRepository interface {
	FindShippingConfig(ctx context.Context, storeID uuid.UUID) (shipping.Config, error)
	FindDeliveryZone(ctx context.Context, storeID uuid.UUID) (geo.Zone, error)
}
