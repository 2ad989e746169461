package fixtures

import (
	"context"
	"strings"
	"sync"

	"checkout-engine/internal/domain/coupon"
	"checkout-engine/internal/domain/geo"
	"checkout-engine/internal/domain/shipping"
	"checkout-engine/internal/infra"
	"checkout-engine/internal/pkg/errs"
	"checkout-engine/internal/usecase/commands"

	"github.com/google/uuid"
)

type couponKey struct {
	storeID uuid.UUID
	code    string
}

type storeEntry struct {
	shipping shipping.Config
	zone     geo.Zone
}

// Store serves all persistence ports from an in-memory snapshot of a fixtures
// file. IncrementUses mutates the snapshot under a mutex so redemption
// behaves like the database-backed implementation.
type Store struct {
	mu       sync.Mutex
	stores   map[uuid.UUID]storeEntry
	products map[uuid.UUID]map[uuid.UUID]commands.ProductProfile
	coupons  map[couponKey]*coupon.Spec
}

func NewStore(f *File) (*Store, error) {
	s := &Store{
		stores:   make(map[uuid.UUID]storeEntry, len(f.Stores)),
		products: make(map[uuid.UUID]map[uuid.UUID]commands.ProductProfile, len(f.Stores)),
		coupons:  make(map[couponKey]*coupon.Spec, len(f.Coupons)),
	}

	for _, sf := range f.Stores {
		storeID, err := parseUUID("store.id", sf.ID)
		if err != nil {
			return nil, err
		}
		cfg, err := sf.Shipping.toConfig()
		if err != nil {
			return nil, err
		}
		zone, err := sf.Zone.toZone()
		if err != nil {
			return nil, err
		}
		s.stores[storeID] = storeEntry{shipping: cfg, zone: zone}
	}

	for _, pf := range f.Products {
		productID, err := parseUUID("product.id", pf.ID)
		if err != nil {
			return nil, err
		}
		storeID, err := parseUUID("product.store_id", pf.StoreID)
		if err != nil {
			return nil, err
		}
		var categoryID *uuid.UUID
		if pf.CategoryID != nil {
			id, err := parseUUID("product.category_id", *pf.CategoryID)
			if err != nil {
				return nil, err
			}
			categoryID = &id
		}
		inside, err := parseDecimalPtr("product.shipping_inside", pf.ShippingInside)
		if err != nil {
			return nil, err
		}
		outside, err := parseDecimalPtr("product.shipping_outside", pf.ShippingOutside)
		if err != nil {
			return nil, err
		}
		if s.products[storeID] == nil {
			s.products[storeID] = make(map[uuid.UUID]commands.ProductProfile)
		}
		s.products[storeID][productID] = commands.ProductProfile{
			CategoryID: categoryID,
			Shipping:   shipping.ProductRates{Inside: inside, Outside: outside},
		}
	}

	for _, cf := range f.Coupons {
		spec, err := cf.toSpec()
		if err != nil {
			return nil, err
		}
		// Validate eagerly so a broken fixture fails at startup, not at the
		// first lookup.
		if _, err := coupon.New(spec); err != nil {
			return nil, errs.Wrap(err, "fixtures: invalid coupon "+cf.Code)
		}
		specCopy := spec
		s.coupons[couponKey{storeID: spec.StoreID, code: normalizeCode(spec.Code)}] = &specCopy
	}

	return s, nil
}

// NewStoreFromPath loads and indexes a fixtures file in one step.
func NewStoreFromPath(path string) (*Store, error) {
	f, err := Load(path)
	if err != nil {
		return nil, err
	}
	return NewStore(f)
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (s *Store) FindByCode(_ context.Context, storeID uuid.UUID, code string) (*coupon.Coupon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	spec, ok := s.coupons[couponKey{storeID: storeID, code: normalizeCode(code)}]
	if !ok {
		return nil, infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
	}
	coup, err := coupon.New(*spec)
	if err != nil {
		return nil, infra.WrapRepoErr("stored coupon is invalid", err)
	}
	return coup, nil
}

func (s *Store) IncrementUses(_ context.Context, storeID uuid.UUID, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	spec, ok := s.coupons[couponKey{storeID: storeID, code: normalizeCode(code)}]
	if !ok {
		return infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
	}
	if spec.MaxUses != nil && spec.UsesCount >= *spec.MaxUses {
		return coupon.ErrUsageLimitReached
	}
	spec.UsesCount++
	return nil
}

func (s *Store) FindProfiles(_ context.Context, storeID uuid.UUID, productIDs []uuid.UUID) (map[uuid.UUID]commands.ProductProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profiles := make(map[uuid.UUID]commands.ProductProfile, len(productIDs))
	known := s.products[storeID]
	for _, id := range productIDs {
		if profile, ok := known[id]; ok {
			profiles[id] = profile
		}
	}
	return profiles, nil
}

func (s *Store) FindShippingConfig(_ context.Context, storeID uuid.UUID) (shipping.Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.stores[storeID]
	if !ok {
		return shipping.Config{}, infra.WrapRepoErr("store settings not found", nil, infra.KindNotFound)
	}
	return entry.shipping, nil
}

func (s *Store) FindDeliveryZone(_ context.Context, storeID uuid.UUID) (geo.Zone, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.stores[storeID]
	if !ok {
		return geo.Zone{}, infra.WrapRepoErr("store settings not found", nil, infra.KindNotFound)
	}
	return entry.zone, nil
}
