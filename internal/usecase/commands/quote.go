package commands

import (
	"context"

	"checkout-engine/internal/domain/cart"
	"checkout-engine/internal/domain/coupon"
	"checkout-engine/internal/domain/pricing"
	"checkout-engine/internal/domain/shipping"
	reqdto "checkout-engine/internal/handler/dto/request"
	"checkout-engine/internal/infra"
	"checkout-engine/internal/pkg/clock"
	"checkout-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrStoreNotFound       = errs.New("store not found")
	ErrCouponNotFound      = errs.New("coupon not found")
	ErrInvalidQuoteRequest = errs.New("invalid quote request")
)

// QuoteResult carries the computed quote plus the coupon rejection, if any.
// A rejected coupon is a business outcome, not a failure: the quote is the
// couponless one and the caller decides whether to block checkout.
type QuoteResult struct {
	Quote       pricing.Quote
	CouponError error
}

type QuoteCommands interface {
	PriceQuote(ctx context.Context, req reqdto.QuoteRequest) (*QuoteResult, error)
}

type quoteUseCaseImpl struct {
	couponRepo  CouponRepository
	catalogRepo CatalogRepository
	storeRepo   StoreConfigRepository
	clock       clock.Clock
}

func NewQuoteCommands(
	couponRepo CouponRepository,
	catalogRepo CatalogRepository,
	storeRepo StoreConfigRepository,
	clock clock.Clock,
) QuoteCommands {
	return &quoteUseCaseImpl{
		couponRepo:  couponRepo,
		catalogRepo: catalogRepo,
		storeRepo:   storeRepo,
		clock:       clock,
	}
}

// PriceQuote stages all catalog and store data up front, then runs the pure
// pricing pipeline over it (load-then-compute).
func (u *quoteUseCaseImpl) PriceQuote(ctx context.Context, req reqdto.QuoteRequest) (*QuoteResult, error) {
	zone := shipping.ZoneLabel(req.Zone)
	if !zone.IsValid() {
		return nil, errs.Mark(errs.ErrUnknownZoneLabel, ErrInvalidQuoteRequest)
	}

	crt, err := buildCart(req.Lines)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidQuoteRequest)
	}

	profiles, err := loadProfiles(ctx, u.catalogRepo, req.StoreID, crt)
	if err != nil {
		return nil, err
	}

	cfg, err := u.storeRepo.FindShippingConfig(ctx, req.StoreID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrStoreNotFound)
		}
		return nil, errs.Wrap(err, "failed to load shipping config")
	}

	var coup *coupon.Coupon
	var couponErr error
	if req.CouponCode != nil && *req.CouponCode != "" {
		coup, err = u.couponRepo.FindByCode(ctx, req.StoreID, *req.CouponCode)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				// Unknown code rides on the quote like any other rejection.
				coup = nil
				couponErr = ErrCouponNotFound
			} else {
				return nil, errs.Wrap(err, "failed to load coupon")
			}
		}
	}

	quote, quoteErr := pricing.BuildQuote(
		crt,
		coup,
		u.clock.Now(),
		categoryResolver(profiles),
		pricing.ShippingInputs{
			Zone:      zone,
			Overrides: shippingOverrides(profiles),
			Config:    cfg,
		},
	)
	if couponErr == nil {
		couponErr = quoteErr
	}

	return &QuoteResult{Quote: quote, CouponError: couponErr}, nil
}

func buildCart(lines []reqdto.QuoteLine) (cart.Cart, error) {
	built := make([]cart.Line, 0, len(lines))
	for _, l := range lines {
		line, err := cart.NewLine(l.ProductID, l.CategoryID, l.UnitPrice, l.Quantity)
		if err != nil {
			return cart.Cart{}, err
		}
		built = append(built, line)
	}
	return cart.New(built), nil
}

func loadProfiles(ctx context.Context, catalogRepo CatalogRepository, storeID uuid.UUID, crt cart.Cart) (map[uuid.UUID]ProductProfile, error) {
	ids := distinctProductIDs(crt)
	if len(ids) == 0 {
		return nil, nil
	}
	profiles, err := catalogRepo.FindProfiles(ctx, storeID, ids)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load product profiles")
	}
	return profiles, nil
}

func distinctProductIDs(crt cart.Cart) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{})
	var ids []uuid.UUID
	for _, l := range crt.Lines() {
		if _, ok := seen[l.ProductID()]; ok {
			continue
		}
		seen[l.ProductID()] = struct{}{}
		ids = append(ids, l.ProductID())
	}
	return ids
}

func categoryResolver(profiles map[uuid.UUID]ProductProfile) coupon.CategoryResolver {
	return func(productID uuid.UUID) (uuid.UUID, bool) {
		p, ok := profiles[productID]
		if !ok || p.CategoryID == nil {
			return uuid.Nil, false
		}
		return *p.CategoryID, true
	}
}

func shippingOverrides(profiles map[uuid.UUID]ProductProfile) map[uuid.UUID]shipping.ProductRates {
	overrides := make(map[uuid.UUID]shipping.ProductRates, len(profiles))
	for id, p := range profiles {
		overrides[id] = p.Shipping
	}
	return overrides
}
