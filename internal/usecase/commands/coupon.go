package commands

import (
	"context"

	"checkout-engine/internal/domain/coupon"
	reqdto "checkout-engine/internal/handler/dto/request"
	"checkout-engine/internal/infra"
	"checkout-engine/internal/pkg/clock"
	"checkout-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

type CouponCommands interface {
	// ResolveCoupon validates the coupon against the cart and computes the
	// discount outcome. Rejections surface as the coupon sentinel errors.
	ResolveCoupon(ctx context.Context, req reqdto.ResolveCouponRequest) (*coupon.DiscountOutcome, error)
	// RedeemCoupon burns one use at order commit. Quoting never calls this;
	// two concurrent checkouts may both quote successfully, and the guarded
	// increment is what settles the race.
	RedeemCoupon(ctx context.Context, storeID uuid.UUID, code string) error
}

type couponUseCaseImpl struct {
	couponRepo  CouponRepository
	catalogRepo CatalogRepository
	clock       clock.Clock
}

func NewCouponCommands(
	couponRepo CouponRepository,
	catalogRepo CatalogRepository,
	clock clock.Clock,
) CouponCommands {
	return &couponUseCaseImpl{
		couponRepo:  couponRepo,
		catalogRepo: catalogRepo,
		clock:       clock,
	}
}

func (u *couponUseCaseImpl) ResolveCoupon(ctx context.Context, req reqdto.ResolveCouponRequest) (*coupon.DiscountOutcome, error) {
	crt, err := buildCart(req.Lines)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidQuoteRequest)
	}

	coup, err := u.couponRepo.FindByCode(ctx, req.StoreID, req.Code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrCouponNotFound)
		}
		return nil, errs.Wrap(err, "failed to load coupon")
	}

	profiles, err := loadProfiles(ctx, u.catalogRepo, req.StoreID, crt)
	if err != nil {
		return nil, err
	}

	return coup.Resolve(crt, u.clock.Now(), categoryResolver(profiles))
}

func (u *couponUseCaseImpl) RedeemCoupon(ctx context.Context, storeID uuid.UUID, code string) error {
	if err := u.couponRepo.IncrementUses(ctx, storeID, code); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrCouponNotFound)
		}
		return err
	}
	return nil
}
