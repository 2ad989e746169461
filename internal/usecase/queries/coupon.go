package queries

import (
	"context"
	"time"

	"checkout-engine/internal/domain/coupon"
	"checkout-engine/internal/infra"
	"checkout-engine/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrCouponNotFound = errs.New("coupon not found")

// Read models (DTO for read side)
type CouponView struct {
	ID              uuid.UUID        `json:"id"`
	StoreID         uuid.UUID        `json:"store_id"`
	Code            string           `json:"code"`
	Active          bool             `json:"active"`
	DiscountType    string           `json:"discount_type"`
	DiscountValue   decimal.Decimal  `json:"discount_value"`
	AppliesTo       string           `json:"applies_to"`
	ValidFrom       time.Time        `json:"valid_from"`
	ValidUntil      *time.Time       `json:"valid_until,omitempty"`
	MaxUses         *int32           `json:"max_uses,omitempty"`
	UsesCount       int32            `json:"uses_count"`
	MinimumPurchase *decimal.Decimal `json:"minimum_purchase,omitempty"`
	Tiers           []TierView       `json:"tiers,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

type TierView struct {
	MinAmount     decimal.Decimal `json:"min_amount"`
	DiscountType  string          `json:"discount_type"`
	DiscountValue decimal.Decimal `json:"discount_value"`
}

type CouponReadStore interface {
	FindByCode(ctx context.Context, storeID uuid.UUID, code string) (*coupon.Coupon, error)
}

type CouponQueries interface {
	GetByCode(ctx context.Context, storeID uuid.UUID, code string) (*CouponView, error)
}

type couponQueriesImpl struct {
	repo CouponReadStore
}

func NewCouponQueries(repo CouponReadStore) CouponQueries {
	return &couponQueriesImpl{repo: repo}
}

func (q *couponQueriesImpl) GetByCode(ctx context.Context, storeID uuid.UUID, code string) (*CouponView, error) {
	coup, err := q.repo.FindByCode(ctx, storeID, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrCouponNotFound)
		}
		return nil, errs.Wrap(err, "failed to load coupon")
	}
	return toCouponView(coup), nil
}

func toCouponView(c *coupon.Coupon) *CouponView {
	tiers := make([]TierView, 0, len(c.Tiers()))
	for _, t := range c.Tiers() {
		tiers = append(tiers, TierView{
			MinAmount:     t.MinAmount,
			DiscountType:  string(t.DiscountType),
			DiscountValue: t.DiscountValue,
		})
	}
	if len(tiers) == 0 {
		tiers = nil
	}
	return &CouponView{
		ID:              c.ID(),
		StoreID:         c.StoreID(),
		Code:            c.Code().String(),
		Active:          c.Active(),
		DiscountType:    string(c.DiscountType()),
		DiscountValue:   c.DiscountValue(),
		AppliesTo:       string(c.AppliesTo()),
		ValidFrom:       c.ValidFrom(),
		ValidUntil:      c.ValidUntil(),
		MaxUses:         c.MaxUses(),
		UsesCount:       c.UsesCount(),
		MinimumPurchase: c.MinimumPurchase(),
		Tiers:           tiers,
		CreatedAt:       c.CreatedAt(),
		UpdatedAt:       c.UpdatedAt(),
	}
}
