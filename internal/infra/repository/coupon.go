package repository

import (
	"context"
	"encoding/json"

	"checkout-engine/internal/domain/coupon"
	"checkout-engine/internal/infra"
	"checkout-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const couponColumns = `
	id, store_id, code, active, discount_type, discount_value, applies_to,
	product_ids, category_ids, valid_from, valid_until, max_uses, uses_count,
	minimum_purchase, bogo_buy_quantity, bogo_get_quantity,
	bogo_get_discount_percentage, discount_tiers, created_at, updated_at`

type CouponRepository struct {
	pool *pgxpool.Pool
}

func NewCouponRepository(pool *pgxpool.Pool) *CouponRepository {
	return &CouponRepository{pool: pool}
}

func (r *CouponRepository) FindByCode(ctx context.Context, storeID uuid.UUID, code string) (*coupon.Coupon, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT`+couponColumns+`
		 FROM coupons
		 WHERE store_id = $1 AND code = upper(trim($2))`,
		storeID, code,
	)

	var (
		id            uuid.UUID
		rowStoreID    uuid.UUID
		rowCode       string
		active        bool
		discountType  string
		discountValue pgtype.Numeric
		appliesTo     string
		productIDs    []uuid.UUID
		categoryIDs   []uuid.UUID
		validFrom     pgtype.Timestamptz
		validUntil    pgtype.Timestamptz
		maxUses       pgtype.Int4
		usesCount     int32
		minPurchase   pgtype.Numeric
		bogoBuyQty    int32
		bogoGetQty    int32
		bogoGetPct    pgtype.Numeric
		tiersJSON     []byte
		createdAt     pgtype.Timestamptz
		updatedAt     pgtype.Timestamptz
	)

	err := row.Scan(
		&id, &rowStoreID, &rowCode, &active, &discountType, &discountValue,
		&appliesTo, &productIDs, &categoryIDs, &validFrom, &validUntil,
		&maxUses, &usesCount, &minPurchase, &bogoBuyQty, &bogoGetQty,
		&bogoGetPct, &tiersJSON, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by code", err)
	}

	value, err := pgconv.DecimalFromNumeric(discountValue)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid discount value", err)
	}
	minimum, err := pgconv.DecimalPtrFromNumeric(minPurchase)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid minimum purchase", err)
	}
	bogoPct := decimal.Zero
	if bogoGetPct.Valid {
		bogoPct, err = pgconv.DecimalFromNumeric(bogoGetPct)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid bogo percentage", err)
		}
	}
	tiers, err := decodeTiers(tiersJSON)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid discount tiers", err)
	}

	coup, err := coupon.New(coupon.Spec{
		ID:                        id,
		StoreID:                   rowStoreID,
		Code:                      rowCode,
		Active:                    active,
		DiscountType:              coupon.DiscountType(discountType),
		DiscountValue:             value,
		AppliesTo:                 coupon.AppliesTo(appliesTo),
		ProductIDs:                productIDs,
		CategoryIDs:               categoryIDs,
		ValidFrom:                 pgconv.TimeFromPgtype(validFrom),
		ValidUntil:                pgconv.TimePtrFromPgtype(validUntil),
		MaxUses:                   pgconv.Int32PtrFromPgtype(maxUses),
		UsesCount:                 usesCount,
		MinimumPurchase:           minimum,
		BogoBuyQuantity:           bogoBuyQty,
		BogoGetQuantity:           bogoGetQty,
		BogoGetDiscountPercentage: bogoPct,
		Tiers:                     tiers,
		CreatedAt:                 pgconv.TimeFromPgtype(createdAt),
		UpdatedAt:                 pgconv.TimeFromPgtype(updatedAt),
	})
	if err != nil {
		// Row data that cannot form a valid coupon is misconfigured store
		// data, not a lookup miss.
		return nil, infra.WrapRepoErr("stored coupon is invalid", err)
	}
	return coup, nil
}

// IncrementUses burns one use under the max_uses guard. The WHERE clause is
// the authoritative enforcement: concurrent redemptions serialize on the row
// and the loser sees zero affected rows.
func (r *CouponRepository) IncrementUses(ctx context.Context, storeID uuid.UUID, code string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE coupons
		 SET uses_count = uses_count + 1, updated_at = now()
		 WHERE store_id = $1 AND code = upper(trim($2))
		   AND (max_uses IS NULL OR uses_count < max_uses)`,
		storeID, code,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to increment coupon uses", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	// Distinguish an exhausted coupon from an unknown code.
	var exists bool
	err = r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM coupons WHERE store_id = $1 AND code = upper(trim($2)))`,
		storeID, code,
	).Scan(&exists)
	if err != nil {
		return infra.WrapRepoErr("failed to check coupon existence", err)
	}
	if !exists {
		return infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
	}
	return coupon.ErrUsageLimitReached
}

type tierRow struct {
	MinAmount     decimal.Decimal `json:"min_amount"`
	DiscountType  string          `json:"discount_type"`
	DiscountValue decimal.Decimal `json:"discount_value"`
}

func decodeTiers(raw []byte) ([]coupon.Tier, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var rows []tierRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, err
	}
	tiers := make([]coupon.Tier, 0, len(rows))
	for _, t := range rows {
		tiers = append(tiers, coupon.Tier{
			MinAmount:     t.MinAmount,
			DiscountType:  coupon.DiscountType(t.DiscountType),
			DiscountValue: t.DiscountValue,
		})
	}
	return tiers, nil
}
