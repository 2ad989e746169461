package repository

import (
	"context"

	"checkout-engine/internal/domain/shipping"
	"checkout-engine/internal/infra"
	"checkout-engine/internal/pkg/pgconv"
	"checkout-engine/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CatalogRepository struct {
	pool *pgxpool.Pool
}

func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

func (r *CatalogRepository) FindProfiles(ctx context.Context, storeID uuid.UUID, productIDs []uuid.UUID) (map[uuid.UUID]commands.ProductProfile, error) {
	profiles := make(map[uuid.UUID]commands.ProductProfile, len(productIDs))
	if len(productIDs) == 0 {
		return profiles, nil
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, category_id, shipping_inside, shipping_outside
		 FROM products
		 WHERE store_id = $1 AND id = ANY($2)`,
		storeID, productIDs,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query product profiles", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id         uuid.UUID
			categoryID pgtype.UUID
			inside     pgtype.Numeric
			outside    pgtype.Numeric
		)
		if err := rows.Scan(&id, &categoryID, &inside, &outside); err != nil {
			return nil, infra.WrapRepoErr("failed to scan product profile", err)
		}
		insideRate, err := pgconv.DecimalPtrFromNumeric(inside)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid inside shipping rate", err)
		}
		outsideRate, err := pgconv.DecimalPtrFromNumeric(outside)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid outside shipping rate", err)
		}
		profiles[id] = commands.ProductProfile{
			CategoryID: pgconv.UUIDPtrFromPgtype(categoryID),
			Shipping: shipping.ProductRates{
				Inside:  insideRate,
				Outside: outsideRate,
			},
		}
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate product profiles", err)
	}
	return profiles, nil
}
