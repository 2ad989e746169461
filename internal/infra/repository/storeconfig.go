package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"checkout-engine/internal/domain/geo"
	"checkout-engine/internal/domain/shipping"
	"checkout-engine/internal/infra"
	"checkout-engine/internal/pkg/errs"
	"checkout-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type StoreConfigRepository struct {
	pool *pgxpool.Pool
}

func NewStoreConfigRepository(pool *pgxpool.Pool) *StoreConfigRepository {
	return &StoreConfigRepository{pool: pool}
}

func (r *StoreConfigRepository) FindShippingConfig(ctx context.Context, storeID uuid.UUID) (shipping.Config, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT shipping_method, shipping_inside_charge, shipping_outside_charge, shipping_return_charge
		 FROM store_settings
		 WHERE store_id = $1`,
		storeID,
	)

	var (
		method  string
		inside  pgtype.Numeric
		outside pgtype.Numeric
		ret     pgtype.Numeric
	)
	if err := row.Scan(&method, &inside, &outside, &ret); err != nil {
		if pgconv.IsNoRows(err) {
			return shipping.Config{}, infra.WrapRepoErr("store settings not found", err, infra.KindNotFound)
		}
		return shipping.Config{}, infra.WrapRepoErr("failed to find shipping config", err)
	}

	if !shipping.Method(method).IsValid() {
		// A misconfigured method would silently misprice every order; refuse
		// to serve it.
		return shipping.Config{}, infra.WrapRepoErr(
			fmt.Sprintf("unknown shipping method %q for store %s", method, storeID),
			errs.New("invalid store settings"),
		)
	}

	insideCharge, err := pgconv.DecimalFromNumeric(inside)
	if err != nil {
		return shipping.Config{}, infra.WrapRepoErr("invalid inside charge", err)
	}
	outsideCharge, err := pgconv.DecimalFromNumeric(outside)
	if err != nil {
		return shipping.Config{}, infra.WrapRepoErr("invalid outside charge", err)
	}
	returnCharge, err := pgconv.DecimalFromNumeric(ret)
	if err != nil {
		return shipping.Config{}, infra.WrapRepoErr("invalid return charge", err)
	}

	return shipping.Config{
		Method:         shipping.Method(method),
		DefaultInside:  insideCharge,
		DefaultOutside: outsideCharge,
		DefaultReturn:  returnCharge,
	}, nil
}

func (r *StoreConfigRepository) FindDeliveryZone(ctx context.Context, storeID uuid.UUID) (geo.Zone, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT zone_method, zone_center_lat, zone_center_lng, zone_radius_km, zone_polygon
		 FROM store_settings
		 WHERE store_id = $1`,
		storeID,
	)

	var (
		method      string
		centerLat   pgtype.Float8
		centerLng   pgtype.Float8
		radiusKm    pgtype.Float8
		polygonJSON []byte
	)
	if err := row.Scan(&method, &centerLat, &centerLng, &radiusKm, &polygonJSON); err != nil {
		if pgconv.IsNoRows(err) {
			return geo.Zone{}, infra.WrapRepoErr("store settings not found", err, infra.KindNotFound)
		}
		return geo.Zone{}, infra.WrapRepoErr("failed to find delivery zone", err)
	}

	switch geo.Method(method) {
	case geo.MethodNone:
		return geo.NewUnrestrictedZone(), nil
	case geo.MethodRadius:
		if !centerLat.Valid || !centerLng.Valid || !radiusKm.Valid {
			return geo.Zone{}, infra.WrapRepoErr(
				fmt.Sprintf("radius zone for store %s is missing center or radius", storeID),
				errs.New("invalid store settings"),
			)
		}
		return geo.NewRadiusZone(geo.Point{Lat: centerLat.Float64, Lng: centerLng.Float64}, radiusKm.Float64), nil
	case geo.MethodManual:
		polygon, err := decodePolygon(polygonJSON)
		if err != nil {
			return geo.Zone{}, infra.WrapRepoErr("invalid zone polygon", err)
		}
		if len(polygon) < 3 {
			slog.Warn("store polygon has fewer than 3 vertices, treating zone as unrestricted",
				"store_id", storeID, "vertices", len(polygon))
		}
		return geo.NewPolygonZone(polygon), nil
	}
	return geo.Zone{}, infra.WrapRepoErr(
		fmt.Sprintf("unknown zone method %q for store %s", method, storeID),
		errs.New("invalid store settings"),
	)
}

type polygonVertex struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func decodePolygon(raw []byte) ([]geo.Point, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var vertices []polygonVertex
	if err := json.Unmarshal(raw, &vertices); err != nil {
		return nil, err
	}
	points := make([]geo.Point, 0, len(vertices))
	for _, v := range vertices {
		points = append(points, geo.Point{Lat: v.Lat, Lng: v.Lng})
	}
	return points, nil
}
