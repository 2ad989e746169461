package queries

import (
	"context"

	"checkout-engine/internal/domain/geo"
	"checkout-engine/internal/infra"
	"checkout-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrStoreNotFound = errs.New("store not found")

type DeliveryStatus string

const (
	DeliveryStatusDeliverable DeliveryStatus = "deliverable"
	DeliveryStatusOutsideZone DeliveryStatus = "outside_zone"
	// DeliveryStatusLocationUnavailable means the caller could not obtain a
	// coordinate (permission denied, timeout). Reported distinctly so the UI
	// can offer a retry; never conflated with being outside the zone.
	DeliveryStatusLocationUnavailable DeliveryStatus = "location_unavailable"
)

type ZoneReadStore interface {
	FindDeliveryZone(ctx context.Context, storeID uuid.UUID) (geo.Zone, error)
}

type DeliveryQueries interface {
	CheckPoint(ctx context.Context, storeID uuid.UUID, point *geo.Point) (DeliveryStatus, error)
}

type deliveryQueriesImpl struct {
	zones ZoneReadStore
}

func NewDeliveryQueries(zones ZoneReadStore) DeliveryQueries {
	return &deliveryQueriesImpl{zones: zones}
}

func (q *deliveryQueriesImpl) CheckPoint(ctx context.Context, storeID uuid.UUID, point *geo.Point) (DeliveryStatus, error) {
	if point == nil {
		return DeliveryStatusLocationUnavailable, nil
	}

	zone, err := q.zones.FindDeliveryZone(ctx, storeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", errs.Mark(err, ErrStoreNotFound)
		}
		return "", errs.Wrap(err, "failed to load delivery zone")
	}

	if zone.Contains(*point) {
		return DeliveryStatusDeliverable, nil
	}
	return DeliveryStatusOutsideZone, nil
}
