package request

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// QuoteLine is one cart entry as the caller sees it. Unit price arrives as a
// JSON number or string; decimal parsing keeps cent-exact values.
type QuoteLine struct {
	ProductID  uuid.UUID       `json:"product_id" binding:"required"`
	CategoryID *uuid.UUID      `json:"category_id,omitempty"`
	UnitPrice  decimal.Decimal `json:"unit_price" binding:"required"`
	Quantity   int32           `json:"quantity" binding:"required,min=1"`
}

type QuoteRequest struct {
	StoreID    uuid.UUID   `json:"store_id" binding:"required"`
	Zone       string      `json:"zone" binding:"required,oneof=inside outside"`
	CouponCode *string     `json:"coupon_code,omitempty"`
	Lines      []QuoteLine `json:"lines" binding:"dive"`
}

type ResolveCouponRequest struct {
	StoreID uuid.UUID   `json:"store_id" binding:"required"`
	Code    string      `json:"code" binding:"required"`
	Lines   []QuoteLine `json:"lines" binding:"dive"`
}

type RedeemCouponRequest struct {
	StoreID uuid.UUID `json:"store_id" binding:"required"`
}

// DeliveryCheckRequest carries the customer coordinate when the caller could
// obtain one. A missing location is a legitimate state, not a bad request.
type DeliveryCheckRequest struct {
	StoreID  uuid.UUID         `json:"store_id" binding:"required"`
	Location *DeliveryLocation `json:"location,omitempty"`
}

type DeliveryLocation struct {
	Lat float64 `json:"lat" binding:"min=-90,max=90"`
	Lng float64 `json:"lng" binding:"min=-180,max=180"`
}
