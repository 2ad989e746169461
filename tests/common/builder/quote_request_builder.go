//go:build unit

package builder

import (
	reqdto "checkout-engine/internal/handler/dto/request"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type QuoteRequestBuilder struct {
	req reqdto.QuoteRequest
}

func NewQuoteRequestBuilder() *QuoteRequestBuilder {
	return &QuoteRequestBuilder{
		req: reqdto.QuoteRequest{
			StoreID: uuid.New(),
			Zone:    "outside",
			Lines: []reqdto.QuoteLine{
				{
					ProductID: uuid.New(),
					UnitPrice: decimal.NewFromInt(100),
					Quantity:  1,
				},
			},
		},
	}
}

func (b *QuoteRequestBuilder) WithStore(storeID uuid.UUID) *QuoteRequestBuilder {
	b.req.StoreID = storeID
	return b
}

func (b *QuoteRequestBuilder) WithZone(zone string) *QuoteRequestBuilder {
	b.req.Zone = zone
	return b
}

func (b *QuoteRequestBuilder) WithCoupon(code string) *QuoteRequestBuilder {
	b.req.CouponCode = &code
	return b
}

func (b *QuoteRequestBuilder) WithLines(lines ...reqdto.QuoteLine) *QuoteRequestBuilder {
	b.req.Lines = lines
	return b
}

func (b *QuoteRequestBuilder) Build() reqdto.QuoteRequest {
	return b.req
}

// BuildResolveRequest reuses the cart lines for the coupon resolve endpoint.
func (b *QuoteRequestBuilder) BuildResolveRequest(code string) reqdto.ResolveCouponRequest {
	return reqdto.ResolveCouponRequest{
		StoreID: b.req.StoreID,
		Code:    code,
		Lines:   b.req.Lines,
	}
}
