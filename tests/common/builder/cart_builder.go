//go:build unit

package builder

import (
	"checkout-engine/internal/domain/cart"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CartBuilder struct {
	lines []cart.Line
}

func NewCartBuilder() *CartBuilder {
	return &CartBuilder{}
}

// WithLine appends a line with no category attached. Price is a decimal
// string so tests read like fixture data.
func (b *CartBuilder) WithLine(productID uuid.UUID, unitPrice string, quantity int32) *CartBuilder {
	return b.withLine(productID, nil, unitPrice, quantity)
}

func (b *CartBuilder) WithCategorizedLine(productID, categoryID uuid.UUID, unitPrice string, quantity int32) *CartBuilder {
	return b.withLine(productID, &categoryID, unitPrice, quantity)
}

func (b *CartBuilder) withLine(productID uuid.UUID, categoryID *uuid.UUID, unitPrice string, quantity int32) *CartBuilder {
	line, err := cart.NewLine(productID, categoryID, decimal.RequireFromString(unitPrice), quantity)
	if err != nil {
		panic(err)
	}
	b.lines = append(b.lines, line)
	return b
}

func (b *CartBuilder) Build() cart.Cart {
	return cart.New(b.lines)
}
