package cart

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNegativeUnitPrice = errors.New("unit price cannot be negative")
	ErrInvalidQuantity   = errors.New("quantity must be a positive integer")
)

// Line is a single cart entry. Immutable for the duration of a pricing
// computation; the caller owns the underlying data.
type Line struct {
	productID  uuid.UUID
	categoryID *uuid.UUID
	unitPrice  decimal.Decimal
	quantity   int32
}

func NewLine(productID uuid.UUID, categoryID *uuid.UUID, unitPrice decimal.Decimal, quantity int32) (Line, error) {
	if unitPrice.IsNegative() {
		return Line{}, ErrNegativeUnitPrice
	}
	if quantity < 1 {
		return Line{}, ErrInvalidQuantity
	}
	var catCopy *uuid.UUID
	if categoryID != nil {
		c := *categoryID
		catCopy = &c
	}
	return Line{
		productID:  productID,
		categoryID: catCopy,
		unitPrice:  unitPrice,
		quantity:   quantity,
	}, nil
}

func (l Line) ProductID() uuid.UUID       { return l.productID }
func (l Line) CategoryID() *uuid.UUID     { return l.categoryID }
func (l Line) UnitPrice() decimal.Decimal { return l.unitPrice }
func (l Line) Quantity() int32            { return l.quantity }

// Total is unitPrice × quantity for this line.
func (l Line) Total() decimal.Decimal {
	return l.unitPrice.Mul(decimal.NewFromInt32(l.quantity))
}

type Cart struct {
	lines []Line
}

func New(lines []Line) Cart {
	copied := make([]Line, len(lines))
	copy(copied, lines)
	return Cart{lines: copied}
}

func (c Cart) Lines() []Line {
	copied := make([]Line, len(c.lines))
	copy(copied, c.lines)
	return copied
}

func (c Cart) IsEmpty() bool { return len(c.lines) == 0 }

func (c Cart) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, l := range c.lines {
		subtotal = subtotal.Add(l.Total())
	}
	return subtotal
}
