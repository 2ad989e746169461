package shipping

import (
	"github.com/shopspring/decimal"
)

type Method string

const (
	MethodFlatRate   Method = "flat_rate"
	MethodPerProduct Method = "per_product"
	MethodPerItem    Method = "per_item"
)

func (m Method) IsValid() bool {
	switch m {
	case MethodFlatRate, MethodPerProduct, MethodPerItem:
		return true
	}
	return false
}

// ZoneLabel selects which side of the store's delivery boundary the order
// ships to. Unknown labels must be rejected before rate resolution.
type ZoneLabel string

const (
	ZoneInside  ZoneLabel = "inside"
	ZoneOutside ZoneLabel = "outside"
)

func (z ZoneLabel) IsValid() bool {
	return z == ZoneInside || z == ZoneOutside
}

// Config holds a store's shipping defaults.
type Config struct {
	Method         Method
	DefaultInside  decimal.Decimal
	DefaultOutside decimal.Decimal
	DefaultReturn  decimal.Decimal
}

// ProductRates are per-product overrides; nil means fall back to the store
// default for that zone.
type ProductRates struct {
	Inside  *decimal.Decimal
	Outside *decimal.Decimal
}

func (c Config) defaultRate(zone ZoneLabel) decimal.Decimal {
	switch zone {
	case ZoneInside:
		return c.DefaultInside
	case ZoneOutside:
		return c.DefaultOutside
	}
	panic("shipping: unknown zone label " + string(zone))
}

func (r ProductRates) rate(zone ZoneLabel) *decimal.Decimal {
	switch zone {
	case ZoneInside:
		return r.Inside
	case ZoneOutside:
		return r.Outside
	}
	panic("shipping: unknown zone label " + string(zone))
}
