// Package fixtures provides a YAML-backed implementation of the persistence
// ports. It lets the engine run against a static dataset, for local
// development and for exercising the usecase layer without a database.
package fixtures

import (
	"os"
	"time"

	"checkout-engine/internal/domain/coupon"
	"checkout-engine/internal/domain/geo"
	"checkout-engine/internal/domain/shipping"
	"checkout-engine/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type File struct {
	Stores   []StoreFixture   `yaml:"stores"`
	Products []ProductFixture `yaml:"products"`
	Coupons  []CouponFixture  `yaml:"coupons"`
}

type StoreFixture struct {
	ID       string          `yaml:"id"`
	Shipping ShippingFixture `yaml:"shipping"`
	Zone     ZoneFixture     `yaml:"zone"`
}

type ShippingFixture struct {
	Method        string `yaml:"method"`
	InsideCharge  string `yaml:"inside_charge"`
	OutsideCharge string `yaml:"outside_charge"`
	ReturnCharge  string `yaml:"return_charge"`
}

type ZoneFixture struct {
	Method   string          `yaml:"method"`
	Center   *VertexFixture  `yaml:"center,omitempty"`
	RadiusKm float64         `yaml:"radius_km,omitempty"`
	Polygon  []VertexFixture `yaml:"polygon,omitempty"`
}

type VertexFixture struct {
	Lat float64 `yaml:"lat"`
	Lng float64 `yaml:"lng"`
}

type ProductFixture struct {
	ID              string  `yaml:"id"`
	StoreID         string  `yaml:"store_id"`
	CategoryID      *string `yaml:"category_id,omitempty"`
	ShippingInside  *string `yaml:"shipping_inside,omitempty"`
	ShippingOutside *string `yaml:"shipping_outside,omitempty"`
}

type CouponFixture struct {
	ID              string        `yaml:"id"`
	StoreID         string        `yaml:"store_id"`
	Code            string        `yaml:"code"`
	Active          bool          `yaml:"active"`
	DiscountType    string        `yaml:"discount_type"`
	DiscountValue   string        `yaml:"discount_value"`
	AppliesTo       string        `yaml:"applies_to"`
	ProductIDs      []string      `yaml:"product_ids,omitempty"`
	CategoryIDs     []string      `yaml:"category_ids,omitempty"`
	ValidFrom       time.Time     `yaml:"valid_from"`
	ValidUntil      *time.Time    `yaml:"valid_until,omitempty"`
	MaxUses         *int32        `yaml:"max_uses,omitempty"`
	UsesCount       int32         `yaml:"uses_count"`
	MinimumPurchase *string       `yaml:"minimum_purchase,omitempty"`
	BogoBuyQuantity int32         `yaml:"bogo_buy_quantity,omitempty"`
	BogoGetQuantity int32         `yaml:"bogo_get_quantity,omitempty"`
	BogoGetPercent  string        `yaml:"bogo_get_discount_percentage,omitempty"`
	Tiers           []TierFixture `yaml:"tiers,omitempty"`
}

type TierFixture struct {
	MinAmount     string `yaml:"min_amount"`
	DiscountType  string `yaml:"discount_type"`
	DiscountValue string `yaml:"discount_value"`
}

func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errs.Wrap(err, "failed to parse fixtures yaml")
	}
	return &f, nil
}

func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read fixtures file")
	}
	return Parse(data)
}

func parseDecimal(field, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, errs.Wrap(err, "fixtures: invalid decimal in "+field)
	}
	return d, nil
}

func parseDecimalPtr(field string, value *string) (*decimal.Decimal, error) {
	if value == nil {
		return nil, nil
	}
	d, err := parseDecimal(field, *value)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func parseUUID(field, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "fixtures: invalid uuid in "+field)
	}
	return id, nil
}

func parseUUIDs(field string, values []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(values))
	for _, v := range values {
		id, err := parseUUID(field, v)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (s ShippingFixture) toConfig() (shipping.Config, error) {
	if !shipping.Method(s.Method).IsValid() {
		return shipping.Config{}, errs.New("fixtures: unknown shipping method " + s.Method)
	}
	inside, err := parseDecimal("shipping.inside_charge", s.InsideCharge)
	if err != nil {
		return shipping.Config{}, err
	}
	outside, err := parseDecimal("shipping.outside_charge", s.OutsideCharge)
	if err != nil {
		return shipping.Config{}, err
	}
	ret := decimal.Zero
	if s.ReturnCharge != "" {
		ret, err = parseDecimal("shipping.return_charge", s.ReturnCharge)
		if err != nil {
			return shipping.Config{}, err
		}
	}
	return shipping.Config{
		Method:         shipping.Method(s.Method),
		DefaultInside:  inside,
		DefaultOutside: outside,
		DefaultReturn:  ret,
	}, nil
}

func (z ZoneFixture) toZone() (geo.Zone, error) {
	switch geo.Method(z.Method) {
	case geo.MethodNone, "":
		return geo.NewUnrestrictedZone(), nil
	case geo.MethodRadius:
		if z.Center == nil {
			return geo.Zone{}, errs.New("fixtures: radius zone without a center")
		}
		return geo.NewRadiusZone(geo.Point{Lat: z.Center.Lat, Lng: z.Center.Lng}, z.RadiusKm), nil
	case geo.MethodManual:
		polygon := make([]geo.Point, 0, len(z.Polygon))
		for _, v := range z.Polygon {
			polygon = append(polygon, geo.Point{Lat: v.Lat, Lng: v.Lng})
		}
		return geo.NewPolygonZone(polygon), nil
	}
	return geo.Zone{}, errs.New("fixtures: unknown zone method " + z.Method)
}

func (c CouponFixture) toSpec() (coupon.Spec, error) {
	id, err := parseUUID("coupon.id", c.ID)
	if err != nil {
		return coupon.Spec{}, err
	}
	storeID, err := parseUUID("coupon.store_id", c.StoreID)
	if err != nil {
		return coupon.Spec{}, err
	}
	value, err := parseDecimal("coupon.discount_value", c.DiscountValue)
	if err != nil {
		return coupon.Spec{}, err
	}
	productIDs, err := parseUUIDs("coupon.product_ids", c.ProductIDs)
	if err != nil {
		return coupon.Spec{}, err
	}
	categoryIDs, err := parseUUIDs("coupon.category_ids", c.CategoryIDs)
	if err != nil {
		return coupon.Spec{}, err
	}
	minimum, err := parseDecimalPtr("coupon.minimum_purchase", c.MinimumPurchase)
	if err != nil {
		return coupon.Spec{}, err
	}
	bogoPct := decimal.Zero
	if c.BogoGetPercent != "" {
		bogoPct, err = parseDecimal("coupon.bogo_get_discount_percentage", c.BogoGetPercent)
		if err != nil {
			return coupon.Spec{}, err
		}
	}
	tiers := make([]coupon.Tier, 0, len(c.Tiers))
	for _, t := range c.Tiers {
		minAmount, err := parseDecimal("tier.min_amount", t.MinAmount)
		if err != nil {
			return coupon.Spec{}, err
		}
		tierValue, err := parseDecimal("tier.discount_value", t.DiscountValue)
		if err != nil {
			return coupon.Spec{}, err
		}
		tiers = append(tiers, coupon.Tier{
			MinAmount:     minAmount,
			DiscountType:  coupon.DiscountType(t.DiscountType),
			DiscountValue: tierValue,
		})
	}
	if len(tiers) == 0 {
		tiers = nil
	}

	appliesTo := coupon.AppliesTo(c.AppliesTo)
	if c.AppliesTo == "" {
		appliesTo = coupon.AppliesToAll
	}

	now := time.Now()
	return coupon.Spec{
		ID:                        id,
		StoreID:                   storeID,
		Code:                      c.Code,
		Active:                    c.Active,
		DiscountType:              coupon.DiscountType(c.DiscountType),
		DiscountValue:             value,
		AppliesTo:                 appliesTo,
		ProductIDs:                productIDs,
		CategoryIDs:               categoryIDs,
		ValidFrom:                 c.ValidFrom,
		ValidUntil:                c.ValidUntil,
		MaxUses:                   c.MaxUses,
		UsesCount:                 c.UsesCount,
		MinimumPurchase:           minimum,
		BogoBuyQuantity:           c.BogoBuyQuantity,
		BogoGetQuantity:           c.BogoGetQuantity,
		BogoGetDiscountPercentage: bogoPct,
		Tiers:                     tiers,
		CreatedAt:                 now,
		UpdatedAt:                 now,
	}, nil
}
