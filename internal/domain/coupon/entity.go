package coupon

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Spec carries every field of a coupon row. Kept as a plain struct so the
// infra layer can reconstruct entities without a 17-argument constructor.
type Spec struct {
	ID              uuid.UUID
	StoreID         uuid.UUID
	Code            string
	Active          bool
	DiscountType    DiscountType
	DiscountValue   decimal.Decimal
	AppliesTo       AppliesTo
	ProductIDs      []uuid.UUID
	CategoryIDs     []uuid.UUID
	ValidFrom       time.Time
	ValidUntil      *time.Time
	MaxUses         *int32
	UsesCount       int32
	MinimumPurchase *decimal.Decimal
	BogoBuyQuantity int32
	BogoGetQuantity int32
	// BogoGetDiscountPercentage defaults to 100 (fully free units) when zero.
	BogoGetDiscountPercentage decimal.Decimal
	Tiers                     []Tier
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
}

type Coupon struct {
	id              uuid.UUID
	storeID         uuid.UUID
	code            Code
	active          bool
	discountType    DiscountType
	discountValue   decimal.Decimal
	appliesTo       AppliesTo
	productIDs      map[uuid.UUID]struct{}
	categoryIDs     map[uuid.UUID]struct{}
	validFrom       time.Time
	validUntil      *time.Time
	maxUses         *int32
	usesCount       int32
	minimumPurchase *decimal.Decimal
	bogoBuyQuantity int32
	bogoGetQuantity int32
	bogoGetPercent  decimal.Decimal
	tiers           []Tier
	createdAt       time.Time
	updatedAt       time.Time
}

func New(spec Spec) (*Coupon, error) {
	code, err := NewCode(spec.Code)
	if err != nil {
		return nil, err
	}
	if !spec.DiscountType.IsValid() {
		return nil, ErrInvalidDiscountType
	}
	if !spec.AppliesTo.IsValid() {
		return nil, ErrInvalidAppliesTo
	}
	if err := validateDiscountValue(spec.DiscountType, spec.DiscountValue); err != nil {
		return nil, err
	}
	if spec.MinimumPurchase != nil && spec.MinimumPurchase.IsNegative() {
		return nil, ErrNegativeMinimumPurchase
	}

	bogoPercent := spec.BogoGetDiscountPercentage
	if spec.DiscountType == DiscountBogo {
		if spec.BogoBuyQuantity < 1 || spec.BogoGetQuantity < 1 {
			return nil, ErrInvalidBogoQuantity
		}
		if bogoPercent.IsZero() {
			bogoPercent = hundred
		}
		if bogoPercent.IsNegative() || bogoPercent.GreaterThan(hundred) {
			return nil, ErrInvalidDiscountValue
		}
	}
	if spec.DiscountType == DiscountTiered {
		for _, t := range spec.Tiers {
			if err := t.validate(); err != nil {
				return nil, err
			}
		}
	}

	return &Coupon{
		id:              spec.ID,
		storeID:         spec.StoreID,
		code:            code,
		active:          spec.Active,
		discountType:    spec.DiscountType,
		discountValue:   spec.DiscountValue,
		appliesTo:       spec.AppliesTo,
		productIDs:      toSet(spec.ProductIDs),
		categoryIDs:     toSet(spec.CategoryIDs),
		validFrom:       spec.ValidFrom,
		validUntil:      spec.ValidUntil,
		maxUses:         spec.MaxUses,
		usesCount:       spec.UsesCount,
		minimumPurchase: spec.MinimumPurchase,
		bogoBuyQuantity: spec.BogoBuyQuantity,
		bogoGetQuantity: spec.BogoGetQuantity,
		bogoGetPercent:  bogoPercent,
		tiers:           append([]Tier(nil), spec.Tiers...),
		createdAt:       spec.CreatedAt,
		updatedAt:       spec.UpdatedAt,
	}, nil
}

func validateDiscountValue(dt DiscountType, value decimal.Decimal) error {
	switch dt {
	case DiscountPercentage:
		if value.IsNegative() || value.GreaterThan(hundred) {
			return ErrInvalidDiscountValue
		}
	case DiscountFixed:
		if value.IsNegative() {
			return ErrInvalidDiscountValue
		}
	}
	return nil
}

func toSet(ids []uuid.UUID) map[uuid.UUID]struct{} {
	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func (c *Coupon) ID() uuid.UUID                     { return c.id }
func (c *Coupon) StoreID() uuid.UUID                { return c.storeID }
func (c *Coupon) Code() Code                        { return c.code }
func (c *Coupon) Active() bool                      { return c.active }
func (c *Coupon) DiscountType() DiscountType        { return c.discountType }
func (c *Coupon) DiscountValue() decimal.Decimal    { return c.discountValue }
func (c *Coupon) AppliesTo() AppliesTo              { return c.appliesTo }
func (c *Coupon) ValidFrom() time.Time              { return c.validFrom }
func (c *Coupon) ValidUntil() *time.Time            { return c.validUntil }
func (c *Coupon) MaxUses() *int32                   { return c.maxUses }
func (c *Coupon) UsesCount() int32                  { return c.usesCount }
func (c *Coupon) MinimumPurchase() *decimal.Decimal { return c.minimumPurchase }
func (c *Coupon) Tiers() []Tier                     { return append([]Tier(nil), c.tiers...) }
func (c *Coupon) CreatedAt() time.Time              { return c.createdAt }
func (c *Coupon) UpdatedAt() time.Time              { return c.updatedAt }
