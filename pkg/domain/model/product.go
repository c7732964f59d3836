package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock quantity")
	ErrProductExpired    = errors.New("product is past its expiry date")
	ErrInvalidQuantity   = errors.New("quantity must be a positive number")
	ErrNegativePrice     = errors.New("price cannot be negative")
	ErrInvalidWeight     = errors.New("unit weight must be a positive number")
	ErrOptimisticLock    = errors.New("entity has been modified by another transaction")
)

type ProductKind int

const (
	Cheese ProductKind = iota
	Biscuits
	TV
	ScratchCard
)

// ShippingInfo is the optional shipping capability of a product variant.
// A product requires physical shipment iff it carries one.
type ShippingInfo struct {
	UnitWeightKg decimal.Decimal
}

// Product is a catalog entry. Expiry and shipping are orthogonal
// capabilities attached per variant rather than a subtype hierarchy.
type Product struct {
	ID            uuid.UUID
	Kind          ProductKind
	Name          string
	Price         decimal.Decimal
	StockQuantity int
	Version       int

	expiresAt *time.Time
	shipping  *ShippingInfo
}

func newProduct(kind ProductKind, name string, price decimal.Decimal, stock int, expiresAt *time.Time, shipping *ShippingInfo) (*Product, error) {
	if price.IsNegative() {
		return nil, ErrNegativePrice
	}
	if stock < 0 {
		return nil, ErrInvalidQuantity
	}
	if shipping != nil && !shipping.UnitWeightKg.IsPositive() {
		return nil, ErrInvalidWeight
	}
	return &Product{
		ID:            uuid.New(),
		Kind:          kind,
		Name:          name,
		Price:         price,
		StockQuantity: stock,
		Version:       1,
		expiresAt:     expiresAt,
		shipping:      shipping,
	}, nil
}

func NewCheese(name string, price decimal.Decimal, stock int, expiresAt time.Time, unitWeightKg decimal.Decimal) (*Product, error) {
	return newProduct(Cheese, name, price, stock, &expiresAt, &ShippingInfo{UnitWeightKg: unitWeightKg})
}

func NewBiscuits(name string, price decimal.Decimal, stock int, expiresAt time.Time, unitWeightKg decimal.Decimal) (*Product, error) {
	return newProduct(Biscuits, name, price, stock, &expiresAt, &ShippingInfo{UnitWeightKg: unitWeightKg})
}

func NewTV(name string, price decimal.Decimal, stock int, unitWeightKg decimal.Decimal) (*Product, error) {
	return newProduct(TV, name, price, stock, nil, &ShippingInfo{UnitWeightKg: unitWeightKg})
}

func NewScratchCard(name string, price decimal.Decimal, stock int) (*Product, error) {
	return newProduct(ScratchCard, name, price, stock, nil, nil)
}

// IsExpired reports whether the current instant is strictly past the
// product's expiry. Products without an expiry never expire.
func (p *Product) IsExpired() bool {
	return p.expiresAt != nil && time.Now().After(*p.expiresAt)
}

func (p *Product) RequiresShipping() bool {
	return p.shipping != nil
}

// UnitWeight returns the unit weight in kilograms, or zero for
// products that do not ship.
func (p *Product) UnitWeight() decimal.Decimal {
	if p.shipping == nil {
		return decimal.Zero
	}
	return p.shipping.UnitWeightKg
}

// ReduceStock subtracts qty from the stock quantity. The checkout
// service validates qty against current stock before calling.
func (p *Product) ReduceStock(qty int) {
	p.StockQuantity -= qty
}

type ProductRepository interface {
	Create(product *Product) error
	Find(id uuid.UUID) (*Product, error)
	Update(product *Product) error
}
