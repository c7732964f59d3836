package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ItemAddedToCart struct {
	ProductID uuid.UUID
	Name      string
	Quantity  int
}

func (e ItemAddedToCart) Type() string { return "ItemAddedToCart" }

type ProductStockReduced struct {
	ProductID   uuid.UUID
	Quantity    int
	NewQuantity int
}

func (e ProductStockReduced) Type() string { return "ProductStockReduced" }

type CustomerCharged struct {
	CustomerID uuid.UUID
	Amount     decimal.Decimal
	NewBalance decimal.Decimal
}

func (e CustomerCharged) Type() string { return "CustomerCharged" }

type CheckoutCompleted struct {
	CustomerID uuid.UUID
	Subtotal   decimal.Decimal
	Shipping   decimal.Decimal
	Total      decimal.Decimal
	ItemCount  int
}

func (e CheckoutCompleted) Type() string { return "CheckoutCompleted" }

type CheckoutFailed struct {
	CustomerID uuid.UUID
	Reason     string
}

func (e CheckoutFailed) Type() string { return "CheckoutFailed" }
