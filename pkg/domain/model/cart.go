package model

import (
	"errors"

	"github.com/google/uuid"
)

var ErrEmptyCart = errors.New("cannot check out an empty cart")

// CartItem records an intended purchase. The cart holds catalog keys,
// not live product references; stock is owned by the catalog and the
// quantity is re-validated against it at checkout time.
type CartItem struct {
	ProductID uuid.UUID
	Quantity  int
}

// Cart is an ordered list of items; insertion order drives receipt
// line order.
type Cart struct {
	Items []CartItem
}

func NewCart() *Cart {
	return &Cart{}
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
