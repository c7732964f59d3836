package service

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"pos/pkg/domain/model"
)

type Event interface{ Type() string }
type EventDispatcher interface{ Dispatch(event Event) error }

type CartService interface {
	AddItem(cart *model.Cart, productID uuid.UUID, quantity int) error
}

func NewCartService(products model.ProductRepository, dispatcher EventDispatcher) CartService {
	return &cartService{products: products, dispatcher: dispatcher}
}

type cartService struct {
	products   model.ProductRepository
	dispatcher EventDispatcher
}

// AddItem appends (productID, quantity) to the cart after checking the
// requested quantity against current catalog stock. The cart is left
// unchanged on failure.
func (s *cartService) AddItem(cart *model.Cart, productID uuid.UUID, quantity int) error {
	if quantity <= 0 {
		return model.ErrInvalidQuantity
	}

	product, err := s.products.Find(productID)
	if err != nil {
		return err
	}
	if quantity > product.StockQuantity {
		return errors.Wrapf(model.ErrInsufficientStock, "product %s", product.Name)
	}

	cart.Items = append(cart.Items, model.CartItem{ProductID: productID, Quantity: quantity})

	_ = s.dispatcher.Dispatch(model.ItemAddedToCart{
		ProductID: productID,
		Name:      product.Name,
		Quantity:  quantity,
	})
	return nil
}
