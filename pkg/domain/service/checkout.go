package service

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"pos/pkg/domain/model"
)

// ShippingFlatFee is charged once per checkout iff at least one item
// requires shipping.
var ShippingFlatFee = decimal.NewFromInt(30)

type ReceiptLine struct {
	Quantity  int
	Name      string
	LineTotal decimal.Decimal
}

type Receipt struct {
	Lines       []ReceiptLine
	Manifest    []ManifestEntry
	Subtotal    decimal.Decimal
	Shipping    decimal.Decimal
	Total       decimal.Decimal
	BalanceLeft decimal.Decimal
}

type CheckoutService interface {
	Checkout(customerID uuid.UUID, cart *model.Cart) (*Receipt, error)
}

func NewCheckoutService(products model.ProductRepository, customers model.CustomerRepository, dispatcher EventDispatcher, out io.Writer) CheckoutService {
	return &checkoutService{
		products:   products,
		customers:  customers,
		dispatcher: dispatcher,
		out:        out,
	}
}

type checkoutService struct {
	products   model.ProductRepository
	customers  model.CustomerRepository
	dispatcher EventDispatcher
	out        io.Writer
}

// Checkout runs the all-or-nothing validation-then-commit sequence:
// reject an empty cart, validate every item (expiry, then stock, in
// cart order, first violation wins), apply the flat shipping fee iff
// anything ships, check funds, and only then settle stock and balance.
// A failure at any step leaves catalog and customer untouched.
func (s *checkoutService) Checkout(customerID uuid.UUID, cart *model.Cart) (*Receipt, error) {
	if cart.IsEmpty() {
		return nil, s.fail(customerID, model.ErrEmptyCart)
	}

	customer, err := s.customers.Find(customerID)
	if err != nil {
		return nil, s.fail(customerID, err)
	}

	// Validation works on repository clones; nothing is written back
	// until every check has passed. Items referencing the same product
	// share one clone so the stock check sees quantities already
	// claimed earlier in the cart.
	touched := make(map[uuid.UUID]*model.Product)
	reduced := make(map[uuid.UUID]int)
	var settleOrder []*model.Product
	var lines []ReceiptLine
	var manifest []ManifestEntry
	subtotal := decimal.Zero

	for _, item := range cart.Items {
		product, ok := touched[item.ProductID]
		if !ok {
			product, err = s.products.Find(item.ProductID)
			if err != nil {
				return nil, s.fail(customerID, err)
			}
			touched[item.ProductID] = product
			settleOrder = append(settleOrder, product)
		}

		if product.IsExpired() {
			return nil, s.fail(customerID, errors.Wrapf(model.ErrProductExpired, "product %s", product.Name))
		}
		if item.Quantity > product.StockQuantity {
			return nil, s.fail(customerID, errors.Wrapf(model.ErrInsufficientStock, "product %s", product.Name))
		}
		product.ReduceStock(item.Quantity)
		reduced[product.ID] += item.Quantity

		lineTotal := product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		subtotal = subtotal.Add(lineTotal)
		lines = append(lines, ReceiptLine{Quantity: item.Quantity, Name: product.Name, LineTotal: lineTotal})

		if product.RequiresShipping() {
			manifest = append(manifest, ManifestEntry{
				Name:         product.Name,
				Quantity:     item.Quantity,
				UnitWeightKg: product.UnitWeight(),
			})
		}
	}

	shipping := decimal.Zero
	if len(manifest) > 0 {
		shipping = ShippingFlatFee
	}
	total := subtotal.Add(shipping)

	if customer.Balance.LessThan(total) {
		return nil, s.fail(customerID, errors.Wrapf(model.ErrInsufficientFunds, "customer %s", customer.Name))
	}

	// Commit. All checks passed; settle the clones back into the
	// repositories and charge the customer.
	for _, product := range settleOrder {
		product.Version++
		if err := s.products.Update(product); err != nil {
			return nil, s.fail(customerID, err)
		}
		_ = s.dispatcher.Dispatch(model.ProductStockReduced{
			ProductID:   product.ID,
			Quantity:    reduced[product.ID],
			NewQuantity: product.StockQuantity,
		})
	}

	// A cart of free, non-shippable items settles at zero; there is
	// nothing to withdraw and Deduct rejects non-positive amounts.
	if total.IsPositive() {
		if err := customer.Deduct(total); err != nil {
			return nil, s.fail(customerID, err)
		}
	}
	customer.Version++
	if err := s.customers.Update(customer); err != nil {
		return nil, s.fail(customerID, err)
	}

	_ = s.dispatcher.Dispatch(model.CustomerCharged{
		CustomerID: customer.ID,
		Amount:     total,
		NewBalance: customer.Balance,
	})
	_ = s.dispatcher.Dispatch(model.CheckoutCompleted{
		CustomerID: customer.ID,
		Subtotal:   subtotal,
		Shipping:   shipping,
		Total:      total,
		ItemCount:  len(cart.Items),
	})

	receipt := &Receipt{
		Lines:       lines,
		Manifest:    manifest,
		Subtotal:    subtotal,
		Shipping:    shipping,
		Total:       total,
		BalanceLeft: customer.Balance,
	}

	if len(manifest) > 0 {
		RenderShipmentNotice(s.out, manifest)
	}
	renderReceipt(s.out, receipt)

	return receipt, nil
}

func (s *checkoutService) fail(customerID uuid.UUID, err error) error {
	_ = s.dispatcher.Dispatch(model.CheckoutFailed{CustomerID: customerID, Reason: err.Error()})
	return err
}

func renderReceipt(w io.Writer, r *Receipt) {
	fmt.Fprintln(w, "** Checkout receipt **")
	for _, line := range r.Lines {
		fmt.Fprintf(w, "%dx %-10s %s\n", line.Quantity, line.Name, line.LineTotal.StringFixed(0))
	}
	fmt.Fprintln(w, "----------------------")
	fmt.Fprintf(w, "%-17s%s\n", "Subtotal", r.Subtotal.StringFixed(0))
	fmt.Fprintf(w, "%-17s%s\n", "Shipping", r.Shipping.StringFixed(0))
	fmt.Fprintf(w, "%-17s%s\n", "Amount", r.Total.StringFixed(0))
	fmt.Fprintf(w, "%-17s%s\n", "Balance left", r.BalanceLeft.StringFixed(0))
}
