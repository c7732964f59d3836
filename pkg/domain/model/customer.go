package model

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrNegativeBalance   = errors.New("balance cannot be negative")
)

type Customer struct {
	ID      uuid.UUID
	Name    string
	Balance decimal.Decimal
	Version int
}

func NewCustomer(name string, balance decimal.Decimal) (*Customer, error) {
	if balance.IsNegative() {
		return nil, ErrNegativeBalance
	}
	return &Customer{
		ID:      uuid.New(),
		Name:    name,
		Balance: balance,
		Version: 1,
	}, nil
}

// Deduct withdraws amount from the balance. The balance never goes
// negative; callers get ErrInsufficientFunds instead.
func (c *Customer) Deduct(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if c.Balance.LessThan(amount) {
		return ErrInsufficientFunds
	}
	c.Balance = c.Balance.Sub(amount)
	return nil
}

func (c *Customer) Deposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	c.Balance = c.Balance.Add(amount)
	return nil
}

type CustomerRepository interface {
	Create(customer *Customer) error
	Find(id uuid.UUID) (*Customer, error)
	Update(customer *Customer) error
}
