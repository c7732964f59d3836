// Package memory provides map-backed repositories for the product
// catalog and customer accounts. Find returns a copy of the stored
// aggregate; Update rejects stale versions so a caller working on an
// outdated copy cannot silently clobber newer state.
package memory

import (
	"github.com/google/uuid"

	"pos/pkg/domain/model"
)

type ProductRepository struct {
	store map[uuid.UUID]*model.Product
}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{store: make(map[uuid.UUID]*model.Product)}
}

func (r *ProductRepository) Create(product *model.Product) error {
	clone := *product
	r.store[product.ID] = &clone
	return nil
}

func (r *ProductRepository) Find(id uuid.UUID) (*model.Product, error) {
	product, ok := r.store[id]
	if !ok {
		return nil, model.ErrProductNotFound
	}
	clone := *product
	return &clone, nil
}

func (r *ProductRepository) Update(product *model.Product) error {
	existing, ok := r.store[product.ID]
	if !ok {
		return model.ErrProductNotFound
	}
	if existing.Version != product.Version-1 {
		return model.ErrOptimisticLock
	}
	clone := *product
	r.store[product.ID] = &clone
	return nil
}

type CustomerRepository struct {
	store map[uuid.UUID]*model.Customer
}

func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{store: make(map[uuid.UUID]*model.Customer)}
}

func (r *CustomerRepository) Create(customer *model.Customer) error {
	clone := *customer
	r.store[customer.ID] = &clone
	return nil
}

func (r *CustomerRepository) Find(id uuid.UUID) (*model.Customer, error) {
	customer, ok := r.store[id]
	if !ok {
		return nil, model.ErrCustomerNotFound
	}
	clone := *customer
	return &clone, nil
}

func (r *CustomerRepository) Update(customer *model.Customer) error {
	existing, ok := r.store[customer.ID]
	if !ok {
		return model.ErrCustomerNotFound
	}
	if existing.Version != customer.Version-1 {
		return model.ErrOptimisticLock
	}
	clone := *customer
	r.store[customer.ID] = &clone
	return nil
}
