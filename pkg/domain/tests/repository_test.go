package tests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pos/pkg/domain/model"
	"pos/pkg/infrastructure/memory"
)

func TestProductRepositoryReturnsCopies(t *testing.T) {
	f := setup(t)
	tv := f.seedTV(t, 500, 3, 5)

	found, err := f.products.Find(tv.ID)
	require.NoError(t, err)
	found.ReduceStock(3)

	again, err := f.products.Find(tv.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, again.StockQuantity, "mutating a found copy must not touch the store")
}

func TestProductRepositoryOptimisticLock(t *testing.T) {
	repo := memory.NewProductRepository()
	tv, err := model.NewTV("TV", money(500), 3, money(5))
	require.NoError(t, err)
	require.NoError(t, repo.Create(tv))

	first, _ := repo.Find(tv.ID)
	second, _ := repo.Find(tv.ID)

	first.ReduceStock(1)
	first.Version++
	require.NoError(t, repo.Update(first))

	second.ReduceStock(2)
	second.Version++
	err = repo.Update(second)
	assert.ErrorIs(t, err, model.ErrOptimisticLock)
}

func TestCustomerRepositoryOptimisticLock(t *testing.T) {
	repo := memory.NewCustomerRepository()
	customer, err := model.NewCustomer("John", money(100))
	require.NoError(t, err)
	require.NoError(t, repo.Create(customer))

	stale, _ := repo.Find(customer.ID)

	fresh, _ := repo.Find(customer.ID)
	fresh.Version++
	require.NoError(t, repo.Update(fresh))

	stale.Version++
	err = repo.Update(stale)
	assert.ErrorIs(t, err, model.ErrOptimisticLock)
}
