package memstore_test

import (
	"sync"
	"testing"

	"ordering/internal/adapters/out/memstore"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProduct(t *testing.T, name string, category product.Category, stock int) *product.Product {
	t.Helper()

	p, err := product.NewProduct(kernel.NewUUID(), name, category, 100.0, 500, stock)
	require.NoError(t, err)
	return p
}

func TestInventory_CatalogOperations(t *testing.T) {
	ctx := t.Context()

	t.Run("should register and retrieve products", func(t *testing.T) {
		inv := memstore.NewInventory()
		laptop := newProduct(t, "Laptop", product.CategoryElectronics, 10)

		require.NoError(t, inv.Add(ctx, laptop))

		got, err := inv.Get(ctx, laptop.ID())
		require.NoError(t, err)
		assert.True(t, got.IsEqual(laptop))

		available, err := inv.Query(ctx, laptop.ID())
		require.NoError(t, err)
		assert.Equal(t, 10, available)
	})

	t.Run("should reject duplicate registration", func(t *testing.T) {
		inv := memstore.NewInventory()
		laptop := newProduct(t, "Laptop", product.CategoryElectronics, 10)

		require.NoError(t, inv.Add(ctx, laptop))
		require.Error(t, inv.Add(ctx, laptop))
	})

	t.Run("should list products in registration order", func(t *testing.T) {
		inv := memstore.NewInventory()
		laptop := newProduct(t, "Laptop", product.CategoryElectronics, 10)
		novel := newProduct(t, "Novel", product.CategoryBooks, 50)
		shirt := newProduct(t, "Shirt", product.CategoryClothing, 30)

		for _, p := range []*product.Product{laptop, novel, shirt} {
			require.NoError(t, inv.Add(ctx, p))
		}

		all, err := inv.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, "Laptop", all[0].Name())
		assert.Equal(t, "Shirt", all[2].Name())

		books, err := inv.ListByCategory(ctx, product.CategoryBooks)
		require.NoError(t, err)
		require.Len(t, books, 1)
		assert.Equal(t, "Novel", books[0].Name())
	})

	t.Run("should return not found for unknown product", func(t *testing.T) {
		inv := memstore.NewInventory()

		_, err := inv.Get(ctx, kernel.NewUUID())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)

		_, err = inv.Query(ctx, kernel.NewUUID())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestInventory_LedgerOperations(t *testing.T) {
	ctx := t.Context()

	t.Run("should reserve and release stock", func(t *testing.T) {
		inv := memstore.NewInventory()
		laptop := newProduct(t, "Laptop", product.CategoryElectronics, 10)
		require.NoError(t, inv.Add(ctx, laptop))

		remaining, err := inv.Reserve(ctx, laptop.ID(), 4)
		require.NoError(t, err)
		assert.Equal(t, 6, remaining)

		remaining, err = inv.Release(ctx, laptop.ID(), 2)
		require.NoError(t, err)
		assert.Equal(t, 8, remaining)
	})

	t.Run("should fail reservation beyond available stock", func(t *testing.T) {
		inv := memstore.NewInventory()
		laptop := newProduct(t, "Laptop", product.CategoryElectronics, 3)
		require.NoError(t, inv.Add(ctx, laptop))

		_, err := inv.Reserve(ctx, laptop.ID(), 5)

		require.ErrorIs(t, err, ports.ErrInsufficientStock)

		var stockErr *ports.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, 5, stockErr.Requested)
		assert.Equal(t, 3, stockErr.Available)

		available, err := inv.Query(ctx, laptop.ID())
		require.NoError(t, err)
		assert.Equal(t, 3, available)
	})

	t.Run("should allow draining stock to zero", func(t *testing.T) {
		inv := memstore.NewInventory()
		laptop := newProduct(t, "Laptop", product.CategoryElectronics, 3)
		require.NoError(t, inv.Add(ctx, laptop))

		remaining, err := inv.Reserve(ctx, laptop.ID(), 3)
		require.NoError(t, err)
		assert.Zero(t, remaining)

		_, err = inv.Reserve(ctx, laptop.ID(), 1)
		require.ErrorIs(t, err, ports.ErrInsufficientStock)
	})

	t.Run("should override stock level", func(t *testing.T) {
		inv := memstore.NewInventory()
		laptop := newProduct(t, "Laptop", product.CategoryElectronics, 3)
		require.NoError(t, inv.Add(ctx, laptop))

		require.NoError(t, inv.SetStock(ctx, laptop.ID(), 100))

		available, err := inv.Query(ctx, laptop.ID())
		require.NoError(t, err)
		assert.Equal(t, 100, available)
	})

	t.Run("should never oversell under concurrent reservations", func(t *testing.T) {
		inv := memstore.NewInventory()
		laptop := newProduct(t, "Laptop", product.CategoryElectronics, 50)
		require.NoError(t, inv.Add(ctx, laptop))

		var wg sync.WaitGroup
		successes := make(chan struct{}, 100)
		for range 100 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := inv.Reserve(ctx, laptop.ID(), 1); err == nil {
					successes <- struct{}{}
				}
			}()
		}
		wg.Wait()
		close(successes)

		assert.Len(t, successes, 50)

		available, err := inv.Query(ctx, laptop.ID())
		require.NoError(t, err)
		assert.Zero(t, available)
	})
}
