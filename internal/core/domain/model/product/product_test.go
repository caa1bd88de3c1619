package product_test

import (
	"testing"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	t.Run("should create product with valid attributes", func(t *testing.T) {
		id := kernel.NewUUID()

		p, err := product.NewProduct(id, "Wireless earbuds", product.CategoryElectronics, 129.90, 60, 20)

		require.NoError(t, err)
		assert.True(t, p.ID().IsEqual(id))
		assert.Equal(t, "Wireless earbuds", p.Name())
		assert.Equal(t, product.CategoryElectronics, p.Category())
		assert.InDelta(t, 129.90, p.Price(), 0.001)
		assert.Equal(t, 60, p.WeightGrams())
		assert.Equal(t, 20, p.InitialStock())
		assert.NoError(t, p.Validate())
	})

	t.Run("should allow zero price and zero initial stock", func(t *testing.T) {
		p, err := product.NewProduct(kernel.NewUUID(), "Promo sticker", product.CategoryOther, 0, 5, 0)

		require.NoError(t, err)
		assert.Zero(t, p.Price())
		assert.Zero(t, p.InitialStock())
	})

	t.Run("should return error for invalid id", func(t *testing.T) {
		var id kernel.UUID

		_, err := product.NewProduct(id, "Lamp", product.CategoryHome, 30, 900, 3)

		require.Error(t, err)
	})

	t.Run("should return error for empty name", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), "", product.CategoryHome, 30, 900, 3)

		require.Error(t, err)
		require.ErrorIs(t, err, product.ErrNameIsRequired)
	})

	t.Run("should return error for invalid category", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), "Lamp", product.CategoryUnknown, 30, 900, 3)

		require.Error(t, err)
	})

	t.Run("should return error for negative price", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), "Lamp", product.CategoryHome, -1, 900, 3)

		require.Error(t, err)
	})

	t.Run("should return error for non-positive weight", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), "Lamp", product.CategoryHome, 30, 0, 3)

		require.Error(t, err)
	})

	t.Run("should return error for negative initial stock", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), "Lamp", product.CategoryHome, 30, 900, -1)

		require.Error(t, err)
	})

	t.Run("should join multiple validation errors", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), "", product.CategoryUnknown, -5, 0, -1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "category")
	})
}

func TestProduct_Validate(t *testing.T) {
	t.Run("nil product fails validation", func(t *testing.T) {
		var p *product.Product

		require.ErrorIs(t, p.Validate(), product.ErrProductIsNotConstructed)
	})

	t.Run("zero value product fails validation", func(t *testing.T) {
		p := &product.Product{}

		require.ErrorIs(t, p.Validate(), product.ErrProductIsNotConstructed)
	})
}

func TestCategory(t *testing.T) {
	t.Run("String returns category names", func(t *testing.T) {
		assert.Equal(t, "Electronics", product.CategoryElectronics.String())
		assert.Equal(t, "Books", product.CategoryBooks.String())
		assert.Equal(t, "Unknown", product.CategoryUnknown.String())
		assert.Equal(t, "Unknown", product.Category(99).String())
	})

	t.Run("CategoryFromString round-trips valid names", func(t *testing.T) {
		categories := []product.Category{
			product.CategoryElectronics,
			product.CategoryClothing,
			product.CategoryFootwear,
			product.CategoryBooks,
			product.CategoryHealth,
			product.CategoryHome,
			product.CategoryOther,
		}

		for _, category := range categories {
			parsed, err := product.CategoryFromString(category.String())
			require.NoError(t, err)
			assert.Equal(t, category, parsed)
		}
	})

	t.Run("CategoryFromString rejects unknown names", func(t *testing.T) {
		_, err := product.CategoryFromString("Gadgets")
		require.Error(t, err)
	})
}
