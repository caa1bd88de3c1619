package queries

import (
	"errors"

	"ordering/internal/core/domain/model/product"
	"ordering/internal/pkg/guard"
)

var ErrListProductsQueryIsNotConstructed = errors.New(
	"ListProductsQuery must be created via NewListProductsQuery constructor",
)

// ListProductsQuery requests the product catalog with live availability,
// optionally filtered by category.
type ListProductsQuery struct { //nolint:recvcheck //using for validation
	category    product.Category
	hasCategory bool

	guard guard.ConstructorGuard
}

// NewListProductsQuery creates a query for the whole catalog.
func NewListProductsQuery() ListProductsQuery {
	return ListProductsQuery{
		guard: guard.NewConstructorGuard(),
	}
}

// NewListProductsByCategoryQuery creates a query for one category.
func NewListProductsByCategoryQuery(category product.Category) (ListProductsQuery, error) {
	if err := category.Validate(); err != nil {
		return ListProductsQuery{}, err
	}

	return ListProductsQuery{
		category:    category,
		hasCategory: true,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
func (q ListProductsQuery) Validate() error {
	return q.guard.Validate(ErrListProductsQueryIsNotConstructed)
}

// Category returns the requested category filter and whether one was set.
func (q ListProductsQuery) Category() (product.Category, bool) {
	return q.category, q.hasCategory
}
