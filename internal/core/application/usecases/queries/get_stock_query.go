package queries

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrGetStockQueryIsNotConstructed = errors.New(
	"GetStockQuery must be created via NewGetStockQuery constructor",
)

// GetStockQuery requests the available quantity of one product.
type GetStockQuery struct { //nolint:recvcheck //using for validation
	productID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetStockQuery creates a stock level query.
func NewGetStockQuery(productID kernel.UUID) (GetStockQuery, error) {
	query := GetStockQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setProductID(productID); err != nil {
		return GetStockQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStockQuery) Validate() error {
	return q.guard.Validate(ErrGetStockQueryIsNotConstructed)
}

// ProductID returns the identifier of the product.
func (q GetStockQuery) ProductID() kernel.UUID {
	return q.productID
}

func (q *GetStockQuery) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	q.productID = productID
	return nil
}
