package queries

import (
	"context"

	"ordering/internal/core/ports"
)

// GetStockQueryResponse reports the available quantity of one product.
type GetStockQueryResponse struct {
	ProductID string
	Available int
}

// GetStockQueryHandler retrieves the current stock level of a product.
type GetStockQueryHandler struct {
	ledger ports.InventoryLedger
}

// NewGetStockQueryHandler creates a handler for stock level queries.
func NewGetStockQueryHandler(ledger ports.InventoryLedger) GetStockQueryHandler {
	return GetStockQueryHandler{ledger: ledger}
}

// Handle executes the query.
func (h GetStockQueryHandler) Handle(ctx context.Context, query GetStockQuery) (GetStockQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetStockQueryResponse{}, err
	}

	available, err := h.ledger.Query(ctx, query.ProductID())
	if err != nil {
		return GetStockQueryResponse{}, err
	}

	return GetStockQueryResponse{
		ProductID: query.ProductID().String(),
		Available: available,
	}, nil
}
