package queries

import (
	"context"

	"ordering/internal/core/domain/model/product"
	"ordering/internal/core/ports"
)

// ListProductsQueryResponse is one catalog entry with live availability.
type ListProductsQueryResponse struct {
	ID          string
	Name        string
	Category    string
	Price       float64
	WeightGrams int
	Available   int
}

// ListProductsQueryHandler retrieves catalog entries joined with the current
// stock level from the inventory ledger.
type ListProductsQueryHandler struct {
	catalog ports.ProductCatalog
	ledger  ports.InventoryLedger
}

// NewListProductsQueryHandler creates a handler for catalog queries.
func NewListProductsQueryHandler(
	catalog ports.ProductCatalog,
	ledger ports.InventoryLedger,
) ListProductsQueryHandler {
	return ListProductsQueryHandler{
		catalog: catalog,
		ledger:  ledger,
	}
}

// Handle executes the query. Results keep the catalog's registration order.
func (h ListProductsQueryHandler) Handle(
	ctx context.Context,
	query ListProductsQuery,
) ([]ListProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		products []*product.Product
		err      error
	)
	if category, ok := query.Category(); ok {
		products, err = h.catalog.ListByCategory(ctx, category)
	} else {
		products, err = h.catalog.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]ListProductsQueryResponse, 0, len(products))
	for _, p := range products {
		available, err := h.ledger.Query(ctx, p.ID())
		if err != nil {
			return nil, err
		}

		responses = append(responses, ListProductsQueryResponse{
			ID:          p.ID().String(),
			Name:        p.Name(),
			Category:    p.Category().String(),
			Price:       p.Price(),
			WeightGrams: p.WeightGrams(),
			Available:   available,
		})
	}

	return responses, nil
}
