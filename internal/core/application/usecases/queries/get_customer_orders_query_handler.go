package queries

import (
	"context"
	"time"

	"ordering/internal/core/ports"
)

// GetCustomerOrdersQueryResponse is one order summary line.
type GetCustomerOrdersQueryResponse struct {
	ID             string
	Status         string
	ItemCount      int
	Total          float64
	TrackingNumber string
	CreatedAt      time.Time
}

// GetCustomerOrdersQueryHandler retrieves the order summaries of a customer,
// oldest first.
type GetCustomerOrdersQueryHandler struct {
	orderRepo ports.OrderRepository
}

// NewGetCustomerOrdersQueryHandler creates a handler for customer order
// queries.
func NewGetCustomerOrdersQueryHandler(orderRepo ports.OrderRepository) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{orderRepo: orderRepo}
}

// Handle executes the query.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]GetCustomerOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orderRepo.GetByCustomer(ctx, query.CustomerID())
	if err != nil {
		return nil, err
	}

	responses := make([]GetCustomerOrdersQueryResponse, 0, len(orders))
	for _, ord := range orders {
		responses = append(responses, GetCustomerOrdersQueryResponse{
			ID:             ord.ID().String(),
			Status:         ord.Status().String(),
			ItemCount:      ord.TotalQuantity(),
			Total:          ord.Total(),
			TrackingNumber: ord.TrackingNumber(),
			CreatedAt:      ord.CreatedAt(),
		})
	}

	return responses, nil
}
