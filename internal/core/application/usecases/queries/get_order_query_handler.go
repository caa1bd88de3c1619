package queries

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

// OrderItemResponse is one order line in a query response.
type OrderItemResponse struct {
	ProductID   string
	ProductName string
	UnitPrice   float64
	Quantity    int
	Subtotal    float64
}

// StatusChangeResponse is one history entry in a query response.
type StatusChangeResponse struct {
	Status string
	At     time.Time
}

// GetOrderQueryResponse is the full read model of one order.
type GetOrderQueryResponse struct {
	ID             string
	CustomerID     string
	Status         string
	Urgent         bool
	Destination    string
	Items          []OrderItemResponse
	Subtotal       float64
	Total          float64
	ShippingMethod string
	ShippingCost   float64
	EstimatedAt    time.Time
	TrackingNumber string
	CreatedAt      time.Time
	History        []StatusChangeResponse
}

// GetOrderQueryHandler retrieves the full view of one order.
type GetOrderQueryHandler struct {
	orderRepo ports.OrderRepository
}

// NewGetOrderQueryHandler creates a handler for single order queries.
func NewGetOrderQueryHandler(orderRepo ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{orderRepo: orderRepo}
}

// Handle executes the query.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	ord, err := h.orderRepo.Get(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return orderResponseFrom(ord), nil
}

func orderResponseFrom(ord *order.Order) GetOrderQueryResponse {
	resp := GetOrderQueryResponse{
		ID:             ord.ID().String(),
		CustomerID:     ord.CustomerID().String(),
		Status:         ord.Status().String(),
		Urgent:         ord.IsUrgent(),
		Destination:    ord.Destination().String(),
		Subtotal:       ord.Subtotal(),
		Total:          ord.Total(),
		TrackingNumber: ord.TrackingNumber(),
		CreatedAt:      ord.CreatedAt(),
	}

	for _, item := range ord.Items() {
		resp.Items = append(resp.Items, OrderItemResponse{
			ProductID:   item.ProductID().String(),
			ProductName: item.ProductName(),
			UnitPrice:   item.UnitPrice(),
			Quantity:    item.Quantity(),
			Subtotal:    item.Subtotal(),
		})
	}

	for _, change := range ord.History() {
		resp.History = append(resp.History, StatusChangeResponse{
			Status: change.Status().String(),
			At:     change.At(),
		})
	}

	if plan := ord.ShippingPlan(); plan != nil {
		resp.ShippingMethod = plan.Method().String()
		resp.ShippingCost = plan.Cost()
		resp.EstimatedAt = plan.ETA()
	}

	return resp
}
