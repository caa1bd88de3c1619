package http

import "time"

// Error is the uniform error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RegisterCustomerRequest is the body of POST /api/v1/customers.
type RegisterCustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	City  string `json:"city"`
	Zone  string `json:"zone"`
}

// RegisterCustomerResponse returns the identifier of the new customer.
type RegisterCustomerResponse struct {
	ID string `json:"id"`
}

// OrderLineRequest is one product line in a CreateOrderRequest.
type OrderLineRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	CustomerID string             `json:"customerId"`
	Urgent     bool               `json:"urgent"`
	Lines      []OrderLineRequest `json:"lines"`
}

// CreateOrderResponse returns the identifier of the new order.
type CreateOrderResponse struct {
	ID string `json:"id"`
}

// OrderItem is one line of an order in a response body.
type OrderItem struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	UnitPrice   float64 `json:"unitPrice"`
	Quantity    int     `json:"quantity"`
	Subtotal    float64 `json:"subtotal"`
}

// StatusChange is one history entry of an order in a response body.
type StatusChange struct {
	Status string    `json:"status"`
	At     time.Time `json:"at"`
}

// Order is the full order view returned by GET /api/v1/orders/{orderId}.
type Order struct {
	ID             string         `json:"id"`
	CustomerID     string         `json:"customerId"`
	Status         string         `json:"status"`
	Urgent         bool           `json:"urgent"`
	Destination    string         `json:"destination"`
	Items          []OrderItem    `json:"items"`
	Subtotal       float64        `json:"subtotal"`
	Total          float64        `json:"total"`
	ShippingMethod string         `json:"shippingMethod,omitempty"`
	ShippingCost   float64        `json:"shippingCost,omitempty"`
	EstimatedAt    *time.Time     `json:"estimatedAt,omitempty"`
	TrackingNumber string         `json:"trackingNumber,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
	History        []StatusChange `json:"history"`
}

// OrderSummary is one entry of GET /api/v1/customers/{customerId}/orders.
type OrderSummary struct {
	ID             string    `json:"id"`
	Status         string    `json:"status"`
	ItemCount      int       `json:"itemCount"`
	Total          float64   `json:"total"`
	TrackingNumber string    `json:"trackingNumber,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Product is one entry of GET /api/v1/products.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	WeightGrams int     `json:"weightGrams"`
	Available   int     `json:"available"`
}

// Stock is the body of GET /api/v1/products/{productId}/stock.
type Stock struct {
	ProductID string `json:"productId"`
	Available int    `json:"available"`
}
