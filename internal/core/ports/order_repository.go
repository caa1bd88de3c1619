package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Implementations must serialize concurrent mutations of the same order so
// that lifecycle transitions stay linear.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByCustomer retrieves all orders belonging to a customer, oldest first.
	GetByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)

	// GetAllInShippedStatus retrieves all orders currently in transit.
	// Used by the delivery completion job to find shipments past their
	// estimated delivery time.
	GetAllInShippedStatus(ctx context.Context) ([]*order.Order, error)
}
