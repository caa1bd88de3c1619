package ports

import (
	"context"
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/product"
)

// ErrInsufficientStock is returned when a reservation asks for more units
// than are currently available. Match with errors.Is; use errors.As to read
// the quantities off InsufficientStockError.
var ErrInsufficientStock = errors.New("insufficient stock")

// InsufficientStockError reports a failed reservation attempt: which product,
// how many units were requested, and how many were available at the time.
type InsufficientStockError struct {
	ProductID kernel.UUID
	Requested int
	Available int
}

// NewInsufficientStockError creates an InsufficientStockError.
func NewInsufficientStockError(productID kernel.UUID, requested, available int) *InsufficientStockError {
	return &InsufficientStockError{
		ProductID: productID,
		Requested: requested,
		Available: available,
	}
}

// Error implements the error interface.
func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s: product %s: requested %d, available %d",
		ErrInsufficientStock, e.ProductID, e.Requested, e.Available)
}

// Unwrap supports errors.Is checks against ErrInsufficientStock.
func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// InventoryLedger defines the contract for tracking available stock per
// product. A reservation is all-or-nothing: it either decrements the full
// requested quantity or leaves the level untouched and fails with
// ErrInsufficientStock. Implementations must be safe for concurrent use.
type InventoryLedger interface {
	// SetStock registers a product's available quantity, creating the entry
	// if needed. Quantity must be non-negative.
	SetStock(ctx context.Context, productID kernel.UUID, quantity int) error

	// Reserve atomically decrements the available quantity for a product.
	// Returns the remaining quantity on success, or ErrInsufficientStock
	// (leaving the level unchanged) when fewer than quantity units remain.
	Reserve(ctx context.Context, productID kernel.UUID, quantity int) (int, error)

	// Release atomically returns previously reserved units to the pool.
	// Returns the resulting quantity.
	Release(ctx context.Context, productID kernel.UUID, quantity int) (int, error)

	// Query returns the currently available quantity for a product.
	Query(ctx context.Context, productID kernel.UUID) (int, error)
}

// ProductCatalog defines the contract for the product listing.
type ProductCatalog interface {
	// Add registers a product in the catalog.
	Add(ctx context.Context, p *product.Product) error

	// Get retrieves a product by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// List retrieves all products in registration order.
	List(ctx context.Context) ([]*product.Product, error)

	// ListByCategory retrieves all products of one category in registration
	// order.
	ListByCategory(ctx context.Context, category product.Category) ([]*product.Product, error)
}
