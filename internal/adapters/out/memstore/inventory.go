package memstore

import (
	"context"
	"fmt"
	"sync"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

// Inventory is the in-memory product catalog and stock ledger. A single
// mutex guards both so that a reservation and the catalog lookup it follows
// observe a consistent view. Reservations are all-or-nothing per product.
type Inventory struct {
	mu       sync.Mutex
	products map[kernel.UUID]*product.Product
	stock    map[kernel.UUID]int
	order    []kernel.UUID // product IDs in registration order
}

// NewInventory creates an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{
		products: make(map[kernel.UUID]*product.Product),
		stock:    make(map[kernel.UUID]int),
	}
}

// Add registers a product and seeds its stock with the product's initial
// stock level.
func (inv *Inventory) Add(_ context.Context, p *product.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	if _, ok := inv.products[p.ID()]; ok {
		return errs.NewValueIsInvalidErrorWithCause("product",
			fmt.Errorf("product %s is already registered", p.ID()))
	}

	inv.products[p.ID()] = p
	inv.stock[p.ID()] = p.InitialStock()
	inv.order = append(inv.order, p.ID())
	return nil
}

// Get retrieves a product by its identifier.
func (inv *Inventory) Get(_ context.Context, id kernel.UUID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	p, ok := inv.products[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("productID", id)
	}
	return p, nil
}

// List returns all products in registration order.
func (inv *Inventory) List(_ context.Context) ([]*product.Product, error) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	products := make([]*product.Product, 0, len(inv.order))
	for _, id := range inv.order {
		products = append(products, inv.products[id])
	}
	return products, nil
}

// ListByCategory returns all products of one category in registration order.
func (inv *Inventory) ListByCategory(_ context.Context, category product.Category) ([]*product.Product, error) {
	if err := category.Validate(); err != nil {
		return nil, err
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	products := make([]*product.Product, 0)
	for _, id := range inv.order {
		if inv.products[id].Category() == category {
			products = append(products, inv.products[id])
		}
	}
	return products, nil
}

// SetStock overrides the available quantity for a registered product.
func (inv *Inventory) SetStock(_ context.Context, productID kernel.UUID, quantity int) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is negative", quantity))
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	if _, ok := inv.products[productID]; !ok {
		return errs.NewObjectNotFoundError("productID", productID)
	}

	inv.stock[productID] = quantity
	return nil
}

// Reserve atomically decrements the available quantity. When fewer than
// quantity units remain the level is left untouched and the call fails with
// an InsufficientStockError.
func (inv *Inventory) Reserve(_ context.Context, productID kernel.UUID, quantity int) (int, error) {
	if err := productID.Validate(); err != nil {
		return 0, err
	}
	if quantity < 1 {
		return 0, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is less than 1", quantity))
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	available, ok := inv.stock[productID]
	if !ok {
		return 0, errs.NewObjectNotFoundError("productID", productID)
	}
	if available < quantity {
		return 0, ports.NewInsufficientStockError(productID, quantity, available)
	}

	inv.stock[productID] = available - quantity
	return inv.stock[productID], nil
}

// Release atomically returns units to the pool.
func (inv *Inventory) Release(_ context.Context, productID kernel.UUID, quantity int) (int, error) {
	if err := productID.Validate(); err != nil {
		return 0, err
	}
	if quantity < 1 {
		return 0, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is less than 1", quantity))
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	available, ok := inv.stock[productID]
	if !ok {
		return 0, errs.NewObjectNotFoundError("productID", productID)
	}

	inv.stock[productID] = available + quantity
	return inv.stock[productID], nil
}

// Query returns the currently available quantity.
func (inv *Inventory) Query(_ context.Context, productID kernel.UUID) (int, error) {
	if err := productID.Validate(); err != nil {
		return 0, err
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	available, ok := inv.stock[productID]
	if !ok {
		return 0, errs.NewObjectNotFoundError("productID", productID)
	}
	return available, nil
}
