// Package product provides the catalog entity for the order management
// system. Products are immutable once registered: stock levels are owned by
// the inventory ledger, not by the product itself, so a Product is a pure
// description (name, category, price, weight) plus the initial stock the
// ledger is seeded with.
package product

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// Domain errors for product construction.
var (
	// ErrProductIsNotConstructed is returned when using an improperly initialized Product.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
	// ErrNameIsRequired is returned when attempting to create a product without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Product represents a catalog item.
//
// Invariants:
//   - Must have a valid unique identifier and a non-empty name
//   - Category must be one of the defined categories
//   - Unit price must be non-negative
//   - Unit weight must be positive (shipping applicability depends on it)
//   - Initial stock must be non-negative
//
// Example:
//
//	p, err := product.NewProduct(kernel.NewUUID(), "Noise-cancelling headphones",
//	    product.CategoryElectronics, 249.90, 320, 15)
//	if err != nil {
//	    // handle validation error
//	}
type Product struct { //nolint:recvcheck //using for validation
	id           kernel.UUID
	name         string
	category     Category
	price        float64
	weightGrams  int
	initialStock int

	guard guard.ConstructorGuard
}

// NewProduct creates a Product with validation. This is the only way to
// create a valid Product.
//
// Parameters:
//   - id: unique product identifier
//   - name: display name (must be non-empty)
//   - category: one of the defined categories
//   - price: unit price (must be >= 0)
//   - weightGrams: unit weight in grams (must be > 0)
//   - initialStock: quantity the inventory ledger is seeded with (must be >= 0)
func NewProduct(
	id kernel.UUID,
	name string,
	category Category,
	price float64,
	weightGrams int,
	initialStock int,
) (*Product, error) {
	p := &Product{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setCategory(category),
		p.setPrice(price),
		p.setWeightGrams(weightGrams),
		p.setInitialStock(initialStock),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Product was created through NewProduct.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// IsEqual compares two products by their identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// Category returns the product's category.
func (p *Product) Category() Category {
	return p.category
}

// Price returns the unit price.
func (p *Product) Price() float64 {
	return p.price
}

// WeightGrams returns the unit weight in grams.
func (p *Product) WeightGrams() int {
	return p.weightGrams
}

// InitialStock returns the stock quantity the ledger is seeded with when the
// product is registered. Current availability is owned by the ledger.
func (p *Product) InitialStock() int {
	return p.initialStock
}

// String returns a short display representation.
func (p *Product) String() string {
	return fmt.Sprintf("%s (%s) - %.2f", p.name, p.category, p.price)
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}

func (p *Product) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	p.category = category
	return nil
}

func (p *Product) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%f is negative", price))
	}
	p.price = price
	return nil
}

func (p *Product) setWeightGrams(weightGrams int) error {
	if weightGrams <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weightGrams", fmt.Errorf("%d is not greater than 0", weightGrams))
	}
	p.weightGrams = weightGrams
	return nil
}

func (p *Product) setInitialStock(initialStock int) error {
	if initialStock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("initialStock", fmt.Errorf("%d is negative", initialStock))
	}
	p.initialStock = initialStock
	return nil
}
