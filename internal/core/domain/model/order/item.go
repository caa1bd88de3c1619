package order

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when using an improperly initialized Item.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or NewItemFromProduct")

// Item is an immutable snapshot of one order line, frozen at order creation
// time. It copies the product's name, unit price and unit weight so that
// later catalog changes never affect an existing order.
type Item struct { //nolint:recvcheck //using for validation
	productID       kernel.UUID
	productName     string
	unitPrice       float64
	unitWeightGrams int
	quantity        int

	guard guard.ConstructorGuard
}

// NewItem creates an order line snapshot from raw attributes.
// Quantity must be at least one, unit price non-negative, unit weight positive.
func NewItem(
	productID kernel.UUID,
	productName string,
	unitPrice float64,
	unitWeightGrams int,
	quantity int,
) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setProductName(productName),
		item.setUnitPrice(unitPrice),
		item.setUnitWeightGrams(unitWeightGrams),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// NewItemFromProduct creates an order line snapshot of quantity units of the
// given catalog product.
func NewItemFromProduct(p *product.Product, quantity int) (Item, error) {
	if err := p.Validate(); err != nil {
		return Item{}, err
	}
	return NewItem(p.ID(), p.Name(), p.Price(), p.WeightGrams(), quantity)
}

// Validate ensures the Item was created through a constructor.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ProductID returns the identifier of the snapshotted product.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// ProductName returns the product name as it was at order creation.
func (i Item) ProductName() string {
	return i.productName
}

// UnitPrice returns the unit price frozen at order creation.
func (i Item) UnitPrice() float64 {
	return i.unitPrice
}

// UnitWeightGrams returns the unit weight frozen at order creation.
func (i Item) UnitWeightGrams() int {
	return i.unitWeightGrams
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// Subtotal returns unit price times quantity.
func (i Item) Subtotal() float64 {
	return i.unitPrice * float64(i.quantity)
}

// TotalWeightGrams returns unit weight times quantity.
func (i Item) TotalWeightGrams() int {
	return i.unitWeightGrams * i.quantity
}

// String returns a short display representation.
func (i Item) String() string {
	return fmt.Sprintf("%s x %d (%.2f each)", i.productName, i.quantity, i.unitPrice)
}

func (i *Item) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *Item) setProductName(productName string) error {
	if productName == "" {
		return errs.NewValueIsRequiredError("productName")
	}
	i.productName = productName
	return nil
}

func (i *Item) setUnitPrice(unitPrice float64) error {
	if unitPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice", fmt.Errorf("%f is negative", unitPrice))
	}
	i.unitPrice = unitPrice
	return nil
}

func (i *Item) setUnitWeightGrams(unitWeightGrams int) error {
	if unitWeightGrams <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("unitWeightGrams",
			fmt.Errorf("%d is not greater than 0", unitWeightGrams))
	}
	i.unitWeightGrams = unitWeightGrams
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is less than 1", quantity))
	}
	i.quantity = quantity
	return nil
}
