// Package cart provides the shopping cart owned by a single customer
// session. A cart is a mapping from product identifier to a cart item;
// adding the same product again merges quantities. Carts are mutable and
// short-lived: snapshotting a cart into an order freezes its contents.
package cart

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/pkg/errs"
)

// Domain errors for cart operations.
var (
	// ErrEmptyCart is returned when an order is requested from a cart with no items.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrItemNotInCart is returned when removing a product that the cart does not hold.
	ErrItemNotInCart = errors.New("item not in cart")
)

// Item is a single cart line: a product and a quantity of at least one.
type Item struct {
	product  *product.Product
	quantity int
}

// Product returns the product of the cart line.
func (i Item) Product() *product.Product {
	return i.product
}

// Quantity returns the quantity of the cart line.
func (i Item) Quantity() int {
	return i.quantity
}

// Cart holds the items a customer intends to order. It preserves insertion
// order so that reservation and display are deterministic.
type Cart struct {
	items map[string]*Item
	order []string // product IDs in insertion order
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{
		items: make(map[string]*Item),
	}
}

// AddItem puts quantity units of the product into the cart, merging with an
// existing line for the same product. Quantity must be at least one.
// Stock is NOT checked here: availability is verified transactionally when
// the order is created, not at cart-add time.
func (c *Cart) AddItem(p *product.Product, quantity int) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is less than 1 for product %s", quantity, p.ID()))
	}

	key := p.ID().String()
	if existing, ok := c.items[key]; ok {
		existing.quantity += quantity
		return nil
	}

	c.items[key] = &Item{product: p, quantity: quantity}
	c.order = append(c.order, key)
	return nil
}

// RemoveItem removes the whole line for the given product from the cart.
func (c *Cart) RemoveItem(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	key := productID.String()
	if _, ok := c.items[key]; !ok {
		return ErrItemNotInCart
	}

	delete(c.items, key)
	for i, id := range c.order {
		if id == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

// Items returns the cart lines in insertion order.
func (c *Cart) Items() []Item {
	items := make([]Item, 0, len(c.order))
	for _, key := range c.order {
		items = append(items, *c.items[key])
	}
	return items
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Subtotal returns the cart total before shipping.
func (c *Cart) Subtotal() float64 {
	var total float64
	for _, item := range c.items {
		total += item.product.Price() * float64(item.quantity)
	}
	return total
}

// Clear removes all lines, returning the cart to its initial state.
func (c *Cart) Clear() {
	c.items = make(map[string]*Item)
	c.order = nil
}
