// Package customer provides the customer entity: identity, contact details,
// delivery destination, and an append-only history of placed orders.
package customer

import (
	"errors"
	"fmt"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// Domain errors for customer operations.
var (
	// ErrCustomerIsNotConstructed is returned when using an improperly initialized Customer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")
	// ErrNameIsRequired is returned when attempting to create a customer without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrEmailIsInvalid is returned when an email address does not look like an address at all.
	ErrEmailIsInvalid = errs.NewValueIsInvalidError("email")
)

// Customer represents a registered customer.
//
// Invariants:
//   - Must have a valid unique identifier and a non-empty name
//   - Email must contain "@" (only a shape check, nothing more)
//   - Destination must be a valid delivery destination
//   - Order history is append-only; insertion order is chronological
//
// Phone is optional; observers that need a phone (SMS) are only registered
// for customers that have one.
type Customer struct { //nolint:recvcheck //using for validation
	id          kernel.UUID
	name        string
	email       string
	phone       string
	destination kernel.Destination
	orderIDs    []kernel.UUID

	guard guard.ConstructorGuard
}

// NewCustomer creates a Customer with validation. Phone may be empty.
func NewCustomer(
	id kernel.UUID,
	name string,
	email string,
	phone string,
	destination kernel.Destination,
) (*Customer, error) {
	c := &Customer{
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setEmail(email),
		c.setDestination(destination),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCustomer reconstructs a Customer from persisted state, including the
// accumulated order history. Used by repositories to rehydrate aggregates.
func RestoreCustomer(
	id kernel.UUID,
	name string,
	email string,
	phone string,
	destination kernel.Destination,
	orderIDs []kernel.UUID,
) (*Customer, error) {
	c, err := NewCustomer(id, name, email, phone, destination)
	if err != nil {
		return nil, err
	}

	for _, orderID := range orderIDs {
		if err = c.AddOrder(orderID); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Validate ensures the Customer was created through NewCustomer.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// IsEqual compares two customers by their identifiers.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}

// Email returns the customer's email address.
func (c *Customer) Email() string {
	return c.email
}

// Phone returns the customer's phone number, empty when none is on file.
func (c *Customer) Phone() string {
	return c.phone
}

// Destination returns the customer's delivery destination.
func (c *Customer) Destination() kernel.Destination {
	return c.destination
}

// OrderIDs returns the customer's order history in chronological order.
// The returned slice is a copy; mutating it does not affect the customer.
func (c *Customer) OrderIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(c.orderIDs))
	copy(ids, c.orderIDs)
	return ids
}

// AddOrder appends an order to the customer's history. History is
// append-only; the same order is not recorded twice.
func (c *Customer) AddOrder(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	for _, id := range c.orderIDs {
		if id.IsEqual(orderID) {
			return nil
		}
	}

	c.orderIDs = append(c.orderIDs, orderID)
	return nil
}

// ChangeEmail updates the customer's email address with the same shape check
// as construction.
func (c *Customer) ChangeEmail(email string) error {
	return c.setEmail(email)
}

// ChangePhone updates the customer's phone number. An empty value removes
// the phone from file.
func (c *Customer) ChangePhone(phone string) {
	c.phone = phone
}

// String returns a short display representation.
func (c *Customer) String() string {
	return fmt.Sprintf("%s <%s>", c.name, c.email)
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Customer) setEmail(email string) error {
	if !strings.Contains(email, "@") {
		return ErrEmailIsInvalid
	}
	c.email = email
	return nil
}

func (c *Customer) setDestination(destination kernel.Destination) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	c.destination = destination
	return nil
}
