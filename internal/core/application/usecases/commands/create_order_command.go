package commands

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderLine is one requested product and quantity in a CreateOrderCommand.
type OrderLine struct {
	ProductID kernel.UUID
	Quantity  int
}

// Validate checks that the line references a valid product and asks for at
// least one unit.
func (l OrderLine) Validate() error {
	if err := l.ProductID.Validate(); err != nil {
		return err
	}
	if l.Quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is less than 1", l.Quantity))
	}
	return nil
}

// CreateOrderCommand represents a request to place a new order for a
// customer: which products, how many of each, where to ship, and whether the
// order is urgent.
//
// An empty line list is accepted here and rejected by the handler once the
// cart turns out empty, so callers see the same error for an empty cart and
// for a request with no lines.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), customerID, lines, true)
//	if err != nil {
//	    return fmt.Errorf("invalid order request: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	lines      []OrderLine
	urgent     bool

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates the identifiers and each line; the line list itself may be empty.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	lines []OrderLine,
	urgent bool,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		urgent: urgent,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerID(customerID),
		orderCommand.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the identifier of the ordering customer.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Lines returns the requested product lines.
func (c CreateOrderCommand) Lines() []OrderLine {
	lines := make([]OrderLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// IsUrgent reports whether expedited shipping was requested.
func (c CreateOrderCommand) IsUrgent() bool {
	return c.urgent
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLine) error {
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	c.lines = make([]OrderLine, len(lines))
	copy(c.lines, lines)
	return nil
}
