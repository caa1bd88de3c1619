package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrRegisterCustomerCommandIsNotConstructed = errors.New(
	"RegisterCustomerCommand must be created via NewRegisterCustomerCommand constructor",
)

// RegisterCustomerCommand represents a request to register a new customer
// with contact details and a delivery destination. The phone number is
// optional; without one the customer gets no SMS notification channel.
type RegisterCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID  kernel.UUID
	name        string
	email       string
	phone       string
	destination kernel.Destination

	guard guard.ConstructorGuard
}

// NewRegisterCustomerCommand creates a command to register a customer.
// Full contact validation happens in the customer aggregate; here only the
// presence of the required fields is checked.
func NewRegisterCustomerCommand(
	customerID kernel.UUID,
	name string,
	email string,
	phone string,
	destination kernel.Destination,
) (RegisterCustomerCommand, error) {
	command := RegisterCustomerCommand{
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomerID(customerID),
		command.setName(name),
		command.setEmail(email),
		command.setDestination(destination),
	); err != nil {
		return RegisterCustomerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterCustomerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCustomerCommandIsNotConstructed)
}

// CustomerID returns the unique identifier for the new customer.
func (c RegisterCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Name returns the customer's display name.
func (c RegisterCustomerCommand) Name() string {
	return c.name
}

// Email returns the customer's email address.
func (c RegisterCustomerCommand) Email() string {
	return c.email
}

// Phone returns the customer's phone number, possibly empty.
func (c RegisterCustomerCommand) Phone() string {
	return c.phone
}

// Destination returns the customer's delivery destination.
func (c RegisterCustomerCommand) Destination() kernel.Destination {
	return c.destination
}

func (c *RegisterCustomerCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *RegisterCustomerCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *RegisterCustomerCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}

func (c *RegisterCustomerCommand) setDestination(destination kernel.Destination) error {
	if err := destination.Validate(); err != nil {
		return err
	}

	c.destination = destination
	return nil
}
