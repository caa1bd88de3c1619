package commands

import (
	"context"

	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/ports"
)

// RegisterCustomerCommandHandler handles customer registration.
type RegisterCustomerCommandHandler struct {
	customerRepo ports.CustomerRepository
}

// NewRegisterCustomerCommandHandler creates a handler for customer
// registration.
func NewRegisterCustomerCommandHandler(customerRepo ports.CustomerRepository) RegisterCustomerCommandHandler {
	return RegisterCustomerCommandHandler{
		customerRepo: customerRepo,
	}
}

// Handle processes the customer registration command.
func (h *RegisterCustomerCommandHandler) Handle(ctx context.Context, cmd RegisterCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newCustomer, err := customer.NewCustomer(cmd.CustomerID(), cmd.Name(),
		cmd.Email(), cmd.Phone(), cmd.Destination())
	if err != nil {
		return err
	}

	return h.customerRepo.Add(ctx, newCustomer)
}
