package commands

import (
	"errors"

	"ordering/internal/pkg/guard"
)

var ErrCompleteDeliveriesCommandIsNotConstructed = errors.New(
	"CompleteDeliveriesCommand must be created via NewCompleteDeliveriesCommand constructor",
)

// CompleteDeliveriesCommand triggers completion of all shipped orders whose
// estimated delivery time has passed. This batch operation simulates carrier
// delivery confirmations.
//
// Example:
//
//	cmd := NewCompleteDeliveriesCommand()
//	handler := NewCompleteDeliveriesCommandHandler(orders, dispatcher)
//
//	// Run periodically from a scheduler
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Delivery completion failed: %v", err)
//	}
type CompleteDeliveriesCommand struct {
	guard guard.ConstructorGuard
}

// NewCompleteDeliveriesCommand creates a command to complete due deliveries.
// This is a parameterless command that processes all shipped orders.
func NewCompleteDeliveriesCommand() CompleteDeliveriesCommand {
	return CompleteDeliveriesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *CompleteDeliveriesCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveriesCommandIsNotConstructed)
}
