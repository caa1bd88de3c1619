package commands

import (
	"context"

	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
)

// CancelOrderCommandHandler handles order cancellation: it moves the order to
// its Cancelled terminal state and returns the reserved stock to the pool.
//
// Cancellation is only possible before shipping; the transition itself
// enforces that. The persisted transition is also the serialization point
// between concurrent cancellations, so stock is released only after the
// repository accepted the state change: a cancellation that loses the race
// releases nothing.
type CancelOrderCommandHandler struct {
	orderRepo  ports.OrderRepository
	ledger     ports.InventoryLedger
	dispatcher *services.NotificationDispatcher
}

// NewCancelOrderCommandHandler creates a handler for cancelling orders.
func NewCancelOrderCommandHandler(
	orderRepo ports.OrderRepository,
	ledger ports.InventoryLedger,
	dispatcher *services.NotificationDispatcher,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		orderRepo:  orderRepo,
		ledger:     ledger,
		dispatcher: dispatcher,
	}
}

// Handle processes the cancel order command.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	ord, err := h.orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = ord.Cancel(); err != nil {
		return err
	}

	if err = h.orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	for _, item := range ord.Items() {
		if _, err = h.ledger.Release(ctx, item.ProductID(), item.Quantity()); err != nil {
			return err
		}
	}

	h.dispatcher.Publish(ctx, notificationFor(ord, "your order has been cancelled"))

	return nil
}
