package commands

import (
	"context"

	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
)

// DeliverOrderCommandHandler handles the delivery transition: it moves the
// order from Shipped to its Delivered terminal state.
type DeliverOrderCommandHandler struct {
	orderRepo  ports.OrderRepository
	dispatcher *services.NotificationDispatcher
}

// NewDeliverOrderCommandHandler creates a handler for delivering orders.
func NewDeliverOrderCommandHandler(
	orderRepo ports.OrderRepository,
	dispatcher *services.NotificationDispatcher,
) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{
		orderRepo:  orderRepo,
		dispatcher: dispatcher,
	}
}

// Handle processes the deliver order command.
func (h *DeliverOrderCommandHandler) Handle(ctx context.Context, cmd DeliverOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	ord, err := h.orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = ord.Deliver(); err != nil {
		return err
	}

	if err = h.orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	h.dispatcher.Publish(ctx, notificationFor(ord, "your order has been delivered"))

	return nil
}
