package commands

import (
	"context"
	"fmt"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
)

// ShipOrderCommandHandler handles the shipping transition: it generates a
// carrier tracking number and moves the order from Confirmed to Shipped.
type ShipOrderCommandHandler struct {
	orderRepo  ports.OrderRepository
	dispatcher *services.NotificationDispatcher
}

// NewShipOrderCommandHandler creates a handler for shipping orders.
func NewShipOrderCommandHandler(
	orderRepo ports.OrderRepository,
	dispatcher *services.NotificationDispatcher,
) ShipOrderCommandHandler {
	return ShipOrderCommandHandler{
		orderRepo:  orderRepo,
		dispatcher: dispatcher,
	}
}

// Handle processes the ship order command.
func (h *ShipOrderCommandHandler) Handle(ctx context.Context, cmd ShipOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	ord, err := h.orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	trackingNumber := order.NewTrackingNumber()
	if err = ord.Ship(trackingNumber); err != nil {
		return err
	}

	if err = h.orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	h.dispatcher.Publish(ctx, notificationFor(ord,
		fmt.Sprintf("your order has been shipped, tracking number %s", trackingNumber)))

	return nil
}
